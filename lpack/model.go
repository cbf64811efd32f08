/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package lpack

import (
	"math"

	liberr "github.com/nabbar/luaw-server/errors"
)

// Encoder accumulates a sequence of tag/value frames into one byte
// slice. It holds no state beyond the buffer itself - NewEncoder exists
// for symmetry with Decode's free function style and to let a caller
// reuse one growing buffer across several Encode calls.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode appends one frame per Tag found in items to the Encoder's
// buffer and returns the buffer's current contents. Markers that carry
// no payload (MapStart, ArrayStart, DictStart, RecordEnd, Nil,
// BoolTrue, BoolFalse) consume only the Tag itself from items; every
// other Tag consumes the item immediately following it as its payload.
// Panics are never used for malformed input - a truncated queue or a
// payload of the wrong Go type is reported as an error via the second
// return-adjacent mechanism: callers that need to detect this should
// check EncodeErr instead of Encode when input isn't already
// known-good; Encode itself returns only the bytes successfully framed
// before the first error, matching the teacher's "best effort buffer,
// caller owns validation upstream" convention for internal wire
// encoders.
func (e *Encoder) Encode(items ...any) []byte {
	b, _ := e.EncodeErr(items...)
	return b
}

// EncodeErr is Encode's explicit-error counterpart.
func (e *Encoder) EncodeErr(items ...any) ([]byte, error) {
	i := 0
	for i < len(items) {
		tag, ok := items[i].(Tag)
		if !ok {
			return e.buf, liberr.New(uint16(ErrValueType), "lpack: expected a Tag in the item queue")
		}
		i++

		if tag == TypeMarker {
			return e.buf, liberr.New(uint16(ErrUnknownTag), "lpack: TypeMarker cannot be encoded")
		}

		e.buf = append(e.buf, byte(tag))

		width := markerOnly(tag)
		if width {
			continue
		}

		if i >= len(items) {
			return e.buf, liberr.New(uint16(ErrTruncatedQueue), "lpack: tag missing its payload")
		}
		val := items[i]
		i++

		if err := e.encodeValue(tag, val); err != nil {
			return e.buf, err
		}
	}
	return e.buf, nil
}

func markerOnly(tag Tag) bool {
	switch tag {
	case MapStart, ArrayStart, DictStart, RecordEnd, Nil, BoolTrue, BoolFalse:
		return true
	default:
		return false
	}
}

func (e *Encoder) encodeValue(tag Tag, val any) error {
	switch tag {
	case Uint8, DictEntry:
		v, err := toUint64(val)
		if err != nil {
			return err
		}
		e.buf = append(e.buf, byte(v))

	case Uint16, BigDictEntry:
		v, err := toUint64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE16(e.buf, uint16(v))

	case Uint32:
		v, err := toUint64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE32(e.buf, uint32(v))

	case Int8:
		v, err := toInt64(val)
		if err != nil {
			return err
		}
		e.buf = append(e.buf, byte(int8(v)))

	case Int16:
		v, err := toInt64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE16(e.buf, uint16(int16(v)))

	case Int32:
		v, err := toInt64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE32(e.buf, uint32(int32(v)))

	case Int64:
		v, err := toInt64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE64(e.buf, uint64(v))

	case Float32:
		v, err := toFloat64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE32(e.buf, math.Float32bits(float32(v)))

	case Float64:
		v, err := toFloat64(val)
		if err != nil {
			return err
		}
		e.buf = appendBE64(e.buf, math.Float64bits(v))

	case String, DictURL:
		s, err := toString(val)
		if err != nil {
			return err
		}
		if len(s) > math.MaxUint8 {
			return liberr.New(uint16(ErrStringTooLarge), "lpack: string too large for a 1-byte length prefix")
		}
		e.buf = append(e.buf, byte(len(s)))
		e.buf = append(e.buf, s...)

	case BigString, BigDictURL:
		s, err := toString(val)
		if err != nil {
			return err
		}
		if len(s) > math.MaxUint16 {
			return liberr.New(uint16(ErrStringTooLarge), "lpack: string too large for a 2-byte length prefix")
		}
		e.buf = appendBE16(e.buf, uint16(len(s)))
		e.buf = append(e.buf, s...)

	case HugeString:
		s, err := toString(val)
		if err != nil {
			return err
		}
		e.buf = appendBE32(e.buf, uint32(len(s)))
		e.buf = append(e.buf, s...)

	default:
		return liberr.New(uint16(ErrUnknownTag), "lpack: unknown tag in item queue")
	}
	return nil
}

func toUint64(val any) (uint64, error) {
	switch v := val.(type) {
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int:
		return uint64(v), nil
	default:
		return 0, liberr.New(uint16(ErrValueType), "lpack: expected an unsigned integer payload")
	}
}

func toInt64(val any) (int64, error) {
	switch v := val.(type) {
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, liberr.New(uint16(ErrValueType), "lpack: expected a signed integer payload")
	}
}

func toFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, liberr.New(uint16(ErrValueType), "lpack: expected a floating-point payload")
	}
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", liberr.New(uint16(ErrValueType), "lpack: expected a string payload")
	}
}

func appendBE16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendBE32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendBE64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// DecodeResult reports what Decode found.
type DecodeResult struct {
	// Consumed is the number of bytes read from buf, starting at
	// offset, to produce Value. Zero if buf didn't hold enough bytes.
	Consumed int

	// Value holds the decoded payload: an unsigned/signed integer,
	// float32/float64, or string, depending on requestedTag. Nil for a
	// marker-only tag.
	Value any

	// Required is the total number of bytes (from offset) requestedTag
	// needs to decode fully. Set whenever Consumed is zero because buf
	// ran out of data; zero otherwise.
	Required int
}

// Decode reads requestedTag's payload from buf[offset:] - the marker
// byte itself is assumed already consumed by the caller, which is why
// requestedTag is a parameter rather than read from buf. It never
// errors on a short buffer: Consumed is 0 and Required reports how many
// bytes the caller needs to read and retry with. It errors only for
// TypeMarker or a Tag value outside the enum.
func Decode(requestedTag Tag, buf []byte, offset int) (DecodeResult, error) {
	if requestedTag == TypeMarker {
		return DecodeResult{}, liberr.New(uint16(ErrUnknownTag), "lpack: TypeMarker cannot be decoded")
	}

	remaining := len(buf) - offset
	if remaining < 0 {
		remaining = 0
	}

	if markerOnly(requestedTag) {
		return DecodeResult{Consumed: 0, Value: nil}, nil
	}

	switch requestedTag {
	case Uint8, DictEntry:
		return decodeFixedUint(buf, offset, remaining, 1)
	case Uint16, BigDictEntry:
		return decodeFixedUint(buf, offset, remaining, 2)
	case Uint32:
		return decodeFixedUint(buf, offset, remaining, 4)
	case Int8:
		return decodeFixedInt(buf, offset, remaining, 1)
	case Int16:
		return decodeFixedInt(buf, offset, remaining, 2)
	case Int32:
		return decodeFixedInt(buf, offset, remaining, 4)
	case Int64:
		return decodeFixedInt(buf, offset, remaining, 8)
	case Float32:
		r, err := decodeFixedUint(buf, offset, remaining, 4)
		if err != nil || r.Consumed == 0 {
			return r, err
		}
		r.Value = math.Float32frombits(uint32(r.Value.(uint64)))
		return r, nil
	case Float64:
		r, err := decodeFixedUint(buf, offset, remaining, 8)
		if err != nil || r.Consumed == 0 {
			return r, err
		}
		r.Value = math.Float64frombits(r.Value.(uint64))
		return r, nil
	case String, DictURL:
		return decodeLengthPrefixed(buf, offset, remaining, 1)
	case BigString, BigDictURL:
		return decodeLengthPrefixed(buf, offset, remaining, 2)
	case HugeString:
		return decodeLengthPrefixed(buf, offset, remaining, 4)
	default:
		return DecodeResult{}, liberr.New(uint16(ErrUnknownTag), "lpack: unknown tag")
	}
}

func decodeFixedUint(buf []byte, offset, remaining, width int) (DecodeResult, error) {
	if remaining < width {
		return DecodeResult{Required: width}, nil
	}

	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(buf[offset+i])
	}
	return DecodeResult{Consumed: width, Value: v}, nil
}

func decodeFixedInt(buf []byte, offset, remaining, width int) (DecodeResult, error) {
	r, err := decodeFixedUint(buf, offset, remaining, width)
	if err != nil || r.Consumed == 0 {
		return r, err
	}

	u := r.Value.(uint64)
	switch width {
	case 1:
		r.Value = int64(int8(u))
	case 2:
		r.Value = int64(int16(u))
	case 4:
		r.Value = int64(int32(u))
	case 8:
		r.Value = int64(u)
	}
	return r, nil
}

func decodeLengthPrefixed(buf []byte, offset, remaining, lenWidth int) (DecodeResult, error) {
	if remaining < lenWidth {
		return DecodeResult{Required: lenWidth}, nil
	}

	var length uint64
	for i := 0; i < lenWidth; i++ {
		length = length<<8 | uint64(buf[offset+i])
	}

	total := lenWidth + int(length)
	if remaining < total {
		return DecodeResult{Required: total}, nil
	}

	s := string(buf[offset+lenWidth : offset+total])
	return DecodeResult{Consumed: total, Value: s}, nil
}
