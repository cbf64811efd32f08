/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package protocol

import (
	"fmt"
	"reflect"

	libmap "github.com/go-viper/mapstructure/v2"
)

// ViperDecoderHook returns a DecodeHookFuncType for Viper/mapstructure
// configuration decoding: it accepts a string (protocol name, any case) or
// any signed/unsigned integer kind (protocol code) and decodes it into a
// NetworkProtocol field.
//
// Usage:
//
//	opts := viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
//	    c.DecodeHook = protocol.ViperDecoderHook()
//	})
//	v.Unmarshal(&cfg, opts)
func ViperDecoderHook() libmap.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		var z NetworkProtocol

		if to != reflect.TypeOf(z) {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			s, ok := data.(string)
			if !ok {
				return data, nil
			}

			p := Parse(s)
			if p == NetworkEmpty && normalize(s) != "" {
				return nil, fmt.Errorf("protocol: invalid value %q", s)
			}
			return p, nil

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := reflect.ValueOf(data).Int()
			p := ParseInt64(v)
			if p == NetworkEmpty {
				return nil, fmt.Errorf("protocol: invalid value %d", v)
			}
			return p, nil

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v := reflect.ValueOf(data).Uint()
			p := ParseInt64(int64(v))
			if p == NetworkEmpty {
				return nil, fmt.Errorf("protocol: invalid value %d", v)
			}
			return p, nil

		default:
			return data, nil
		}
	}
}
