/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package duration

import (
	"strings"
	"time"
)

// parseString strips the quoting a config value may carry once decoded
// from YAML/TOML/JSON (surrounding whitespace, stray quote characters)
// before handing it to time.ParseDuration - the grammar itself is
// stdlib's, this only tolerates the shapes a config file on disk
// actually produces.
func parseString(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(`"`, "", `'`, "").Replace(s)

	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return Duration(v), nil
}

func (d *Duration) parseString(s string) error {
	v, err := parseString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d *Duration) unmarshall(val []byte) error {
	v, err := ParseByte(val)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
