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

package urlutil

import (
	"net"
	"net/url"
	"strings"
)

// ParseURL splits input into its components. With isConnectForm, input is
// taken to be a CONNECT request's authority-form target ("host:port")
// rather than a full URL, matching HTTP/1.1's distinct target forms.
func ParseURL(input string, isConnectForm bool) (URL, error) {
	if input == "" {
		return URL{}, ErrEmptyInput
	}

	if isConnectForm {
		return parseConnectForm(input)
	}

	u, err := url.Parse(input)
	if err != nil {
		return URL{}, err
	}

	var out URL

	if u.Scheme != "" {
		out.Schema = strPtr(u.Scheme)
	}
	if h := u.Hostname(); h != "" {
		out.Host = strPtr(h)
	}
	if p := u.Port(); p != "" {
		out.Port = strPtr(p)
	}
	if u.Path != "" {
		out.Path = strPtr(u.Path)
	}
	if u.RawQuery != "" {
		out.QueryString = strPtr(u.RawQuery)
	}
	if u.Fragment != "" {
		out.Fragment = strPtr(u.Fragment)
	}
	if u.User != nil {
		out.UserInfo = strPtr(u.User.String())
	}

	return out, nil
}

func parseConnectForm(input string) (URL, error) {
	host, port, err := net.SplitHostPort(input)
	if err != nil || host == "" || port == "" {
		return URL{}, ErrMalformedConnectForm
	}
	if strings.ContainsAny(input, "/?#@") {
		return URL{}, ErrMalformedConnectForm
	}

	return URL{Host: strPtr(host), Port: strPtr(port)}, nil
}

func strPtr(s string) *string {
	return &s
}

// URLDecode streams through form, an application/x-www-form-urlencoded
// "name=value&name=value" sequence, percent-decoding each name and value
// before invoking sink. It rejects a pair whose name is empty while its
// value is not, and any field left empty by adjacent separators.
func URLDecode(form string, sink func(name, value string) error) error {
	if form == "" {
		return nil
	}

	for _, field := range strings.Split(form, "&") {
		if field == "" {
			return ErrEmptyField
		}

		name, value, _ := strings.Cut(field, "=")

		dn, err := url.QueryUnescape(name)
		if err != nil {
			return err
		}
		dv, err := url.QueryUnescape(value)
		if err != nil {
			return err
		}

		if dn == "" && dv != "" {
			return ErrEmptyName
		}

		if err := sink(dn, dv); err != nil {
			return err
		}
	}

	return nil
}
