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

package hooksyslog

import "strings"

// Severity represents the severity level of a syslog message
// according to RFC 5424. Lower numerical values indicate higher severity.
//
// The severity levels map to logrus levels as follows:
//   - Emergency (0): System is unusable
//   - Alert (1): Action must be taken immediately → logrus.PanicLevel
//   - Critical (2): Critical conditions → logrus.FatalLevel
//   - Error (3): Error conditions → logrus.ErrorLevel
//   - Warning (4): Warning conditions → logrus.WarnLevel
//   - Notice (5): Normal but significant condition
//   - Informational (6): Informational messages → logrus.InfoLevel
//   - Debug (7): Debug-level messages → logrus.DebugLevel
type Severity uint8

const (
	SeverityEmerg   Severity = iota // System is unusable
	SeverityAlert                   // Action must be taken immediately
	SeverityCrit                    // Critical conditions
	SeverityErr                     // Error conditions
	SeverityWarning                 // Warning conditions
	SeverityNotice                  // Normal but significant condition
	SeverityInfo                    // Informational messages
	SeverityDebug                   // Debug-level messages
)

// severityNames maps every recognized Severity to its RFC 5424 name, in
// order from Emergency (0) to Debug (7) - ListSeverity below walks this
// same map's keys rather than re-listing the eight constants a second
// time.
var severityOrder = []Severity{
	SeverityEmerg, SeverityAlert, SeverityCrit, SeverityErr,
	SeverityWarning, SeverityNotice, SeverityInfo, SeverityDebug,
}

var severityNames = map[Severity]string{
	SeverityEmerg:   "EMERG",
	SeverityAlert:   "ALERT",
	SeverityCrit:    "CRIT",
	SeverityErr:     "ERR",
	SeverityWarning: "WARNING",
	SeverityNotice:  "NOTICE",
	SeverityInfo:    "INFO",
	SeverityDebug:   "DEBUG",
}

// String returns the RFC 5424 name of the severity level in uppercase.
// Returns an empty string for invalid/unknown severity values.
//
// Example:
//
//	sev := SeverityInfo
//	fmt.Println(sev.String()) // Outputs: "INFO"
func (s Severity) String() string {
	return severityNames[s]
}

func (s Severity) Uint8() uint8 {
	return uint8(s)
}

// MakeSeverity converts a severity string to a Severity value.
// The conversion is case-insensitive. Returns 0 if the string doesn't match any known severity.
func MakeSeverity(severity string) Severity {
	up := strings.ToUpper(severity)
	for _, s := range severityOrder {
		if severityNames[s] == up {
			return s
		}
	}
	return 0
}

// ListSeverity returns a slice containing all defined Severity levels
// in order from Emergency (0) to Debug (7).
func ListSeverity() []Severity {
	out := make([]Severity, len(severityOrder))
	copy(out, severityOrder)
	return out
}
