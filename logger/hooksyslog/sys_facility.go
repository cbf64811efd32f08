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

// Facility represents the facility code of a syslog message
// according to RFC 5424. The facility indicates the type of program
// or system component generating the message.
//
// Facilities are typically used for filtering and routing syslog messages:
//   - KERN: Kernel messages
//   - USER: User-level messages (default for applications)
//   - MAIL: Mail system
//   - DAEMON: System daemons
//   - AUTH: Security/authorization messages
//   - SYSLOG: Messages generated internally by syslogd
//   - LPR: Line printer subsystem
//   - NEWS: Network news subsystem
//   - UUCP: UUCP subsystem
//   - CRON: Clock daemon
//   - AUTHPRIV: Security/authorization messages (private)
//   - FTP: FTP daemon
//   - LOCAL0-LOCAL7: Reserved for local use (application-specific)
type Facility uint8

const (
	FacilityKern     Facility = iota // Kernel messages
	FacilityUser                     // User-level messages
	FacilityMail                     // Mail system
	FacilityDaemon                   // System daemons
	FacilityAuth                     // Security/authorization messages
	FacilitySyslog                   // Messages generated internally by syslogd
	FacilityLpr                      // Line printer subsystem
	FacilityNews                     // Network news subsystem
	FacilityUucp                     // UUCP subsystem
	FacilityCron                     // Clock daemon
	FacilityAuthPriv                 // Security/authorization messages (private)
	FacilityFTP                      // FTP daemon
	_                                // unused
	_                                // unused
	_                                // unused
	_                                // unused
	FacilityLocal0                   // Local use 0
	FacilityLocal1                   // Local use 1
	FacilityLocal2                   // Local use 2
	FacilityLocal3                   // Local use 3
	FacilityLocal4                   // Local use 4
	FacilityLocal5                   // Local use 5
	FacilityLocal6                   // Local use 6
	FacilityLocal7                   // Local use 7
)

// facilityNames maps every recognized Facility to its RFC 5424 name.
var facilityNames = map[Facility]string{
	FacilityKern:     "KERN",
	FacilityUser:     "USER",
	FacilityMail:     "MAIL",
	FacilityDaemon:   "DAEMON",
	FacilityAuth:     "AUTH",
	FacilitySyslog:   "SYSLOG",
	FacilityLpr:      "LPR",
	FacilityNews:     "NEWS",
	FacilityUucp:     "UUCP",
	FacilityCron:     "CRON",
	FacilityAuthPriv: "AUTHPRIV",
	FacilityFTP:      "FTP",
	FacilityLocal0:   "LOCAL0",
	FacilityLocal1:   "LOCAL1",
	FacilityLocal2:   "LOCAL2",
	FacilityLocal3:   "LOCAL3",
	FacilityLocal4:   "LOCAL4",
	FacilityLocal5:   "LOCAL5",
	FacilityLocal6:   "LOCAL6",
	FacilityLocal7:   "LOCAL7",
}

// String returns the RFC 5424 name of the facility in uppercase.
// Returns an empty string for invalid/unknown facility values.
//
// Example:
//
//	fac := FacilityUser
//	fmt.Println(fac.String()) // Outputs: "USER"
func (f Facility) String() string {
	return facilityNames[f]
}

func (f Facility) Uint8() uint8 {
	return uint8(f)
}

// MakeFacility converts a facility string to a Facility value.
// The conversion is case-insensitive. Returns 0 if the string doesn't match any known facility.
func MakeFacility(facility string) Facility {
	up := strings.ToUpper(facility)
	for f, name := range facilityNames {
		if name == up {
			return f
		}
	}
	return 0
}
