// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package reachability

// Mode is a travel mode understood by the isochrone service.
type Mode string

const (
	Driving Mode = "driving"
	Walking Mode = "walking"
)

// Modes lists the accepted values in display order.
var Modes = []Mode{Driving, Walking}

// Valid reports whether m is Driving or Walking.
func (m Mode) Valid() bool {
	return m == Driving || m == Walking
}

// ParseMode accepts exactly "driving" or "walking".
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", invalidArgument("mode must be 'driving' or 'walking', got %q", s)
	}
	return m, nil
}
