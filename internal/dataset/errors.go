// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

package dataset

import (
	"errors"
	"fmt"
)

// ErrStartupData matches every error returned by Load. The service must not
// start serving when it sees one.
var ErrStartupData = errors.New("startup data error")

// ErrInvalidScore is the cause for a non-numeric or non-finite score or weight.
var ErrInvalidScore = errors.New("attribute is not a finite number")

// ErrGeometry is the cause for a feature whose geometry has the wrong type.
var ErrGeometry = errors.New("unexpected geometry")

// DataError describes a problem with one of the input files. Feature is the
// zero-based feature index, or -1 when the whole file is at fault.
type DataError struct {
	Path    string
	Feature int
	Err     error
}

func (e *DataError) Error() string {
	if e.Feature < 0 {
		return fmt.Sprintf("%s: %s: %v", ErrStartupData, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: feature %d: %v", ErrStartupData, e.Path, e.Feature, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStartupData) true for every DataError.
func (e *DataError) Is(target error) bool { return target == ErrStartupData }
