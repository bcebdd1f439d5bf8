// seehuhn.de/go/pixelgreat - simulated display artifacts for bitmaps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixelgreat

import (
	"errors"
	"math"
	"strconv"
)

var (
	// ErrConfiguration is matched by all errors caused by invalid
	// filter settings.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrMissingParameter is matched by errors caused by a setting which
	// is required by the other settings but has not been given.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrImageMismatch is matched by errors caused by an image which does
	// not fit the filter.
	ErrImageMismatch = errors.New("image does not match filter")
)

// ConfigError reports an invalid or missing filter setting.
type ConfigError struct {
	// Field is the human readable name of the setting, e.g. "pixel aspect".
	Field string

	// Value is the value which was given.
	Value float64

	// Min and Max are the bounds of the legal range.  Max is +Inf for
	// settings without upper bound.
	Min, Max float64

	// Missing is set if the setting is required but was not given.
	Missing bool

	// Reason is an optional explanation.
	Reason string
}

func (err *ConfigError) Error() string {
	if err.Missing {
		msg := err.Field + " is required"
		if err.Reason != "" {
			msg += " (" + err.Reason + ")"
		}
		return msg
	}
	if err.Reason != "" {
		return err.Field + ": " + err.Reason
	}

	val := " (got " + formatFloat(err.Value) + ")"
	if math.IsInf(err.Max, 1) {
		return err.Field + " must be at least " + formatFloat(err.Min) + val
	}
	return err.Field + " must be between " + formatFloat(err.Min) +
		" and " + formatFloat(err.Max) + val
}

// Unwrap returns ErrConfiguration, and ErrMissingParameter for missing
// settings.
func (err *ConfigError) Unwrap() []error {
	if err.Missing {
		return []error{ErrMissingParameter, ErrConfiguration}
	}
	return []error{ErrConfiguration}
}

// MismatchError reports an image which cannot be processed by a filter.
type MismatchError struct {
	// Field is "size" or "mode".
	Field string

	Want, Got string
}

func (err *MismatchError) Error() string {
	return "image " + err.Field + " mismatch: expected " + err.Want + ", got " + err.Got
}

func (err *MismatchError) Unwrap() error {
	return ErrImageMismatch
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// checkRange returns a *ConfigError if x is outside [lo, hi].
// NaN is never in range.
func checkRange(field string, x, lo, hi float64) error {
	if x >= lo && x <= hi {
		return nil
	}
	return &ConfigError{Field: field, Value: x, Min: lo, Max: hi}
}
