/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package view

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData is returned when a present field has the wrong shape.
	ErrInvalidData = errors.New("dmx(view): invalid data")
	// ErrNotMap is returned when a path-addressed write targets a non-mapping node.
	ErrNotMap = errors.New("dmx(view): node is not a mapping")
	// ErrUnsupportedType is returned when a Go value has no document representation.
	ErrUnsupportedType = errors.New("dmx(view): unsupported value type")
)

// InvalidDataError describes a malformed field found during deserialization.
type InvalidDataError struct {
	// Path is the location of the offending node.
	Path Query
	// Want is the kind the reader expected.
	Want Kind
	// Got is the kind actually present.
	Got Kind
	// Reason optionally replaces the kind mismatch description.
	Reason string
}

// Error implements error.
func (e *InvalidDataError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("dmx(view): invalid data at %q: %s", e.Path.String(), e.Reason)
	}
	return fmt.Sprintf("dmx(view): invalid data at %q: want %s, got %s", e.Path.String(), e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrInvalidData.
func (e *InvalidDataError) Unwrap() error { return ErrInvalidData }

// Invalid builds an InvalidDataError with a free-form reason.
func Invalid(path Query, format string, args ...any) error {
	return &InvalidDataError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
