// seehuhn.de/go/hotline - gradient-coloured polylines
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

package hotline

import (
	"errors"
	"fmt"
)

// ErrNoStops is reported when a palette without colour stops is compiled.
var ErrNoStops = errors.New("palette has no colour stops")

// ErrNegative is reported for a negative or non-finite stroke width.
var ErrNegative = errors.New("width must be a non-negative number")

// ConfigError reports an invalid rendering configuration.
type ConfigError struct {
	Field string // the offending setting, e.g. "palette" or "style.weight"
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hotline: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
