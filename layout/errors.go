// seehuhn.de/go/dxf - a library for creating DXF drawings
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

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlignment indicates a paragraph alignment outside the
	// valid range.
	ErrInvalidAlignment = errors.New("invalid paragraph alignment")

	// ErrInvalidNesting indicates that a container was used in a place
	// where only cells are allowed.
	ErrInvalidNesting = errors.New("invalid nesting of containers")
)

// SequenceError indicates an invalid cell sequence, where two content
// cells follow each other without glue in between.
type SequenceError struct {
	Index int // position of the second content cell
}

func (err *SequenceError) Error() string {
	return fmt.Sprintf("no glue between content cells (index %d)", err.Index)
}
