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

// Package optional provides value types which distinguish between
// "not set" and a zero value.
package optional

// Int represents an optional non-negative integer.
//
// This is used for values where zero is meaningful and "not set" must
// be a separate state.  An example is a true color value, which
// overrides the color index only when present.
type Int struct {
	val uint64
}

// NewInt creates a new Int with the given value.
func NewInt(v int) Int {
	var k Int
	k.Set(v)
	return k
}

// Get returns the value and whether it is set.
func (k Int) Get() (int, bool) {
	if k.val == 0 {
		return 0, false
	}
	return int(k.val - 1), true
}

// Set sets the value.  Negative values are not allowed.
func (k *Int) Set(v int) {
	if v < 0 {
		panic("value out of range")
	}
	k.val = uint64(v) + 1
}

// Clear clears the value.
func (k *Int) Clear() {
	k.val = 0
}

// Equal compares two Ints for equality.
func (k Int) Equal(other Int) bool {
	return k.val == other.val
}
