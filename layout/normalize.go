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

// isContent reports whether cell is a content cell.
func isContent(cell Box) bool {
	switch cell.(type) {
	case *Text, *Fraction:
		return true
	}
	return false
}

// isGlue reports whether cell is a glue cell.
func isGlue(cell Box) bool {
	return asGlue(cell) != nil
}

// NormalizeCells checks and cleans up a cell sequence for use in
// flowing text.  Two content cells without glue in between are an
// error.  Runs of soft hyphens are collapsed into the first one, soft
// hyphens without content cells on both sides are removed, and glue at
// the end of the sequence is dropped.
//
// The input slice is not modified.  The function is idempotent.
func NormalizeCells(cells []Box) ([]Box, error) {
	for i := 1; i < len(cells); i++ {
		if isContent(cells[i]) && isContent(cells[i-1]) {
			return nil, &SequenceError{Index: i}
		}
	}
	return cleanupCells(cells), nil
}

// cleanupCells removes soft hyphens which can never be used, and glue
// at the end of the sequence.
func cleanupCells(cells []Box) []Box {
	// Collapse runs of soft hyphens into the first one.
	res := make([]Box, 0, len(cells))
	for _, cell := range cells {
		if _, ok := cell.(*SoftHyphen); ok && len(res) > 0 {
			if _, ok := res[len(res)-1].(*SoftHyphen); ok {
				continue
			}
		}
		res = append(res, cell)
	}

	// Remove soft hyphens which are not surrounded by content cells.
	// After the first pass no two soft hyphens are adjacent, so the
	// neighbours checked here are never removed themselves.
	k := 0
	for i, cell := range res {
		if _, ok := cell.(*SoftHyphen); ok {
			if i == 0 || i == len(res)-1 ||
				!isContent(res[i-1]) || !isContent(res[i+1]) {
				continue
			}
		}
		res[k] = cell
		k++
	}
	res = res[:k]

	for len(res) > 0 && isGlue(res[len(res)-1]) {
		res = res[:len(res)-1]
	}
	return res
}
