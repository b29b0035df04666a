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
	"iter"

	"seehuhn.de/go/geom/matrix"
)

// Line is a horizontal row of cells.  The line has a fixed width, and
// its height is the height of the tallest cell.  Cells are aligned
// with the bottom edge of the line.
//
// Lines are normally created by [FlowText.DistributeContent], but they
// can also be filled by hand.
type Line struct {
	container
	width float64
	align Alignment // alignment tag, not interpreted by the line itself
	cells []Box
}

// NewLine returns a new, empty line of the given width.  The alignment
// is stored with the line but not interpreted; paragraphs use it when
// placing their lines.
func NewLine(width float64, align Alignment, margins Margins, render ContentRenderer) *Line {
	l := &Line{width: width, align: align}
	l.margins = margins
	l.render = render
	return l
}

// Append adds a cell at the right end of the line.
func (l *Line) Append(cell Box) {
	l.cells = append(l.cells, cell)
}

// ContentWidth returns the fixed width of the line, without margins.
func (l *Line) ContentWidth() float64 { return l.width }

// ContentHeight returns the height of the tallest cell in the line.
func (l *Line) ContentHeight() float64 {
	var height float64
	for _, cell := range l.cells {
		height = max(height, cell.TotalHeight())
	}
	return height
}

// TotalWidth returns the width of the line, including margins.
func (l *Line) TotalWidth() float64 { return l.totalWidth(l.ContentWidth()) }

// TotalHeight returns the height of the line, including margins.
func (l *Line) TotalHeight() float64 { return l.totalHeight(l.ContentHeight()) }

// Place pins the line and all cells in it.
func (l *Line) Place(x, y float64) {
	l.anchor(x, y)
	l.placeContent()
}

func (l *Line) placeContent() {
	x, y := l.contentLocation()
	height := l.ContentHeight()
	for _, cell := range l.cells {
		if cell, ok := cell.(RenderBox); ok {
			cell.Place(x, y-(height-cell.TotalHeight()))
		}
		x += cell.TotalWidth()
	}
}

// Render yields the background of the line, followed by the cells.
func (l *Line) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	return l.renderSequence(m, l.TotalWidth(), l.TotalHeight(), l.placeContent, l.renderChildren())
}

func (l *Line) renderChildren() iter.Seq[RenderBox] {
	return func(yield func(RenderBox) bool) {
		for _, cell := range l.cells {
			if cell, ok := cell.(RenderBox); ok {
				if !yield(cell) {
					return
				}
			}
		}
	}
}

var _ RenderBox = (*Line)(nil)
