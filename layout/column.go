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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Column is a vertical stack of paragraphs with a fixed width.  The
// height is either fixed, in which case surplus content is rejected,
// or the column grows with its content.
type Column struct {
	container
	width      float64
	maxHeight  float64 // 0 or less means the column grows with its content
	gutter     float64
	paragraphs []Paragraph
}

// NewColumn returns a new, empty column.  If height is positive, the
// column accepts content only up to this height; otherwise the column
// grows with its content.  The gutter is the space between this column
// and the next one in a [Layout].
func NewColumn(width, height, gutter float64, margins Margins, render ContentRenderer) *Column {
	col := &Column{width: width, maxHeight: height, gutter: gutter}
	col.margins = margins
	col.render = render
	return col
}

// CloneEmpty returns a new, empty column with the same settings.
func (col *Column) CloneEmpty() *Column {
	return NewColumn(col.width, col.maxHeight, col.gutter, col.margins, col.render)
}

// HasFlexibleHeight reports whether the column grows with its content.
func (col *Column) HasFlexibleHeight() bool {
	return col.maxHeight <= 0
}

// HasFreeSpace reports whether the column can accept more content.
// Columns with flexible height always have free space.
func (col *Column) HasFreeSpace() bool {
	if col.HasFlexibleHeight() {
		return true
	}
	return col.usedHeight() < col.maxHeight
}

// Gutter returns the space between this column and the next one in a
// [Layout].
func (col *Column) Gutter() float64 { return col.gutter }

// AppendParagraphs distributes paragraphs into the column.  The
// returned slice holds the content which did not fit; it is empty if
// everything was added.
func (col *Column) AppendParagraphs(paragraphs []Paragraph) []Paragraph {
	if col.HasFlexibleHeight() {
		for _, p := range paragraphs {
			p.DistributeContent(math.Inf(1))
			col.paragraphs = append(col.paragraphs, p)
		}
		return nil
	}
	for i, p := range paragraphs {
		remaining := col.maxHeight - col.usedHeight()
		if remaining <= 0 {
			return paragraphs[i:]
		}
		rem := p.DistributeContent(remaining)
		if rem == nil {
			col.paragraphs = append(col.paragraphs, p)
			continue
		}
		if !p.empty() {
			col.paragraphs = append(col.paragraphs, p)
		}
		tail := make([]Paragraph, 0, len(paragraphs)-i)
		tail = append(tail, rem)
		tail = append(tail, paragraphs[i+1:]...)
		return tail
	}
	return nil
}

func (col *Column) usedHeight() float64 {
	var height float64
	for _, p := range col.paragraphs {
		height += p.TotalHeight()
	}
	return height
}

// ContentWidth returns the width of the column, without margins.
func (col *Column) ContentWidth() float64 { return col.width }

// ContentHeight returns the height of the column content: the fixed
// height for fixed columns, the used height otherwise.
func (col *Column) ContentHeight() float64 {
	if col.HasFlexibleHeight() {
		return col.usedHeight()
	}
	return col.maxHeight
}

// TotalWidth returns the width of the column, including margins.
func (col *Column) TotalWidth() float64 { return col.totalWidth(col.ContentWidth()) }

// TotalHeight returns the height of the column, including margins.
func (col *Column) TotalHeight() float64 { return col.totalHeight(col.ContentHeight()) }

// Place pins the column and all of its paragraphs.
func (col *Column) Place(x, y float64) {
	col.anchor(x, y)
	col.placeContent()
}

func (col *Column) placeContent() {
	x, y := col.contentLocation()
	for _, p := range col.paragraphs {
		p.Place(x, y)
		y -= p.TotalHeight()
	}
}

// Render yields the background of the column, followed by the
// paragraphs.
func (col *Column) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	return col.renderSequence(m, col.TotalWidth(), col.TotalHeight(), col.placeContent, col.renderChildren())
}

func (col *Column) renderChildren() iter.Seq[RenderBox] {
	return func(yield func(RenderBox) bool) {
		for _, p := range col.paragraphs {
			if !yield(p) {
				return
			}
		}
	}
}

var _ RenderBox = (*Column)(nil)
