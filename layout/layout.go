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
	"fmt"
	"iter"

	"seehuhn.de/go/geom/matrix"
)

// Anchor selects the reference point used when placing a [Layout].
// The points are numbered like the keys on a phone pad: 1, 2, 3 are
// the top left corner, the middle of the top edge and the top right
// corner, and so on, down to 9 for the bottom right corner.
type Anchor int

const (
	AnchorTopLeft Anchor = iota + 1
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Offset returns the offset from the anchor point to the top/left
// corner of a box of the given size, in y-up coordinates.
// The method panics if the anchor is not valid.
func (a Anchor) Offset(width, height float64) (dx, dy float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopCenter:
		return -width / 2, 0
	case AnchorTopRight:
		return -width, 0
	case AnchorMiddleLeft:
		return 0, height / 2
	case AnchorMiddleCenter:
		return -width / 2, height / 2
	case AnchorMiddleRight:
		return -width, height / 2
	case AnchorBottomLeft:
		return 0, height
	case AnchorBottomCenter:
		return -width / 2, height
	case AnchorBottomRight:
		return -width, height
	default:
		panic(fmt.Sprintf("invalid anchor %d", int(a)))
	}
}

// maxOverflowColumns limits the number of columns added automatically
// when content overflows the last column of a layout.
const maxOverflowColumns = 100

// Layout arranges columns side by side.  Content appended to the
// layout fills the columns from left to right; when the last column is
// full, copies of it are added automatically.
type Layout struct {
	container
	width   float64 // reference width for new columns
	height  float64
	columns []*Column
	current int // the column which receives new content
}

// NewLayout returns a new, empty layout.  The width is used as the
// reference width for columns added without an explicit width; while
// the layout has no columns, width and height also determine the size
// reported by the layout.
func NewLayout(width, height float64, margins Margins, render ContentRenderer) *Layout {
	l := &Layout{width: width, height: height}
	l.margins = margins
	l.render = render
	return l
}

// AddColumn adds a column at the right end of the layout.  If width is
// not positive, the reference width of the layout is used instead.
func (l *Layout) AddColumn(width, height, gutter float64, margins Margins, render ContentRenderer) *Column {
	if width <= 0 {
		width = l.width
	}
	col := NewColumn(width, height, gutter, margins, render)
	l.columns = append(l.columns, col)
	return col
}

// AppendParagraphs distributes paragraphs into the columns of the
// layout, starting at the column where the previous call stopped.
// When the last column is full, copies of it are appended until all
// content is placed.
//
// The method panics if the layout has no columns, or if the content
// still does not fit after 100 new columns.
func (l *Layout) AppendParagraphs(paragraphs []Paragraph) {
	if len(l.columns) == 0 {
		panic("layout has no columns")
	}
	created := 0
	for len(paragraphs) > 0 {
		col := l.columns[l.current]
		paragraphs = col.AppendParagraphs(paragraphs)
		if len(paragraphs) == 0 {
			return
		}
		if l.current < len(l.columns)-1 {
			l.current++
			continue
		}
		created++
		if created > maxOverflowColumns {
			panic("not enough space in the layout")
		}
		l.columns = append(l.columns, col.CloneEmpty())
		l.current++
	}
}

// ContentWidth returns the total width of all columns, including the
// gutters between them.  While the layout has no columns, the
// reference width is returned.
func (l *Layout) ContentWidth() float64 {
	if len(l.columns) == 0 {
		return l.width
	}
	var width float64
	for i, col := range l.columns {
		width += col.TotalWidth()
		if i < len(l.columns)-1 {
			width += col.Gutter()
		}
	}
	return width
}

// ContentHeight returns the height of the tallest column.  While the
// layout has no columns, the height given to [NewLayout] is returned.
func (l *Layout) ContentHeight() float64 {
	if len(l.columns) == 0 {
		return l.height
	}
	var height float64
	for _, col := range l.columns {
		height = max(height, col.TotalHeight())
	}
	return height
}

// TotalWidth returns the width of the layout, including margins.
func (l *Layout) TotalWidth() float64 { return l.totalWidth(l.ContentWidth()) }

// TotalHeight returns the height of the layout, including margins.
func (l *Layout) TotalHeight() float64 { return l.totalHeight(l.ContentHeight()) }

// Place pins the layout so that the given anchor point of its bounding
// box is at (x, y).  All columns and their content are placed, too.
func (l *Layout) Place(x, y float64, anchor Anchor) {
	dx, dy := anchor.Offset(l.TotalWidth(), l.TotalHeight())
	l.anchor(x+dx, y+dy)
	l.placeContent()
}

func (l *Layout) placeContent() {
	x, y := l.contentLocation()
	for _, col := range l.columns {
		col.Place(x, y)
		x += col.TotalWidth() + col.Gutter()
	}
}

// Render yields the background of the layout, followed by the columns
// and their content.
func (l *Layout) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	return l.renderSequence(m, l.TotalWidth(), l.TotalHeight(), l.placeContent, l.renderChildren())
}

func (l *Layout) renderChildren() iter.Seq[RenderBox] {
	return func(yield func(RenderBox) bool) {
		for _, col := range l.columns {
			if !yield(col) {
				return
			}
		}
	}
}
