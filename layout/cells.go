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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// glue is the common base of all glue cells.  Glue has no height and
// can be stretched, but not below its minimum width.
type glue struct {
	width    float64
	minWidth float64
}

// TotalWidth returns the current width of the cell.
func (g *glue) TotalWidth() float64 { return g.width }

// TotalHeight returns 0; glue has no height.
func (g *glue) TotalHeight() float64 { return 0 }

// Resize sets the width of the cell.  Arguments smaller than the
// minimum width of the cell are quietly clipped.
func (g *glue) Resize(width float64) {
	g.width = max(width, g.minWidth)
}

// CanBreak reports whether a line may be broken at this cell.
func (g *glue) CanBreak() bool { return true }

// asGlue returns the glue base of a cell, or nil if the cell is not a
// glue cell.
func asGlue(cell Box) *glue {
	switch cell := cell.(type) {
	case *Space:
		return &cell.glue
	case *NonBreakingSpace:
		return &cell.glue
	case *Tab:
		return &cell.glue
	case *SoftHyphen:
		return &cell.glue
	}
	return nil
}

// Space is stretchable white space between content cells.  Lines may
// break at a space.
type Space struct {
	glue
}

// NewSpace returns a new space cell with the given default and minimum
// width.
func NewSpace(width, minWidth float64) *Space {
	return &Space{glue{width: width, minWidth: minWidth}}
}

// NonBreakingSpace is white space which keeps the content cells on
// either side of it on the same line.
type NonBreakingSpace struct {
	glue
}

// NewNonBreakingSpace returns a new non-breaking space cell with the
// given default and minimum width.
func NewNonBreakingSpace(width, minWidth float64) *NonBreakingSpace {
	return &NonBreakingSpace{glue{width: width, minWidth: minWidth}}
}

// CanBreak reports that lines never break at a non-breaking space.
func (c *NonBreakingSpace) CanBreak() bool { return false }

// ToSpace converts the cell into an ordinary space with the same
// widths.
func (c *NonBreakingSpace) ToSpace() *Space {
	return &Space{c.glue}
}

// Tab is white space which advances to the next tab stop.  Until tab
// stops are resolved, a tab behaves like a space.
type Tab struct {
	glue
}

// NewTab returns a new tab cell with the given default and minimum
// width.
func NewTab(width, minWidth float64) *Tab {
	return &Tab{glue{width: width, minWidth: minWidth}}
}

// SoftHyphen marks a point where a line may be broken in the middle of
// a word.  Soft hyphens are only useful between two content cells;
// [NormalizeCells] removes all others.
type SoftHyphen struct {
	glue
}

// NewSoftHyphen returns a new soft hyphen cell with the given default
// and minimum width.
func NewSoftHyphen(width, minWidth float64) *SoftHyphen {
	return &SoftHyphen{glue{width: width, minWidth: minWidth}}
}

// Leading forces a line break in flowing text.  The cell has no size;
// two leading cells in a row produce an empty line.
type Leading struct{}

// TotalWidth returns 0.
func (c *Leading) TotalWidth() float64 { return 0 }

// TotalHeight returns 0.
func (c *Leading) TotalHeight() float64 { return 0 }

// contentCell is the common base of cells which show content.
type contentCell struct {
	x, y     float64
	placed   bool
	width    float64
	height   float64
	renderer ContentRenderer
}

// TotalWidth returns the width of the cell.
func (c *contentCell) TotalWidth() float64 { return c.width }

// TotalHeight returns the height of the cell.
func (c *contentCell) TotalHeight() float64 { return c.height }

// Place pins the cell so that (x, y) is the top/left corner.
func (c *contentCell) Place(x, y float64) {
	c.x = x
	c.y = y
	c.placed = true
}

// FinalLocation returns the top/left corner assigned by Place.
// The method panics if the cell has not been placed.
func (c *contentCell) FinalLocation() vec.Vec2 {
	if !c.placed {
		panic("box is not placed")
	}
	return vec.Vec2{X: c.x, Y: c.y}
}

func (c *contentCell) bounds() rect.Rect {
	return rect.Rect{
		LLx: c.x,
		LLy: c.y - c.height,
		URx: c.x + c.width,
		URy: c.y,
	}
}

// Text is a content cell of fixed size.  The cell does not know what
// it contains; the renderer is called with the bounding rectangle of
// the cell when the cell is drawn.
type Text struct {
	contentCell
}

// NewText returns a new content cell of the given size.  The render
// argument may be nil for invisible cells.
func NewText(width, height float64, render ContentRenderer) *Text {
	return &Text{contentCell{width: width, height: height, renderer: render}}
}

// Render yields the drawing operation for the cell.
func (c *Text) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	if !c.placed {
		panic("box is not placed")
	}
	done := false
	return func(yield func(DrawOp, error) bool) {
		if done {
			return
		}
		done = true
		if c.renderer == nil {
			return
		}
		op := DrawOp{Kind: OpRender, Renderer: c.renderer, Bounds: c.bounds()}
		yield(op, c.renderer.Render(op.Bounds, m))
	}
}

// Stacking selects how the two parts of a [Fraction] are arranged.
type Stacking int

const (
	// StackingOver places the numerator above the denominator, with no
	// dividing line.
	StackingOver Stacking = iota

	// StackingLine places the numerator above the denominator,
	// separated by a horizontal line.
	StackingLine

	// StackingSlanted places the numerator to the upper left of the
	// denominator, separated by a slanted line.
	StackingSlanted
)

// fractionHeightScale reserves extra vertical space around the two
// parts of a fraction.
const fractionHeightScale = 1.2

// Fraction is a content cell showing two cells stacked on top of each
// other, like the numerator and denominator of a fraction.
type Fraction struct {
	contentCell
	top      *Text
	bottom   *Text
	stacking Stacking
}

// NewFraction combines two content cells into a stacked cell.  The
// render argument draws the dividing line and may be nil.
func NewFraction(top, bottom *Text, stacking Stacking, render ContentRenderer) *Fraction {
	width := max(top.TotalWidth(), bottom.TotalWidth())
	if stacking == StackingSlanted {
		width = top.TotalWidth() + bottom.TotalWidth()
	}
	height := fractionHeightScale * (top.TotalHeight() + bottom.TotalHeight())
	return &Fraction{
		contentCell: contentCell{width: width, height: height, renderer: render},
		top:         top,
		bottom:      bottom,
		stacking:    stacking,
	}
}

// Place pins the cell and both of its parts.
func (c *Fraction) Place(x, y float64) {
	c.contentCell.Place(x, y)
	if c.stacking == StackingSlanted {
		c.top.Place(x, y)
		c.bottom.Place(
			x+c.width-c.bottom.TotalWidth(),
			y-c.height+c.bottom.TotalHeight())
	} else {
		center := x + c.width/2
		c.top.Place(center-c.top.TotalWidth()/2, y)
		c.bottom.Place(
			center-c.bottom.TotalWidth()/2,
			y-c.height+c.bottom.TotalHeight())
	}
}

// Render yields the drawing operations for the two parts of the cell,
// followed by the dividing line.
func (c *Fraction) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	if !c.placed {
		panic("box is not placed")
	}
	done := false
	return func(yield func(DrawOp, error) bool) {
		if done {
			return
		}
		done = true
		for op, err := range c.top.Render(m) {
			if !yield(op, err) || err != nil {
				return
			}
		}
		for op, err := range c.bottom.Render(m) {
			if !yield(op, err) || err != nil {
				return
			}
		}
		if c.stacking == StackingOver || c.renderer == nil {
			return
		}
		op := DrawOp{Kind: OpLine, Renderer: c.renderer}
		if c.stacking == StackingLine {
			y := c.y - c.height/2
			op.P1 = vec.Vec2{X: c.x, Y: y}
			op.P2 = vec.Vec2{X: c.x + c.width, Y: y}
		} else {
			delta := min(c.width, c.height) / 2
			cx := c.x + c.width/2
			cy := c.y - c.height/2
			op.P1 = vec.Vec2{X: cx - delta, Y: cy - delta}
			op.P2 = vec.Vec2{X: cx + delta, Y: cy + delta}
		}
		yield(op, c.renderer.Line(op.P1, op.P2, m))
	}
}

var (
	_ Box       = (*Space)(nil)
	_ Box       = (*NonBreakingSpace)(nil)
	_ Box       = (*Tab)(nil)
	_ Box       = (*SoftHyphen)(nil)
	_ Box       = (*Leading)(nil)
	_ RenderBox = (*Text)(nil)
	_ RenderBox = (*Fraction)(nil)
)
