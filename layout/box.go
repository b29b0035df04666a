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

// Box is implemented by everything which takes part in layout.
// A box knows its size, but not necessarily its position.
type Box interface {
	// TotalWidth returns the width of the box, including margins.
	TotalWidth() float64

	// TotalHeight returns the height of the box, including margins.
	TotalHeight() float64
}

// RenderBox is a box which can be pinned to a position and drawn.
type RenderBox interface {
	Box

	// Place pins the box so that (x, y) is the top/left corner,
	// including margins.  The y axis points up.  Placing a container
	// also places its content.  A box can be placed more than once.
	Place(x, y float64)

	// FinalLocation returns the top/left corner assigned by Place.
	// The method panics if the box has not been placed.
	FinalLocation() vec.Vec2

	// Render draws the box using the renderers attached to it.  The
	// matrix m maps layout coordinates to output coordinates.
	//
	// The returned sequence is finite and lazy: every step performs
	// one drawing call and reports the operation together with the
	// error returned by the renderer.  The sequence ends early after
	// the first error.  Each sequence can be consumed only once, but
	// Render can be called again for a fresh sequence.
	//
	// Render panics if the box has not been placed.
	Render(m matrix.Matrix) iter.Seq2[DrawOp, error]
}

// Paragraph is a render box which can flow its content across column
// boundaries.  [FlowText] and [BulletList] implement this interface.
type Paragraph interface {
	RenderBox

	// DistributeContent breaks the pending content of the paragraph
	// into lines, using at most maxHeight units of vertical space
	// (including the margins of the paragraph).  Content which does
	// not fit is returned as a new paragraph with the same settings;
	// the result is nil if everything fits.  Use math.Inf(1) for
	// unrestricted height.
	DistributeContent(maxHeight float64) Paragraph

	// empty reports whether no content has been distributed into the
	// paragraph, yet.
	empty() bool
}

// ContentRenderer connects the layout engine to a drawing backend.
// The engine computes sizes and positions only; all output goes
// through this interface.
type ContentRenderer interface {
	// Render draws the content of a cell, or the background of a
	// container, into the given rectangle.  The matrix m maps layout
	// coordinates to output coordinates.
	Render(bounds rect.Rect, m matrix.Matrix) error

	// Line draws a straight line from p1 to p2.  This is used for the
	// dividing line of fractions.
	Line(p1, p2 vec.Vec2, m matrix.Matrix) error
}

// OpKind distinguishes the drawing calls reported by Render.
type OpKind int

const (
	// OpRender reports a call to [ContentRenderer.Render].
	OpRender OpKind = iota

	// OpLine reports a call to [ContentRenderer.Line].
	OpLine
)

// DrawOp describes one drawing call, performed while a render sequence
// is being consumed.
type DrawOp struct {
	Kind     OpKind
	Renderer ContentRenderer

	// Bounds is the target rectangle of an OpRender call.
	Bounds rect.Rect

	// P1 and P2 are the end points of an OpLine call.
	P1, P2 vec.Vec2
}
