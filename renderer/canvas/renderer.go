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

// Package canvasrenderer draws layout boxes using the
// github.com/tdewolff/canvas graphics library.
//
// The renderers in this package implement [layout.ContentRenderer].
// They draw onto a canvas context, which uses the same y-up
// coordinates as the layout package, and can be exported to PDF, SVG
// and raster images by the canvas library.  The [Factory] creates
// measured layout cells for MTEXT content.
package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf/layout"
)

// defaultLineWidth is the stroke width used when no width is given.
const defaultLineWidth = 0.2

// Text draws a string into the bounds of a content cell.  Cells are
// sized so that their height is the cap height of the text, and the
// bottom edge of the cell is the baseline.  Descenders extend below
// the cell.
type Text struct {
	Context *canvas.Context
	Face    *canvas.FontFace
	Content string

	// XScale stretches the text horizontally, keeping the left edge
	// of the cell fixed.  Values of zero and one leave the text
	// unchanged.
	XScale float64
}

// Render draws the text with its baseline at the bottom edge of
// bounds.
func (t *Text) Render(bounds rect.Rect, m matrix.Matrix) error {
	view := toView(m)
	if t.XScale != 0 && t.XScale != 1 {
		stretch := canvas.Identity.
			Translate(bounds.LLx, 0).
			Scale(t.XScale, 1).
			Translate(-bounds.LLx, 0)
		view = view.Mul(stretch)
	}
	ctx := t.Context
	ctx.SetView(view)
	defer ctx.ResetView()

	line := canvas.NewTextLine(t.Face, t.Content, canvas.Left)
	ctx.DrawText(bounds.LLx, bounds.LLy, line)
	return nil
}

// Line draws a straight line between the two points.
func (t *Text) Line(p1, p2 vec.Vec2, m matrix.Matrix) error {
	return strokeLine(t.Context, p1, p2, m, color.Black, defaultLineWidth)
}

// Frame strokes the outline of the box it is attached to.  It can be
// used to show the area of containers, and as the divider renderer of
// fractions.
type Frame struct {
	Context *canvas.Context

	// Color is the stroke color.  If Color is nil, black is used.
	Color color.Color

	// LineWidth is the stroke width.  Values up to zero select a
	// default width.
	LineWidth float64
}

// Render strokes the rectangle bounds.
func (f *Frame) Render(bounds rect.Rect, m matrix.Matrix) error {
	ctx := f.Context
	ctx.SetView(toView(m))
	defer ctx.ResetView()

	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(f.strokeColor())
	ctx.SetStrokeWidth(f.strokeWidth())
	w := bounds.URx - bounds.LLx
	h := bounds.URy - bounds.LLy
	ctx.DrawPath(bounds.LLx, bounds.LLy, canvas.Rectangle(w, h))
	return nil
}

// Line draws a straight line between the two points.
func (f *Frame) Line(p1, p2 vec.Vec2, m matrix.Matrix) error {
	return strokeLine(f.Context, p1, p2, m, f.strokeColor(), f.strokeWidth())
}

func (f *Frame) strokeColor() color.Color {
	if f.Color != nil {
		return f.Color
	}
	return color.Black
}

func (f *Frame) strokeWidth() float64 {
	if f.LineWidth > 0 {
		return f.LineWidth
	}
	return defaultLineWidth
}

func strokeLine(ctx *canvas.Context, p1, p2 vec.Vec2, m matrix.Matrix, col color.Color, width float64) error {
	ctx.SetView(toView(m))
	defer ctx.ResetView()

	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(col)
	ctx.SetStrokeWidth(width)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(p2.X-p1.X, p2.Y-p1.Y)
	ctx.DrawPath(p1.X, p1.Y, p)
	return nil
}

// toView converts a transformation matrix to the canvas convention.
func toView(m matrix.Matrix) canvas.Matrix {
	return canvas.Matrix{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
	}
}

var (
	_ layout.ContentRenderer = (*Text)(nil)
	_ layout.ContentRenderer = (*Frame)(nil)
)
