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

package canvasrenderer

import (
	"bytes"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf/layout"
	"seehuhn.de/go/dxf/mtext"
)

func TestToView(t *testing.T) {
	m := matrix.Matrix{1, 2, 3, 4, 5, 6}
	want := canvas.Matrix{{1, 3, 5}, {2, 4, 6}}
	if got := toView(m); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFrameRender(t *testing.T) {
	c := canvas.New(100, 100)
	ctx := canvas.NewContext(c)
	f := &Frame{Context: ctx}

	bounds := rect.Rect{LLx: 10, LLy: 20, URx: 60, URy: 45}
	if err := f.Render(bounds, matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if err := f.Line(vec.Vec2{X: 10, Y: 20}, vec.Vec2{X: 60, Y: 45}, matrix.Identity); err != nil {
		t.Fatal(err)
	}
}

// TestRenderPDF runs the full pipeline: MTEXT content is parsed,
// converted to cells, distributed into a column, rendered onto a
// canvas and exported as PDF.
func TestRenderPDF(t *testing.T) {
	family, err := LatinModern()
	if err != nil {
		t.Fatal(err)
	}
	c := canvas.New(210, 297)
	ctx := canvas.NewContext(c)
	factory := NewFactory(ctx, family, 5)

	const content = `{\LStacked\l} fractions like \S1/2; and \Sa#b; ` +
		`work, as do {\H1.4x;\C1;large red} words.\P` +
		`\pxqj;The second paragraph is justified, so its glue ` +
		`stretches to fill the column width on every full line.`
	tokens, err := mtext.Parse(content)
	if err != nil {
		t.Fatal(err)
	}
	paras, err := mtext.FlowParagraphs(tokens, 100, 5, factory)
	if err != nil {
		t.Fatal(err)
	}
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}

	col := layout.NewColumn(100, 0, 0, layout.Margins{}, &Frame{Context: ctx})
	if rem := col.AppendParagraphs(paras); rem != nil {
		t.Fatal("content did not fit into a flexible column")
	}
	col.Place(20, 280)
	numOps := 0
	for op, err := range col.Render(matrix.Identity) {
		if err != nil {
			t.Fatal(err)
		}
		_ = op
		numOps++
	}
	if numOps < 10 {
		t.Errorf("implausibly few drawing operations: %d", numOps)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, 210, 297, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("no PDF output")
	}
}
