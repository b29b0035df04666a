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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// recorder is a ContentRenderer which records all drawing calls, for
// use in tests.
type recorder struct {
	calls []DrawOp
	err   error // returned from all drawing calls
}

func (r *recorder) Render(bounds rect.Rect, m matrix.Matrix) error {
	r.calls = append(r.calls, DrawOp{Kind: OpRender, Renderer: r, Bounds: bounds})
	return r.err
}

func (r *recorder) Line(p1, p2 vec.Vec2, m matrix.Matrix) error {
	r.calls = append(r.calls, DrawOp{Kind: OpLine, Renderer: r, P1: p1, P2: p2})
	return r.err
}

// drawOpDiff compares two lists of drawing operations.  Renderers are
// compared by identity, coordinates approximately.
func drawOpDiff(want, got []DrawOp) string {
	opts := cmp.Options{
		cmpopts.EquateApprox(0, 1e-9),
		cmp.Comparer(func(a, b ContentRenderer) bool { return a == b }),
	}
	return cmp.Diff(want, got, opts)
}

// collectOps consumes a render sequence, failing the test on draw
// errors.
func collectOps(t *testing.T, box RenderBox, m matrix.Matrix) []DrawOp {
	t.Helper()
	var ops []DrawOp
	for op, err := range box.Render(m) {
		if err != nil {
			t.Fatal(err)
		}
		ops = append(ops, op)
	}
	return ops
}

func TestRenderOrder(t *testing.T) {
	lineBG := &recorder{}
	cellRec := &recorder{}

	line := NewLine(100, AlignmentLeft, Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}, lineBG)
	line.Append(NewText(10, 5, cellRec))
	line.Append(NewSpace(4, 2))
	line.Append(NewText(20, 8, cellRec))
	line.Place(0, 0)

	ops := collectOps(t, line, matrix.Identity)
	want := []DrawOp{
		{
			Kind:     OpRender,
			Renderer: lineBG,
			// the background covers the margins, too
			Bounds: rect.Rect{LLx: 0, LLy: -12, URx: 106, URy: 0},
		},
		{
			Kind:     OpRender,
			Renderer: cellRec,
			Bounds:   rect.Rect{LLx: 4, LLy: -9, URx: 14, URy: -4},
		},
		{
			Kind:     OpRender,
			Renderer: cellRec,
			Bounds:   rect.Rect{LLx: 18, LLy: -9, URx: 38, URy: -1},
		},
	}
	if d := drawOpDiff(want, ops); d != "" {
		t.Errorf("wrong draw ops (-want +got):\n%s", d)
	}
}

func TestRenderOnce(t *testing.T) {
	rec := &recorder{}
	line := NewLine(100, AlignmentLeft, Margins{}, rec)
	line.Append(NewText(10, 5, rec))
	line.Place(0, 0)

	seq := line.Render(matrix.Identity)
	n1 := 0
	for range seq {
		n1++
	}
	if n1 != 2 {
		t.Fatalf("got %d ops, want 2", n1)
	}
	n2 := 0
	for range seq {
		n2++
	}
	if n2 != 0 {
		t.Errorf("sequence restarted, got %d extra ops", n2)
	}

	// a new call to Render starts over
	n3 := 0
	for range line.Render(matrix.Identity) {
		n3++
	}
	if n3 != 2 {
		t.Errorf("got %d ops from the second sequence, want 2", n3)
	}
}

func TestRenderStopsOnError(t *testing.T) {
	testErr := errors.New("test error")
	bad := &recorder{err: testErr}
	good := &recorder{}

	line := NewLine(100, AlignmentLeft, Margins{}, nil)
	line.Append(NewText(10, 5, good))
	line.Append(NewSpace(4, 2))
	line.Append(NewText(10, 5, bad))
	line.Append(NewSpace(4, 2))
	line.Append(NewText(10, 5, good))
	line.Place(0, 0)

	var ops []DrawOp
	var lastErr error
	for op, err := range line.Render(matrix.Identity) {
		ops = append(ops, op)
		lastErr = err
	}
	if len(ops) != 2 {
		t.Errorf("got %d ops, want 2", len(ops))
	}
	if !errors.Is(lastErr, testErr) {
		t.Errorf("got error %v, want %v", lastErr, testErr)
	}
	if len(good.calls) != 1 {
		t.Errorf("the third cell was drawn after the error")
	}
}

func TestRenderNotPlaced(t *testing.T) {
	line := NewLine(100, AlignmentLeft, Margins{}, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for the unplaced line")
		}
	}()
	line.Render(matrix.Identity)
}

func TestRenderReplacesContent(t *testing.T) {
	rec := &recorder{}
	line := NewLine(100, AlignmentLeft, Margins{}, nil)
	cell := NewText(10, 5, rec)
	line.Append(cell)
	line.Place(0, 0)

	// move the line: rendering must draw at the new position
	line.anchor(50, -20)
	ops := collectOps(t, line, matrix.Identity)
	want := []DrawOp{
		{
			Kind:     OpRender,
			Renderer: rec,
			Bounds:   rect.Rect{LLx: 50, LLy: -25, URx: 60, URy: -20},
		},
	}
	if d := drawOpDiff(want, ops); d != "" {
		t.Errorf("wrong draw ops (-want +got):\n%s", d)
	}
}
