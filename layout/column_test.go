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
	"testing"
)

// makeParagraph returns an undistributed paragraph with the given
// number of words.  With a paragraph width of 100 and words 30 units
// wide, three words of height 10 go on each line.
func makeParagraph(t *testing.T, words int) *FlowText {
	t.Helper()
	p, err := NewFlowText(100, nil)
	if err != nil {
		t.Fatal(err)
	}
	appendWords(t, p, words, 30)
	return p
}

func TestColumnFlexible(t *testing.T) {
	col := NewColumn(100, 0, 0, Margins{}, nil)
	if !col.HasFlexibleHeight() {
		t.Fatal("column must have flexible height")
	}

	p := makeParagraph(t, 9)
	rest := col.AppendParagraphs([]Paragraph{p})
	if len(rest) != 0 {
		t.Fatal("flexible columns must accept all content")
	}
	if h := col.ContentHeight(); h != 30 {
		t.Errorf("got height %g, want 30", h)
	}
	if !col.HasFreeSpace() {
		t.Error("flexible columns always have free space")
	}
}

func TestColumnFixed(t *testing.T) {
	// two lines of height 10 fit exactly
	col := NewColumn(100, 20, 0, Margins{}, nil)

	p := makeParagraph(t, 9) // three lines
	rest := col.AppendParagraphs([]Paragraph{p})
	if len(rest) != 1 {
		t.Fatalf("got %d left over paragraphs, want 1", len(rest))
	}
	if len(p.lines) != 2 {
		t.Errorf("got %d lines in the column, want 2", len(p.lines))
	}
	if col.HasFreeSpace() {
		t.Error("the full column claims to have free space")
	}
	if h := col.ContentHeight(); h != 20 {
		t.Errorf("got height %g, want 20", h)
	}

	// the rest fills a second column
	col2 := col.CloneEmpty()
	if rest = col2.AppendParagraphs(rest); len(rest) != 0 {
		t.Fatalf("got %d left over paragraphs, want 0", len(rest))
	}
	r := col2.paragraphs[0].(*FlowText)
	if len(r.lines) != 1 {
		t.Errorf("got %d lines in the second column, want 1", len(r.lines))
	}
}

func TestColumnExactFit(t *testing.T) {
	col := NewColumn(100, 30, 0, Margins{}, nil)
	p := makeParagraph(t, 9) // exactly three lines of height 10
	rest := col.AppendParagraphs([]Paragraph{p})
	if len(rest) != 0 {
		t.Error("exactly fitting content was rejected")
	}
	if col.HasFreeSpace() {
		t.Error("the full column claims to have free space")
	}
}

func TestColumnTooSmall(t *testing.T) {
	// too low for even a single line
	col := NewColumn(100, 5, 0, Margins{}, nil)
	p := makeParagraph(t, 3)
	rest := col.AppendParagraphs([]Paragraph{p})
	if len(rest) != 1 {
		t.Fatalf("got %d left over paragraphs, want 1", len(rest))
	}
	if len(col.paragraphs) != 0 {
		t.Error("an empty paragraph was kept in the column")
	}
}

func TestColumnMultipleParagraphs(t *testing.T) {
	col := NewColumn(100, 25, 0, Margins{}, nil)
	p1 := makeParagraph(t, 3) // one line
	p2 := makeParagraph(t, 9) // three lines
	rest := col.AppendParagraphs([]Paragraph{p1, p2})

	// p1 and one line of p2 fit
	if len(rest) != 1 {
		t.Fatalf("got %d left over paragraphs, want 1", len(rest))
	}
	if len(col.paragraphs) != 2 {
		t.Fatalf("got %d paragraphs in the column, want 2", len(col.paragraphs))
	}
	if len(p2.lines) != 1 {
		t.Errorf("got %d lines of the second paragraph, want 1", len(p2.lines))
	}
}

func TestColumnCloneEmpty(t *testing.T) {
	rec := &recorder{}
	margins := Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}
	col := NewColumn(100, 50, 10, margins, rec)
	col.AppendParagraphs([]Paragraph{makeParagraph(t, 3)})

	clone := col.CloneEmpty()
	if clone.ContentWidth() != 100 {
		t.Errorf("got width %g, want 100", clone.ContentWidth())
	}
	if clone.maxHeight != 50 {
		t.Errorf("got height %g, want 50", clone.maxHeight)
	}
	if clone.Gutter() != 10 {
		t.Errorf("got gutter %g, want 10", clone.Gutter())
	}
	if clone.margins != margins {
		t.Errorf("got margins %v, want %v", clone.margins, margins)
	}
	if clone.render != ContentRenderer(rec) {
		t.Error("the renderer was not copied")
	}
	if len(clone.paragraphs) != 0 {
		t.Error("the clone is not empty")
	}

	// a clone of a flexible column is flexible, too
	flex := NewColumn(100, 0, 0, Margins{}, nil)
	if !flex.CloneEmpty().HasFlexibleHeight() {
		t.Error("the clone of a flexible column is not flexible")
	}
}

func TestColumnPlace(t *testing.T) {
	margins := Margins{Top: 2, Right: 0, Bottom: 0, Left: 3}
	col := NewColumn(100, 0, 0, margins, nil)
	p1 := makeParagraph(t, 3)
	p2 := makeParagraph(t, 3)
	col.AppendParagraphs([]Paragraph{p1, p2})

	col.Place(10, 0)
	if loc := p1.FinalLocation(); loc.X != 13 || loc.Y != -2 {
		t.Errorf("got first paragraph at (%g, %g), want (13, -2)", loc.X, loc.Y)
	}
	if loc := p2.FinalLocation(); loc.X != 13 || loc.Y != -12 {
		t.Errorf("got second paragraph at (%g, %g), want (13, -12)", loc.X, loc.Y)
	}
}
