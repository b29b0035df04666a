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

package mtext

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func word(s string, p Properties) Token {
	return Token{Kind: TokenWord, Text: s, Props: p}
}

func mark(k TokenKind, p Properties) Token {
	return Token{Kind: k, Props: p}
}

func TestParse(t *testing.T) {
	base := DefaultProperties()
	h2 := base
	h2.Height = 2
	h3 := base
	h3.Height = 3
	underline := base
	underline.Underline = true

	testCases := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"hello", []Token{word("hello", base)}},
		{
			"hello world",
			[]Token{word("hello", base), mark(TokenSpace, base), word("world", base)},
		},
		{
			"a  b",
			[]Token{
				word("a", base),
				mark(TokenSpace, base),
				mark(TokenSpace, base),
				word("b", base),
			},
		},
		{
			`a\Pb`,
			[]Token{word("a", base), mark(TokenNewParagraph, base), word("b", base)},
		},
		{`\N`, []Token{mark(TokenNewColumn, base)}},
		{`\X`, []Token{mark(TokenWrap, base)}},
		{`\~`, []Token{mark(TokenNonBreakingSpace, base)}},

		// height codes are relative with an "x" suffix, absolute
		// without
		{`\H2x;big`, []Token{word("big", h2)}},
		{`a\H2x;b\H3;c`, []Token{word("a", base), word("b", h2), word("c", h3)}},

		// braces save and restore the properties
		{`a{\H2x;b}c`, []Token{word("a", base), word("b", h2), word("c", base)}},
		{`{{\H2x;{a}}b}`, []Token{word("a", h2), word("b", base)}},

		{`\LX`, []Token{word("X", underline)}},
		{`\L\lX`, []Token{word("X", base)}},

		// escapes and unicode merge into the surrounding word
		{`\\\{\}`, []Token{word(`\{}`, base)}},
		{`x\U+0042y`, []Token{word("xBy", base)}},
		{`\U+0041`, []Token{word("A", base)}},

		// caret codes
		{`a^Ib`, []Token{word("a", base), mark(TokenTab, base), word("b", base)}},
		{`a^Jb`, []Token{word("a", base), mark(TokenNewParagraph, base), word("b", base)}},
		{`a^Mb`, []Token{word("ab", base)}},
		{`x^ y`, []Token{word("x^y", base)}},
		{`a^`, []Token{word("a", base)}},

		// unknown codes are dropped
		{`a\zb`, []Token{word("ab", base)}},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseColors(t *testing.T) {
	// color 255 is a COLORREF value with the red channel in the
	// lowest byte
	tokens, err := Parse(`\C3;a\c255;b\C1;c`)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}

	a := tokens[0].Props
	if a.ACI != 3 {
		t.Errorf("got ACI %d, want 3", a.ACI)
	}
	if _, ok := a.RGB.Get(); ok {
		t.Error("RGB should not be set")
	}

	b := tokens[1].Props
	if v, ok := b.RGB.Get(); !ok || v != 0xFF0000 {
		t.Errorf("got RGB %x, %t, want FF0000", v, ok)
	}
	if b.ACI != 3 {
		t.Errorf("got ACI %d, want 3", b.ACI)
	}

	// a color index clears the true color
	c := tokens[2].Props
	if _, ok := c.RGB.Get(); ok {
		t.Error("RGB should be cleared by a color index")
	}
	if c.ACI != 1 {
		t.Errorf("got ACI %d, want 1", c.ACI)
	}
}

func TestParseFont(t *testing.T) {
	tokens, err := Parse(`\fArial|b1|i0;a\FSimplex;b`)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	want := FontFace{Family: "Arial", Bold: true}
	if d := cmp.Diff(want, tokens[0].Props.Font); d != "" {
		t.Errorf("font mismatch (-want +got):\n%s", d)
	}
	want = FontFace{Family: "Simplex"}
	if d := cmp.Diff(want, tokens[1].Props.Font); d != "" {
		t.Errorf("font mismatch (-want +got):\n%s", d)
	}
}

func TestParseStacked(t *testing.T) {
	testCases := []struct {
		in   string
		want StackedText
	}{
		{`\S1^2;`, StackedText{Numerator: "1", Denominator: "2", Divider: '^'}},
		{`\S1/2;`, StackedText{Numerator: "1", Denominator: "2", Divider: '/'}},
		{`\S1#2;`, StackedText{Numerator: "1", Denominator: "2", Divider: '#'}},

		// a space after '^' is not part of the lower text
		{`\S+0.5^ -0.3;`, StackedText{Numerator: "+0.5", Denominator: "-0.3", Divider: '^'}},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tokens, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if len(tokens) != 1 || tokens[0].Kind != TokenStack {
				t.Fatalf("got %v, want one stack token", tokens)
			}
			if d := cmp.Diff(tc.want, tokens[0].Stack); d != "" {
				t.Errorf("stack mismatch (-want +got):\n%s", d)
			}
		})
	}

	// without a divider the text is shown as a plain word
	tokens, err := Parse(`\Sabc;`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{word("abc", DefaultProperties())}
	if d := cmp.Diff(want, tokens); d != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", d)
	}
}

func TestParseParagraphProps(t *testing.T) {
	tokens, err := Parse(`\pxi2,l3,r1,qc,t4,c8,r12;x`)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	want := ParagraphProperties{
		Indent: 2,
		Left:   3,
		Right:  1,
		Align:  ParagraphCenter,
		TabStops: []TabStop{
			{Kind: 'l', Pos: 4},
			{Kind: 'c', Pos: 8},
			{Kind: 'r', Pos: 12},
		},
	}
	if d := cmp.Diff(want, tokens[0].Props.Paragraph); d != "" {
		t.Errorf("paragraph mismatch (-want +got):\n%s", d)
	}
}

func TestParseAlignments(t *testing.T) {
	testCases := []struct {
		in   string
		want ParagraphAlignment
	}{
		{`\pxql;x`, ParagraphLeft},
		{`\pxqr;x`, ParagraphRight},
		{`\pxqc;x`, ParagraphCenter},
		{`\pxqj;x`, ParagraphJustified},
		{`\pxqd;x`, ParagraphDistributed},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tokens, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := tokens[0].Props.Paragraph.Align; got != tc.want {
				t.Errorf("got alignment %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseVAlign(t *testing.T) {
	tokens, err := Parse(`\A1;a\A7;b`)
	if err != nil {
		t.Fatal(err)
	}
	if got := tokens[0].Props.VAlign; got != LineAlignCenter {
		t.Errorf("got alignment %d, want %d", got, LineAlignCenter)
	}
	// values outside the valid range are dropped
	if got := tokens[1].Props.VAlign; got != LineAlignCenter {
		t.Errorf("got alignment %d, want %d", got, LineAlignCenter)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []string{
		`\1`,
		`a\`,
		`}`,
		`{a`,
	}
	for i, in := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Errorf("Parse(%q): expected error", in)
			}
		})
	}
}

func FuzzParse(f *testing.F) {
	f.Add("hello world")
	f.Add(`\H2x;big \S1/2; {\C1;red} a\Pb`)
	f.Add(`\pxi2,l3,qc,t4,c8;x`)
	f.Add(`\fArial|b1|i1;x \U+0041 ^I^J\~`)
	f.Add(`\S+0.5^ -0.3;\W0.8;\T2x;\Q15;\A2;\c65280;`)
	f.Fuzz(func(t *testing.T, text string) {
		tokens, err := Parse(text)
		if err != nil {
			return
		}
		for _, tok := range tokens {
			if tok.Kind < TokenWord || tok.Kind > TokenStack {
				t.Errorf("invalid token kind %d", tok.Kind)
			}
			if tok.Kind == TokenWord && tok.Text == "" {
				t.Error("empty word token")
			}
			if tok.Kind != TokenWord && tok.Text != "" {
				t.Errorf("text %q on a token of kind %d", tok.Text, tok.Kind)
			}
		}
	})
}
