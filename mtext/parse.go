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
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	mtextLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Stack", Pattern: `\\S[^;]*;`},
		{Name: "Props", Pattern: `\\p[^;]*;`},
		{Name: "Font", Pattern: `\\[fF][^;]*;`},
		{Name: "Height", Pattern: `\\H[0-9.]+x?;`},
		{Name: "Width", Pattern: `\\W[0-9.]+x?;`},
		{Name: "Tracking", Pattern: `\\T[0-9.]+x?;`},
		{Name: "Oblique", Pattern: `\\Q[+-]?[0-9.]+;`},
		{Name: "CIdx", Pattern: `\\C[0-9]+;`},
		{Name: "CRgb", Pattern: `\\c[0-9]+;`},
		{Name: "VAlign", Pattern: `\\A[0-9];`},
		{Name: "Toggle", Pattern: `\\[LlOoKk]`},
		{Name: "NewPara", Pattern: `\\P`},
		{Name: "NewColumn", Pattern: `\\N`},
		{Name: "DimWrap", Pattern: `\\X`},
		{Name: "NBSP", Pattern: `\\~`},
		{Name: "Unicode", Pattern: `\\U\+[0-9A-Fa-f]{4}`},
		{Name: "Escape", Pattern: `\\[\\{}]`},
		{Name: "Unknown", Pattern: `\\[A-Za-z]`},
		{Name: "Open", Pattern: `\{`},
		{Name: "Close", Pattern: `\}`},
		{Name: "Caret", Pattern: `\^[IJM ]?`},
		{Name: "Space", Pattern: ` +`},
		{Name: "Word", Pattern: `[^\\{}^ ]+`},
	})

	mtextParser = participle.MustBuild[document](
		participle.Lexer(mtextLexer),
	)
)

type document struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Stack     *string `parser:"  @Stack"`
	Props     *string `parser:"| @Props"`
	Font      *string `parser:"| @Font"`
	Height    *string `parser:"| @Height"`
	Width     *string `parser:"| @Width"`
	Tracking  *string `parser:"| @Tracking"`
	Oblique   *string `parser:"| @Oblique"`
	ColorIdx  *string `parser:"| @CIdx"`
	ColorRGB  *string `parser:"| @CRgb"`
	VAlign    *string `parser:"| @VAlign"`
	Toggle    *string `parser:"| @Toggle"`
	NewPara   bool    `parser:"| @NewPara"`
	NewColumn bool    `parser:"| @NewColumn"`
	DimWrap   bool    `parser:"| @DimWrap"`
	NBSP      bool    `parser:"| @NBSP"`
	Unicode   *string `parser:"| @Unicode"`
	Escape    *string `parser:"| @Escape"`
	Unknown   *string `parser:"| @Unknown"`
	Caret     *string `parser:"| @Caret"`
	Space     *string `parser:"| @Space"`
	Word      *string `parser:"| @Word"`
	Group     *group  `parser:"| @@"`
}

type group struct {
	Items []*item `parser:"Open @@* Close"`
}

// Parse splits MTEXT content into tokens.  The formatting codes are
// resolved into the Props field of the returned tokens; codes which
// select unsupported features are dropped.
func Parse(text string) ([]Token, error) {
	doc, err := mtextParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	w := &walker{props: DefaultProperties()}
	w.walk(doc.Items)
	w.flushWord()
	return w.tokens, nil
}

// A walker converts the parse tree into a flat list of tokens.
// Braces save and restore the current properties, and adjacent text
// fragments are merged into words.
type walker struct {
	tokens []Token
	word   strings.Builder
	props  Properties
	stack  []Properties
}

func (w *walker) walk(items []*item) {
	for _, it := range items {
		switch {
		case it.Word != nil:
			w.word.WriteString(*it.Word)
		case it.Escape != nil:
			w.word.WriteByte((*it.Escape)[1])
		case it.Unicode != nil:
			v, err := strconv.ParseUint((*it.Unicode)[3:], 16, 32)
			if err == nil {
				w.word.WriteRune(rune(v))
			}
		case it.Caret != nil:
			w.caret(*it.Caret)
		case it.Space != nil:
			w.flushWord()
			for range len(*it.Space) {
				w.emit(TokenSpace)
			}
		case it.NBSP:
			w.flushWord()
			w.emit(TokenNonBreakingSpace)
		case it.NewPara:
			w.flushWord()
			w.emit(TokenNewParagraph)
		case it.NewColumn:
			w.flushWord()
			w.emit(TokenNewColumn)
		case it.DimWrap:
			w.flushWord()
			w.emit(TokenWrap)
		case it.Stack != nil:
			w.flushWord()
			w.stacked(payload(*it.Stack))
		case it.Group != nil:
			w.flushWord()
			w.stack = append(w.stack, w.props)
			w.walk(it.Group.Items)
			w.flushWord()
			w.props = w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]
		case it.Toggle != nil:
			w.flushWord()
			w.toggle((*it.Toggle)[1])
		case it.Height != nil:
			w.flushWord()
			w.props.Height = scaled(w.props.Height, payload(*it.Height))
		case it.Width != nil:
			w.flushWord()
			w.props.WidthFactor = scaled(w.props.WidthFactor, payload(*it.Width))
		case it.Tracking != nil:
			w.flushWord()
			w.props.Tracking = scaled(w.props.Tracking, payload(*it.Tracking))
		case it.Oblique != nil:
			w.flushWord()
			if v, err := strconv.ParseFloat(payload(*it.Oblique), 64); err == nil {
				w.props.Oblique = v
			}
		case it.ColorIdx != nil:
			w.flushWord()
			if v, err := strconv.Atoi(payload(*it.ColorIdx)); err == nil && v <= 256 {
				w.props.ACI = v
				w.props.RGB.Clear()
			}
		case it.ColorRGB != nil:
			w.flushWord()
			if v, err := strconv.ParseUint(payload(*it.ColorRGB), 10, 32); err == nil {
				// the value is a COLORREF with the red channel in the
				// lowest byte
				r := v & 0xFF
				g := (v >> 8) & 0xFF
				b := (v >> 16) & 0xFF
				w.props.RGB.Set(int(r<<16 | g<<8 | b))
			}
		case it.VAlign != nil:
			w.flushWord()
			if d := (*it.VAlign)[2]; d <= '2' {
				w.props.VAlign = LineAlignment(d - '0')
			}
		case it.Font != nil:
			w.flushWord()
			w.font(payload(*it.Font))
		case it.Props != nil:
			w.flushWord()
			parseParagraphProps(payload(*it.Props), &w.props.Paragraph)
		case it.Unknown != nil:
			// unsupported codes are dropped
		}
	}
}

func (w *walker) flushWord() {
	if w.word.Len() == 0 {
		return
	}
	w.tokens = append(w.tokens, Token{
		Kind:  TokenWord,
		Text:  w.word.String(),
		Props: w.props,
	})
	w.word.Reset()
}

func (w *walker) emit(kind TokenKind) {
	w.tokens = append(w.tokens, Token{Kind: kind, Props: w.props})
}

// caret resolves the caret codes "^I" (tab), "^J" (paragraph break),
// "^M" (dropped) and "^ " (a literal caret).  A caret on its own is
// dropped.
func (w *walker) caret(s string) {
	if len(s) < 2 {
		return
	}
	switch s[1] {
	case 'I':
		w.flushWord()
		w.emit(TokenTab)
	case 'J':
		w.flushWord()
		w.emit(TokenNewParagraph)
	case ' ':
		w.word.WriteByte('^')
	}
}

func (w *walker) toggle(c byte) {
	switch c {
	case 'L':
		w.props.Underline = true
	case 'l':
		w.props.Underline = false
	case 'O':
		w.props.Overline = true
	case 'o':
		w.props.Overline = false
	case 'K':
		w.props.StrikeThrough = true
	case 'k':
		w.props.StrikeThrough = false
	}
}

// stacked emits a token for the payload of a "\S" code.  A payload
// without a divider is shown as plain text.
func (w *walker) stacked(s string) {
	st, ok := parseStacked(s)
	if !ok {
		w.word.WriteString(s)
		w.flushWord()
		return
	}
	w.tokens = append(w.tokens, Token{Kind: TokenStack, Stack: st, Props: w.props})
}

// parseStacked splits the payload of a "\S" code at the first divider
// character.  The divider '^' suppresses the dividing line, and a
// single space after '^' is not part of the lower text.
func parseStacked(s string) (StackedText, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '^', '/', '#':
			den := s[i+1:]
			if s[i] == '^' {
				den = strings.TrimPrefix(den, " ")
			}
			return StackedText{
				Numerator:   s[:i],
				Denominator: den,
				Divider:     s[i],
			}, true
		}
	}
	return StackedText{}, false
}

// font applies the payload of a "\f" or "\F" code.  The payload is a
// family name, followed by "|"-separated options of which only bold
// and italic are used.
func (w *walker) font(s string) {
	parts := strings.Split(s, "|")
	face := FontFace{Family: parts[0]}
	for _, part := range parts[1:] {
		if len(part) < 2 {
			continue
		}
		switch part[0] {
		case 'b':
			face.Bold = part[1] == '1'
		case 'i':
			face.Italic = part[1] == '1'
		}
	}
	w.props.Font = face
}

// parseParagraphProps applies the payload of a "\p" code.  The payload
// is a comma-separated list of codes: "i", "l" and "r" set the
// indentation, "q" the alignment, and "t" starts the list of tab
// stops, which extends to the end of the payload.  Malformed parts are
// dropped.
func parseParagraphProps(s string, p *ParagraphProperties) {
	s = strings.TrimPrefix(s, "x")
	inTabs := false
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		if inTabs {
			if stop, ok := parseTabStop(part); ok {
				p.TabStops = append(p.TabStops, stop)
				continue
			}
			inTabs = false
		}
		rest := part[1:]
		switch part[0] {
		case 'i':
			if v, err := strconv.ParseFloat(rest, 64); err == nil {
				p.Indent = v
			}
		case 'l':
			if v, err := strconv.ParseFloat(rest, 64); err == nil {
				p.Left = v
			}
		case 'r':
			if v, err := strconv.ParseFloat(rest, 64); err == nil {
				p.Right = v
			}
		case 'q':
			switch rest {
			case "l":
				p.Align = ParagraphLeft
			case "r":
				p.Align = ParagraphRight
			case "c":
				p.Align = ParagraphCenter
			case "j":
				p.Align = ParagraphJustified
			case "d":
				p.Align = ParagraphDistributed
			}
		case 't':
			p.TabStops = nil
			inTabs = true
			if rest != "" {
				if stop, ok := parseTabStop(rest); ok {
					p.TabStops = append(p.TabStops, stop)
				}
			}
		}
	}
}

func parseTabStop(s string) (TabStop, bool) {
	kind := byte('l')
	switch s[0] {
	case 'c', 'r':
		kind = s[0]
		s = s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return TabStop{}, false
	}
	return TabStop{Kind: kind, Pos: v}, true
}

// payload returns the argument of a formatting code, with the
// two-character introduction and the final semicolon removed.
func payload(s string) string {
	return s[2 : len(s)-1]
}

// scaled applies the payload of a "\H", "\W" or "\T" code: a plain
// number replaces the old value, a number with an "x" suffix
// multiplies it.
func scaled(old float64, s string) float64 {
	if f, ok := strings.CutSuffix(s, "x"); ok {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return old
		}
		return old * v
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return old
	}
	return v
}
