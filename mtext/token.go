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

import "seehuhn.de/go/dxf/optional"

// TokenKind describes the type of a [Token].
type TokenKind int

const (
	// TokenWord is a run of text without spaces, shown with a single
	// set of properties.
	TokenWord TokenKind = iota

	// TokenSpace is a single breakable space.
	TokenSpace

	// TokenNonBreakingSpace is a space from the "\~" code.
	TokenNonBreakingSpace

	// TokenTab is a tab from the caret code "^I".
	TokenTab

	// TokenNewParagraph is a paragraph break from the "\P" code.
	TokenNewParagraph

	// TokenNewColumn is a column break from the "\N" code.
	TokenNewColumn

	// TokenWrap is a wrapping point in dimension text, from the "\X"
	// code.
	TokenWrap

	// TokenStack is a stacked text from a "\S" code.
	TokenStack
)

// Token is one unit of MTEXT content.
type Token struct {
	Kind TokenKind

	// Text is the text of a TokenWord.
	Text string

	// Stack holds the two parts of a TokenStack.
	Stack StackedText

	// Props are the character properties in effect for this token.
	Props Properties
}

// StackedText holds the parts of a "\S" code.  The divider is '^' for
// parts stacked without a line, '/' for a horizontal line, and '#' for
// a slanted line.
type StackedText struct {
	Numerator   string
	Denominator string
	Divider     byte
}

// FontFace describes the font requested for a run of text.
type FontFace struct {
	Family string
	Bold   bool
	Italic bool
}

// LineAlignment selects how a run of text is aligned vertically
// relative to the other text on the same line.
type LineAlignment int

const (
	LineAlignBottom LineAlignment = iota
	LineAlignCenter
	LineAlignTop
)

// Properties describes the character formatting in effect for a token.
type Properties struct {
	Underline     bool
	Overline      bool
	StrikeThrough bool

	// Height is the text height.  The parser starts with height 1, so
	// heights are relative to the initial height of the entity unless
	// an absolute "\H" code was used.
	Height float64

	// WidthFactor stretches glyphs horizontally.
	WidthFactor float64

	// Tracking scales the spacing between characters.
	Tracking float64

	// Oblique is the slant angle of the glyphs, in degrees.
	Oblique float64

	Font FontFace

	// ACI is the AutoCAD color index, between 1 and 255.  The special
	// values 0 and 256 select the block and the layer color.
	ACI int

	// RGB is the true color as 0xRRGGBB, if one was set.  A true
	// color takes precedence over the ACI value.
	RGB optional.Int

	// VAlign aligns this run of text within its line.
	VAlign LineAlignment

	// Paragraph holds the paragraph properties in effect.
	Paragraph ParagraphProperties
}

// ParagraphAlignment selects the horizontal alignment of a paragraph.
type ParagraphAlignment int

const (
	ParagraphDefault ParagraphAlignment = iota
	ParagraphLeft
	ParagraphRight
	ParagraphCenter
	ParagraphJustified
	ParagraphDistributed
)

// TabStop is one tab stop of a paragraph.  Kind is 'l', 'c' or 'r'
// for left, center and right aligned tab stops.
type TabStop struct {
	Kind byte
	Pos  float64
}

// ParagraphProperties describes the formatting of a paragraph, from
// the "\p" code.  Lengths are multiples of the initial text height of
// the entity.
type ParagraphProperties struct {
	// Indent is the extra indentation of the first line.
	Indent float64

	// Left and Right are the indentation of the paragraph relative to
	// the text boundary.
	Left  float64
	Right float64

	Align ParagraphAlignment

	TabStops []TabStop
}

// DefaultProperties returns the properties in effect at the start of
// an MTEXT entity.
func DefaultProperties() Properties {
	return Properties{
		Height:      1,
		WidthFactor: 1,
		Tracking:    1,
		ACI:         256,
	}
}
