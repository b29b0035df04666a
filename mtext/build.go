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
	"seehuhn.de/go/dxf/layout"
)

// A Factory creates layout cells for MTEXT tokens.  The factory
// measures the text and attaches the renderers which later draw it.
type Factory interface {
	// Word returns a cell showing s with the given properties.
	Word(s string, props Properties) *layout.Text

	// Fraction returns a cell showing two stacked texts.
	Fraction(num, den string, stacking layout.Stacking, props Properties) *layout.Fraction

	// SpaceWidth returns the width of a space character with the
	// given properties.
	SpaceWidth(props Properties) float64
}

// A Paragraph is a run of cells between two paragraph breaks, together
// with the paragraph properties in effect at its end.
type Paragraph struct {
	Cells []layout.Box
	Props ParagraphProperties
}

// Build converts tokens into paragraphs of layout cells.  Words which
// follow each other without a space, for example around a formatting
// code or a stacked text, are joined with zero-width non-breaking
// spaces so that they stay on one line.  Empty paragraphs get a
// single invisible cell, so that they still advance by one line.
func Build(tokens []Token, f Factory) []Paragraph {
	var res []Paragraph
	var cells []layout.Box
	wasContent := false
	hasContent := false
	props := DefaultProperties()

	addContent := func(cell layout.Box) {
		if wasContent {
			cells = append(cells, layout.NewNonBreakingSpace(0, 0))
		}
		cells = append(cells, cell)
		wasContent = true
		hasContent = true
	}
	closeParagraph := func(atBreak bool) {
		if !hasContent {
			if !atBreak {
				return
			}
			cells = []layout.Box{f.Word("", props)}
		}
		res = append(res, Paragraph{Cells: cells, Props: props.Paragraph})
		cells = nil
		wasContent = false
		hasContent = false
	}

	for _, tok := range tokens {
		props = tok.Props
		switch tok.Kind {
		case TokenWord:
			addContent(f.Word(tok.Text, props))
		case TokenStack:
			st := tok.Stack
			addContent(f.Fraction(st.Numerator, st.Denominator,
				stackingFor(st.Divider), props))
		case TokenSpace:
			w := f.SpaceWidth(props)
			cells = append(cells, layout.NewSpace(w, w/2))
			wasContent = false
		case TokenNonBreakingSpace:
			w := f.SpaceWidth(props)
			cells = append(cells, layout.NewNonBreakingSpace(w, w/2))
			wasContent = false
		case TokenTab:
			w := f.SpaceWidth(props)
			cells = append(cells, layout.NewTab(w, w/2))
			wasContent = false
		case TokenNewParagraph, TokenNewColumn:
			closeParagraph(true)
		case TokenWrap:
			// wrapping points for dimension text are not used here
		}
	}
	closeParagraph(false)
	return res
}

// stackingFor maps the divider of a stacked text to a stacking style.
func stackingFor(divider byte) layout.Stacking {
	switch divider {
	case '/':
		return layout.StackingLine
	case '#':
		return layout.StackingSlanted
	default:
		return layout.StackingOver
	}
}

// FlowParagraphs converts MTEXT tokens into flowing text paragraphs of
// the given width.  Indentation and tab stops of the paragraphs are
// multiples of the initial text height; unit gives this length in
// drawing units.
func FlowParagraphs(tokens []Token, width, unit float64, f Factory) ([]layout.Paragraph, error) {
	var res []layout.Paragraph
	for _, para := range Build(tokens, f) {
		opts := &layout.FlowTextOptions{
			Alignment: para.Props.Align.alignment(),
			Indent: layout.Indent{
				First: para.Props.Indent * unit,
				Left:  para.Props.Left * unit,
				Right: para.Props.Right * unit,
			},
		}
		for _, stop := range para.Props.TabStops {
			opts.TabStops = append(opts.TabStops, stop.Pos*unit)
		}
		p, err := layout.NewFlowText(width, opts)
		if err != nil {
			return nil, err
		}
		if err := p.AppendContent(para.Cells...); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// alignment maps a paragraph alignment to the layout package.
// Distributed text is rendered as justified text.
func (a ParagraphAlignment) alignment() layout.Alignment {
	switch a {
	case ParagraphLeft:
		return layout.AlignmentLeft
	case ParagraphRight:
		return layout.AlignmentRight
	case ParagraphCenter:
		return layout.AlignmentCenter
	case ParagraphJustified, ParagraphDistributed:
		return layout.AlignmentJustified
	default:
		return layout.AlignmentDefault
	}
}
