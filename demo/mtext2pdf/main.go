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

// Mtext2pdf typesets an MTEXT string into a two-column PDF page.
// The MTEXT source can be given on the command line; without
// arguments a built-in sample is used.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dxf/layout"
	"seehuhn.de/go/dxf/mtext"
	canvasrenderer "seehuhn.de/go/dxf/renderer/canvas"
)

// page dimensions and distances on the page, in millimeters
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 16.0
	gutter     = 8.0
)

const sampleText = `{\H1.6x;Typesetting MTEXT}\P` +
	`This page is generated from a single MTEXT string.  Inline codes switch to ` +
	`{\fLMRoman10|b1;bold} or {\fLMRoman10|i1;italic} faces, to {\Lunderlined\l}, ` +
	`{\Ooverlined\o} and {\Kstruck out\k} text, and to colors such as {\C1;red}, ` +
	`{\C5;blue} and {\c65280;green}.\P` +
	`\pxi2;Fractions are stacked over a line as \S1/2;, slanted as \S3#4;, or ` +
	`without a divider as in 40\~mm\S+0.1^ -0.2;, the usual form for tolerances.  ` +
	`The first line of this paragraph is indented by two text heights.\P` +
	`\pxi0,qj;The last paragraph is justified.  The spaces between the words are ` +
	`stretched so that every line closed by a word wrap exactly fills the column, ` +
	`while the final line keeps its natural length.  When the first column is ` +
	`full, the text continues in the second one.`

func main() {
	outName := flag.String("o", "out.pdf", "output file name")
	textHeight := flag.Float64("s", 3.2, "text height in mm")
	colHeight := flag.Float64("c", pageHeight-2*margin, "column height in mm")
	flag.Parse()

	text := sampleText
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	}

	err := run(*outName, text, *textHeight, *colHeight)
	if err != nil {
		log.Fatal(err)
	}
}

func run(outName, text string, textHeight, colHeight float64) error {
	tokens, err := mtext.Parse(text)
	if err != nil {
		return err
	}

	family, err := canvasrenderer.LatinModern()
	if err != nil {
		return err
	}

	c := canvas.New(pageWidth, pageHeight)
	ctx := canvas.NewContext(c)

	colWidth := (pageWidth - 2*margin - gutter) / 2
	factory := canvasrenderer.NewFactory(ctx, family, textHeight)
	paragraphs, err := mtext.FlowParagraphs(tokens, colWidth, textHeight, factory)
	if err != nil {
		return err
	}

	frame := &canvasrenderer.Frame{
		Context:   ctx,
		Color:     color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
		LineWidth: 0.1,
	}
	l := layout.NewLayout(colWidth, colHeight, layout.Margins{}, nil)
	l.AddColumn(0, colHeight, gutter, layout.Margins{}, frame)
	l.AddColumn(0, colHeight, 0, layout.Margins{}, frame)
	l.AppendParagraphs(paragraphs)
	l.Place(margin, pageHeight-margin, layout.AnchorTopLeft)
	for _, err := range l.Render(matrix.Identity) {
		if err != nil {
			return err
		}
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	writer := pdf.New(out, pageWidth, pageHeight, nil)
	c.RenderTo(writer)
	err = writer.Close()
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
