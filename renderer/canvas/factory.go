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
	"image/color"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"

	"seehuhn.de/go/dxf/layout"
	"seehuhn.de/go/dxf/mtext"
)

// fractionTextScale is the text height of the parts of a stacked
// text, relative to the surrounding text.
const fractionTextScale = 0.7

// dividerWidthScale is the stroke width of the dividing line of a
// stacked text, relative to the text height.
const dividerWidthScale = 0.05

// probeSize is the font size used to measure the cap height of a
// family.
const probeSize = 100.0

// A Factory creates measured layout cells for MTEXT content.  The
// cells draw onto a canvas context using the renderers of this
// package.
type Factory struct {
	ctx    *canvas.Context
	family *canvas.FontFamily

	// height is the initial text height of the entity, in drawing
	// units.
	height float64

	// capRatio is the cap height of the family per unit of font size.
	capRatio float64

	faces map[faceKey]*canvas.FontFace
}

type faceKey struct {
	size  float64
	style canvas.FontStyle
	deco  uint8
	col   color.RGBA
}

const (
	decoUnderline = 1 << iota
	decoOverline
	decoStrikeThrough
)

// NewFactory returns a factory for layout cells which draw onto ctx.
// The text height of a cell with default properties is height, in
// drawing units.
func NewFactory(ctx *canvas.Context, family *canvas.FontFamily, height float64) *Factory {
	probe := family.Face(probeSize, color.Black, canvas.FontRegular, canvas.FontNormal)
	return &Factory{
		ctx:      ctx,
		family:   family,
		height:   height,
		capRatio: probe.Metrics().CapHeight / probeSize,
		faces:    make(map[faceKey]*canvas.FontFace),
	}
}

// Word returns a text cell for s.  The cell height is the cap height
// of the text, and the bottom edge of the cell is the baseline.
func (f *Factory) Word(s string, props mtext.Properties) *layout.Text {
	face := f.face(props)
	width := f.textWidth(face, s, props)
	height := f.height * props.Height
	var render layout.ContentRenderer
	if s != "" {
		render = &Text{
			Context: f.ctx,
			Face:    face,
			Content: s,
			XScale:  props.WidthFactor,
		}
	}
	return layout.NewText(width, height, render)
}

// Fraction returns a cell showing num and den stacked on top of each
// other.  The two parts are shown at a reduced text height.
func (f *Factory) Fraction(num, den string, stacking layout.Stacking, props mtext.Properties) *layout.Fraction {
	sub := props
	sub.Height *= fractionTextScale
	top := f.Word(num, sub)
	bottom := f.Word(den, sub)

	var render layout.ContentRenderer
	if stacking != layout.StackingOver {
		render = &Frame{
			Context:   f.ctx,
			Color:     textColor(props),
			LineWidth: dividerWidthScale * f.height * props.Height,
		}
	}
	return layout.NewFraction(top, bottom, stacking, render)
}

// SpaceWidth returns the width of a space character.
func (f *Factory) SpaceWidth(props mtext.Properties) float64 {
	return f.textWidth(f.face(props), " ", props)
}

func (f *Factory) textWidth(face *canvas.FontFace, s string, props mtext.Properties) float64 {
	width := face.TextWidth(s)
	if props.WidthFactor > 0 && props.WidthFactor != 1 {
		width *= props.WidthFactor
	}
	if props.Tracking > 0 && props.Tracking != 1 {
		width *= props.Tracking
	}
	return width
}

// face returns the font face for the given properties.  Faces are
// cached, so that repeated lookups return the same face.
func (f *Factory) face(props mtext.Properties) *canvas.FontFace {
	size := f.height * props.Height / f.capRatio
	style := canvas.FontRegular
	if props.Font.Bold {
		style = canvas.FontBold
	}
	if props.Font.Italic {
		style |= canvas.FontItalic
	}
	var deco uint8
	if props.Underline {
		deco |= decoUnderline
	}
	if props.Overline {
		deco |= decoOverline
	}
	if props.StrikeThrough {
		deco |= decoStrikeThrough
	}
	col := textColor(props)

	key := faceKey{size: size, style: style, deco: deco, col: col}
	if face, ok := f.faces[key]; ok {
		return face
	}

	args := []interface{}{col, style, canvas.FontNormal}
	if deco&decoUnderline != 0 {
		args = append(args, canvas.FontUnderline)
	}
	if deco&decoOverline != 0 {
		args = append(args, canvas.FontOverline)
	}
	if deco&decoStrikeThrough != 0 {
		args = append(args, canvas.FontStrikethrough)
	}
	face := f.family.Face(size, args...)
	f.faces[key] = face
	return face
}

// aciColors holds colors 1 to 9 of the AutoCAD palette.  Indices
// outside the table are shown in black.
var aciColors = map[int]color.RGBA{
	1: {R: 0xFF, A: 0xFF},
	2: {R: 0xFF, G: 0xFF, A: 0xFF},
	3: {G: 0xFF, A: 0xFF},
	4: {G: 0xFF, B: 0xFF, A: 0xFF},
	5: {B: 0xFF, A: 0xFF},
	6: {R: 0xFF, B: 0xFF, A: 0xFF},
	7: {A: 0xFF},
	8: {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	9: {R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF},
}

// textColor returns the color for text with the given properties.  A
// true color takes precedence over the color index.
func textColor(props mtext.Properties) color.RGBA {
	if v, ok := props.RGB.Get(); ok {
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xFF,
		}
	}
	if col, ok := aciColors[props.ACI]; ok {
		return col
	}
	return color.RGBA{A: 0xFF}
}

// LatinModern returns a font family with the Latin Modern Roman fonts
// in the regular, bold, italic and bold italic styles.
func LatinModern() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("Latin Modern Roman")
	fonts := []struct {
		data  []byte
		style canvas.FontStyle
	}{
		{lmroman10regular.TTF, canvas.FontRegular},
		{lmroman10bold.TTF, canvas.FontBold},
		{lmroman10italic.TTF, canvas.FontItalic},
		{lmroman10bolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	}
	for _, f := range fonts {
		if err := family.LoadFont(f.data, 0, f.style); err != nil {
			return nil, err
		}
	}
	return family, nil
}

var _ mtext.Factory = (*Factory)(nil)
