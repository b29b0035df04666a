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
	"fmt"
	"iter"

	"seehuhn.de/go/geom/matrix"
)

// Alignment selects how the lines of a paragraph are aligned
// horizontally.
type Alignment int

const (
	// AlignmentDefault is the alignment used when no alignment is
	// given.  It is equivalent to AlignmentLeft.
	AlignmentDefault Alignment = iota

	AlignmentLeft
	AlignmentRight
	AlignmentCenter

	// AlignmentJustified stretches the glue in all lines of a
	// paragraph, except the last one, so that the lines fill the full
	// paragraph width.
	AlignmentJustified
)

// Indent describes the indentation of a paragraph.  First is added for
// the first line only, Left and Right apply to all lines.  Negative
// values for First give a hanging indentation.
type Indent struct {
	First float64
	Left  float64
	Right float64
}

// FlowTextOptions controls the appearance of a [FlowText] paragraph.
// The zero value is a left-aligned paragraph without indentation and
// with single line spacing.
type FlowTextOptions struct {
	Alignment Alignment
	Indent    Indent

	// LineSpacing is the distance between lines as a multiple of the
	// line height.  Values up to zero are treated as 1.
	LineSpacing float64

	// TabStops is reserved for tab stop positions.  Currently tabs
	// behave like spaces.
	TabStops []float64

	Margins Margins
	Render  ContentRenderer
}

// FlowText is a paragraph of flowing text: cells are appended to the
// paragraph and then distributed into lines of a fixed width, with
// support for alignment, indentation and line spacing.
type FlowText struct {
	container
	width       float64
	align       Alignment
	indent      Indent
	lineSpacing float64
	tabStops    []float64

	cells []Box // content waiting to be distributed
	lines []*Line
}

// NewFlowText returns a new, empty paragraph of the given width.  Use
// [FlowText.AppendContent] to add content, and
// [FlowText.DistributeContent] to break the content into lines.
// If opts is nil, default options are used.
func NewFlowText(width float64, opts *FlowTextOptions) (*FlowText, error) {
	if opts == nil {
		opts = &FlowTextOptions{}
	}
	if opts.Alignment < AlignmentDefault || opts.Alignment > AlignmentJustified {
		return nil, fmt.Errorf("%w %d", ErrInvalidAlignment, int(opts.Alignment))
	}
	lineSpacing := opts.LineSpacing
	if lineSpacing <= 0 {
		lineSpacing = 1
	}
	p := &FlowText{
		width:       width,
		align:       opts.Alignment,
		indent:      opts.Indent,
		lineSpacing: lineSpacing,
		tabStops:    opts.TabStops,
	}
	p.margins = opts.Margins
	p.render = opts.Render
	return p, nil
}

// AppendContent adds cells to the paragraph, to be broken into lines
// by a later call to [FlowText.DistributeContent].  The cells are
// checked before anything is added: a container in place of a cell is
// an error, as are two content cells without glue in between.
func (p *FlowText) AppendContent(cells ...Box) error {
	prevContent := false
	if n := len(p.cells); n > 0 {
		prevContent = isContent(p.cells[n-1])
	}
	for i, cell := range cells {
		switch cell.(type) {
		case *Text, *Fraction,
			*Space, *NonBreakingSpace, *Tab, *SoftHyphen,
			*Leading:
			// valid cell types
		default:
			return ErrInvalidNesting
		}
		if isContent(cell) {
			if prevContent {
				return &SequenceError{Index: len(p.cells) + i}
			}
			prevContent = true
		} else {
			prevContent = false
		}
	}
	p.cells = append(p.cells, cells...)
	return nil
}

// DistributeContent breaks the cells appended so far into lines.  At
// most maxHeight units of vertical space are used, including the
// margins of the paragraph; math.Inf(1) can be given for unrestricted
// height.  Content which does not fit is returned as a new FlowText
// with the same settings; the result is nil if everything fits.
//
// The appended cells are consumed by this call.  New content can be
// appended and distributed afterwards; the new lines are then added
// below the existing ones.
func (p *FlowText) DistributeContent(maxHeight float64) Paragraph {
	if len(p.cells) == 0 {
		return nil
	}
	cells := cleanupCells(p.cells)
	p.cells = nil

	budget := maxHeight - p.margins.Top - p.margins.Bottom
	var used float64
	for _, line := range p.lines {
		used += line.TotalHeight() * p.lineSpacing
	}

	// closeLine appends a line holding the given cells to the
	// paragraph.  It returns false if the line does not fit into the
	// remaining vertical space.
	closeLine := func(lineCells []Box, usable float64, justify bool) bool {
		var height float64
		for _, cell := range lineCells {
			height = max(height, cell.TotalHeight())
		}
		if used+height > budget {
			return false
		}
		if justify && p.align == AlignmentJustified {
			stretchGlue(lineCells, usable)
		}
		line := NewLine(cellsWidth(lineCells), p.align, Margins{}, nil)
		for _, cell := range lineCells {
			line.Append(cell)
		}
		p.lines = append(p.lines, line)
		used += height * p.lineSpacing
		return true
	}

	chunks := makeChunks(cells)

	var (
		lineCells []Box
		pending   []chunk // glue which may still end up on the open line
		start     = -1    // index of the first cell in the open line
		groups    = 0     // number of content chunks in the open line
		rem       = -1    // index of the first cell which did not fit
	)
	usable := p.usableWidth()

	ci := 0
loop:
	for ci < len(chunks) {
		ck := chunks[ci]
		switch ck.kind {
		case chunkGlue:
			pending = append(pending, ck)
			ci++

		case chunkContent:
			width := cellsWidth(lineCells) + chunksWidth(pending) + ck.width()
			if groups > 0 && width > usable {
				// The chunk does not fit, close the line and try
				// again.  Glue before the break is dropped.
				if !closeLine(lineCells, usable, true) {
					rem = start
					break loop
				}
				lineCells = nil
				pending = pending[:0]
				start = -1
				groups = 0
				usable = p.usableWidth()
				continue
			}
			for _, g := range pending {
				if start < 0 {
					start = g.start
				}
				lineCells = append(lineCells, g.cells...)
			}
			pending = pending[:0]
			if start < 0 {
				start = ck.start
			}
			lineCells = append(lineCells, ck.cells...)
			groups++
			ci++

		case chunkLeading:
			if start < 0 {
				start = ck.start
				if len(pending) > 0 {
					start = pending[0].start
				}
			}
			if !closeLine(lineCells, usable, false) {
				rem = start
				break loop
			}
			lineCells = nil
			pending = pending[:0]
			start = -1
			groups = 0
			usable = p.usableWidth()
			ci++
		}
	}
	if rem < 0 && len(lineCells) > 0 {
		if !closeLine(lineCells, usable, false) {
			rem = start
		}
	}

	if rem < 0 {
		return nil
	}
	r := &FlowText{
		width:       p.width,
		align:       p.align,
		indent:      p.indent,
		lineSpacing: p.lineSpacing,
		tabStops:    p.tabStops,
		cells:       cells[rem:],
	}
	r.margins = p.margins
	r.render = p.render
	if len(p.lines) > 0 {
		// the paragraph has visibly started, the rest is a continuation
		r.indent.First = 0
	}
	return r
}

// usableWidth returns the line width available for cells, taking the
// indentation into account.
func (p *FlowText) usableWidth() float64 {
	w := p.width - p.indent.Left - p.indent.Right
	if len(p.lines) == 0 {
		w -= p.indent.First
	}
	return max(w, 0)
}

// ContentWidth returns the width of the paragraph, without margins.
func (p *FlowText) ContentWidth() float64 { return p.width }

// ContentHeight returns the height of the distributed lines, without
// margins.  Line spacing is applied between lines, but not after the
// last line.
func (p *FlowText) ContentHeight() float64 {
	var height float64
	for i, line := range p.lines {
		if i < len(p.lines)-1 {
			height += line.TotalHeight() * p.lineSpacing
		} else {
			height += line.TotalHeight()
		}
	}
	return height
}

// TotalWidth returns the width of the paragraph, including margins.
func (p *FlowText) TotalWidth() float64 { return p.totalWidth(p.ContentWidth()) }

// TotalHeight returns the height of the paragraph, including margins.
func (p *FlowText) TotalHeight() float64 { return p.totalHeight(p.ContentHeight()) }

// Place pins the paragraph and all of its lines.
func (p *FlowText) Place(x, y float64) {
	p.anchor(x, y)
	p.placeContent()
}

func (p *FlowText) placeContent() {
	x, y := p.contentLocation()
	for i, line := range p.lines {
		dx := p.indent.Left
		usable := p.width - p.indent.Left - p.indent.Right
		if i == 0 {
			dx += p.indent.First
			usable -= p.indent.First
		}
		usable = max(usable, 0)
		switch p.align {
		case AlignmentRight:
			dx += usable - line.TotalWidth()
		case AlignmentCenter:
			dx += (usable - line.TotalWidth()) / 2
		}
		line.Place(x+dx, y)
		y -= line.TotalHeight() * p.lineSpacing
	}
}

// Render yields the background of the paragraph, followed by the
// lines.
func (p *FlowText) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	return p.renderSequence(m, p.TotalWidth(), p.TotalHeight(), p.placeContent, p.renderChildren())
}

func (p *FlowText) renderChildren() iter.Seq[RenderBox] {
	return func(yield func(RenderBox) bool) {
		for _, line := range p.lines {
			if !yield(line) {
				return
			}
		}
	}
}

func (p *FlowText) empty() bool {
	return len(p.lines) == 0
}

// chunkKind classifies the units of line breaking.
type chunkKind int

const (
	chunkContent chunkKind = iota
	chunkGlue
	chunkLeading
)

// chunk is the unit of line breaking: a group of content cells which
// must stay on one line, a single glue cell, or a forced line break.
type chunk struct {
	kind  chunkKind
	cells []Box
	start int // index of the first cell in the distributed sequence
}

func (ck *chunk) width() float64 {
	return cellsWidth(ck.cells)
}

// makeChunks groups a cleaned-up cell sequence into chunks.
// Non-breaking spaces between two content cells fuse them into a
// single chunk; all other non-breaking spaces are converted into
// ordinary spaces.
func makeChunks(cells []Box) []chunk {
	var chunks []chunk
	i := 0
	for i < len(cells) {
		switch cell := cells[i].(type) {
		case *Text, *Fraction:
			j := i + 1
			for j+1 < len(cells) {
				if _, ok := cells[j].(*NonBreakingSpace); !ok {
					break
				}
				if !isContent(cells[j+1]) {
					break
				}
				j += 2
			}
			chunks = append(chunks, chunk{kind: chunkContent, cells: cells[i:j], start: i})
			i = j
		case *Leading:
			chunks = append(chunks, chunk{kind: chunkLeading, cells: cells[i : i+1], start: i})
			i++
		case *NonBreakingSpace:
			chunks = append(chunks, chunk{kind: chunkGlue, cells: []Box{cell.ToSpace()}, start: i})
			i++
		default:
			chunks = append(chunks, chunk{kind: chunkGlue, cells: cells[i : i+1], start: i})
			i++
		}
	}
	return chunks
}

func cellsWidth(cells []Box) float64 {
	var width float64
	for _, cell := range cells {
		width += cell.TotalWidth()
	}
	return width
}

func chunksWidth(chunks []chunk) float64 {
	var width float64
	for _, ck := range chunks {
		width += ck.width()
	}
	return width
}

// stretchGlue resizes the glue cells in a justified line so that the
// cells fill the given width.  Glue is scaled proportionally; the
// minimum width of each cell still applies.
func stretchGlue(cells []Box, width float64) {
	var content, natural float64
	for _, cell := range cells {
		if g := asGlue(cell); g != nil {
			natural += g.width
		} else {
			content += cell.TotalWidth()
		}
	}
	if natural <= 0 {
		return
	}
	f := (width - content) / natural
	if f < 0 {
		return
	}
	for _, cell := range cells {
		if g := asGlue(cell); g != nil {
			g.Resize(g.width * f)
		}
	}
}

var _ Paragraph = (*FlowText)(nil)
