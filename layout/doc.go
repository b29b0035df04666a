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

// Package layout arranges pre-measured content into lines, paragraphs,
// columns and multi-column layouts.
//
// The package does not render letter shapes and has no notion of fonts;
// content arrives as boxes which are already measured.  Its main use is
// typesetting the content of MTEXT entities, either for drawing or for
// exploding MTEXT into simpler primitives, but nothing here is specific
// to one entity type.
//
// Content is organised in two layers:
//
// Containers hold other boxes and support margins.  A [Layout] contains
// [Column] boxes, each column contains paragraphs ([FlowText] or
// [BulletList]), a paragraph distributes its content into [Line] boxes.
//
// Cells are the leaves.  Glue cells ([Space], [Tab], [NonBreakingSpace],
// [SoftHyphen]) have height zero and separate the content cells ([Text],
// [Fraction]), which carry a [ContentRenderer] that draws the actual
// content.  A [Leading] cell forces a line break.
//
// Layout happens in two phases.  First the content is distributed and
// placed: [FlowText.DistributeContent] breaks raw cells into lines, and
// Place assigns each box its final position, with the y axis pointing up
// and (x, y) naming the top/left corner of a box.  Second, Render walks
// the placed tree and calls the attached renderers, yielding one
// [DrawOp] per call.  The returned sequence is finite, lazy and can be
// consumed only once; call Render again for a fresh pass.
package layout
