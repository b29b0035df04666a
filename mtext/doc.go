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

// Package mtext converts the content of MTEXT entities into paragraphs
// for the layout package.
//
// The content of an MTEXT entity is a single string with inline
// formatting codes, like "\H2x;" to double the text height or "\P" to
// start a new paragraph.  [Parse] splits such a string into tokens and
// resolves the formatting codes into a [Properties] value attached to
// each token.  [Build] and [FlowParagraphs] then convert the tokens
// into layout cells.  Cells are created by a [Factory], so that the
// mtext package itself needs no access to font metrics.
package mtext
