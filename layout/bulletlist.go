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
	"iter"

	"seehuhn.de/go/geom/matrix"
)

// BulletList arranges paragraphs as a list, with a bullet cell to the
// left of each item.
type BulletList struct {
	container
	width  float64
	indent float64
	items  []bulletItem
}

// bulletItem is one entry of a bullet list.  The bullet is nil for the
// continuation of an item which was split between two columns.
type bulletItem struct {
	bullet Box
	body   *FlowText
}

func (item *bulletItem) height() float64 {
	height := item.body.TotalHeight()
	if item.bullet != nil {
		height = max(height, item.bullet.TotalHeight())
	}
	return height
}

// NewBulletList returns a new, empty bullet list.  Item bodies are
// placed indent units to the right of the bullets.
func NewBulletList(width, indent float64, margins Margins, render ContentRenderer) *BulletList {
	l := &BulletList{width: width, indent: indent}
	l.margins = margins
	l.render = render
	return l
}

// Append adds an item to the list.  The bullet must be a content cell;
// using a container as bullet is an error.
func (l *BulletList) Append(bullet Box, body *FlowText) error {
	if !isContent(bullet) {
		return ErrInvalidNesting
	}
	l.items = append(l.items, bulletItem{bullet: bullet, body: body})
	return nil
}

// DistributeContent breaks the bodies of all items into lines, using
// at most maxHeight units of vertical space.  Content which does not
// fit is returned as a new BulletList; the body of an item which was
// split continues in the new list without a second bullet.
func (l *BulletList) DistributeContent(maxHeight float64) Paragraph {
	budget := maxHeight - l.margins.Top - l.margins.Bottom
	var used float64
	for i := 0; i < len(l.items); i++ {
		item := l.items[i]
		remaining := budget - used

		var bulletHeight float64
		if item.bullet != nil {
			bulletHeight = item.bullet.TotalHeight()
		}
		if remaining <= 0 || bulletHeight > remaining {
			// the item does not fit at all
			tail := l.cloneEmpty()
			tail.items = append(tail.items, l.items[i:]...)
			l.items = l.items[:i]
			return tail
		}

		rem := item.body.DistributeContent(remaining)
		if rem == nil {
			used += item.height()
			continue
		}
		tail := l.cloneEmpty()
		if item.body.empty() {
			// nothing of the item fits, move it as a whole
			tail.items = append(tail.items, bulletItem{bullet: item.bullet, body: rem.(*FlowText)})
		} else {
			tail.items = append(tail.items, bulletItem{body: rem.(*FlowText)})
		}
		tail.items = append(tail.items, l.items[i+1:]...)
		if item.body.empty() {
			l.items = l.items[:i]
		} else {
			l.items = l.items[:i+1]
		}
		return tail
	}
	return nil
}

func (l *BulletList) cloneEmpty() *BulletList {
	return NewBulletList(l.width, l.indent, l.margins, l.render)
}

// ContentWidth returns the width of the list, without margins.
func (l *BulletList) ContentWidth() float64 { return l.width }

// ContentHeight returns the total height of all items, without
// margins.
func (l *BulletList) ContentHeight() float64 {
	var height float64
	for i := range l.items {
		height += l.items[i].height()
	}
	return height
}

// TotalWidth returns the width of the list, including margins.
func (l *BulletList) TotalWidth() float64 { return l.totalWidth(l.ContentWidth()) }

// TotalHeight returns the height of the list, including margins.
func (l *BulletList) TotalHeight() float64 { return l.totalHeight(l.ContentHeight()) }

// Place pins the list and all of its items.
func (l *BulletList) Place(x, y float64) {
	l.anchor(x, y)
	l.placeContent()
}

func (l *BulletList) placeContent() {
	x, y := l.contentLocation()
	for i := range l.items {
		item := &l.items[i]
		if bullet, ok := item.bullet.(RenderBox); ok {
			bullet.Place(x, y)
		}
		item.body.Place(x+l.indent, y)
		y -= item.height()
	}
}

// Render yields the background of the list, followed by the bullets
// and bodies of all items.
func (l *BulletList) Render(m matrix.Matrix) iter.Seq2[DrawOp, error] {
	return l.renderSequence(m, l.TotalWidth(), l.TotalHeight(), l.placeContent, l.renderChildren())
}

func (l *BulletList) renderChildren() iter.Seq[RenderBox] {
	return func(yield func(RenderBox) bool) {
		for i := range l.items {
			item := &l.items[i]
			if bullet, ok := item.bullet.(RenderBox); ok {
				if !yield(bullet) {
					return
				}
			}
			if !yield(item.body) {
				return
			}
		}
	}
}

func (l *BulletList) empty() bool {
	return len(l.items) == 0
}

var _ Paragraph = (*BulletList)(nil)
