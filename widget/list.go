// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/ui"
)

const (
	scrollbarWidth = 16
	minThumb       = 12
)

// List is a vertically scrolling list of text rows with one selected
// row.
type List struct {
	// yref is the pointer offset from the thumb top during a thumb drag.
	yref int
	// yvalue is the scroll position in rows.
	yvalue    float32
	scrolling bool
}

// Layout paints items one per row of the font's line height, with a
// scrollbar on the right when they do not fit. A press on a row selects
// it; a press on the scrollbar thumb starts a drag that scrolls the
// list. The row after the last item is blank and cannot be selected.
// Changed reports whether the selection moved to a different row.
func (l *List) Layout(s *ui.Session, r image.Rectangle, items []string, selected int) (int, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	mouse := s.Pointer()
	in := s.Track(l, geom.Contains(r, mouse))
	switch in {
	case ui.Press:
		s.Focus(l)
	case ui.Click, ui.Cancel:
		// The release frame still applies the last thumb drag.
		defer func() { l.scrolling = false }()
	}

	th, p := s.Theme(), s.Surface()
	p.SetFont(th.Family, th.Size)
	height := p.FontHeight()
	if height <= 0 || r.Empty() {
		return selected, false
	}

	view := int(math.Ceil(float64(float32(r.Dy()) / height)))
	doc := len(items) + 1
	track := r.Dy()
	visible := doc > view
	nd := doc - view
	l.yvalue = float32(math.Max(0, math.Min(float64(max(nd, 0)), float64(l.yvalue))))

	var bar, thumbRect image.Rectangle
	var ns int
	var ratio float32
	if visible {
		bar = geom.Split(&r, geom.Right, scrollbarWidth)
		thumb := int(float32(track*view) / float32(doc))
		if thumb >= minThumb {
			ratio = float32(doc) / float32(track)
		} else {
			thumb = minThumb
			if track > thumb {
				ratio = float32(nd) / float32(track-thumb)
			}
		}
		ns = max(track-thumb, 0)
		thumbRect = bar
		thumbRect.Min.Y = thumbTop(l.yvalue, ratio)
		thumbRect.Max.Y = thumbRect.Min.Y + thumb

		if l.scrolling && ratio > 0 {
			y := max(min(mouse.Y-l.yref, ns), 0)
			l.yvalue = min(float32(nd), float32(y)*ratio)
			thumbRect = geom.Move(thumbRect, thumbRect.Min.X, thumbTop(l.yvalue, ratio))
		}
	}

	yoffset := int(-float32(math.Ceil(float64(l.yvalue))) * height)

	changed := false
	switch in {
	case ui.Press:
		if visible && geom.Contains(bar, mouse) {
			if geom.Contains(thumbRect, mouse) {
				l.yref = mouse.Y - thumbRect.Min.Y
				l.scrolling = true
			}
			break
		}
		row := int(float32(mouse.Y-yoffset) / height)
		if row < doc-1 && row != selected {
			selected = row
			changed = true
		}
	}

	if visible {
		p.SetColor(th.Back)
		p.FillRect(bar)
		p.SetColor(th.Fore)
		p.FillRoundRect(thumbRect, 3, 3)
	}
	p.SetColor(th.Back)
	p.FillRect(r)

	p.Push()
	p.Clip(r)
	y := float32(yoffset)
	for i, item := range items {
		top := int(y)
		y += height
		if int(y) <= 0 || top >= r.Dy() {
			continue
		}
		if i == selected {
			p.SetColor(th.Fore)
			p.FillRect(image.Rect(1, top+1, r.Dx()-1, int(float32(top)+height-1)))
		}
		p.SetColor(th.Text)
		p.TextLine(item, image.Pt(0, top))
	}
	p.Pop()
	return selected, changed
}

// thumbTop returns the thumb position for the scroll position yvalue.
func thumbTop(yvalue, ratio float32) int {
	if ratio <= 0 {
		return 0
	}
	return int(yvalue / ratio)
}

// Scroll returns the scroll position in rows.
func (l *List) Scroll() float32 {
	return l.yvalue
}

// Scrolling reports whether the scrollbar thumb is being dragged.
func (l *List) Scrolling() bool {
	return l.scrolling
}
