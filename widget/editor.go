// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/rivo/uniseg"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/io/key"
	"github.com/framekit/imui/ui"
)

// Editor is a single line text field with the caret at the end of the
// text.
type Editor struct {
	// start is the byte offset of the first visible grapheme cluster in
	// the last frame.
	start int
}

// Layout paints the field and applies the pending keystroke when the
// editor has focus. Printable keystrokes are appended, Backspace removes
// the last grapheme cluster, and Return submits without changing the
// text. A press gives the editor focus.
//
// When the text is wider than r, the leading clusters scroll out of
// view so the end of the text and the caret stay visible.
func (e *Editor) Layout(s *ui.Session, r image.Rectangle, text string) (string, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	if s.Track(e, geom.Contains(r, s.Pointer())) == ui.Press {
		s.Focus(e)
	}
	focused := s.Focused(e)

	submitted := false
	if k, ok := s.Key(); ok && focused {
		switch c := k.Code(); {
		case c > 31:
			text += k.Text
		case c == key.Backspace:
			text = trimLastCluster(text)
		case c == key.Return:
			submitted = true
		}
	}

	th, p := s.Theme(), s.Surface()
	p.SetFont(th.Family, th.Size)
	p.SetColor(th.Back)
	p.FillRect(r)

	e.start = 0
	visible := text
	m := p.MeasureText(visible)
	for visible != "" && m.X >= r.Dx() {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(visible, -1)
		e.start += len(cluster)
		visible = rest
		m = p.MeasureText(visible)
	}

	p.SetStrokeWidth(1)
	p.SetColor(th.Text)
	p.TextLine(visible, image.Point{})
	if focused {
		p.FillRect(image.Rect(m.X, 0, m.X+1, r.Dy()))
	}
	return text, submitted
}

// Offset returns the byte offset of the first visible character as of
// the last Layout.
func (e *Editor) Offset() int {
	return e.start
}

func trimLastCluster(s string) string {
	last := 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(s) - len(rest) - len(cluster)
	}
	return s[:last]
}
