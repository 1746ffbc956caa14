// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/paint/record"
)

func TestPanelNesting(t *testing.T) {
	h := newHarness()
	var (
		pn      Panel
		b       Clickable
		clicked bool
		local   image.Rectangle
		outer   image.Rectangle
	)
	layout := func() {
		local = pn.Begin(h.s, image.Rect(50, 50, 150, 150))
		// The pointer is relative to the panel.
		clicked = b.Layout(h.s, image.Rect(0, 0, 20, 20), "x")
		Label(h.s, image.Rect(0, 80, 100, 100), "footer", geom.Center, geom.Center)
		outer = pn.End(h.s)
	}

	h.frame(image.Pt(55, 55), true, layout)
	assert.True(t, b.Held(h.s))
	assert.Equal(t, image.Rect(0, 0, 100, 100), local)
	assert.Equal(t, image.Rect(50, 50, 150, 150), outer)
	assert.Equal(t, image.Pt(55, 55), h.s.Pointer())
	assert.Zero(t, h.s.Depth())

	h.frame(image.Pt(55, 55), false, layout)
	assert.True(t, clicked)

	// Painting is nested in the panel's space and clip.
	labels := h.rec.Find(record.Text)
	assert.Len(t, labels, 2)
	footer := labels[1]
	assert.Equal(t, image.Pt(50, 130), footer.Offset)
	assert.Equal(t, image.Rect(50, 130, 150, 150), footer.ClipRect)
}

func TestPanelEndWithoutBegin(t *testing.T) {
	h := newHarness()
	var pn Panel
	h.s.Begin(h.rec)
	assert.Panics(t, func() { pn.End(h.s) })
}
