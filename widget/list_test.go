// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/imui/paint/record"
)

type listRun struct {
	h        *harness
	l        List
	r        image.Rectangle
	items    []string
	selected int
	changed  bool
}

func (lr *listRun) frame(p image.Point, down bool) {
	lr.h.frame(p, down, func() {
		lr.selected, lr.changed = lr.l.Layout(lr.h.s, lr.r, lr.items, lr.selected)
	})
}

func (lr *listRun) click(p image.Point) {
	lr.frame(p, true)
	changed := lr.changed
	lr.frame(p, false)
	lr.changed = lr.changed || changed
}

func newList(n int) *listRun {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	// Three rows of 16 pixels are visible.
	return &listRun{h: newHarness(), r: image.Rect(0, 0, 100, 48), items: items, selected: -1}
}

func TestListSelect(t *testing.T) {
	lr := newList(2)
	lr.click(image.Pt(10, 20))
	assert.Equal(t, 1, lr.selected)
	assert.True(t, lr.changed)
	assert.True(t, lr.h.s.Focused(&lr.l))

	// Selecting the selected row is not a change.
	lr.click(image.Pt(10, 20))
	assert.Equal(t, 1, lr.selected)
	assert.False(t, lr.changed)

	// No scrollbar: everything fits.
	assert.Empty(t, lr.h.rec.Find(record.FillRoundRect))
	fills := lr.h.rec.Find(record.FillRect)
	require.Len(t, fills, 2)
	assert.Equal(t, image.Rect(0, 0, 100, 48), fills[0].Rect)
	assert.Equal(t, image.Rect(1, 17, 99, 31), fills[1].Rect)
	assert.Equal(t, lr.h.s.Theme().Fore, fills[1].Color)
	assert.Equal(t, []string{"item 0", "item 1"}, lr.h.rec.Texts())
}

func TestListTrailingRow(t *testing.T) {
	lr := newList(2)
	lr.selected = 0
	// Row 2 is the reserved blank row.
	lr.click(image.Pt(10, 40))
	assert.Equal(t, 0, lr.selected)
	assert.False(t, lr.changed)
}

func TestListThumbDrag(t *testing.T) {
	lr := newList(10)
	lr.frame(image.Pt(300, 300), false)
	// 11 rows with 3 visible: a 13 pixel thumb on a 48 pixel track.
	thumbs := lr.h.rec.Find(record.FillRoundRect)
	require.Len(t, thumbs, 1)
	assert.Equal(t, image.Rect(84, 0, 100, 13), thumbs[0].Rect)
	assert.Equal(t, 3, thumbs[0].A)
	bg := lr.h.rec.Find(record.FillRect)
	require.Len(t, bg, 2)
	assert.Equal(t, image.Rect(84, 0, 100, 48), bg[0].Rect)
	assert.Equal(t, image.Rect(0, 0, 84, 48), bg[1].Rect)

	lr.frame(image.Pt(90, 5), true)
	assert.True(t, lr.l.Scrolling())
	assert.False(t, lr.changed)
	assert.Equal(t, -1, lr.selected)

	lr.frame(image.Pt(90, 40), true)
	assert.Equal(t, float32(8), lr.l.Scroll())
	thumbs = lr.h.rec.Find(record.FillRoundRect)
	require.Len(t, thumbs, 1)
	assert.Equal(t, 34, thumbs[0].Rect.Min.Y)
	// Rows 8 and 9 and the blank row are in view.
	assert.Equal(t, []string{"item 8", "item 9"}, lr.h.rec.Texts())

	lr.frame(image.Pt(90, 40), false)
	assert.False(t, lr.l.Scrolling())
	assert.Equal(t, float32(8), lr.l.Scroll())

	// Row selection accounts for the scroll offset.
	lr.click(image.Pt(10, 5))
	assert.Equal(t, 8, lr.selected)
	assert.True(t, lr.changed)
	lr.click(image.Pt(10, 40))
	assert.Equal(t, 8, lr.selected, "blank row")
}

func TestListThumbDragReleasedOutside(t *testing.T) {
	lr := newList(10)
	lr.frame(image.Pt(90, 5), true)
	lr.frame(image.Pt(90, -200), true)
	assert.Equal(t, float32(0), lr.l.Scroll())
	lr.frame(image.Pt(500, 500), true)
	assert.Equal(t, float32(8), lr.l.Scroll())
	lr.frame(image.Pt(500, 500), false)
	assert.False(t, lr.l.Scrolling())
	assert.Nil(t, lr.h.s.CaptureTag())
}

func TestListTrackPressOffThumb(t *testing.T) {
	lr := newList(10)
	lr.click(image.Pt(90, 40))
	assert.Equal(t, -1, lr.selected)
	assert.False(t, lr.changed)
	assert.Zero(t, lr.l.Scroll())
}

func TestListMinimumThumb(t *testing.T) {
	lr := newList(40)
	lr.frame(image.Pt(300, 300), false)
	thumbs := lr.h.rec.Find(record.FillRoundRect)
	require.Len(t, thumbs, 1)
	assert.Equal(t, 12, thumbs[0].Rect.Dy())

	// The floored thumb's full travel reaches the last rows.
	lr.frame(image.Pt(90, 2), true)
	lr.frame(image.Pt(90, 200), true)
	assert.Equal(t, float32(41-3), lr.l.Scroll())
	thumbs = lr.h.rec.Find(record.FillRoundRect)
	require.Len(t, thumbs, 1)
	assert.Equal(t, 36, thumbs[0].Rect.Min.Y)
}

func TestListShrinkClampsScroll(t *testing.T) {
	lr := newList(10)
	lr.frame(image.Pt(90, 5), true)
	lr.frame(image.Pt(90, 60), true)
	lr.frame(image.Pt(90, 60), false)
	require.Equal(t, float32(8), lr.l.Scroll())
	lr.items = lr.items[:1]
	lr.frame(image.Pt(300, 300), false)
	assert.Zero(t, lr.l.Scroll())
	assert.Equal(t, []string{"item 0"}, lr.h.rec.Texts())
}
