// SPDX-License-Identifier: Unlicense OR MIT

package gallery

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/imui/paint/record"
	"github.com/framekit/imui/theme"
	"github.com/framekit/imui/ui"
)

var window = image.Rect(0, 0, 640, 480)

type run struct {
	g      *Gallery
	s      *ui.Session
	rec    *record.Recorder
	events []Event
}

func newRun() *run {
	return &run{
		g:   New(),
		s:   ui.NewSession(theme.New()),
		rec: record.New(window, 8, 16),
	}
}

func (r *run) frame(p image.Point, down bool) {
	r.rec.Reset()
	r.s.SetPointer(p, down)
	r.s.Begin(r.rec)
	r.events = append(r.events, r.g.Layout(r.s, window)...)
	r.s.End()
}

func (r *run) click(p image.Point) {
	r.frame(p, true)
	r.frame(p, false)
}

func (r *run) key(p image.Point, text string) {
	r.s.SetKey(text)
	r.frame(p, false)
}

func TestGalleryIdle(t *testing.T) {
	r := newRun()
	r.frame(image.Pt(-1, -1), false)
	assert.Empty(t, r.events)
	assert.Zero(t, r.s.Depth())

	ops := r.rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, record.SetColor, ops[0].Kind)
	assert.Equal(t, theme.New().Bg, ops[0].Color)
	assert.Equal(t, record.Clear, ops[1].Kind)
	assert.Contains(t, r.rec.Texts(), "imui gallery")
	assert.Contains(t, r.rec.Texts(), "Alpha")
	assert.Contains(t, r.rec.Texts(), "50%")
}

func TestGalleryVolume(t *testing.T) {
	r := newRun()
	// The thumb of the volume slider covers x 144 to 160.
	r.frame(image.Pt(152, 86), true)
	r.frame(image.Pt(222, 86), true)
	r.frame(image.Pt(222, 86), false)
	assert.Equal(t, float32(1), r.g.Volume)
	assert.Equal(t, []Event{{Widget: "volume", Detail: "1.00"}}, r.events)
	assert.Contains(t, r.rec.Texts(), "100%")
}

func TestGalleryToggles(t *testing.T) {
	r := newRun()
	r.click(image.Pt(98, 156))
	assert.True(t, r.g.Muted)
	r.click(image.Pt(117, 225))
	assert.Equal(t, 1, r.g.Mode)
	assert.Equal(t, []Event{
		{Widget: "mute", Detail: "true"},
		{Widget: "mode", Detail: "Square"},
	}, r.events)
}

func TestGalleryPan(t *testing.T) {
	r := newRun()
	r.frame(image.Pt(618, 460), true)
	r.frame(image.Pt(618, 460), false)
	assert.Equal(t, float32(1), r.g.Pan)
	assert.Equal(t, "pan: 1.00", r.events[0].String())
}

func TestGalleryAddAndReset(t *testing.T) {
	r := newRun()
	r.click(image.Pt(60, 430))
	require.Len(t, r.g.Items, 13)
	assert.Equal(t, "Item 13", r.g.Items[12])
	assert.Equal(t, Event{Widget: "add", Detail: `"Item 13"`}, r.events[0])

	r.g.Volume = 0.2
	r.click(image.Pt(170, 430))
	assert.Len(t, r.g.Items, 12)
	assert.Equal(t, float32(0.5), r.g.Volume)
	assert.Equal(t, "reset: defaults", r.events[1].String())
}

func TestGalleryNameField(t *testing.T) {
	r := newRun()
	field := image.Pt(400, 60)
	r.click(field)
	r.key(field, "h")
	r.key(field, "i")
	assert.Equal(t, "hi", r.g.Name)
	r.key(field, "\r")
	assert.Empty(t, r.g.Name)
	assert.Equal(t, "hi", r.g.Items[len(r.g.Items)-1])
	assert.Equal(t, []Event{
		{Widget: "name", Detail: `"h"`},
		{Widget: "name", Detail: `"hi"`},
		{Widget: "name", Detail: `submitted "hi"`},
	}, r.events)
}

func TestGallerySelect(t *testing.T) {
	r := newRun()
	r.click(image.Pt(400, 124))
	assert.Equal(t, 2, r.g.Selected)
	assert.Equal(t, []Event{{Widget: "list", Detail: "Charlie"}}, r.events)
}
