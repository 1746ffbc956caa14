// SPDX-License-Identifier: Unlicense OR MIT

package scenario

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/imui/io/key"
	"github.com/framekit/imui/paint/record"
	"github.com/framekit/imui/ui"
	"github.com/framekit/imui/widget"
)

const clickScript = `
size: [200, 100]
theme: light
frames:
  - pointer: [50, 15]
  - down: true
  - down: true
    repeat: 2
  - key: backspace
  - pointer: [60, 20]
    key: a
`

func TestDecode(t *testing.T) {
	sc, err := Decode([]byte(clickScript))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), sc.Size)
	assert.Equal(t, "light", sc.Theme)
	require.Len(t, sc.Frames, 6)
	assert.Equal(t, image.Pt(50, 15), *sc.Frames[0].Pointer)
	assert.Nil(t, sc.Frames[1].Pointer)
	assert.True(t, sc.Frames[2].Down)
	assert.True(t, sc.Frames[3].Down)
	assert.Equal(t, byte(key.Backspace), sc.Frames[4].Key.Code())
	assert.Equal(t, "a", sc.Frames[5].Key.Text)
}

func TestDecodeErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":  "frames: [",
		"size":    "size: [1]\nframes: [{down: true}]",
		"empty":   "size: [0, 10]\nframes: [{down: true}]",
		"pointer": "frames: [{pointer: [1, 2, 3]}]",
		"repeat":  "frames: [{repeat: -1}]",
	} {
		_, err := Decode([]byte(doc))
		assert.Error(t, err, name)
	}
	_, err := Decode([]byte("size: [10, 10]"))
	assert.ErrorIs(t, err, ErrNoFrames)

	sc, err := Decode([]byte("frames: [{}]"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, sc.Size)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.yaml")
	require.NoError(t, os.WriteFile(path, []byte(clickScript), 0o644))
	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Frames, 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunClicksButton(t *testing.T) {
	sc, err := Decode([]byte(`
frames:
  - pointer: [50, 15]
  - down: true
  - {}
  - pointer: [150, 15]
    down: true
  - pointer: [50, 15]
`))
	require.NoError(t, err)
	s := ui.NewSession(nil)
	rec := record.New(image.Rect(0, 0, 200, 100), 8, 16)
	var b widget.Clickable
	var clicks []int
	frame := 0
	err = sc.Run(s, rec, func() {
		if b.Layout(s, image.Rect(0, 0, 100, 30), "OK") {
			clicks = append(clicks, frame)
		}
	}, func(i int) error {
		frame = i + 1
		return nil
	})
	require.NoError(t, err)
	// Pressed in frame 1, released inside in frame 2. The press outside
	// in frame 3 belongs to the background.
	assert.Equal(t, []int{2}, clicks)
}

func TestRunStopsOnError(t *testing.T) {
	sc, err := Decode([]byte("frames: [{}, {}, {}]"))
	require.NoError(t, err)
	stop := errors.New("stop")
	n := 0
	err = sc.Run(ui.NewSession(nil), record.New(image.Rect(0, 0, 10, 10), 1, 1), func() {}, func(i int) error {
		n++
		if i == 1 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}
