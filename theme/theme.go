// SPDX-License-Identifier: Unlicense OR MIT

// Package theme holds the palette and font widgets paint with.
package theme

import (
	"errors"
	"fmt"
	"image/color"
)

// Theme is a flat palette and font. Widgets only read it; callers change
// it between frames.
type Theme struct {
	// Bg is the window background.
	Bg color.NRGBA
	// Back is the surface color of tracks, fields and lists.
	Back color.NRGBA
	// Fore is the accent color of thumbs, buttons and selections.
	Fore color.NRGBA
	// Text is the text and indicator color.
	Text color.NRGBA

	Family string
	Size   float32
}

// ErrColorCount is returned by SetColors for a palette of the wrong
// length.
var ErrColorCount = errors.New("theme: palette needs exactly 4 colors")

// New returns a theme with the dark preset.
func New() *Theme {
	t := new(Theme)
	t.Dark()
	return t
}

// Dark resets t to the default dark preset.
func (t *Theme) Dark() {
	t.Bg = rgb(0x333f55)
	t.Back = rgb(0x141b2b)
	t.Fore = rgb(0x317dfa)
	t.Text = rgb(0xe1e1e1)
	t.Family = "Roboto"
	t.Size = 20
}

// Light resets t to the light preset.
func (t *Theme) Light() {
	t.Bg = rgb(0xeceff4)
	t.Back = rgb(0xd8dee9)
	t.Fore = rgb(0x3f51b5)
	t.Text = rgb(0x2e3440)
	t.Family = "Roboto"
	t.Size = 20
}

// Colors returns the palette in SetColors order: Bg, Back, Fore, Text.
func (t *Theme) Colors() []color.NRGBA {
	return []color.NRGBA{t.Bg, t.Back, t.Fore, t.Text}
}

// SetColors replaces the palette. The colors are, in order, Bg, Back, Fore
// and Text.
func (t *Theme) SetColors(colors []color.NRGBA) error {
	if len(colors) != 4 {
		return fmt.Errorf("%w: got %d", ErrColorCount, len(colors))
	}
	t.Bg, t.Back, t.Fore, t.Text = colors[0], colors[1], colors[2], colors[3]
	return nil
}

// SetFont replaces the font family and pixel size.
func (t *Theme) SetFont(family string, size float32) {
	t.Family = family
	t.Size = size
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
