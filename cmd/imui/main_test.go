// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit/imui/theme"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

const script = `
size: [320, 240]
frames:
  - pointer: [10, 10]
  - pointer: [10, 10]
    down: true
  - down: false
`

func TestRender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))
	out := filepath.Join(dir, "last.png")
	_, err := run(t, "render", "-s", path, "-o", out, "--all", filepath.Join(dir, "f%d.png"))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 320, 240), decodePNG(t, out).Bounds())
	for i := 0; i < 3; i++ {
		assert.FileExists(t, filepath.Join(dir, fmt.Sprintf("f%d.png", i)))
	}

	bg := theme.New().Bg
	r, g, b, _ := decodePNG(t, out).At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{uint32(bg.R), uint32(bg.G), uint32(bg.B)}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestRenderScaledDemo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	_, err := run(t, "render", "-o", out, "--size", "200x100", "--scale", "0.5", "-t", "light")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), decodePNG(t, out).Bounds())
}

func TestRenderOps(t *testing.T) {
	out, err := run(t, "render", "--ops")
	require.NoError(t, err)
	assert.Contains(t, out, "Clear")
	assert.Contains(t, out, `"imui gallery"`)
	assert.Contains(t, out, `"demo"`)
}

func TestRenderErrors(t *testing.T) {
	for _, args := range [][]string{
		{"render", "--scale", "0"},
		{"render", "--size", "12"},
		{"render", "--all", "frame.png"},
		{"render", "-s", filepath.Join(t.TempDir(), "missing.yaml")},
		{"render", "-t", "sepia"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseSize(t *testing.T) {
	p, err := parseSize("800X600")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(800, 600), p)
	for _, s := range []string{"", "800", "ax600", "0x10", "-1x10"} {
		_, err := parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestThemeCommand(t *testing.T) {
	out, err := run(t, "theme", "light")
	require.NoError(t, err)
	th, err := theme.Decode([]byte(out))
	require.NoError(t, err)
	want := theme.New()
	want.Light()
	assert.Equal(t, want, th)

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  fore: red\n"), 0o644))
	out, err = run(t, "theme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "#ff0000")
}

func TestFontsCommand(t *testing.T) {
	out, err := run(t, "fonts", "--sample", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "FAMILY")
	assert.Contains(t, out, "Go Mono")
	assert.Contains(t, out, "Roboto")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imui.log")
	defer setupLogger("", false)
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--log-file", path, "render", "--ops"})
	require.NoError(t, cmd.Execute())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: submitted \"demo\"")
}
