// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// file is the YAML form of a Theme:
//
//	preset: dark
//	colors:
//	  bg: "#333f55"
//	  back: "#141b2b"
//	  fore: cornflowerblue
//	  text: "#e1e1e1ff"
//	font:
//	  family: Roboto
//	  size: 20
//
// Missing entries keep the preset's value.
type file struct {
	Preset string `yaml:"preset,omitempty"`
	Colors struct {
		Bg   string `yaml:"bg,omitempty"`
		Back string `yaml:"back,omitempty"`
		Fore string `yaml:"fore,omitempty"`
		Text string `yaml:"text,omitempty"`
	} `yaml:"colors"`
	Font struct {
		Family string  `yaml:"family,omitempty"`
		Size   float32 `yaml:"size,omitempty"`
	} `yaml:"font"`
}

// Decode parses a YAML theme document.
func Decode(data []byte) (*Theme, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	t := New()
	switch strings.ToLower(f.Preset) {
	case "", "dark":
	case "light":
		t.Light()
	default:
		return nil, fmt.Errorf("theme: unknown preset %q", f.Preset)
	}
	for _, c := range []struct {
		name string
		val  string
		dst  *color.NRGBA
	}{
		{"bg", f.Colors.Bg, &t.Bg},
		{"back", f.Colors.Back, &t.Back},
		{"fore", f.Colors.Fore, &t.Fore},
		{"text", f.Colors.Text, &t.Text},
	} {
		if c.val == "" {
			continue
		}
		col, err := ParseColor(c.val)
		if err != nil {
			return nil, fmt.Errorf("theme: color %s: %w", c.name, err)
		}
		*c.dst = col
	}
	if f.Font.Family != "" {
		t.Family = f.Font.Family
	}
	if f.Font.Size < 0 {
		return nil, fmt.Errorf("theme: negative font size %v", f.Font.Size)
	}
	if f.Font.Size > 0 {
		t.Size = f.Font.Size
	}
	return t, nil
}

// Encode returns the YAML form of t.
func (t *Theme) Encode() ([]byte, error) {
	var f file
	f.Colors.Bg = FormatColor(t.Bg)
	f.Colors.Back = FormatColor(t.Back)
	f.Colors.Fore = FormatColor(t.Fore)
	f.Colors.Text = FormatColor(t.Text)
	f.Font.Family = t.Family
	f.Font.Size = t.Size
	return yaml.Marshal(&f)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func FormatColor(c color.NRGBA) string {
	s := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	if c.A != 0xff {
		s += fmt.Sprintf("%02x", c.A)
	}
	return s
}
