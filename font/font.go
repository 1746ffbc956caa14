// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font maps font family names to parsed OpenType fonts and hands
out sized faces for drawing and measuring text.

A Collection holds any number of families and an ordered list of
fallback fonts. Faces returned by Collection.Face draw each rune with
the family's font when it has a glyph for it, and otherwise with the
first fallback font that does.
*/
package font

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrNoFace is returned when no font is registered for a family.
var ErrNoFace = errors.New("font: no face for family")

// Collection is a set of font families. It is safe for concurrent use,
// but the faces it returns are not.
type Collection struct {
	mu       sync.Mutex
	fonts    map[string]*opentype.Font
	order    []string
	fallback []*opentype.Font
	faces    faceCache
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{fonts: make(map[string]*opentype.Font)}
}

// Register parses ttf and makes it available as family. Registering a
// family twice replaces the earlier font.
func (c *Collection) Register(family string, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font: parse %q: %w", family, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.fonts[family]; !exists {
		c.order = append(c.order, family)
	}
	c.fonts[family] = f
	c.faces.Purge()
	return nil
}

// RegisterFallback parses ttf and appends it to the fallback list.
func (c *Collection) RegisterFallback(ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font: parse fallback: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = append(c.fallback, f)
	c.faces.Purge()
	return nil
}

// Families returns the registered family names in sorted order.
func (c *Collection) Families() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := append([]string(nil), c.order...)
	sort.Strings(names)
	return names
}

// Default returns the first registered family, or the empty string.
func (c *Collection) Default() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.order) == 0 {
		return ""
	}
	return c.order[0]
}

// Face returns family at the given size in pixels per em. Faces are
// cached and shared between callers asking for the same family and size.
func (c *Collection) Face(family string, size float32) (*Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := faceKey{family: family, size: size}
	if f, ok := c.faces.Get(k); ok {
		return f, nil
	}
	primary, ok := c.fonts[family]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoFace, family)
	}
	f := &Face{}
	for _, fnt := range append([]*opentype.Font{primary}, c.fallback...) {
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: xfont.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font: face %q at %v: %w", family, size, err)
		}
		f.fonts = append(f.fonts, fnt)
		f.faces = append(f.faces, face)
	}
	c.faces.Put(k, f)
	return f, nil
}

// Face is an x/image font.Face that resolves each rune against a primary
// font and then its fallbacks.
type Face struct {
	fonts []*opentype.Font
	faces []xfont.Face
	buf   sfnt.Buffer
}

var _ xfont.Face = (*Face)(nil)

// pick returns the index of the face to draw r with. Runes no font
// covers use the primary face, which draws its notdef glyph.
func (f *Face) pick(r rune) int {
	for i, fnt := range f.fonts {
		if idx, err := fnt.GlyphIndex(&f.buf, r); err == nil && idx != 0 {
			return i
		}
	}
	return 0
}

// Close releases the underlying faces.
func (f *Face) Close() error {
	var first error
	for _, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
