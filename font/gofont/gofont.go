// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont registers the Go fonts in a font.Collection.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data. Roboto is registered alongside them, and Noto Sans Arabic
// serves as the fallback for runes the primary fonts lack.
package gofont

import (
	"fmt"
	"sync"

	nsareg "eliasnaur.com/font/noto/sans/arabic/regular"
	"eliasnaur.com/font/roboto/robotoregular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"github.com/framekit/imui/font"
)

var (
	once       sync.Once
	collection *font.Collection
)

// Families lists the family names Register adds, default first.
var Families = []string{
	"Go",
	"Go Bold",
	"Go Italic",
	"Go Medium",
	"Go Mono",
	"Go Mono Bold",
	"Go Smallcaps",
	"Roboto",
}

var data = map[string][]byte{
	"Go":           goregular.TTF,
	"Go Bold":      gobold.TTF,
	"Go Italic":    goitalic.TTF,
	"Go Medium":    gomedium.TTF,
	"Go Mono":      gomono.TTF,
	"Go Mono Bold": gomonobold.TTF,
	"Go Smallcaps": gosmallcaps.TTF,
	"Roboto":       robotoregular.TTF,
}

// Register adds the bundled families and the fallback font to c.
func Register(c *font.Collection) error {
	for _, name := range Families {
		if err := c.Register(name, data[name]); err != nil {
			return err
		}
	}
	return c.RegisterFallback(nsareg.TTF)
}

// Collection returns a shared collection holding the bundled fonts.
func Collection() *font.Collection {
	once.Do(func() {
		collection = font.NewCollection()
		if err := Register(collection); err != nil {
			panic(fmt.Errorf("failed to parse font: %v", err))
		}
	})
	return collection
}
