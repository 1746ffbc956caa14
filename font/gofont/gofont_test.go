// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	c := Collection()
	assert.Same(t, c, Collection())
	assert.Equal(t, "Go", c.Default())

	want := append([]string(nil), Families...)
	sort.Strings(want)
	assert.Equal(t, want, c.Families())

	for _, name := range Families {
		f, err := c.Face(name, 18)
		require.NoError(t, err, name)
		assert.Greater(t, f.Measure("Ag").X, 0, name)
	}
}

func TestArabicFallback(t *testing.T) {
	f, err := Collection().Face("Go", 20)
	require.NoError(t, err)
	// The Go fonts have no Arabic glyphs; they come from the fallback.
	assert.Greater(t, f.Measure("سلام").X, 0)
}
