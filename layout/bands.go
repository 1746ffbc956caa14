// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"
)

// Bands partitions one axis of a rectangle into consecutive cells. The
// zero value has no cells.
type Bands struct {
	// Axis is the partitioned axis. Horizontal bands are columns,
	// vertical bands are rows.
	Axis Axis

	origin int
	// pos holds the cell boundaries relative to origin, one more
	// than the number of cells.
	pos      []int
	clo, chi int
}

// Uniform splits bounds into n equally weighted bands. A negative n
// gives no bands.
func Uniform(axis Axis, bounds image.Rectangle, n int) Bands {
	weights := make([]int, max(n, 0))
	for i := range weights {
		weights[i] = 1
	}
	return Weighted(axis, bounds, weights)
}

// Weighted splits bounds into one band per weight. Boundary i is placed at
// round(extent * sum(weights[:i]) / sum(weights)).
func Weighted(axis Axis, bounds image.Rectangle, weights []int) Bands {
	b := newBands(axis, bounds, len(weights))
	lo, hi := axis.span(bounds)
	extent := hi - lo
	total := 0
	for _, w := range weights {
		total += w
	}
	cum := 0
	for _, w := range weights {
		cum += w
		p := 0
		if total != 0 {
			p = int(math.Floor(float64(extent)*float64(cum)/float64(total) + .5))
		}
		b.pos = append(b.pos, p)
	}
	return b
}

// Fixed splits bounds into bands of the given extents, starting at the
// leading edge. The bands may end before or after the trailing edge.
func Fixed(axis Axis, bounds image.Rectangle, extents []int) Bands {
	b := newBands(axis, bounds, len(extents))
	p := 0
	for _, e := range extents {
		p += e
		b.pos = append(b.pos, p)
	}
	return b
}

func newBands(axis Axis, bounds image.Rectangle, n int) Bands {
	lo, _ := axis.span(bounds)
	clo, chi := axis.crossSpan(bounds)
	b := Bands{
		Axis:   axis,
		origin: lo,
		pos:    make([]int, 1, max(n, 0)+1),
		clo:    clo,
		chi:    chi,
	}
	return b
}

// Len returns the number of cells.
func (b Bands) Len() int {
	if len(b.pos) == 0 {
		return 0
	}
	return len(b.pos) - 1
}

// Cell returns the i'th band, spanning the full bounds on the cross axis.
func (b Bands) Cell(i int) image.Rectangle {
	lo, hi := b.interval(i)
	return b.Axis.rect(lo, hi, b.clo, b.chi)
}

// Bounds returns the rectangle covered by all cells.
func (b Bands) Bounds() image.Rectangle {
	if b.Len() == 0 {
		return b.Axis.rect(b.origin, b.origin, b.clo, b.chi)
	}
	return b.Axis.rect(b.origin, b.origin+b.pos[len(b.pos)-1], b.clo, b.chi)
}

func (b Bands) interval(i int) (lo, hi int) {
	return b.origin + b.pos[i], b.origin + b.pos[i+1]
}
