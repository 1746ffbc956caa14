// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Grid is a two dimensional partition built from a column and a row
// Bands over the same bounds.
type Grid struct {
	Cols, Rows Bands
}

// UniformGrid splits bounds into rows by cols equally sized cells.
func UniformGrid(bounds image.Rectangle, rows, cols int) Grid {
	return Grid{
		Cols: Uniform(Horizontal, bounds, cols),
		Rows: Uniform(Vertical, bounds, rows),
	}
}

// WeightedGrid splits bounds by row and column weights.
func WeightedGrid(bounds image.Rectangle, rowWeights, colWeights []int) Grid {
	return Grid{
		Cols: Weighted(Horizontal, bounds, colWeights),
		Rows: Weighted(Vertical, bounds, rowWeights),
	}
}

// FixedGrid splits bounds by fixed row and column extents.
func FixedGrid(bounds image.Rectangle, rowExtents, colExtents []int) Grid {
	return Grid{
		Cols: Fixed(Horizontal, bounds, colExtents),
		Rows: Fixed(Vertical, bounds, rowExtents),
	}
}

// Cell returns the intersection of row r and column c.
func (g Grid) Cell(r, c int) image.Rectangle {
	x1, x2 := g.Cols.interval(c)
	y1, y2 := g.Rows.interval(r)
	return image.Rectangle{Min: image.Pt(x1, y1), Max: image.Pt(x2, y2)}
}
