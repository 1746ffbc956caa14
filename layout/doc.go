// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout partitions rectangles into bands and grids and aligns
rectangles against guides.

A Bands value splits one axis of a bounding rectangle into consecutive
cells, either by weight or by fixed extents. Each cell spans the full
bounds on the other axis:

	cols := layout.Uniform(layout.Horizontal, bounds, 3)
	left, middle, right := cols.Cell(0), cols.Cell(1), cols.Cell(2)

A Grid combines a horizontal and a vertical Bands:

	g := layout.WeightedGrid(bounds, []int{1, 3}, []int{1, 1})
	header := g.Cell(0, 0)

A Guide is a single movable coordinate. Its methods return a rectangle
with one axis repositioned against the guide, keeping the rectangle's
size on that axis.

Cell indices outside the partition are a caller error and panic with an
index out of range.
*/
package layout
