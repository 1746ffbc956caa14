// SPDX-License-Identifier: Unlicense OR MIT

// Package gallery implements a demonstration screen that uses every
// widget.
package gallery

import (
	"fmt"
	"image"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/layout"
	"github.com/framekit/imui/ui"
	"github.com/framekit/imui/widget"
)

// Modes are the labels of the radio group.
var Modes = []string{"Sine", "Square", "Saw"}

// Event describes a change made through a widget.
type Event struct {
	Widget string
	Detail string
}

func (e Event) String() string {
	return e.Widget + ": " + e.Detail
}

// Gallery is the state of the demonstration screen.
type Gallery struct {
	Volume   float32
	Pan      float32
	Level    float32
	Muted    bool
	Mode     int
	Name     string
	Items    []string
	Selected int

	panel  widget.Panel
	volume widget.Float
	pan    widget.Float
	level  widget.Knob
	mute   widget.Bool
	modes  []widget.Enum
	add    widget.Clickable
	reset  widget.Clickable
	name   widget.Editor
	list   widget.List
	guide  layout.Guide
}

// New returns a gallery with default values.
func New() *Gallery {
	g := &Gallery{
		modes:    make([]widget.Enum, len(Modes)),
		Selected: -1,
	}
	g.Reset()
	return g
}

// Reset restores the default values. Widget state is kept.
func (g *Gallery) Reset() {
	g.Volume = 0.5
	g.Pan = 0.5
	g.Level = 0
	g.Muted = false
	g.Mode = 0
	g.Name = ""
	g.Items = []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel", "India", "Juliett", "Kilo", "Lima"}
	g.Selected = -1
}

// Layout paints the gallery in bounds and returns the changes made this
// frame.
func (g *Gallery) Layout(s *ui.Session, bounds image.Rectangle) []Event {
	var events []Event
	emit := func(w, format string, args ...interface{}) {
		events = append(events, Event{Widget: w, Detail: fmt.Sprintf(format, args...)})
	}

	th, p := s.Theme(), s.Surface()
	p.SetColor(th.Bg)
	p.Clear()

	margin := geom.Span{Before: 12, After: 12}
	r := geom.Pad(bounds, margin, margin)
	header := geom.Split(&r, geom.Top, 32)
	widget.Label(s, header, "imui gallery", geom.Start, geom.Center)
	geom.Split(&r, geom.Top, 8)

	cols := layout.Weighted(layout.Horizontal, r, []int{5, 1, 5})
	controls, right := cols.Cell(0), cols.Cell(2)

	local := g.panel.Begin(s, controls)
	rows := layout.Uniform(layout.Vertical, local, 6)

	// Volume slider with its label and readout.
	line := layout.Weighted(layout.Horizontal, rows.Cell(0), []int{2, 5, 2})
	widget.Label(s, line.Cell(0), "Volume", geom.Start, geom.Center)
	slot := geom.AdjustFixed(line.Cell(1), line.Cell(1).Dx(), 20, geom.Start, geom.Center)
	if v, changed := g.volume.Layout(s, slot, 16, g.Volume, layout.Horizontal); changed {
		g.Volume = v
		emit("volume", "%.2f", v)
	}
	widget.Label(s, line.Cell(2), fmt.Sprintf("%d%%", int(g.Volume*100+.5)), geom.End, geom.Center)

	// Mute switch.
	line = layout.Weighted(layout.Horizontal, rows.Cell(1), []int{2, 7})
	widget.Label(s, line.Cell(0), "Mute", geom.Start, geom.Center)
	slot = geom.AdjustFixed(line.Cell(1), 48, 24, geom.Start, geom.Center)
	if v, changed := g.mute.Layout(s, slot, g.Muted); changed {
		g.Muted = v
		emit("mute", "%t", v)
	}

	// Radio group.
	grid := layout.WeightedGrid(rows.Cell(2), []int{1}, []int{1, 1, 1})
	for i, name := range Modes {
		cell := grid.Cell(0, i)
		dot := geom.Split(&cell, geom.Left, 24)
		dot = geom.AdjustFixed(dot, 20, 20, geom.Center, geom.Center)
		if v, changed := g.modes[i].Layout(s, dot, i, g.Mode); changed {
			g.Mode = v
			emit("mode", "%s", Modes[v])
		}
		geom.Split(&cell, geom.Left, 6)
		widget.Label(s, cell, name, geom.Start, geom.Center)
	}

	// Knob spanning two rows.
	knobArea := rows.Cell(3).Union(rows.Cell(4))
	dial := geom.Split(&knobArea, geom.Left, knobArea.Dy())
	if v, changed := g.level.Layout(s, geom.Inflate(dial, -4, -4), g.Level); changed {
		g.Level = v
		emit("level", "%.2f", v)
	}
	widget.Label(s, knobArea, fmt.Sprintf("Level %.0f%%", g.Level*100), geom.Center, geom.Center)

	// Buttons.
	buttons := layout.Fixed(layout.Horizontal, rows.Cell(5), []int{100, 10, 100})
	if g.add.Layout(s, geom.Inflate(buttons.Cell(0), 0, -4), "Add") {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("Item %d", len(g.Items)+1)
		}
		g.Items = append(g.Items, name)
		emit("add", "%q", name)
	}
	if g.reset.Layout(s, geom.Inflate(buttons.Cell(2), 0, -4), "Reset") {
		g.Reset()
		emit("reset", "defaults")
	}
	g.panel.End(s)

	// Right column: text field and list aligned on a guide, with a
	// vertical pan slider along the right edge.
	panSlot := geom.Split(&right, geom.Right, 20)
	geom.Split(&right, geom.Right, 8)
	g.guide.Move(right.Min.X)
	field := geom.Split(&right, geom.Top, 28)
	if text, submitted := g.name.Layout(s, g.guide.Left(field), g.Name); submitted {
		if text != "" {
			g.Items = append(g.Items, text)
			emit("name", "submitted %q", text)
			text = ""
		}
		g.Name = text
	} else if text != g.Name {
		g.Name = text
		emit("name", "%q", text)
	}
	geom.Split(&right, geom.Top, 8)
	if sel, changed := g.list.Layout(s, g.guide.Left(right), g.Items, g.Selected); changed {
		g.Selected = sel
		emit("list", "%s", g.Items[sel])
	}
	if v, changed := g.pan.Layout(s, panSlot, 24, g.Pan, layout.Vertical); changed {
		g.Pan = v
		emit("pan", "%.2f", v)
	}
	return events
}
