// SPDX-License-Identifier: Unlicense OR MIT

/*
Package record implements a paint.Surface that records the calls made on
it.

A Recorder draws nothing. Each call is stored as an Op together with the
state it applies in: the color, stroke width, device offset and clip.
Text metrics are synthetic: every grapheme cluster advances by a fixed
width and lines have a fixed height, so layouts computed against a
Recorder are exact and independent of fonts. A recording can be replayed
on another surface.
*/
package record

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/framekit/imui/paint"
)

// Kind identifies the Surface method an Op records.
type Kind uint8

const (
	SetStrokeWidth Kind = iota
	SetColor
	Clear
	StrokeRect
	FillRect
	StrokeRoundRect
	FillRoundRect
	StrokeArc
	FillArc
	SetFont
	Text
	TextLine
	Push
	Pop
	Translate
	Rotate
	Clip
)

// Op is a recorded call.
type Op struct {
	Kind Kind
	// Rect is the rectangle argument, in local coordinates.
	Rect image.Rectangle
	// Point is the point argument of TextLine and Translate.
	Point image.Point
	// A and B hold the radii of rounded rectangles, the angles of arcs
	// and the alignments of Text.
	A, B int
	// Value holds the stroke width, font size or rotation argument.
	Value float32
	// Text holds the string of text calls and the family of SetFont.
	Text string

	// Color and Width are the paint in effect.
	Color color.NRGBA
	Width float32
	// Offset is the sum of translations in effect. Rotations are not
	// included.
	Offset image.Point
	// ClipRect is the clip in effect, in device coordinates.
	ClipRect image.Rectangle
}

// Device returns Rect in device coordinates, ignoring rotations.
func (o Op) Device() image.Rectangle {
	return o.Rect.Add(o.Offset)
}

// Recorder is a recording paint.Surface.
type Recorder struct {
	charWidth  int
	lineHeight int
	bounds     image.Rectangle

	ops   []Op
	state state
	stack []state
}

type state struct {
	color  color.NRGBA
	width  float32
	offset image.Point
	clip   image.Rectangle
	family string
	size   float32
}

var _ paint.Surface = (*Recorder)(nil)

// New returns a recorder for a target of the given bounds whose text
// metrics advance charWidth per grapheme cluster with lines of height
// lineHeight.
func New(bounds image.Rectangle, charWidth, lineHeight int) *Recorder {
	r := &Recorder{
		charWidth:  charWidth,
		lineHeight: lineHeight,
		bounds:     bounds,
	}
	r.Reset()
	return r
}

// Reset discards the recording and restores the initial state.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.stack = r.stack[:0]
	r.state = state{
		color: color.NRGBA{A: 0xff},
		width: 1,
		clip:  r.bounds,
	}
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Find returns the recorded calls of the given kinds.
func (r *Recorder) Find(kinds ...Kind) []Op {
	var found []Op
	for _, o := range r.ops {
		for _, k := range kinds {
			if o.Kind == k {
				found = append(found, o)
				break
			}
		}
	}
	return found
}

// Texts returns the strings drawn by Text and TextLine, in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, o := range r.Find(Text, TextLine) {
		texts = append(texts, o.Text)
	}
	return texts
}

// Depth returns the number of states saved by Push and not yet restored.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) record(o Op) {
	o.Color = r.state.color
	o.Width = r.state.width
	o.Offset = r.state.offset
	o.ClipRect = r.state.clip
	r.ops = append(r.ops, o)
}

func (r *Recorder) SetStrokeWidth(w float32) {
	r.state.width = w
	r.record(Op{Kind: SetStrokeWidth, Value: w})
}

func (r *Recorder) SetColor(c color.NRGBA) {
	r.state.color = c
	r.record(Op{Kind: SetColor})
}

func (r *Recorder) Clear() {
	r.record(Op{Kind: Clear, Rect: r.bounds})
}

func (r *Recorder) StrokeRect(rect image.Rectangle) {
	r.record(Op{Kind: StrokeRect, Rect: rect})
}

func (r *Recorder) FillRect(rect image.Rectangle) {
	r.record(Op{Kind: FillRect, Rect: rect})
}

func (r *Recorder) StrokeRoundRect(rect image.Rectangle, rx, ry int) {
	r.record(Op{Kind: StrokeRoundRect, Rect: rect, A: rx, B: ry})
}

func (r *Recorder) FillRoundRect(rect image.Rectangle, rx, ry int) {
	r.record(Op{Kind: FillRoundRect, Rect: rect, A: rx, B: ry})
}

func (r *Recorder) StrokeArc(rect image.Rectangle, start, end int) {
	r.record(Op{Kind: StrokeArc, Rect: rect, A: start, B: end})
}

func (r *Recorder) FillArc(rect image.Rectangle, start, end int) {
	r.record(Op{Kind: FillArc, Rect: rect, A: start, B: end})
}

func (r *Recorder) SetFont(family string, size float32) float32 {
	r.state.family, r.state.size = family, size
	r.record(Op{Kind: SetFont, Text: family, Value: size})
	if size <= 0 {
		return 1
	}
	return float32(r.lineHeight) / size
}

func (r *Recorder) FontHeight() float32 {
	return float32(r.lineHeight)
}

// MeasureText advances the character width once per grapheme cluster.
func (r *Recorder) MeasureText(s string) image.Point {
	return image.Point{
		X: r.charWidth * uniseg.GraphemeClusterCount(s),
		Y: r.lineHeight,
	}
}

func (r *Recorder) Text(s string, rect image.Rectangle, xalign, yalign int) {
	r.record(Op{Kind: Text, Text: s, Rect: rect, A: xalign, B: yalign})
}

func (r *Recorder) TextLine(s string, p image.Point) {
	r.record(Op{Kind: TextLine, Text: s, Point: p})
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.state)
	r.record(Op{Kind: Push})
}

func (r *Recorder) Pop() {
	n := len(r.stack)
	if n == 0 {
		panic("record: Pop without matching Push")
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.record(Op{Kind: Pop})
}

func (r *Recorder) Translate(p image.Point) {
	r.state.offset = r.state.offset.Add(p)
	r.record(Op{Kind: Translate, Point: p})
}

func (r *Recorder) Rotate(deg float32) {
	r.record(Op{Kind: Rotate, Value: deg})
}

func (r *Recorder) Clip(rect image.Rectangle) {
	r.state.clip = r.state.clip.Intersect(rect.Add(r.state.offset))
	r.record(Op{Kind: Clip, Rect: rect})
}

// Replay repeats the recorded calls on s.
func (r *Recorder) Replay(s paint.Surface) {
	for _, o := range r.ops {
		o.Replay(s)
	}
}

// Replay repeats the call o records on s.
func (o Op) Replay(s paint.Surface) {
	switch o.Kind {
	case SetStrokeWidth:
		s.SetStrokeWidth(o.Value)
	case SetColor:
		s.SetColor(o.Color)
	case Clear:
		s.Clear()
	case StrokeRect:
		s.StrokeRect(o.Rect)
	case FillRect:
		s.FillRect(o.Rect)
	case StrokeRoundRect:
		s.StrokeRoundRect(o.Rect, o.A, o.B)
	case FillRoundRect:
		s.FillRoundRect(o.Rect, o.A, o.B)
	case StrokeArc:
		s.StrokeArc(o.Rect, o.A, o.B)
	case FillArc:
		s.FillArc(o.Rect, o.A, o.B)
	case SetFont:
		s.SetFont(o.Text, o.Value)
	case Text:
		s.Text(o.Text, o.Rect, o.A, o.B)
	case TextLine:
		s.TextLine(o.Text, o.Point)
	case Push:
		s.Push()
	case Pop:
		s.Pop()
	case Translate:
		s.Translate(o.Point)
	case Rotate:
		s.Rotate(o.Value)
	case Clip:
		s.Clip(o.Rect)
	default:
		panic(fmt.Errorf("record: unknown op kind %d", o.Kind))
	}
}

func (k Kind) String() string {
	switch k {
	case SetStrokeWidth:
		return "SetStrokeWidth"
	case SetColor:
		return "SetColor"
	case Clear:
		return "Clear"
	case StrokeRect:
		return "StrokeRect"
	case FillRect:
		return "FillRect"
	case StrokeRoundRect:
		return "StrokeRoundRect"
	case FillRoundRect:
		return "FillRoundRect"
	case StrokeArc:
		return "StrokeArc"
	case FillArc:
		return "FillArc"
	case SetFont:
		return "SetFont"
	case Text:
		return "Text"
	case TextLine:
		return "TextLine"
	case Push:
		return "Push"
	case Pop:
		return "Pop"
	case Translate:
		return "Translate"
	case Rotate:
		return "Rotate"
	case Clip:
		return "Clip"
	default:
		panic("invalid Kind")
	}
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())
	switch o.Kind {
	case SetStrokeWidth, Rotate:
		fmt.Fprintf(&b, " %g", o.Value)
	case SetColor:
		fmt.Fprintf(&b, " #%02x%02x%02x%02x", o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	case StrokeRect, FillRect, Clip:
		fmt.Fprintf(&b, " %v", o.Rect)
	case StrokeRoundRect, FillRoundRect, StrokeArc, FillArc:
		fmt.Fprintf(&b, " %v %d %d", o.Rect, o.A, o.B)
	case SetFont:
		fmt.Fprintf(&b, " %q %g", o.Text, o.Value)
	case Text:
		fmt.Fprintf(&b, " %q %v %d %d", o.Text, o.Rect, o.A, o.B)
	case TextLine:
		fmt.Fprintf(&b, " %q %v", o.Text, o.Point)
	case Translate:
		fmt.Fprintf(&b, " %v", o.Point)
	}
	return b.String()
}
