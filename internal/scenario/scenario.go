// SPDX-License-Identifier: Unlicense OR MIT

// Package scenario decodes scripted input sequences and replays them
// through a ui.Session.
//
// A scenario is a YAML document:
//
//	size: [640, 480]
//	theme: light
//	frames:
//	  - pointer: [120, 40]
//	  - pointer: [120, 40]
//	    down: true
//	  - pointer: [200, 40]
//	    down: true
//	    repeat: 3
//	  - key: h
//	  - key: backspace
//
// A frame without a pointer keeps the previous position. Keys are either
// literal text or one of the names backspace, return, enter, escape, tab
// and space.
package scenario

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framekit/imui/io/event"
	"github.com/framekit/imui/io/key"
	"github.com/framekit/imui/io/pointer"
	"github.com/framekit/imui/paint"
	"github.com/framekit/imui/ui"
)

// DefaultSize is the window size of scenarios that do not set one.
var DefaultSize = image.Pt(640, 480)

// Scenario is a sequence of input frames.
type Scenario struct {
	Size   image.Point
	Theme  string
	Frames []Frame
}

// Frame is the input state of one frame.
type Frame struct {
	// Pointer is nil when the pointer does not move.
	Pointer *image.Point
	Down    bool
	Key     key.Event
}

type file struct {
	Size   []int  `yaml:"size,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
	Frames []struct {
		Pointer []int  `yaml:"pointer,omitempty"`
		Down    bool   `yaml:"down,omitempty"`
		Key     string `yaml:"key,omitempty"`
		Repeat  int    `yaml:"repeat,omitempty"`
	} `yaml:"frames"`
}

var keyNames = map[string]key.Name{
	"backspace": key.NameDeleteBackward,
	"return":    key.NameReturn,
	"enter":     key.NameEnter,
	"escape":    key.NameEscape,
	"tab":       key.NameTab,
	"space":     key.NameSpace,
}

// ErrNoFrames is returned for scenarios without frames.
var ErrNoFrames = errors.New("scenario: no frames")

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	sc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Decode parses a YAML scenario. Repeated frames are expanded.
func Decode(data []byte) (*Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	sc := &Scenario{Size: DefaultSize, Theme: f.Theme}
	if f.Size != nil {
		p, err := point("size", f.Size)
		if err != nil {
			return nil, err
		}
		if p.X <= 0 || p.Y <= 0 {
			return nil, fmt.Errorf("scenario: size %v is empty", p)
		}
		sc.Size = p
	}
	for i, ff := range f.Frames {
		var fr Frame
		if ff.Pointer != nil {
			p, err := point(fmt.Sprintf("frame %d: pointer", i), ff.Pointer)
			if err != nil {
				return nil, err
			}
			fr.Pointer = &p
		}
		fr.Down = ff.Down
		if ff.Key != "" {
			if n, ok := keyNames[strings.ToLower(ff.Key)]; ok {
				fr.Key = key.Named(n)
			} else {
				fr.Key = key.Event{Text: ff.Key}
			}
		}
		if ff.Repeat < 0 {
			return nil, fmt.Errorf("scenario: frame %d: negative repeat %d", i, ff.Repeat)
		}
		for n := max(ff.Repeat, 1); n > 0; n-- {
			sc.Frames = append(sc.Frames, fr)
		}
	}
	if len(sc.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return sc, nil
}

func point(what string, v []int) (image.Point, error) {
	if len(v) != 2 {
		return image.Point{}, fmt.Errorf("scenario: %s needs 2 coordinates, got %d", what, len(v))
	}
	return image.Pt(v[0], v[1]), nil
}

// Run replays the frames through s painting on surf. Each frame calls
// layout between Session.Begin and Session.End and then done with the
// frame index. Run stops at the first error from done.
func (sc *Scenario) Run(s *ui.Session, surf paint.Surface, layout func(), done func(frame int) error) error {
	pos := s.Pointer()
	down := s.Down()
	for i, fr := range sc.Frames {
		if fr.Pointer != nil {
			pos = *fr.Pointer
		}
		s.Queue(frameEvents(pos, down, fr)...)
		down = fr.Down
		s.Begin(surf)
		layout()
		s.End()
		if done != nil {
			if err := done(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// frameEvents converts a frame to the pointer and key events that move the
// session from the previous button state.
func frameEvents(pos image.Point, wasDown bool, fr Frame) []event.Event {
	kind := pointer.Move
	switch {
	case fr.Down && !wasDown:
		kind = pointer.Press
	case !fr.Down && wasDown:
		kind = pointer.Release
	}
	e := pointer.Event{Kind: kind, Position: pos}
	if fr.Down {
		e.Buttons = pointer.ButtonPrimary
	}
	evs := []event.Event{e}
	if fr.Key.Text != "" {
		evs = append(evs, fr.Key)
	}
	return evs
}
