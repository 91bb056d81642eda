package ui

import (
	"image/color"
	"vincit.fi/geometry/event"
)

// Component is the part of a host toolkit widget the rollover adapter needs.
// The host toolkit implements this and forwards its mouse events.
type Component interface {
	Foreground() color.Color
	SetForeground(foreground color.Color)
}

var DefaultRolloverColor = color.RGBA{R: 0xFF, A: 0xFF}

// RolloverAdapter swaps a component's foreground color while the mouse is
// over the component. Not safe for concurrent use; drive it from the
// toolkit's event dispatch like any other listener.
type RolloverAdapter struct {
	rolloverColor color.Color
	oldForeground color.Color
}

func NewRolloverAdapter() *RolloverAdapter {
	return &RolloverAdapter{
		rolloverColor: DefaultRolloverColor,
	}
}

func (s *RolloverAdapter) RolloverColor() color.Color {
	return s.rolloverColor
}

// SetRolloverColor changes the highlight color. A nil color disables the
// adapter.
func (s *RolloverAdapter) SetRolloverColor(rolloverColor color.Color) {
	s.rolloverColor = rolloverColor
}

func (s *RolloverAdapter) MouseEntered(component Component) {
	if component == nil || s.rolloverColor == nil {
		return
	}
	s.oldForeground = component.Foreground()
	component.SetForeground(s.rolloverColor)
}

// MouseExited restores the saved foreground, unless the foreground was
// changed to something else while the mouse was over the component.
func (s *RolloverAdapter) MouseExited(component Component) {
	if component == nil || s.oldForeground == nil {
		return
	}
	if sameColor(component.Foreground(), s.rolloverColor) {
		component.SetForeground(s.oldForeground)
	}
}

// Register subscribes the adapter to the broker's mouse topics for the given
// component.
func (s *RolloverAdapter) Register(broker *event.Broker, component Component) {
	broker.Subscribe(event.MouseEntered, func() {
		s.MouseEntered(component)
	})
	broker.Subscribe(event.MouseExited, func() {
		s.MouseExited(component)
	})
}

func sameColor(a color.Color, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
