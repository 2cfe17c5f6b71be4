// Package translator turns raw gamepad events into logical button firings.
//
// Buttons and trigger axes fire on the idle->pressed (below->above
// threshold) edge only. D-pad emulation on axes 0 and 1 fires on every
// event past the fixed threshold, with no edge tracking, which keeps the
// long-standing repeat-while-held behaviour of stick-driven D-pads.
package translator

import (
	"math"

	"github.com/goPadKeys/gamepad"
)

// DpadThreshold is the fixed deflection past which axes 0 and 1 act as
// D-pad presses, independent of the configured trigger threshold.
const DpadThreshold = 0.5

const (
	axisStickX       = 0
	axisStickY       = 1
	axisLeftTrigger  = 2
	axisRightTrigger = 3
)

// buttonIndex is the fixed raw button id table.
var buttonIndex = map[int]gamepad.Button{
	0: gamepad.ButtonA,
	1: gamepad.ButtonB,
	2: gamepad.ButtonX,
	3: gamepad.ButtonY,
	4: gamepad.ButtonLeftTrigger,
	5: gamepad.ButtonRightTrigger,
	6: gamepad.ButtonSelect,
	7: gamepad.ButtonStart,
	8: gamepad.ButtonLeftStick,
	9: gamepad.ButtonRightStick,
}

// Firer receives logical button firings.
type Firer interface {
	Fire(b gamepad.Button)
}

type trigger int

const (
	leftTrigger trigger = iota
	rightTrigger
)

// Translator holds per-session button and trigger state.
type Translator struct {
	threshold float64
	firer     Firer

	pressed  map[gamepad.Button]bool
	triggers [2]bool
}

// New creates a translator firing into f with the given trigger threshold.
func New(threshold float64, f Firer) *Translator {
	return &Translator{
		threshold: threshold,
		firer:     f,
		pressed:   make(map[gamepad.Button]bool),
	}
}

// Reset forgets all held buttons and triggers. Call it whenever a new
// device session begins.
func (t *Translator) Reset() {
	clear(t.pressed)
	t.triggers = [2]bool{}
}

// Handle applies one raw event and reports whether it fired a button.
func (t *Translator) Handle(ev gamepad.Event) bool {
	switch ev.Kind {
	case gamepad.ButtonDown:
		b, ok := buttonIndex[ev.Index]
		if !ok || t.pressed[b] {
			return false
		}
		t.pressed[b] = true
		return t.fire(b)

	case gamepad.ButtonUp:
		if b, ok := buttonIndex[ev.Index]; ok {
			t.pressed[b] = false
		}
		return false

	case gamepad.AxisMotion:
		switch ev.Index {
		case axisLeftTrigger:
			return t.trigger(leftTrigger, gamepad.ButtonLeftTrigger, ev.Value)
		case axisRightTrigger:
			return t.trigger(rightTrigger, gamepad.ButtonRightTrigger, ev.Value)
		case axisStickX:
			return t.dpad(ev.Value, gamepad.ButtonDpadLeft, gamepad.ButtonDpadRight)
		case axisStickY:
			return t.dpad(ev.Value, gamepad.ButtonDpadUp, gamepad.ButtonDpadDown)
		}
	}
	return false
}

// HandleAll applies events in order and returns how many fired.
func (t *Translator) HandleAll(events []gamepad.Event) int {
	fired := 0
	for _, ev := range events {
		if t.Handle(ev) {
			fired++
		}
	}
	return fired
}

func (t *Translator) trigger(which trigger, b gamepad.Button, value float64) bool {
	if math.Abs(value) <= t.threshold {
		t.triggers[which] = false
		return false
	}
	if t.triggers[which] {
		return false
	}
	t.triggers[which] = true
	return t.fire(b)
}

func (t *Translator) dpad(value float64, negative, positive gamepad.Button) bool {
	switch {
	case value > DpadThreshold:
		return t.fire(positive)
	case value < -DpadThreshold:
		return t.fire(negative)
	}
	return false
}

func (t *Translator) fire(b gamepad.Button) bool {
	t.firer.Fire(b)
	return true
}
