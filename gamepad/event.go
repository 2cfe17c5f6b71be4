package gamepad

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceGone is returned by Poll once the device has been unplugged
	// or otherwise stopped delivering events.
	ErrDeviceGone = errors.New("gamepad disconnected")

	// ErrNoDevice is returned by Discover when no connected device looks
	// like a gamepad.
	ErrNoDevice = errors.New("no gamepad detected")
)

// EventKind distinguishes raw event variants.
type EventKind uint8

const (
	ButtonDown EventKind = iota + 1
	ButtonUp
	AxisMotion
)

func (k EventKind) String() string {
	switch k {
	case ButtonDown:
		return "button-down"
	case ButtonUp:
		return "button-up"
	case AxisMotion:
		return "axis-motion"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is a raw gamepad event. Index is the button id for button events
// and the axis id for axis events. Value is only meaningful for axis
// motion and lies in [-1, 1].
type Event struct {
	Kind  EventKind
	Index int
	Value float64
}

func (e Event) String() string {
	if e.Kind == AxisMotion {
		return fmt.Sprintf("%s(%d, %.2f)", e.Kind, e.Index, e.Value)
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Down returns a button-down event for button id.
func Down(id int) Event { return Event{Kind: ButtonDown, Index: id} }

// Up returns a button-up event for button id.
func Up(id int) Event { return Event{Kind: ButtonUp, Index: id} }

// Axis returns an axis-motion event.
func Axis(axis int, value float64) Event { return Event{Kind: AxisMotion, Index: axis, Value: value} }

// DeviceInfo describes an enumerated input device.
type DeviceInfo struct {
	ID   string
	Name string
}

// Provider enumerates and opens input devices.
type Provider interface {
	Enumerate() ([]DeviceInfo, error)
	Open(id string) (Device, error)
}

// Device is an open input device handle.
type Device interface {
	Name() string
	// Poll returns the events pending since the last call, in arrival
	// order, without blocking. It returns ErrDeviceGone once the device
	// has disappeared.
	Poll() ([]Event, error)
	Close() error
}
