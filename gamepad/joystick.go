package gamepad

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/0xcafed00d/joystick"
)

const (
	defaultJoystickSlots = 4

	// joystick reports axes as signed 16-bit readings.
	joystickAxisMax = 32767

	// Buttons arrive as a 32-bit mask.
	joystickMaxButtons = 32

	// The library fills in the initial state in the background after
	// Open, so the baseline is taken only once this much time has passed.
	joystickSettle = 100 * time.Millisecond
)

// JoystickProvider probes the platform joystick API by slot index.
type JoystickProvider struct {
	slots int
}

// NewJoystickProvider returns a provider probing slots 0..slots-1.
func NewJoystickProvider(slots int) *JoystickProvider {
	return &JoystickProvider{slots: slots}
}

func (p *JoystickProvider) Enumerate() ([]DeviceInfo, error) {
	var infos []DeviceInfo
	for i := 0; i < p.slots; i++ {
		js, err := joystick.Open(i)
		if err != nil {
			continue
		}
		infos = append(infos, DeviceInfo{ID: strconv.Itoa(i), Name: joystickName(js)})
		js.Close()
	}
	return infos, nil
}

func (p *JoystickProvider) Open(id string) (Device, error) {
	slot, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("invalid joystick slot %q: %w", id, err)
	}
	js, err := joystick.Open(slot)
	if err != nil {
		return nil, fmt.Errorf("open joystick %d: %w", slot, err)
	}
	return newJoystickDevice(js, time.Now), nil
}

// joystickName strips the NUL padding some platforms leave in the name.
func joystickName(js joystick.Joystick) string {
	return strings.TrimRight(js.Name(), "\x00")
}

// joystickDevice turns successive state snapshots into raw events.
type joystickDevice struct {
	js       joystick.Joystick
	name     string
	now      func() time.Time
	settleAt time.Time
	prev     joystick.State
	primed   bool
}

func newJoystickDevice(js joystick.Joystick, now func() time.Time) *joystickDevice {
	return &joystickDevice{
		js:       js,
		name:     joystickName(js),
		now:      now,
		settleAt: now().Add(joystickSettle),
	}
}

func (d *joystickDevice) Name() string { return d.name }

func (d *joystickDevice) Poll() ([]Event, error) {
	state, err := d.js.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceGone, err)
	}

	// The first settled snapshot only establishes the resting position.
	if !d.primed {
		if d.now().Before(d.settleAt) {
			return nil, nil
		}
		d.prev = copyState(state)
		d.primed = true
		return nil, nil
	}

	events := diffStates(d.prev, state, d.js.ButtonCount())
	d.prev = copyState(state)
	return events, nil
}

func (d *joystickDevice) Close() error {
	d.js.Close()
	return nil
}

func copyState(s joystick.State) joystick.State {
	s.AxisData = append([]int(nil), s.AxisData...)
	return s
}

// diffStates emits button transitions in ascending button order followed
// by motion for every axis whose reading changed.
func diffStates(prev, cur joystick.State, buttons int) []Event {
	if buttons > joystickMaxButtons {
		buttons = joystickMaxButtons
	}

	var events []Event
	changed := prev.Buttons ^ cur.Buttons
	for i := 0; i < buttons; i++ {
		bit := uint32(1) << uint(i)
		if changed&bit == 0 {
			continue
		}
		if cur.Buttons&bit != 0 {
			events = append(events, Down(i))
		} else {
			events = append(events, Up(i))
		}
	}

	for i, raw := range cur.AxisData {
		if i < len(prev.AxisData) && prev.AxisData[i] == raw {
			continue
		}
		events = append(events, Axis(i, NormalizeAxis(int32(raw), -joystickAxisMax, joystickAxisMax)))
	}
	return events
}
