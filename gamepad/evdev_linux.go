//go:build linux

package gamepad

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"syscall"
	"unsafe"

	evdev "github.com/gvalkov/golang-evdev"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	evdevGlob = "/dev/input/event*"

	// EVIOCGABS(0): _IOR('E', 0x40 + abs, struct input_absinfo)
	eviocgabs = 0x80184540

	// Upper bound on reads per Poll so a chatty device cannot starve the loop.
	maxReadsPerPoll = 16
)

// absInfo mirrors struct input_absinfo.
type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

type axisRange struct {
	index    int
	min, max int32
}

// EvdevProvider discovers gamepads among the Linux event devices.
type EvdevProvider struct {
	glob   string
	grab   bool
	logger *zap.SugaredLogger
}

func newEvdevProvider(grab bool, logger *zap.SugaredLogger) (Provider, error) {
	return &EvdevProvider{glob: evdevGlob, grab: grab, logger: logger}, nil
}

// Enumerate lists every readable event device.
func (p *EvdevProvider) Enumerate() ([]DeviceInfo, error) {
	devFiles, err := filepath.Glob(p.glob)
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var infos []DeviceInfo
	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}
		infos = append(infos, DeviceInfo{ID: path, Name: dev.Name})
		dev.File.Close()
	}
	return infos, nil
}

// Open opens the event device at path and builds its button and axis
// index tables.
func (p *EvdevProvider) Open(path string) (Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	d := &evdevDevice{
		device:  dev,
		name:    dev.Name,
		path:    path,
		fd:      dev.File.Fd(),
		buttons: make(map[uint16]int),
		axes:    make(map[uint16]axisRange),
	}

	var keyCodes, absCodes []int
	for ct, codes := range dev.Capabilities {
		for _, c := range codes {
			switch ct.Type {
			case evdev.EV_KEY:
				if c.Code >= evdev.BTN_MISC {
					keyCodes = append(keyCodes, c.Code)
				}
			case evdev.EV_ABS:
				absCodes = append(absCodes, c.Code)
			}
		}
	}

	for i, code := range sortedCodes(keyCodes) {
		d.buttons[uint16(code)] = i
	}
	for i, code := range sortedCodes(absCodes) {
		info, err := readAbsInfo(d.fd, code)
		if err != nil {
			p.logger.Debugw("Failed to read axis range", "device", path, "axis", code, "error", err)
			continue
		}
		d.axes[uint16(code)] = axisRange{index: i, min: info.Minimum, max: info.Maximum}
	}

	if p.grab {
		if err := dev.Grab(); err != nil {
			p.logger.Warnw("Failed to grab device", "device", path, "error", err)
		} else {
			d.grabbed = true
		}
	}

	p.logger.Debugw("Opened event device", "device", path, "name", dev.Name,
		"buttons", len(d.buttons), "axes", len(d.axes))
	return d, nil
}

// sortedCodes returns codes in ascending order, which is the order the
// joystick API assigns button and axis indices in.
func sortedCodes(codes []int) []int {
	out := append([]int(nil), codes...)
	sort.Ints(out)
	return out
}

func readAbsInfo(fd uintptr, code int) (absInfo, error) {
	var info absInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(eviocgabs)+uintptr(code), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return info, errno
	}
	return info, nil
}

type evdevDevice struct {
	device  *evdev.InputDevice
	name    string
	path    string
	fd      uintptr
	grabbed bool
	buttons map[uint16]int
	axes    map[uint16]axisRange
}

func (d *evdevDevice) Name() string { return d.name }

func (d *evdevDevice) Poll() ([]Event, error) {
	var out []Event
	for i := 0; i < maxReadsPerPoll; i++ {
		ready, err := d.readable()
		if err != nil || !ready {
			return out, err
		}

		events, err := d.device.Read()
		if err != nil {
			if isGone(err) {
				return out, fmt.Errorf("%w: read %s: %v", ErrDeviceGone, d.path, err)
			}
			return out, fmt.Errorf("read %s: %w", d.path, err)
		}

		for _, ev := range events {
			if e, ok := d.translate(ev); ok {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// readable polls the device fd without blocking.
func (d *evdevDevice) readable() (bool, error) {
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("poll %s: %w", d.path, err)
		}
		if n == 0 {
			return false, nil
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 {
			return false, fmt.Errorf("%w: hangup on %s", ErrDeviceGone, d.path)
		}
		return fds[0].Revents&unix.POLLIN != 0, nil
	}
}

// translate converts an evdev event into a raw gamepad event. Key
// autorepeat (value 2) is reported as another button-down.
func (d *evdevDevice) translate(ev evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_KEY:
		idx, ok := d.buttons[ev.Code]
		if !ok {
			return Event{}, false
		}
		switch ev.Value {
		case 0:
			return Up(idx), true
		case 1, 2:
			return Down(idx), true
		}
	case evdev.EV_ABS:
		ax, ok := d.axes[ev.Code]
		if !ok {
			return Event{}, false
		}
		return Axis(ax.index, NormalizeAxis(ev.Value, ax.min, ax.max)), true
	}
	return Event{}, false
}

func (d *evdevDevice) Close() error {
	if d.grabbed {
		d.device.Release()
	}
	return d.device.File.Close()
}

func isGone(err error) bool {
	return errors.Is(err, syscall.ENODEV) || errors.Is(err, io.EOF)
}
