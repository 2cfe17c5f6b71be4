package gamepad

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultKeywords are the name fragments that mark a device as a gamepad.
var DefaultKeywords = []string{"gamepad", "controller", "xbox", "playstation", "nintendo"}

// IsGamepadName reports whether name contains any of keywords, ignoring case.
func IsGamepadName(name string, keywords []string) bool {
	name = strings.ToLower(name)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Session owns the currently active device handle.
type Session struct {
	dev    Device
	info   DeviceInfo
	active bool
	logger *zap.SugaredLogger
}

// Discover queries p for connected devices and opens the first one whose
// name matches keywords. The device list is re-read on every call since
// devices come and go between attempts.
func Discover(p Provider, keywords []string, logger *zap.SugaredLogger) (*Session, error) {
	infos, err := p.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("%w: enumerate devices: %v", ErrNoDevice, err)
	}

	for _, info := range infos {
		if !IsGamepadName(info.Name, keywords) {
			logger.Debugw("Skipping non-gamepad device", "id", info.ID, "name", info.Name)
			continue
		}

		dev, err := p.Open(info.ID)
		if err != nil {
			logger.Warnw("Failed to open gamepad", "id", info.ID, "name", info.Name, "error", err)
			continue
		}

		logger.Infow("Found gamepad", "name", info.Name, "id", info.ID)
		return &Session{
			dev:    dev,
			info:   info,
			active: true,
			logger: logger,
		}, nil
	}

	return nil, ErrNoDevice
}

// Name returns the device name reported at enumeration.
func (s *Session) Name() string {
	return s.info.Name
}

// Active reports whether the session still owns a live device.
func (s *Session) Active() bool {
	return s.active
}

// Poll returns the next batch of raw events. Once the device is gone the
// session releases its handle and every later call returns ErrDeviceGone.
func (s *Session) Poll() ([]Event, error) {
	if !s.active {
		return nil, ErrDeviceGone
	}

	events, err := s.dev.Poll()
	if errors.Is(err, ErrDeviceGone) {
		s.logger.Infow("Gamepad disconnected", "name", s.info.Name, "error", err)
		s.Close()
	}
	return events, err
}

// Close releases the device handle. It is safe to call more than once.
func (s *Session) Close() error {
	if s.dev == nil {
		return nil
	}
	s.active = false
	dev := s.dev
	s.dev = nil
	if err := dev.Close(); err != nil {
		s.logger.Debugw("Error closing device", "name", s.info.Name, "error", err)
		return err
	}
	return nil
}
