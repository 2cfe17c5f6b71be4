package gamepad

import (
	"fmt"

	"go.uber.org/zap"
)

// Backend names accepted by NewProvider.
const (
	BackendEvdev    = "evdev"
	BackendJoystick = "joystick"
)

// NewProvider returns the device provider for backend.
func NewProvider(backend string, grab bool, logger *zap.SugaredLogger) (Provider, error) {
	switch backend {
	case BackendEvdev:
		return newEvdevProvider(grab, logger)
	case BackendJoystick:
		return NewJoystickProvider(defaultJoystickSlots), nil
	default:
		return nil, fmt.Errorf("unknown gamepad backend %q (want %s or %s)", backend, BackendEvdev, BackendJoystick)
	}
}
