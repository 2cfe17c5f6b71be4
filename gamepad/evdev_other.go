//go:build !linux

package gamepad

import (
	"errors"

	"go.uber.org/zap"
)

func newEvdevProvider(bool, *zap.SugaredLogger) (Provider, error) {
	return nil, errors.New("the evdev backend is only available on linux, use --backend joystick")
}
