package gamepad

import "strings"

// Button is a device-independent logical button name.
type Button string

const (
	ButtonA            Button = "A"
	ButtonB            Button = "B"
	ButtonX            Button = "X"
	ButtonY            Button = "Y"
	ButtonStart        Button = "START"
	ButtonSelect       Button = "SELECT"
	ButtonLeftTrigger  Button = "LEFT_TRIGGER"
	ButtonRightTrigger Button = "RIGHT_TRIGGER"
	ButtonDpadUp       Button = "DPAD_UP"
	ButtonDpadDown     Button = "DPAD_DOWN"
	ButtonDpadLeft     Button = "DPAD_LEFT"
	ButtonDpadRight    Button = "DPAD_RIGHT"
	ButtonLeftStick    Button = "LEFT_STICK"
	ButtonRightStick   Button = "RIGHT_STICK"
)

// Buttons lists every logical button in display order.
var Buttons = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonStart, ButtonSelect,
	ButtonLeftTrigger, ButtonRightTrigger,
	ButtonDpadUp, ButtonDpadDown, ButtonDpadLeft, ButtonDpadRight,
	ButtonLeftStick, ButtonRightStick,
}

// ParseButton matches name case-insensitively against the logical buttons.
func ParseButton(name string) (Button, bool) {
	b := Button(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Buttons {
		if b == known {
			return b, true
		}
	}
	return "", false
}
