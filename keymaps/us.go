package keymaps

import "github.com/bendahl/uinput"

const LayoutUS = "us"

// GetUSLayout returns the character layout of a US keyboard
func GetUSLayout() Layout {
	l := Layout{
		' ':  {Code: uinput.KeySpace},
		'\n': {Code: uinput.KeyEnter},
		'\t': {Code: uinput.KeyTab},
	}

	letters := []int{
		uinput.KeyA, uinput.KeyB, uinput.KeyC, uinput.KeyD, uinput.KeyE,
		uinput.KeyF, uinput.KeyG, uinput.KeyH, uinput.KeyI, uinput.KeyJ,
		uinput.KeyK, uinput.KeyL, uinput.KeyM, uinput.KeyN, uinput.KeyO,
		uinput.KeyP, uinput.KeyQ, uinput.KeyR, uinput.KeyS, uinput.KeyT,
		uinput.KeyU, uinput.KeyV, uinput.KeyW, uinput.KeyX, uinput.KeyY,
		uinput.KeyZ,
	}
	for i, code := range letters {
		l['a'+rune(i)] = Keystroke{Code: code}
		l['A'+rune(i)] = Keystroke{Code: code, Shift: true}
	}

	// Keys that type a second character with shift held
	digits := []struct {
		plain, shifted rune
		code           int
	}{
		{'1', '!', uinput.Key1},
		{'2', '@', uinput.Key2},
		{'3', '#', uinput.Key3},
		{'4', '$', uinput.Key4},
		{'5', '%', uinput.Key5},
		{'6', '^', uinput.Key6},
		{'7', '&', uinput.Key7},
		{'8', '*', uinput.Key8},
		{'9', '(', uinput.Key9},
		{'0', ')', uinput.Key0},
		{'-', '_', uinput.KeyMinus},
		{'=', '+', uinput.KeyEqual},
		{'[', '{', uinput.KeyLeftbrace},
		{']', '}', uinput.KeyRightbrace},
		{';', ':', uinput.KeySemicolon},
		{'\'', '"', uinput.KeyApostrophe},
		{'`', '~', uinput.KeyGrave},
		{'\\', '|', uinput.KeyBackslash},
		{',', '<', uinput.KeyComma},
		{'.', '>', uinput.KeyDot},
		{'/', '?', uinput.KeySlash},
	}
	for _, d := range digits {
		l[d.plain] = Keystroke{Code: d.code}
		l[d.shifted] = Keystroke{Code: d.code, Shift: true}
	}

	return l
}

// RegisterUSLayout registers the US layout with the provider
func RegisterUSLayout(provider *LayoutProvider) {
	provider.RegisterLayout(LayoutUS, GetUSLayout())
}
