package dispatch

import (
	"errors"
	"fmt"

	"github.com/bendahl/uinput"
	"github.com/goPadKeys/keymaps"
)

// DefaultUinputPath is the uinput control node.
const DefaultUinputPath = "/dev/uinput"

// ErrUnsupportedSymbol is returned for symbols the layout cannot type.
var ErrUnsupportedSymbol = errors.New("no key code for symbol")

// keyboard is the part of uinput.Keyboard the injector uses.
type keyboard interface {
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

// UinputInjector types symbols on a uinput virtual keyboard.
type UinputInjector struct {
	kb     keyboard
	layout keymaps.Layout
}

// NewUinputInjector creates the virtual keyboard at path.
func NewUinputInjector(path, name string, layout keymaps.Layout) (*UinputInjector, error) {
	kb, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	return newUinputInjector(kb, layout), nil
}

func newUinputInjector(kb keyboard, layout keymaps.Layout) *UinputInjector {
	return &UinputInjector{kb: kb, layout: layout}
}

func (u *UinputInjector) keystroke(sym keymaps.Symbol) (keymaps.Keystroke, error) {
	switch sym.Kind {
	case keymaps.NamedSymbol:
		if code, ok := keymaps.Code(sym.Key); ok {
			return keymaps.Keystroke{Code: code}, nil
		}
	case keymaps.LiteralSymbol:
		if ks, ok := u.layout[sym.Char]; ok {
			return ks, nil
		}
	}
	return keymaps.Keystroke{}, fmt.Errorf("%w: %s", ErrUnsupportedSymbol, sym)
}

// Press puts the key for sym down, shift first when the layout needs it.
func (u *UinputInjector) Press(sym keymaps.Symbol) error {
	ks, err := u.keystroke(sym)
	if err != nil {
		return err
	}
	if ks.Shift {
		if err := u.kb.KeyDown(uinput.KeyLeftshift); err != nil {
			return err
		}
	}
	return u.kb.KeyDown(ks.Code)
}

// Release lifts the key for sym and any shift Press added.
func (u *UinputInjector) Release(sym keymaps.Symbol) error {
	ks, err := u.keystroke(sym)
	if err != nil {
		return err
	}
	err = u.kb.KeyUp(ks.Code)
	if ks.Shift {
		err = errors.Join(err, u.kb.KeyUp(uinput.KeyLeftshift))
	}
	return err
}

// Close destroys the virtual keyboard.
func (u *UinputInjector) Close() error {
	return u.kb.Close()
}
