package dispatch

import (
	"errors"
	"testing"

	"github.com/bendahl/uinput"
	"github.com/goPadKeys/keymaps"
)

type keyEvent struct {
	down bool
	code int
}

type fakeKeyboard struct {
	events []keyEvent
	closed bool
}

func (f *fakeKeyboard) KeyDown(key int) error {
	f.events = append(f.events, keyEvent{true, key})
	return nil
}

func (f *fakeKeyboard) KeyUp(key int) error {
	f.events = append(f.events, keyEvent{false, key})
	return nil
}

func (f *fakeKeyboard) Close() error {
	f.closed = true
	return nil
}

func tapSymbol(t *testing.T, u *UinputInjector, sym keymaps.Symbol) {
	t.Helper()
	if err := u.Press(sym); err != nil {
		t.Fatalf("press %v: %v", sym, err)
	}
	if err := u.Release(sym); err != nil {
		t.Fatalf("release %v: %v", sym, err)
	}
}

func expectEvents(t *testing.T, got, want []keyEvent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestUinputInjector_NamedKey(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, keymaps.GetUSLayout())

	tapSymbol(t, u, keymaps.Named(keymaps.KeyCtrl))

	expectEvents(t, kb.events, []keyEvent{
		{true, uinput.KeyLeftctrl},
		{false, uinput.KeyLeftctrl},
	})
}

func TestUinputInjector_ShiftedLiteral(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, keymaps.GetUSLayout())

	tapSymbol(t, u, keymaps.Literal('A'))

	expectEvents(t, kb.events, []keyEvent{
		{true, uinput.KeyLeftshift},
		{true, uinput.KeyA},
		{false, uinput.KeyA},
		{false, uinput.KeyLeftshift},
	})
}

func TestUinputInjector_PlainLiteral(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, keymaps.GetUSLayout())

	tapSymbol(t, u, keymaps.Literal('7'))

	expectEvents(t, kb.events, []keyEvent{
		{true, uinput.Key7},
		{false, uinput.Key7},
	})
}

func TestUinputInjector_UnsupportedRune(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, keymaps.GetUSLayout())

	if err := u.Press(keymaps.Literal('€')); !errors.Is(err, ErrUnsupportedSymbol) {
		t.Errorf("expected ErrUnsupportedSymbol, got %v", err)
	}
	if len(kb.events) != 0 {
		t.Errorf("expected no key events, got %v", kb.events)
	}
}

func TestUinputInjector_Close(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, nil)
	if err := u.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kb.closed {
		t.Error("expected keyboard to be closed")
	}
}

func TestDispatcherWithUinput(t *testing.T) {
	kb := &fakeKeyboard{}
	u := newUinputInjector(kb, keymaps.GetUSLayout())
	d, _ := newTestDispatcher(t, u, nil)

	if err := d.Dispatch("Hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectEvents(t, kb.events, []keyEvent{
		{true, uinput.KeyLeftshift},
		{true, uinput.KeyH},
		{false, uinput.KeyH},
		{false, uinput.KeyLeftshift},
		{true, uinput.KeyI},
		{false, uinput.KeyI},
	})
}
