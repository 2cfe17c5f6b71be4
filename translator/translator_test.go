package translator

import (
	"testing"
	"time"

	"github.com/goPadKeys/dispatch"
	"github.com/goPadKeys/gamepad"
	"github.com/goPadKeys/keymaps"
	"go.uber.org/zap/zaptest"
)

type recordingFirer struct {
	fired []gamepad.Button
}

func (r *recordingFirer) Fire(b gamepad.Button) {
	r.fired = append(r.fired, b)
}

func (r *recordingFirer) count(b gamepad.Button) int {
	n := 0
	for _, f := range r.fired {
		if f == b {
			n++
		}
	}
	return n
}

// pressCounter counts key presses delivered by a real dispatcher.
type pressCounter struct {
	presses  []keymaps.Symbol
	releases int
}

func (p *pressCounter) Press(sym keymaps.Symbol) error {
	p.presses = append(p.presses, sym)
	return nil
}

func (p *pressCounter) Release(keymaps.Symbol) error {
	p.releases++
	return nil
}

func TestButtonDebounce_DispatchesSpaceTwice(t *testing.T) {
	inj := &pressCounter{}
	d := dispatch.New(inj, map[gamepad.Button]string{gamepad.ButtonA: "space"}, time.Nanosecond, zaptest.NewLogger(t).Sugar())
	tr := New(0.5, d)

	tr.HandleAll([]gamepad.Event{
		gamepad.Down(0),
		gamepad.Down(0),
		gamepad.Up(0),
		gamepad.Down(0),
	})

	if len(inj.presses) != 2 {
		t.Fatalf("expected 2 presses, got %d", len(inj.presses))
	}
	for i, sym := range inj.presses {
		if sym != keymaps.Named(keymaps.KeySpace) {
			t.Errorf("press %d: expected space, got %v", i, sym)
		}
	}
	if inj.releases != 2 {
		t.Errorf("expected 2 releases, got %d", inj.releases)
	}
}

func TestUnmappedButtonInjectsNothing(t *testing.T) {
	inj := &pressCounter{}
	d := dispatch.New(inj, map[gamepad.Button]string{gamepad.ButtonA: "space"}, time.Nanosecond, zaptest.NewLogger(t).Sugar())
	tr := New(0.5, d)

	tr.HandleAll([]gamepad.Event{gamepad.Down(1), gamepad.Down(7), gamepad.Axis(3, 1)})

	if len(inj.presses) != 0 {
		t.Errorf("expected no presses, got %v", inj.presses)
	}
}

func TestButtonIndexTable(t *testing.T) {
	want := []gamepad.Button{
		gamepad.ButtonA, gamepad.ButtonB, gamepad.ButtonX, gamepad.ButtonY,
		gamepad.ButtonLeftTrigger, gamepad.ButtonRightTrigger,
		gamepad.ButtonSelect, gamepad.ButtonStart,
		gamepad.ButtonLeftStick, gamepad.ButtonRightStick,
	}
	f := &recordingFirer{}
	tr := New(0.5, f)
	for id := range want {
		tr.Handle(gamepad.Down(id))
	}
	if len(f.fired) != len(want) {
		t.Fatalf("expected %d firings, got %v", len(want), f.fired)
	}
	for i := range want {
		if f.fired[i] != want[i] {
			t.Errorf("id %d: expected %s, got %s", i, want[i], f.fired[i])
		}
	}

	if _, ok := buttonIndex[10]; ok {
		t.Error("expected id 10 to be unmapped")
	}
}

func TestUnknownButtonIDIgnored(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)
	if tr.Handle(gamepad.Down(12)) || tr.Handle(gamepad.Down(-1)) {
		t.Error("expected unknown ids not to fire")
	}
	if len(f.fired) != 0 {
		t.Errorf("expected no firings, got %v", f.fired)
	}
}

func TestButtonUpNeverFires(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	for id := 0; id < 10; id++ {
		if tr.Handle(gamepad.Up(id)) {
			t.Errorf("id %d: button-up fired", id)
		}
	}
	tr.Handle(gamepad.Down(2))
	if tr.Handle(gamepad.Up(2)) {
		t.Error("button-up after down fired")
	}
	if len(f.fired) != 1 {
		t.Errorf("expected only the down edge to fire, got %v", f.fired)
	}
}

func TestTriggerEdges(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	fired := tr.HandleAll([]gamepad.Event{
		gamepad.Axis(2, 0.6),
		gamepad.Axis(2, 0.7),
		gamepad.Axis(2, 0.3),
		gamepad.Axis(2, 0.6),
	})

	if fired != 2 || f.count(gamepad.ButtonLeftTrigger) != 2 {
		t.Errorf("expected 2 LEFT_TRIGGER firings, got %v", f.fired)
	}
}

func TestTriggerThresholdIsExclusive(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	tr.HandleAll([]gamepad.Event{gamepad.Axis(3, 0.5), gamepad.Axis(3, 0.5)})
	if len(f.fired) != 0 {
		t.Errorf("expected value at threshold not to fire, got %v", f.fired)
	}
	tr.Handle(gamepad.Axis(3, 0.51))
	if f.count(gamepad.ButtonRightTrigger) != 1 {
		t.Errorf("expected RIGHT_TRIGGER, got %v", f.fired)
	}
}

func TestTriggerUsesMagnitude(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	// Triggers resting at -1 report a large magnitude.
	tr.HandleAll([]gamepad.Event{gamepad.Axis(2, -0.9), gamepad.Axis(2, -0.8), gamepad.Axis(2, 0), gamepad.Axis(2, 0.9)})
	if f.count(gamepad.ButtonLeftTrigger) != 2 {
		t.Errorf("expected 2 firings, got %v", f.fired)
	}
}

func TestTriggersAreIndependent(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.3, f)

	tr.HandleAll([]gamepad.Event{
		gamepad.Axis(2, 0.9),
		gamepad.Axis(3, 0.9),
		gamepad.Axis(2, 0.0),
		gamepad.Axis(3, 0.8),
		gamepad.Axis(2, 0.4),
	})
	if f.count(gamepad.ButtonLeftTrigger) != 2 {
		t.Errorf("expected 2 LEFT_TRIGGER, got %v", f.fired)
	}
	if f.count(gamepad.ButtonRightTrigger) != 1 {
		t.Errorf("expected 1 RIGHT_TRIGGER, got %v", f.fired)
	}
}

func TestDpadRepeatsWhileHeld(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	fired := tr.HandleAll([]gamepad.Event{gamepad.Axis(0, 0.9), gamepad.Axis(0, 0.9)})
	if fired != 2 || f.count(gamepad.ButtonDpadRight) != 2 {
		t.Errorf("expected 2 DPAD_RIGHT firings, got %v", f.fired)
	}
}

func TestDpadDirections(t *testing.T) {
	tests := []struct {
		ev   gamepad.Event
		want gamepad.Button
	}{
		{gamepad.Axis(0, 0.6), gamepad.ButtonDpadRight},
		{gamepad.Axis(0, -0.6), gamepad.ButtonDpadLeft},
		{gamepad.Axis(1, 0.6), gamepad.ButtonDpadDown},
		{gamepad.Axis(1, -0.6), gamepad.ButtonDpadUp},
	}
	for _, tt := range tests {
		f := &recordingFirer{}
		tr := New(0.9, f)
		tr.Handle(tt.ev)
		if len(f.fired) != 1 || f.fired[0] != tt.want {
			t.Errorf("%v: expected %s, got %v", tt.ev, tt.want, f.fired)
		}
	}
}

func TestDpadIgnoresTriggerThreshold(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.1, f)

	tr.HandleAll([]gamepad.Event{gamepad.Axis(0, 0.3), gamepad.Axis(1, -0.5), gamepad.Axis(0, 0.5)})
	if len(f.fired) != 0 {
		t.Errorf("expected no firings at or below 0.5, got %v", f.fired)
	}
}

func TestOtherAxesIgnored(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	tr.HandleAll([]gamepad.Event{gamepad.Axis(4, 1), gamepad.Axis(5, -1), gamepad.Axis(6, 1)})
	if len(f.fired) != 0 {
		t.Errorf("expected no firings, got %v", f.fired)
	}
}

func TestReset(t *testing.T) {
	f := &recordingFirer{}
	tr := New(0.5, f)

	tr.Handle(gamepad.Down(0))
	tr.Handle(gamepad.Axis(2, 0.9))
	tr.Reset()

	// A fresh session sees the held button and trigger as new edges.
	tr.Handle(gamepad.Down(0))
	tr.Handle(gamepad.Axis(2, 0.9))
	if f.count(gamepad.ButtonA) != 2 || f.count(gamepad.ButtonLeftTrigger) != 2 {
		t.Errorf("expected edges to fire again after reset, got %v", f.fired)
	}
}
