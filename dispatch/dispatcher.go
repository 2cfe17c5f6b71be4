// Package dispatch turns logical button firings into synthetic key presses.
package dispatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/goPadKeys/gamepad"
	"github.com/goPadKeys/keymaps"
	"go.uber.org/zap"
)

// DefaultHold is how long a key stays down, the shortest press
// applications reliably notice.
const DefaultHold = 50 * time.Millisecond

// ErrInjection wraps failures reported by the key injector.
var ErrInjection = errors.New("key injection failed")

// Injector is the synthetic keyboard the dispatcher drives.
type Injector interface {
	Press(sym keymaps.Symbol) error
	Release(sym keymaps.Symbol) error
}

// Dispatcher resolves mapped actions and plays them on an Injector.
type Dispatcher struct {
	injector Injector
	mappings map[gamepad.Button]string
	hold     time.Duration
	sleep    func(time.Duration)
	logger   *zap.SugaredLogger
}

// New creates a dispatcher for the given button mappings.
func New(injector Injector, mappings map[gamepad.Button]string, hold time.Duration, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		injector: injector,
		mappings: mappings,
		hold:     hold,
		sleep:    time.Sleep,
		logger:   logger.Named("dispatch"),
	}
}

// Fire dispatches the action mapped to b. Unmapped buttons are ignored.
func (d *Dispatcher) Fire(b gamepad.Button) {
	action, ok := d.mappings[b]
	if !ok {
		return
	}
	d.logger.Infof("Button %s pressed -> %s", b, action)
	d.Dispatch(action)
}

// Dispatch taps every symbol of the named action in order. Failures are
// logged and returned; they never stop the remaining symbols.
func (d *Dispatcher) Dispatch(name string) error {
	action := keymaps.Resolve(name)

	var errs []error
	for _, sym := range action.Symbols {
		if err := d.tap(sym); err != nil {
			d.logger.Warnw("Failed to inject key", "action", name, "symbol", sym, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// tap presses sym, holds it, then releases it. The release is attempted
// even when the press failed so no key is left logically held.
func (d *Dispatcher) tap(sym keymaps.Symbol) (err error) {
	defer func() {
		if rerr := d.injector.Release(sym); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: release %s: %v", ErrInjection, sym, rerr))
		}
	}()

	if err := d.injector.Press(sym); err != nil {
		return fmt.Errorf("%w: press %s: %v", ErrInjection, sym, err)
	}
	d.sleep(d.hold)
	return nil
}
