// Package mapper drives discovery, polling and reconnects.
package mapper

import (
	"context"
	"errors"
	"time"

	"github.com/goPadKeys/config"
	"github.com/goPadKeys/gamepad"
	"go.uber.org/zap"
)

// DiscoveryBackoff is the pause between two failed discovery attempts.
const DiscoveryBackoff = 2 * time.Second

// Sleeper waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Translator consumes raw events for the active session.
type Translator interface {
	Reset()
	HandleAll(events []gamepad.Event) int
}

// Controller owns the device session and the run state. It runs on a
// single goroutine: discovery, polling, translation and key injection
// happen one after the other, so a slow key press delays the next poll
// rather than racing it.
type Controller struct {
	cfg        config.Config
	provider   gamepad.Provider
	translator Translator
	keywords   []string
	logger     *zap.SugaredLogger
	devLogger  *zap.SugaredLogger

	pollWait    Sleeper
	backoffWait Sleeper

	state   State
	session *gamepad.Session
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeywords replaces the device name keywords used for discovery.
func WithKeywords(keywords []string) Option {
	return func(c *Controller) { c.keywords = keywords }
}

// WithPollSleeper replaces the wait between two polls.
func WithPollSleeper(s Sleeper) Option {
	return func(c *Controller) { c.pollWait = s }
}

// WithBackoff replaces the wait between discovery attempts.
func WithBackoff(s Sleeper) Option {
	return func(c *Controller) { c.backoffWait = s }
}

// New creates a stopped controller.
func New(cfg config.Config, provider gamepad.Provider, translator Translator, logger *zap.SugaredLogger, opts ...Option) *Controller {
	c := &Controller{
		cfg:         cfg,
		provider:    provider,
		translator:  translator,
		keywords:    gamepad.DefaultKeywords,
		logger:      logger.Named("mapper"),
		devLogger:   logger.Named("gamepad"),
		pollWait:    Sleep,
		backoffWait: Sleep,
		state:       Stopped,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current run state.
func (c *Controller) State() State {
	return c.state
}

// Run drives the controller until ctx is cancelled or discovery gives up
// with auto restart disabled. ctx is checked at the top of every
// iteration and during every wait; an event batch is never interrupted.
func (c *Controller) Run(ctx context.Context) error {
	defer c.shutdown()

	c.setState(Discovering)
	for c.state != Stopped {
		if ctx.Err() != nil {
			c.logger.Debugw("Stop requested", "state", c.state)
			c.setState(Stopped)
			break
		}

		switch c.state {
		case Discovering:
			c.discover(ctx)
		case Active:
			c.poll(ctx)
		}
	}
	return nil
}

func (c *Controller) discover(ctx context.Context) {
	session, err := gamepad.Discover(c.provider, c.keywords, c.devLogger)
	if err != nil {
		c.logger.Debugw("Discovery failed", "error", err)
		c.logger.Info("No gamepad detected. Waiting for connection...")

		if !c.cfg.AutoRestart {
			c.logger.Info("Auto restart disabled, stopping")
			c.setState(Stopped)
			return
		}
		if err := c.backoffWait(ctx, DiscoveryBackoff); err != nil {
			c.setState(Stopped)
		}
		return
	}

	c.session = session
	c.translator.Reset()
	c.logMappings()
	c.setState(Active)
}

func (c *Controller) poll(ctx context.Context) {
	events, err := c.session.Poll()
	c.translator.HandleAll(events)

	if errors.Is(err, gamepad.ErrDeviceGone) {
		c.closeSession()
		c.setState(Discovering)
		return
	}
	if err != nil {
		c.logger.Warnw("Failed to poll gamepad", "name", c.session.Name(), "error", err)
	}

	// Missed cadence is not made up for.
	if err := c.pollWait(ctx, c.cfg.PollInterval()); err != nil {
		c.setState(Stopped)
	}
}

func (c *Controller) logMappings() {
	c.logger.Infof("Gamepad connected: %s", c.session.Name())
	c.logger.Info("Button mappings:")
	for _, b := range gamepad.Buttons {
		if action, ok := c.cfg.ButtonMappings[b]; ok {
			c.logger.Infof("  %s -> %s", b, action)
		}
	}
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.logger.Debugw("State change", "from", c.state, "to", s)
	c.state = s
}

func (c *Controller) closeSession() {
	if c.session == nil {
		return
	}
	c.session.Close()
	c.session = nil
}

func (c *Controller) shutdown() {
	c.closeSession()
	c.setState(Stopped)
}
