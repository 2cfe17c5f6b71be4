package gamepad

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultHotplugDir is where device nodes appear when a gamepad is plugged in.
const DefaultHotplugDir = "/dev/input"

// Hotplug watches a device directory so discovery can retry as soon as a
// new device node is created instead of sitting out the full backoff.
type Hotplug struct {
	watcher *fsnotify.Watcher
	dir     string
	logger  *zap.SugaredLogger
}

// WatchHotplug starts watching dir for created entries.
func WatchHotplug(dir string, logger *zap.SugaredLogger) (*Hotplug, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Hotplug{watcher: watcher, dir: dir, logger: logger}, nil
}

// Wait blocks for d, until ctx is done, or until a device node is created
// in the watched directory, whichever comes first.
func (h *Hotplug) Wait(ctx context.Context, d time.Duration) error {
	h.drain()

	timer := time.NewTimer(d)
	defer timer.Stop()

	events, errs := h.watcher.Events, h.watcher.Errors
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Has(fsnotify.Create) {
				h.logger.Debugw("Input device node created", "path", ev.Name)
				return nil
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			h.logger.Warnw("Hotplug watcher error", "dir", h.dir, "error", err)
		}
	}
}

// drain discards events that piled up while nobody was waiting.
func (h *Hotplug) drain() {
	for {
		select {
		case _, ok := <-h.watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (h *Hotplug) Close() error {
	return h.watcher.Close()
}
