package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goPadKeys/config"
	"github.com/goPadKeys/dispatch"
	"github.com/goPadKeys/gamepad"
	"github.com/goPadKeys/keymaps"
	"github.com/goPadKeys/mapper"
	"github.com/goPadKeys/translator"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

const version = "1.0.0"

const virtualKeyboardName = "goPadKeys"

type options struct {
	configPath  string
	backend     string
	uinputPath  string
	layout      string
	hold        time.Duration
	match       []string
	grab        bool
	watch       bool
	logLevel    string
	logFile     string
	listDevices bool
	showVersion bool
}

func parseFlags() options {
	var o options
	flag.StringVarP(&o.configPath, "config", "c", config.DefaultPath, "Path of the mapping config file (.json, .yaml)")
	flag.StringVar(&o.backend, "backend", gamepad.BackendEvdev, "Gamepad backend: evdev|joystick")
	flag.StringVar(&o.uinputPath, "uinput", dispatch.DefaultUinputPath, "uinput device used for the virtual keyboard")
	flag.StringVar(&o.layout, "layout", keymaps.LayoutUS, "Keyboard layout used to type literal characters")
	flag.DurationVar(&o.hold, "hold", dispatch.DefaultHold, "How long each key is held down")
	flag.StringSliceVar(&o.match, "match", nil, "Extra device name keywords that identify a gamepad")
	flag.BoolVar(&o.grab, "grab", false, "Grab the gamepad so other programs do not see its events (evdev only)")
	flag.BoolVar(&o.watch, "watch", false, "Retry discovery as soon as a new device node appears")
	flag.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&o.logFile, "log-file", "", "Also write logs to this file")
	flag.BoolVar(&o.listDevices, "list-devices", false, "List input devices and exit")
	flag.BoolVarP(&o.showVersion, "version", "v", false, "Print version and exit")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()
	if o.showVersion {
		fmt.Printf("goPadKeys v%s\n", version)
		return
	}

	logger, err := setupLogging(o.logLevel, o.logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(o, logger); err != nil {
		logger.Errorw("Exiting", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(o options, logger *zap.SugaredLogger) error {
	keywords := append(append([]string(nil), gamepad.DefaultKeywords...), o.match...)

	provider, err := gamepad.NewProvider(o.backend, o.grab, logger.Named("gamepad"))
	if err != nil {
		return err
	}

	if o.listDevices {
		return listDevices(provider, keywords)
	}

	fmt.Println("USB Gamepad Mapper")
	fmt.Println("==================")

	// Config problems are reported but never fatal.
	cfg, err := config.Load(o.configPath, logger)
	if err != nil {
		logger.Warnw("Continuing with fallback config", "path", o.configPath, "error", err)
	}

	layouts := keymaps.CreateDefaultLayoutProvider()
	if !layouts.HasLayout(o.layout) {
		logger.Warnw("Unknown keyboard layout, using default", "layout", o.layout, "default", keymaps.LayoutUS)
	}

	injector, err := dispatch.NewUinputInjector(o.uinputPath, virtualKeyboardName, layouts.GetLayout(o.layout))
	if err != nil {
		return fmt.Errorf("%w (run as root or grant access to %s)", err, o.uinputPath)
	}
	defer injector.Close()

	dispatcher := dispatch.New(injector, cfg.ButtonMappings, o.hold, logger)
	tr := translator.New(cfg.TriggerThreshold, dispatcher)

	opts := []mapper.Option{mapper.WithKeywords(keywords)}
	if o.watch {
		hotplug, err := gamepad.WatchHotplug(gamepad.DefaultHotplugDir, logger.Named("hotplug"))
		if err != nil {
			logger.Warnw("Device watching unavailable, using fixed backoff", "error", err)
		} else {
			defer hotplug.Close()
			opts = append(opts, mapper.WithBackoff(hotplug.Wait))
		}
	}

	controller := mapper.New(cfg, provider, tr, logger, opts...)

	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Press Ctrl+C to exit")
	err = controller.Run(ctx)
	if ctx.Err() != nil {
		fmt.Println("\nExiting...")
	}
	return err
}

// listDevices prints every enumerated device and marks likely gamepads.
func listDevices(provider gamepad.Provider, keywords []string) error {
	infos, err := provider.Enumerate()
	if err != nil {
		return err
	}
	fmt.Printf("devices (%d):\n", len(infos))
	for _, info := range infos {
		marker := " "
		if gamepad.IsGamepadName(info.Name, keywords) {
			marker = "*"
		}
		fmt.Printf("%s %-24s %s\n", marker, info.ID, info.Name)
	}
	return nil
}
