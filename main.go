package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smazurov/tulipd/cmd"
	"github.com/smazurov/tulipd/internal/api"
	"github.com/smazurov/tulipd/internal/config"
	"github.com/smazurov/tulipd/internal/events"
	"github.com/smazurov/tulipd/internal/led"
	"github.com/smazurov/tulipd/internal/lights"
	"github.com/smazurov/tulipd/internal/lights/store"
	"github.com/smazurov/tulipd/internal/logging"
	"github.com/smazurov/tulipd/internal/systemd"
	"github.com/smazurov/tulipd/internal/version"
	"github.com/smazurov/tulipd/internal/wifimac"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`

	// LED settings
	LedsRoot string `help:"Kernel LED class directory" default:"/sys/class/leds" toml:"leds.root" env:"LEDS_ROOT"`

	// Declarative light state
	StateFile     string `help:"Light state file (TOML or YAML), empty to disable" default:"lights.toml" toml:"state.file" env:"STATE_FILE"`
	StateDebounce string `help:"Delay before a changed state file is re-applied" default:"1500ms" toml:"state.debounce" env:"STATE_DEBOUNCE"`

	// Calibration data
	WifimacPath string `help:"WiFi MAC calibration file" default:"/persist/wifimac.dat" toml:"wifimac.path" env:"WIFIMAC_PATH"`

	// Auth settings, both empty disables auth
	AuthUsername string `help:"Basic auth username" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingLights  string `help:"Lights logging level" default:"info" toml:"logging.lights" env:"LOGGING_LIGHTS"`
	LoggingLED     string `help:"LED driver logging level" default:"info" toml:"logging.led" env:"LOGGING_LED"`
	LoggingAPI     string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingHTTP    string `help:"HTTP request logging level" default:"info" toml:"logging.http" env:"LOGGING_HTTP"`
	LoggingConfig  string `help:"Config and state file logging level" default:"info" toml:"logging.config" env:"LOGGING_CONFIG"`
	LoggingWifimac string `help:"WiFi MAC reader logging level" default:"info" toml:"logging.wifimac" env:"LOGGING_WIFIMAC"`
}

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		// Flags set on the command line keep precedence over env and file
		loadErr := config.LoadConfig(opts, cli.Root())

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"lights":  opts.LoggingLights,
				"led":     opts.LoggingLED,
				"api":     opts.LoggingAPI,
				"http":    opts.LoggingHTTP,
				"config":  opts.LoggingConfig,
				"wifimac": opts.LoggingWifimac,
			},
		})

		logger := logging.GetLogger("main")
		if loadErr != nil {
			logger.Warn("Failed to load config", "error", loadErr)
		}

		eventBus := events.New()
		ctrl := lights.NewController(lights.ControllerOptions{
			Driver:   led.New(opts.LedsRoot, logging.GetLogger("led")),
			EventBus: eventBus,
			Logger:   logging.GetLogger("lights"),
		})

		if _, err := wifimac.Read(opts.WifimacPath); err != nil {
			logger.Warn("WiFi MAC address unavailable", "path", opts.WifimacPath, "error", err)
		}

		notifier := systemd.NewNotifier(logger)

		stateLogger := logging.GetLogger("config")
		var stateWatcher *config.Watcher[*store.File]
		if opts.StateFile != "" {
			if file, err := store.Load(opts.StateFile); err != nil {
				stateLogger.Warn("Failed to load light state file", "path", opts.StateFile, "error", err)
			} else {
				applyStateFile(opts.StateFile, file, ctrl, eventBus, notifier, stateLogger)
			}

			debounce, err := time.ParseDuration(opts.StateDebounce)
			if err != nil {
				debounce = config.DefaultDebounce
			}

			stateWatcher = config.NewConfigWatcher(opts.StateFile, store.Load, stateLogger,
				config.WithDebounce[*store.File](debounce),
				config.WithErrorHandler[*store.File](func(err error) {
					stateLogger.Warn("Failed to reload light state file", "path", opts.StateFile, "error", err)
				}),
			)
			stateWatcher.OnReload(func(file *store.File) {
				applyStateFile(opts.StateFile, file, ctrl, eventBus, notifier, stateLogger)
			})
		}

		server := api.NewServer(&api.Options{
			AuthUsername:      opts.AuthUsername,
			AuthPassword:      opts.AuthPassword,
			Controller:        ctrl,
			EventBus:          eventBus,
			WifiMACPath:       opts.WifimacPath,
			PrometheusHandler: promhttp.Handler(),
		})

		watchdogCtx, stopWatchdog := context.WithCancel(context.Background())

		hooks.OnStart(func() {
			if stateWatcher != nil {
				if err := stateWatcher.Start(); err != nil {
					logger.Warn("Light state file will not be watched", "path", opts.StateFile, "error", err)
				}
			}

			go notifier.Watchdog(watchdogCtx)

			// ListenAndServe blocks, so readiness goes out just before it
			notifier.Ready()

			logger.Info("Starting HTTP server", "port", opts.Port, "version", version.String())
			if err := server.Start(opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", err)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			notifier.Stopping()
			stopWatchdog()

			if stateWatcher != nil {
				if err := stateWatcher.Stop(); err != nil {
					logger.Warn("Error stopping state file watcher", "error", err)
				}
			}
			if err := server.Stop(); err != nil {
				logger.Error("Error stopping HTTP server", "error", err)
			}
		})
	})

	cli.Root().Use = version.Name
	cli.Root().Short = "Indicator LED, backlight and calibration data daemon"
	cli.Root().Version = version.Get().Long()

	cli.Root().AddCommand(cmd.CreateLightCmd())
	cli.Root().AddCommand(cmd.CreateWifiMACCmd())

	cli.Run()
}

// applyStateFile pushes a loaded state file into the controller and announces it.
func applyStateFile(path string, file *store.File, ctrl *lights.Controller, bus *events.Bus, notifier *systemd.Notifier, logger *slog.Logger) {
	applied, skipped := file.Apply(ctrl, logger)
	logger.Info("Applied light state file", "path", path, "applied", applied, "skipped", skipped)
	notifier.Status(fmt.Sprintf("applied %d lights from %s", len(applied), path))

	bus.Publish(events.StateFileReloadedEvent{
		Path:      path,
		Applied:   applied,
		Skipped:   skipped,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
