package lights

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smazurov/tulipd/internal/events"
	"github.com/smazurov/tulipd/internal/led"
	"github.com/smazurov/tulipd/internal/logging"
	"github.com/smazurov/tulipd/internal/metrics"
)

// ControllerOptions configures a new Controller.
type ControllerOptions struct {
	// Driver receives the physical LED writes (required).
	Driver led.Driver

	// EventBus receives state and write events (optional).
	EventBus *events.Bus

	// Logger for write failures and commands. If nil, uses the "lights" module logger.
	Logger *slog.Logger
}

// Controller owns the logical light states and the indicator LED.
//
// The battery, notification and attention lights share one physical LED.
// Every set replaces the stored state, recomputes which light wins and writes
// the resulting command, all under a single lock. Driver writes are
// best-effort: failures are logged and never reach the caller.
type Controller struct {
	mu     sync.Mutex
	driver led.Driver
	bus    *events.Bus
	logger *slog.Logger

	battery      LightState
	notification LightState
	attention    LightState
	backlight    LightState

	active   ID
	command  Command
	failures int
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Battery       LightState
	Notifications LightState
	Attention     LightState
	Backlight     LightState

	// Active is the light driving the indicator LED, empty if none.
	Active ID
	// Command is the last command written to the indicator LED.
	Command Command
	// WriteFailures counts the driver writes that failed during the most
	// recent set, whichever light it was.
	WriteFailures int
}

// NewController creates a controller writing to the given driver.
// No LED is touched until the first set.
func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger("lights")
	}

	return &Controller{
		driver:  opts.Driver,
		bus:     opts.EventBus,
		logger:  logger,
		command: Command{Kind: CommandOff},
	}
}

// SetBattery replaces the battery light state.
func (c *Controller) SetBattery(state LightState) {
	c.set(Battery, state)
}

// SetNotification replaces the notification light state.
func (c *Controller) SetNotification(state LightState) {
	c.set(Notifications, state)
}

// SetAttention replaces the attention light state.
func (c *Controller) SetAttention(state LightState) {
	c.set(Attention, state)
}

// SetBacklight writes the luma of the state's color to the LCD backlight.
// Flash settings are ignored.
func (c *Controller) SetBacklight(state LightState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.backlight = state
	metrics.IncLightSet(string(Backlight))

	brightness := BacklightBrightness(state.Color)
	c.failures = 0
	if !c.write(led.Backlight, led.AttrBrightness, strconv.FormatUint(uint64(brightness), 10), func() error {
		return c.driver.SetBrightness(led.Backlight, brightness)
	}) {
		c.failures = 1
	}
	metrics.SetBacklightBrightness(brightness)

	c.publishStateChanged(uuid.NewString(), Backlight, state)
}

// Snapshot returns the current states and the last indicator command.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Battery:       c.battery,
		Notifications: c.notification,
		Attention:     c.attention,
		Backlight:     c.backlight,
		Active:        c.active,
		Command:       c.command,
		WriteFailures: c.failures,
	}
}

// Available returns the LED names the driver can address.
func (c *Controller) Available() []string {
	return c.driver.Available()
}

func (c *Controller) set(id ID, state LightState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch id {
	case Battery:
		c.battery = state
	case Notifications:
		c.notification = state
	case Attention:
		c.attention = state
	}
	metrics.IncLightSet(string(id))

	changeID := uuid.NewString()
	c.recomputeLocked(changeID)
	c.publishStateChanged(changeID, id, state)
}

// recomputeLocked selects the winning light and writes its command.
func (c *Controller) recomputeLocked(changeID string) {
	active, state := Select(c.battery, c.notification, c.attention)

	cmd := Command{Kind: CommandOff}
	if active != "" {
		cmd = Translate(state)
	}

	failures := c.applyLocked(cmd)

	c.active = active
	c.command = cmd
	c.failures = failures

	metrics.IncRecompute()
	metrics.SetActiveLight(string(active))

	c.logger.Debug("Indicator LED updated",
		"active", string(active),
		"command", cmd.String(),
		"failures", failures)

	applied := events.LEDCommandAppliedEvent{
		ChangeID:  changeID,
		Kind:      cmd.Kind.String(),
		Failures:  failures,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	switch cmd.Kind {
	case CommandSolid:
		applied.LED = cmd.Channel.LED()
		applied.Brightness = cmd.Brightness
	case CommandBlink:
		applied.LED = cmd.Channel.LED()
		applied.LEDTime = cmd.Timing.String()
	}
	c.bus.Publish(applied)
}

// applyLocked writes a command to the driver and returns the number of
// failed writes. Every write is attempted regardless of earlier failures.
// Only off touches every channel; a blink left on a channel that lost to
// another light keeps running until something turns it off.
func (c *Controller) applyLocked(cmd Command) int {
	failures := 0
	record := func(ok bool) {
		if !ok {
			failures++
		}
	}

	switch cmd.Kind {
	case CommandOff:
		for _, ch := range Channels() {
			name := ch.LED()
			record(c.write(name, led.AttrBrightness, "0", func() error {
				return c.driver.SetBrightness(name, 0)
			}))
		}

	case CommandBlink:
		name := cmd.Channel.LED()
		record(c.write(name, led.AttrBlinkTime, cmd.Timing.String(), func() error {
			return c.driver.SetBlinkTime(name, cmd.Timing)
		}))
		record(c.write(name, led.AttrBlink, "1", func() error {
			return c.driver.SetBlink(name, true)
		}))

	case CommandSolid:
		name := cmd.Channel.LED()
		record(c.write(name, led.AttrBrightness, strconv.FormatUint(uint64(cmd.Brightness), 10), func() error {
			return c.driver.SetBrightness(name, cmd.Brightness)
		}))
	}

	return failures
}

// write performs one driver write and reports whether it succeeded.
func (c *Controller) write(name, attr, value string, fn func() error) bool {
	err := fn()
	metrics.ObserveLEDWrite(name, attr, err)

	if err != nil {
		c.logger.Warn("Failed to write LED attribute",
			"led", name,
			"attribute", attr,
			"value", value,
			"error", err)
		c.bus.Publish(events.LEDWriteFailedEvent{
			LED:       name,
			Attribute: attr,
			Value:     value,
			Error:     err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return false
	}

	c.logger.Debug("Wrote LED attribute", "led", name, "attribute", attr, "value", value)
	return true
}

func (c *Controller) publishStateChanged(changeID string, id ID, state LightState) {
	c.bus.Publish(events.LightStateChangedEvent{
		ChangeID:   changeID,
		Light:      string(id),
		Color:      state.Color,
		FlashMode:  state.FlashMode.String(),
		FlashOnMS:  state.FlashOnMS,
		FlashOffMS: state.FlashOffMS,
		Active:     string(c.active),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}
