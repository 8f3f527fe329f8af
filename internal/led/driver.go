package led

import "fmt"

// LED names exposed by the AW2013 indicator driver and the panel backlight.
const (
	Red       = "red"
	Green     = "green"
	Blue      = "blue"
	Backlight = "lcd-backlight"
)

// Driver abstracts the per-LED attributes of the kernel LED class.
// Implementations are best-effort sinks; callers decide what a failure means.
type Driver interface {
	// SetBrightness writes the raw brightness level of an LED.
	SetBrightness(name string, value uint32) error

	// SetBlinkTime writes the blink cycle of an LED.
	SetBlinkTime(name string, timing BlinkTiming) error

	// SetBlink enables or disables hardware blinking of an LED.
	SetBlink(name string, enabled bool) error

	// Available returns the LED names this driver can address
	Available() []string
}

// BlinkTiming is one blink cycle in driver units.
// Rise and fall are roughly 1/2 second per unit, hold and off roughly 1/4 second.
type BlinkTiming struct {
	Rise uint32 `json:"rise" toml:"rise"`
	Hold uint32 `json:"hold" toml:"hold"`
	Fall uint32 `json:"fall" toml:"fall"`
	Off  uint32 `json:"off" toml:"off"`
}

// String formats the timing the way led_time expects it.
func (t BlinkTiming) String() string {
	return fmt.Sprintf("%d %d %d %d", t.Rise, t.Hold, t.Fall, t.Off)
}
