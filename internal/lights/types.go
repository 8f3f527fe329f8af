package lights

import (
	"fmt"
	"strings"

	"github.com/smazurov/tulipd/internal/led"
)

// ID identifies a logical light.
type ID string

// Logical lights. The strings match the identifiers the platform uses to open them.
const (
	Backlight     ID = "backlight"
	Battery       ID = "battery"
	Notifications ID = "notifications"
	Attention     ID = "attention"
)

// IDs returns every logical light in a stable order.
func IDs() []ID {
	return []ID{Backlight, Battery, Notifications, Attention}
}

// FlashMode selects how a light blinks.
type FlashMode int

const (
	// FlashNone keeps the light solid.
	FlashNone FlashMode = iota
	// FlashTimed blinks using FlashOnMS and FlashOffMS.
	FlashTimed
	// FlashHardware lets the hardware pick the blink pattern.
	FlashHardware
)

var flashModeNames = map[FlashMode]string{
	FlashNone:     "none",
	FlashTimed:    "timed",
	FlashHardware: "hardware",
}

// ParseFlashMode converts a flash mode name into a FlashMode.
// The empty string is FlashNone.
func ParseFlashMode(s string) (FlashMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	case "hardware":
		return FlashHardware, nil
	default:
		return FlashNone, fmt.Errorf("unknown flash mode %q", s)
	}
}

func (m FlashMode) String() string {
	if name, ok := flashModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("FlashMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m FlashMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FlashMode) UnmarshalText(text []byte) error {
	parsed, err := ParseFlashMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// LightState is the requested state of one logical light.
// It is replaced wholesale on every set.
type LightState struct {
	// Color is packed 0xAARRGGBB; the alpha byte is ignored.
	Color      uint32    `json:"color" toml:"color" yaml:"color"`
	FlashMode  FlashMode `json:"flash_mode" toml:"flash_mode" yaml:"flash_mode"`
	FlashOnMS  uint32    `json:"flash_on_ms" toml:"flash_on_ms" yaml:"flash_on_ms"`
	FlashOffMS uint32    `json:"flash_off_ms" toml:"flash_off_ms" yaml:"flash_off_ms"`
}

// Lit reports whether the state asks for any light at all.
func (s LightState) Lit() bool {
	return s.Color&colorMask != 0
}

// Channel is one color element of the indicator LED.
type Channel int

// Channels in scan order.
const (
	Red Channel = iota
	Green
	Blue
)

// Channels returns the indicator channels in scan order.
func Channels() []Channel {
	return []Channel{Red, Green, Blue}
}

// LED returns the driver name of the channel.
func (c Channel) LED() string {
	switch c {
	case Red:
		return led.Red
	case Green:
		return led.Green
	case Blue:
		return led.Blue
	default:
		return ""
	}
}

func (c Channel) String() string {
	if name := c.LED(); name != "" {
		return name
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// shift is the bit offset of the channel inside a packed color.
func (c Channel) shift() uint {
	return uint(16 - 8*int(c))
}

// CommandKind is the mode of a physical LED command.
type CommandKind int

const (
	// CommandOff turns every indicator channel off.
	CommandOff CommandKind = iota
	// CommandSolid lights one channel at a fixed brightness.
	CommandSolid
	// CommandBlink blinks one channel with hardware timing.
	CommandBlink
)

func (k CommandKind) String() string {
	switch k {
	case CommandOff:
		return "off"
	case CommandSolid:
		return "solid"
	case CommandBlink:
		return "blink"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is the physical indicator LED command derived from a LightState.
// Channel, Brightness and Timing are meaningful only for the kinds that use them.
type Command struct {
	Kind       CommandKind
	Channel    Channel
	Brightness uint32
	Timing     led.BlinkTiming
}

func (c Command) String() string {
	switch c.Kind {
	case CommandSolid:
		return fmt.Sprintf("solid %s=%d", c.Channel, c.Brightness)
	case CommandBlink:
		return fmt.Sprintf("blink %s [%s]", c.Channel, c.Timing)
	default:
		return c.Kind.String()
	}
}
