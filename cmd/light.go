package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/smazurov/tulipd/internal/led"
	"github.com/smazurov/tulipd/internal/lights"
	"github.com/smazurov/tulipd/internal/logging"
	"github.com/spf13/cobra"
)

// ErrWritesFailed is returned by the light command when the driver rejected
// any write. The daemon only logs these.
var ErrWritesFailed = errors.New("LED writes failed")

// CreateLightCmd creates the light command.
func CreateLightCmd() *cobra.Command {
	var (
		color    string
		flash    string
		onMS     uint32
		offMS    uint32
		ledsRoot string
	)

	cmd := &cobra.Command{
		Use:   "light <id>",
		Short: "Set one logical light",
		Long: `Sets a logical light (backlight, battery, notifications or attention) through a fresh controller ` +
			`and writes the resulting LED command to the kernel LED class. Other lights start out off.`,
		Example: `  tulipd light notifications --color 0x00ff00 --flash timed --on-ms 1000 --off-ms 500
  tulipd light backlight --color ffffff`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(lights.Backlight), string(lights.Battery), string(lights.Notifications), string(lights.Attention)},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := ParseColor(color)
			if err != nil {
				return err
			}
			mode, err := lights.ParseFlashMode(flash)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("light")
			ctrl := lights.NewController(lights.ControllerOptions{
				Driver: led.New(ledsRoot, logging.GetLogger("led")),
				Logger: logger,
			})

			dev, err := lights.Open(ctrl, args[0])
			if err != nil {
				return err
			}
			dev.Set(lights.LightState{
				Color:      value,
				FlashMode:  mode,
				FlashOnMS:  onMS,
				FlashOffMS: offMS,
			})

			snap := ctrl.Snapshot()
			if snap.WriteFailures > 0 {
				return fmt.Errorf("%w: %d of the LED writes for %s failed", ErrWritesFailed, snap.WriteFailures, dev.ID())
			}

			if dev.ID() == lights.Backlight {
				fmt.Fprintf(cmd.OutOrStdout(), "%s brightness=%d\n", led.Backlight, lights.BacklightBrightness(value))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), snap.Command.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "0", "Color as hex RRGGBB or AARRGGBB, with optional 0x or # prefix")
	cmd.Flags().StringVar(&flash, "flash", "none", "Flash mode (none, timed, hardware)")
	cmd.Flags().Uint32Var(&onMS, "on-ms", 0, "Milliseconds lit per blink cycle")
	cmd.Flags().Uint32Var(&offMS, "off-ms", 0, "Milliseconds dark per blink cycle")
	cmd.Flags().StringVar(&ledsRoot, "leds-root", led.DefaultRoot, "Kernel LED class directory")

	return cmd
}

// ParseColor parses a packed color written in hex.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	if s == "" {
		return 0, fmt.Errorf("invalid color: empty")
	}

	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(value), nil
}
