package lights

import "github.com/smazurov/tulipd/internal/led"

const (
	colorMask = 0x00ffffff

	// blinkUnitMS is the length of one hold/off unit of the AW2013 driver.
	blinkUnitMS = 250

	// rampUnits is written for both rise and fall time.
	rampUnits = 1
)

// Select picks the logical light that drives the indicator LED.
// Priority is notifications, then attention, then battery. The returned ID
// is empty when none of them is lit.
func Select(battery, notification, attention LightState) (ID, LightState) {
	switch {
	case notification.Lit():
		return Notifications, notification
	case attention.Lit():
		return Attention, attention
	case battery.Lit():
		return Battery, battery
	default:
		return "", LightState{}
	}
}

// Translate derives the physical command for a light state.
//
// Only one channel may be active at a time and only one mode applies, so the
// strongest color component wins (red, then green, then blue on ties) and the
// other components are dropped. Blinking uses the hardware timer with the
// on/off durations quantized to 250ms units.
func Translate(state LightState) Command {
	channel, value := dominantChannel(state.Color)
	if value == 0 {
		return Command{Kind: CommandOff}
	}

	if state.FlashMode == FlashTimed {
		return Command{
			Kind:    CommandBlink,
			Channel: channel,
			Timing: led.BlinkTiming{
				Rise: rampUnits,
				Hold: state.FlashOnMS / blinkUnitMS,
				Fall: rampUnits,
				Off:  state.FlashOffMS / blinkUnitMS,
			},
		}
	}

	return Command{
		Kind:       CommandSolid,
		Channel:    channel,
		Brightness: value,
	}
}

// dominantChannel returns the channel with the largest component. The first
// maximum in scan order wins.
func dominantChannel(color uint32) (Channel, uint32) {
	best, bestValue := Red, uint32(0)
	for _, ch := range Channels() {
		if v := (color >> ch.shift()) & 0xff; v > bestValue {
			best, bestValue = ch, v
		}
	}
	return best, bestValue
}

// BacklightBrightness converts a color into a 0-255 panel brightness using
// integer luma weights.
func BacklightBrightness(color uint32) uint32 {
	color &= colorMask
	r := (color >> 16) & 0xff
	g := (color >> 8) & 0xff
	b := color & 0xff
	return (77*r + 150*g + 29*b) >> 8
}
