// Package lights merges the logical lights of the device onto its hardware.
//
// Battery, notification and attention lights compete for one RGB indicator
// LED driven by an AW2013 controller. Only one of them is shown at a time,
// chosen by fixed priority:
//
//	notifications > attention > battery > off
//
// The chosen state is translated into a single-channel command. The strongest
// color component selects the channel; a timed flash becomes a hardware blink
// with hold and off durations in 250ms units:
//
//	color 0x0000FF00, timed 1000/500  ->  green/led_time = "1 4 1 2", green/blink = "1"
//	color 0x00FF8000, no flash        ->  red/brightness = "255"
//	nothing lit                       ->  red, green, blue brightness = "0"
//
// The backlight is independent of the indicator and takes the luma of its
// color as brightness.
//
// Use Open to get a handle by identifier string, as the platform does:
//
//	dev, err := lights.Open(ctrl, "notifications")
//	if errors.Is(err, lights.ErrUnknownLight) { ... }
//	dev.Set(lights.LightState{Color: 0x0000FF00, FlashMode: lights.FlashTimed, FlashOnMS: 1000, FlashOffMS: 500})
package lights
