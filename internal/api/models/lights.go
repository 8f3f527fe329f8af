package models

// LightStateData is a logical light state on the wire.
type LightStateData struct {
	Color      uint32 `json:"color" example:"65280" doc:"Packed 0xAARRGGBB color; the alpha byte is ignored"`
	FlashMode  string `json:"flash_mode,omitempty" enum:"none,timed,hardware" default:"none" doc:"How the light blinks"`
	FlashOnMS  uint32 `json:"flash_on_ms,omitempty" example:"1000" doc:"Milliseconds lit per blink cycle (timed only)"`
	FlashOffMS uint32 `json:"flash_off_ms,omitempty" example:"500" doc:"Milliseconds dark per blink cycle (timed only)"`
}

// LightData is one logical light in a snapshot.
type LightData struct {
	ID     string         `json:"id" example:"notifications" doc:"Light identifier"`
	Lit    bool           `json:"lit" example:"true" doc:"Whether the color has any non-zero RGB component"`
	Active bool           `json:"active" example:"true" doc:"Whether this light drives the indicator LED"`
	State  LightStateData `json:"state" doc:"Last requested state"`
}

// CommandData is the physical command last written to the indicator LED.
type CommandData struct {
	Kind       string `json:"kind" enum:"off,solid,blink" example:"blink" doc:"Command kind"`
	LED        string `json:"led,omitempty" example:"green" doc:"LED the command addresses, empty for off"`
	Brightness uint32 `json:"brightness,omitempty" example:"255" doc:"Brightness for solid commands"`
	LEDTime    string `json:"led_time,omitempty" example:"1 4 1 2" doc:"Rise, hold, fall and off units for blink commands"`
}

// LightsData is a snapshot of all logical lights.
type LightsData struct {
	Lights              []LightData `json:"lights" doc:"Logical lights in identifier order"`
	Active              string      `json:"active" example:"notifications" doc:"Light driving the indicator LED, empty if none"`
	Command             CommandData `json:"command" doc:"Last indicator LED command"`
	BacklightBrightness uint32      `json:"backlight_brightness" example:"255" doc:"Brightness derived from the backlight color"`
}

type LightsResponse struct {
	Body LightsData
}

// SetLightRequest sets one logical light.
type SetLightRequest struct {
	ID   string `path:"id" example:"notifications" doc:"Light identifier: backlight, battery, notifications or attention"`
	Body LightStateData
}
