package events

// Event type constants for kelindar/event.
const (
	TypeLightStateChanged uint32 = iota + 1
	TypeLEDCommandApplied
	TypeLEDWriteFailed
	TypeStateFileReloaded
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// LightStateChangedEvent is published after a logical light was set.
type LightStateChangedEvent struct {
	ChangeID   string `json:"change_id" example:"0b6e7c4c-8a7e-4c3f-9d55-3f2f5c1f1a2b" doc:"Unique identifier of this change"`
	Light      string `json:"light" example:"notifications" doc:"Logical light that was set"`
	Color      uint32 `json:"color" example:"65280" doc:"Packed 0xAARRGGBB color as requested"`
	FlashMode  string `json:"flash_mode" example:"timed" doc:"Flash mode: none, timed, hardware"`
	FlashOnMS  uint32 `json:"flash_on_ms" example:"1000" doc:"Milliseconds lit per blink cycle"`
	FlashOffMS uint32 `json:"flash_off_ms" example:"500" doc:"Milliseconds dark per blink cycle"`
	Active     string `json:"active" example:"notifications" doc:"Logical light driving the indicator LED after the change, empty if none"`
	Timestamp  string `json:"timestamp" example:"2026-10-19T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightStateChangedEvent.
func (e LightStateChangedEvent) Type() uint32 { return TypeLightStateChanged }

// LEDCommandAppliedEvent is published after a physical command was written.
type LEDCommandAppliedEvent struct {
	ChangeID   string `json:"change_id" doc:"Change that caused this command"`
	Kind       string `json:"kind" example:"blink" doc:"Command kind: off, solid, blink"`
	LED        string `json:"led,omitempty" example:"green" doc:"LED the command addresses, empty for off"`
	Brightness uint32 `json:"brightness" example:"255" doc:"Brightness written for solid commands"`
	LEDTime    string `json:"led_time,omitempty" example:"1 4 1 2" doc:"Blink timing written for blink commands"`
	Failures   int    `json:"failures" example:"0" doc:"Number of attribute writes that failed"`
	Timestamp  string `json:"timestamp" example:"2026-10-19T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LEDCommandAppliedEvent.
func (e LEDCommandAppliedEvent) Type() uint32 { return TypeLEDCommandApplied }

// LEDWriteFailedEvent is published for every failed attribute write.
type LEDWriteFailedEvent struct {
	LED       string `json:"led" example:"red" doc:"LED name"`
	Attribute string `json:"attribute" example:"brightness" doc:"Attribute that failed: brightness, led_time, blink"`
	Value     string `json:"value" example:"255" doc:"Value that was being written"`
	Error     string `json:"error" example:"permission denied" doc:"Error description"`
	Timestamp string `json:"timestamp" example:"2026-10-19T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LEDWriteFailedEvent.
func (e LEDWriteFailedEvent) Type() uint32 { return TypeLEDWriteFailed }

// StateFileReloadedEvent is published after the declarative state file was re-applied.
type StateFileReloadedEvent struct {
	Path      string   `json:"path" example:"/etc/tulipd/lights.toml" doc:"State file path"`
	Applied   []string `json:"applied" doc:"Lights that were set"`
	Skipped   []string `json:"skipped,omitempty" doc:"Unknown light identifiers that were ignored"`
	Timestamp string   `json:"timestamp" example:"2026-10-19T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for StateFileReloadedEvent.
func (e StateFileReloadedEvent) Type() uint32 { return TypeStateFileReloaded }
