package lights

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/smazurov/tulipd/internal/events"
	"github.com/smazurov/tulipd/internal/led"
)

// recordingDriver records every write as "<led>/<attribute>=<value>".
type recordingDriver struct {
	mu     sync.Mutex
	writes []string
	// fail makes writes to "<led>/<attribute>" return an error.
	fail map[string]bool
}

func (d *recordingDriver) record(name, attr, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := name + "/" + attr
	d.writes = append(d.writes, key+"="+value)
	if d.fail[key] {
		return fmt.Errorf("write %s: permission denied", key)
	}
	return nil
}

func (d *recordingDriver) SetBrightness(name string, value uint32) error {
	return d.record(name, led.AttrBrightness, fmt.Sprint(value))
}

func (d *recordingDriver) SetBlinkTime(name string, timing led.BlinkTiming) error {
	return d.record(name, led.AttrBlinkTime, timing.String())
}

func (d *recordingDriver) SetBlink(name string, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	return d.record(name, led.AttrBlink, value)
}

func (d *recordingDriver) Available() []string {
	return []string{led.Blue, led.Green, led.Backlight, led.Red}
}

// take returns and clears the recorded writes.
func (d *recordingDriver) take() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	w := d.writes
	d.writes = nil
	return w
}

func newTestController(drv led.Driver, bus *events.Bus) *Controller {
	return NewController(ControllerOptions{
		Driver:   drv,
		EventBus: bus,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func assertWrites(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("writes = %q, want %q", got, want)
	}
}

func TestController_Scenarios(t *testing.T) {
	drv := &recordingDriver{}
	c := newTestController(drv, nil)

	// Battery charging: solid red
	c.SetBattery(LightState{Color: 0x00ff0000})
	assertWrites(t, drv.take(), []string{"red/brightness=255"})

	// Notification wins with a green blink
	c.SetNotification(LightState{Color: 0x0000ff00, FlashMode: FlashTimed, FlashOnMS: 1000, FlashOffMS: 500})
	assertWrites(t, drv.take(), []string{"green/led_time=1 4 1 2", "green/blink=1"})

	snap := c.Snapshot()
	if snap.Active != Notifications {
		t.Errorf("Active = %q, want %q", snap.Active, Notifications)
	}
	if snap.Command.Kind != CommandBlink || snap.Command.Channel != Green {
		t.Errorf("Command = %v, want blink on green", snap.Command)
	}

	// Attention is lit but lower priority; the blink is rewritten unchanged
	c.SetAttention(LightState{Color: 0x000000ff})
	assertWrites(t, drv.take(), []string{"green/led_time=1 4 1 2", "green/blink=1"})

	// Clearing the notification falls back to attention
	c.SetNotification(LightState{})
	assertWrites(t, drv.take(), []string{"blue/brightness=255"})

	// Clearing everything turns all channels off
	c.SetAttention(LightState{})
	drv.take()
	c.SetBattery(LightState{})
	assertWrites(t, drv.take(), []string{"red/brightness=0", "green/brightness=0", "blue/brightness=0"})

	snap = c.Snapshot()
	if snap.Active != "" {
		t.Errorf("Active = %q, want none", snap.Active)
	}
	if snap.Command.Kind != CommandOff {
		t.Errorf("Command = %v, want off", snap.Command)
	}
}

func TestController_Idempotent(t *testing.T) {
	drv := &recordingDriver{}
	c := newTestController(drv, nil)

	state := LightState{Color: 0x00ff00ff, FlashMode: FlashTimed, FlashOnMS: 500, FlashOffMS: 2000}
	c.SetNotification(state)
	first := drv.take()
	c.SetNotification(state)
	second := drv.take()

	assertWrites(t, second, first)
	assertWrites(t, first, []string{"red/led_time=1 2 1 8", "red/blink=1"})
}

func TestController_AlphaOnlyIsOff(t *testing.T) {
	drv := &recordingDriver{}
	c := newTestController(drv, nil)

	c.SetAttention(LightState{Color: 0xff000000, FlashMode: FlashTimed, FlashOnMS: 1000, FlashOffMS: 1000})
	assertWrites(t, drv.take(), []string{"red/brightness=0", "green/brightness=0", "blue/brightness=0"})

	if got := c.Snapshot().Attention.Color; got != 0xff000000 {
		t.Errorf("stored attention color = %#x, want 0xff000000", got)
	}
}

func TestController_Backlight(t *testing.T) {
	tests := []struct {
		name  string
		color uint32
		want  string
	}{
		{"white", 0x00ffffff, "lcd-backlight/brightness=255"},
		{"black", 0xff000000, "lcd-backlight/brightness=0"},
		{"red", 0x00ff0000, "lcd-backlight/brightness=76"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := &recordingDriver{}
			c := newTestController(drv, nil)

			c.SetBacklight(LightState{Color: tt.color, FlashMode: FlashTimed, FlashOnMS: 1000, FlashOffMS: 1000})
			assertWrites(t, drv.take(), []string{tt.want})

			snap := c.Snapshot()
			if snap.Active != "" || snap.Command.Kind != CommandOff {
				t.Errorf("backlight changed the indicator: active=%q command=%v", snap.Active, snap.Command)
			}
		})
	}
}

func TestController_BacklightDoesNotTouchIndicator(t *testing.T) {
	drv := &recordingDriver{}
	c := newTestController(drv, nil)

	c.SetBattery(LightState{Color: 0x0000ff00})
	drv.take()

	c.SetBacklight(LightState{Color: 0x00ffffff})
	assertWrites(t, drv.take(), []string{"lcd-backlight/brightness=255"})

	if snap := c.Snapshot(); snap.Active != Battery {
		t.Errorf("Active = %q, want %q", snap.Active, Battery)
	}
}

func TestController_WriteFailuresAreBestEffort(t *testing.T) {
	drv := &recordingDriver{fail: map[string]bool{
		"green/led_time":  true,
		"red/brightness":  true,
		"blue/brightness": true,
	}}
	bus := events.New()

	var mu sync.Mutex
	var failed []events.LEDWriteFailedEvent
	var applied []events.LEDCommandAppliedEvent
	var wg sync.WaitGroup

	unsubFailed := bus.Subscribe(func(e events.LEDWriteFailedEvent) {
		mu.Lock()
		failed = append(failed, e)
		mu.Unlock()
		wg.Done()
	})
	defer unsubFailed()
	unsubApplied := bus.Subscribe(func(e events.LEDCommandAppliedEvent) {
		mu.Lock()
		applied = append(applied, e)
		mu.Unlock()
		wg.Done()
	})
	defer unsubApplied()

	c := newTestController(drv, bus)

	// led_time fails, blink is still attempted
	wg.Add(2)
	c.SetNotification(LightState{Color: 0x0000ff00, FlashMode: FlashTimed, FlashOnMS: 1000, FlashOffMS: 500})
	assertWrites(t, drv.take(), []string{"green/led_time=1 4 1 2", "green/blink=1"})
	wg.Wait()

	// Off continues past failing channels
	wg.Add(3)
	c.SetNotification(LightState{})
	assertWrites(t, drv.take(), []string{"red/brightness=0", "green/brightness=0", "blue/brightness=0"})
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	if len(failed) != 3 {
		t.Fatalf("got %d write failure events, want 3", len(failed))
	}
	if failed[0].LED != led.Green || failed[0].Attribute != led.AttrBlinkTime || failed[0].Value != "1 4 1 2" {
		t.Errorf("first failure = %+v, want green led_time", failed[0])
	}

	if len(applied) != 2 {
		t.Fatalf("got %d applied events, want 2", len(applied))
	}
	if applied[0].Kind != "blink" || applied[0].LED != led.Green || applied[0].LEDTime != "1 4 1 2" || applied[0].Failures != 1 {
		t.Errorf("blink applied event = %+v", applied[0])
	}
	if applied[1].Kind != "off" || applied[1].Failures != 2 {
		t.Errorf("off applied event = %+v", applied[1])
	}
}

func TestController_SnapshotWriteFailures(t *testing.T) {
	drv := &recordingDriver{fail: map[string]bool{
		"green/led_time":           true,
		"lcd-backlight/brightness": true,
	}}
	c := newTestController(drv, nil)

	if got := c.Snapshot().WriteFailures; got != 0 {
		t.Fatalf("initial WriteFailures = %d, want 0", got)
	}

	c.SetNotification(LightState{Color: 0x0000ff00, FlashMode: FlashTimed, FlashOnMS: 1000, FlashOffMS: 500})
	if got := c.Snapshot().WriteFailures; got != 1 {
		t.Errorf("after failing blink WriteFailures = %d, want 1", got)
	}

	c.SetNotification(LightState{Color: 0x000000ff})
	if got := c.Snapshot().WriteFailures; got != 0 {
		t.Errorf("after clean solid WriteFailures = %d, want 0", got)
	}

	c.SetBacklight(LightState{Color: 0x00ffffff})
	if got := c.Snapshot().WriteFailures; got != 1 {
		t.Errorf("after failing backlight WriteFailures = %d, want 1", got)
	}
}

func TestController_StateChangedEvent(t *testing.T) {
	drv := &recordingDriver{}
	bus := events.New()
	c := newTestController(drv, bus)

	received := make(chan events.LightStateChangedEvent, 1)
	unsub := bus.Subscribe(func(e events.LightStateChangedEvent) {
		received <- e
	})
	defer unsub()

	c.SetAttention(LightState{Color: 0x000000ff, FlashMode: FlashHardware})

	e := <-received
	if e.Light != "attention" || e.Active != "attention" || e.FlashMode != "hardware" || e.Color != 0xff {
		t.Errorf("event = %+v", e)
	}
	if e.ChangeID == "" {
		t.Error("event has no change ID")
	}
}

func TestController_ConcurrentSets(t *testing.T) {
	drv := &recordingDriver{}
	c := newTestController(drv, nil)

	setters := []func(LightState){c.SetBattery, c.SetNotification, c.SetAttention, c.SetBacklight}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for j, set := range setters {
			wg.Add(1)
			go func(set func(LightState), color uint32) {
				defer wg.Done()
				set(LightState{Color: color})
				_ = c.Snapshot()
			}(set, uint32(0x00010000*(j+1)))
		}
	}
	wg.Wait()

	// Final state must be consistent with the stored states
	snap := c.Snapshot()
	wantActive, wantState := Select(snap.Battery, snap.Notifications, snap.Attention)
	if snap.Active != wantActive {
		t.Errorf("Active = %q, want %q", snap.Active, wantActive)
	}
	if want := Translate(wantState); snap.Command != want {
		t.Errorf("Command = %v, want %v", snap.Command, want)
	}
}

func TestController_Available(t *testing.T) {
	c := newTestController(&recordingDriver{}, nil)
	if got := c.Available(); len(got) != 4 {
		t.Errorf("Available() = %v, want 4 LEDs", got)
	}
}
