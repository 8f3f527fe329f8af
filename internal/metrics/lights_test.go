package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetActiveLight(t *testing.T) {
	SetActiveLight("attention")

	tests := []struct {
		light string
		want  float64
	}{
		{"battery", 0},
		{"notifications", 0},
		{"attention", 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(lightActive.WithLabelValues(tt.light)); got != tt.want {
			t.Errorf("active{light=%q} = %v, want %v", tt.light, got, tt.want)
		}
	}

	SetActiveLight("")
	for _, tt := range tests {
		if got := testutil.ToFloat64(lightActive.WithLabelValues(tt.light)); got != 0 {
			t.Errorf("active{light=%q} = %v after clear, want 0", tt.light, got)
		}
	}
}

func TestObserveLEDWrite(t *testing.T) {
	writes := ledWrites.WithLabelValues("red", "brightness")
	failures := ledWriteFailures.WithLabelValues("red", "brightness")
	baseWrites := testutil.ToFloat64(writes)
	baseFailures := testutil.ToFloat64(failures)

	ObserveLEDWrite("red", "brightness", nil)
	ObserveLEDWrite("red", "brightness", errors.New("permission denied"))

	if got := testutil.ToFloat64(writes) - baseWrites; got != 2 {
		t.Errorf("writes delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(failures) - baseFailures; got != 1 {
		t.Errorf("failures delta = %v, want 1", got)
	}
}

func TestBacklightAndCounters(t *testing.T) {
	SetBacklightBrightness(128)
	if got := testutil.ToFloat64(backlightBrightness); got != 128 {
		t.Errorf("backlight_brightness = %v, want 128", got)
	}

	base := testutil.ToFloat64(recomputes)
	IncRecompute()
	if got := testutil.ToFloat64(recomputes) - base; got != 1 {
		t.Errorf("recomputes delta = %v, want 1", got)
	}

	setBase := testutil.ToFloat64(lightSets.WithLabelValues("battery"))
	IncLightSet("battery")
	if got := testutil.ToFloat64(lightSets.WithLabelValues("battery")) - setBase; got != 1 {
		t.Errorf("sets delta = %v, want 1", got)
	}
}
