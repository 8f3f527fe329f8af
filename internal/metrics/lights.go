// Package metrics provides Prometheus metrics for the light controller and LED writes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lightActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tulipd",
		Subsystem: "lights",
		Name:      "active",
		Help:      "1 for the logical light currently driving the indicator LED, 0 otherwise",
	}, []string{"light"})

	lightSets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tulipd",
		Subsystem: "lights",
		Name:      "sets_total",
		Help:      "Logical light state changes",
	}, []string{"light"})

	recomputes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tulipd",
		Subsystem: "lights",
		Name:      "recomputes_total",
		Help:      "Indicator LED recomputations",
	})

	backlightBrightness = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tulipd",
		Subsystem: "lights",
		Name:      "backlight_brightness",
		Help:      "Last brightness written to the LCD backlight",
	})

	ledWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tulipd",
		Subsystem: "led",
		Name:      "writes_total",
		Help:      "LED attribute writes attempted",
	}, []string{"led", "attribute"})

	ledWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tulipd",
		Subsystem: "led",
		Name:      "write_failures_total",
		Help:      "LED attribute writes that failed",
	}, []string{"led", "attribute"})
)

// Logical light labels, fixed so that the active gauge is always complete.
var lightLabels = []string{"battery", "notifications", "attention"}

// SetActiveLight marks one logical light as active. An empty name clears all.
func SetActiveLight(name string) {
	for _, label := range lightLabels {
		if label == name {
			lightActive.WithLabelValues(label).Set(1)
		} else {
			lightActive.WithLabelValues(label).Set(0)
		}
	}
}

// IncLightSet counts a state change of a logical light.
func IncLightSet(light string) {
	lightSets.WithLabelValues(light).Inc()
}

// IncRecompute counts an indicator LED recomputation.
func IncRecompute() {
	recomputes.Inc()
}

// SetBacklightBrightness records the brightness written to the backlight.
func SetBacklightBrightness(value uint32) {
	backlightBrightness.Set(float64(value))
}

// ObserveLEDWrite counts an attribute write and, if err is non-nil, its failure.
func ObserveLEDWrite(led, attribute string, err error) {
	ledWrites.WithLabelValues(led, attribute).Inc()
	if err != nil {
		ledWriteFailures.WithLabelValues(led, attribute).Inc()
	}
}
