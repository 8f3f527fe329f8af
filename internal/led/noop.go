package led

import "log/slog"

// noop implements Driver as a no-op for systems without LED support
type noop struct {
	logger *slog.Logger
}

// newNoop creates a new no-op LED driver
func newNoop(logger *slog.Logger) *noop {
	return &noop{
		logger: logger,
	}
}

// SetBrightness logs the request but performs no actual LED control
func (n *noop) SetBrightness(name string, value uint32) error {
	n.logger.Debug("LED control not available (no-op)",
		"led", name,
		"brightness", value)
	return nil
}

// SetBlinkTime logs the request but performs no actual LED control
func (n *noop) SetBlinkTime(name string, timing BlinkTiming) error {
	n.logger.Debug("LED control not available (no-op)",
		"led", name,
		"led_time", timing.String())
	return nil
}

// SetBlink logs the request but performs no actual LED control
func (n *noop) SetBlink(name string, enabled bool) error {
	n.logger.Debug("LED control not available (no-op)",
		"led", name,
		"blink", enabled)
	return nil
}

// Available returns an empty list since no LEDs are available
func (n *noop) Available() []string {
	return []string{}
}
