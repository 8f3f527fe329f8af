package led

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// DefaultRoot is the kernel LED class directory.
const DefaultRoot = "/sys/class/leds"

// Attribute file names under each LED directory.
const (
	AttrBrightness = "brightness"
	AttrBlinkTime  = "led_time"
	AttrBlink      = "blink"
)

// sysfs implements Driver using the Linux sysfs LED interface
type sysfs struct {
	root string
}

// newSysfs creates a sysfs driver rooted at the given LED class directory
func newSysfs(root string) *sysfs {
	if root == "" {
		root = DefaultRoot
	}
	return &sysfs{root: root}
}

// SetBrightness writes the brightness attribute of an LED
func (s *sysfs) SetBrightness(name string, value uint32) error {
	return s.write(name, AttrBrightness, strconv.FormatUint(uint64(value), 10))
}

// SetBlinkTime writes the led_time attribute of an LED
func (s *sysfs) SetBlinkTime(name string, timing BlinkTiming) error {
	return s.write(name, AttrBlinkTime, timing.String())
}

// SetBlink writes the blink attribute of an LED
func (s *sysfs) SetBlink(name string, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	return s.write(name, AttrBlink, value)
}

// Available lists the LED directories present under the root
func (s *sysfs) Available() []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		// sysfs class entries are symlinks to the device directories
		if entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func (s *sysfs) write(name, attr, value string) error {
	ledPath := filepath.Join(s.root, name)

	// Check if LED exists
	if _, err := os.Stat(ledPath); os.IsNotExist(err) {
		return fmt.Errorf("LED %q not found at %s", name, ledPath)
	}

	attrPath := filepath.Join(ledPath, attr)
	f, err := os.OpenFile(attrPath, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", attrPath, err)
	}

	_, writeErr := f.WriteString(value)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write %q to %s: %w", value, attrPath, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", attrPath, closeErr)
	}

	return nil
}
