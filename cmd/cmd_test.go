package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smazurov/tulipd/internal/led"
	"github.com/smazurov/tulipd/internal/lights"
	"github.com/smazurov/tulipd/internal/wifimac"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr bool
	}{
		{"ff0000", 0x00ff0000, false},
		{"0x00ff00", 0x0000ff00, false},
		{"0X0000FF", 0x000000ff, false},
		{"#808080", 0x00808080, false},
		{"ff00ff00", 0xff00ff00, false},
		{" 0 ", 0, false},
		{"", 0, true},
		{"0x", 0, true},
		{"green", 0, true},
		{"1ffffffff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.input, got, tt.want)
			}
		})
	}
}

// fakeLEDs creates an LED class tree with the four expected LEDs and their
// attribute files. The sysfs driver never creates attributes itself.
func fakeLEDs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{led.Red, led.Green, led.Blue, led.Backlight} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, attr := range []string{led.AttrBrightness, led.AttrBlinkTime, led.AttrBlink} {
			if err := os.WriteFile(filepath.Join(dir, attr), nil, 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func readAttr(t *testing.T, root, name, attr string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name, attr))
	if err != nil {
		t.Fatalf("Failed to read %s/%s: %v", name, attr, err)
	}
	return string(data)
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := CreateLightCmd()
	if len(args) > 0 && args[0] == "wifimac" {
		cmd = CreateWifiMACCmd()
		args = args[1:]
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLightCmd(t *testing.T) {
	root := fakeLEDs(t)

	out, err := runCmd(t, "notifications", "--color", "0x00ff00",
		"--flash", "timed", "--on-ms", "1000", "--off-ms", "500", "--leds-root", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "blink green [1 4 1 2]" {
		t.Errorf("output = %q", out)
	}
	if got := readAttr(t, root, led.Green, led.AttrBlinkTime); got != "1 4 1 2" {
		t.Errorf("green/led_time = %q, want %q", got, "1 4 1 2")
	}
	if got := readAttr(t, root, led.Green, led.AttrBlink); got != "1" {
		t.Errorf("green/blink = %q, want 1", got)
	}
}

func TestLightCmd_Backlight(t *testing.T) {
	root := fakeLEDs(t)

	out, err := runCmd(t, "backlight", "--color", "ffffff", "--leds-root", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "lcd-backlight brightness=255" {
		t.Errorf("output = %q", out)
	}
	if got := readAttr(t, root, led.Backlight, led.AttrBrightness); got != "255" {
		t.Errorf("lcd-backlight/brightness = %q, want 255", got)
	}
}

func TestLightCmd_Errors(t *testing.T) {
	root := fakeLEDs(t)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown light", []string{"keyboard", "--color", "ff", "--leds-root", root}, lights.ErrUnknownLight},
		{"bad color", []string{"battery", "--color", "red", "--leds-root", root}, nil},
		{"bad flash", []string{"battery", "--flash", "strobe", "--leds-root", root}, nil},
		{"missing id", []string{"--leds-root", root}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLightCmd_WriteFailures(t *testing.T) {
	// LED directories without attribute files reject every write
	root := t.TempDir()
	for _, name := range []string{led.Red, led.Green, led.Blue, led.Backlight} {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		args []string
	}{
		{"blink", []string{"notifications", "--color", "00ff00", "--flash", "timed", "--on-ms", "1000", "--off-ms", "500", "--leds-root", root}},
		{"off", []string{"battery", "--leds-root", root}},
		{"backlight", []string{"backlight", "--color", "ffffff", "--leds-root", root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if !errors.Is(err, ErrWritesFailed) {
				t.Fatalf("Execute() error = %v, want ErrWritesFailed", err)
			}
			if strings.Contains(out, "blink green") || strings.Contains(out, "brightness=255") {
				t.Errorf("printed a result for a failed set: %q", out)
			}
		})
	}
}

func TestWifiMACCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifimac.dat")
	if err := os.WriteFile(path, []byte("wifiaddr:0x00 0x1a 0x2b 0x3c 0x4d 0x5e"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "wifimac", "--path", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "00:1a:2b:3c:4d:5e" {
		t.Errorf("output = %q", out)
	}
}

func TestWifiMACCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.dat")
	if err := os.WriteFile(malformed, []byte("wifiaddr:0x00 0x1a"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCmd(t, "wifimac", "--path", filepath.Join(dir, "missing.dat")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
	if _, err := runCmd(t, "wifimac", "--path", malformed); !errors.Is(err, wifimac.ErrMalformed) {
		t.Errorf("malformed file error = %v, want ErrMalformed", err)
	}
}
