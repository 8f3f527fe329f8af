package led

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("missing root falls back to noop", func(t *testing.T) {
		drv := New(filepath.Join(t.TempDir(), "absent"), logger)
		if _, ok := drv.(*noop); !ok {
			t.Fatalf("New() = %T, want *noop", drv)
		}
	})

	t.Run("existing root uses sysfs", func(t *testing.T) {
		root := fakeLEDTree(t, Red, Green, Blue)
		drv := New(root, logger)
		if _, ok := drv.(*sysfs); !ok {
			t.Fatalf("New() = %T, want *sysfs", drv)
		}
		if got := len(drv.Available()); got != 3 {
			t.Errorf("Available() len = %d, want 3", got)
		}
	})

	t.Run("nil logger", func(t *testing.T) {
		if drv := New(t.TempDir(), nil); drv == nil {
			t.Fatal("New() returned nil")
		}
	})
}

func TestDetectBoard(t *testing.T) {
	model := detectBoard()

	// Should return a non-empty string (or "unknown")
	if model == "" {
		t.Error("detectBoard() returned empty string")
	}

	if model == "unknown" {
		t.Log("Board model unknown (expected on hosts without a device tree)")
	}
}
