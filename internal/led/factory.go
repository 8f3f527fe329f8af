package led

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const deviceTreeModelPath = "/proc/device-tree/model"

// New creates an LED driver for the given LED class root.
// Falls back to a no-op driver if the root is not present.
func New(root string, logger *slog.Logger) Driver {
	if root == "" {
		root = DefaultRoot
	}
	if logger == nil {
		logger = slog.Default()
	}

	boardModel := detectBoard()
	logger.Info("Detecting LED support", "board_model", boardModel, "root", root)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		logger.Info("No LED class directory, using no-op driver", "root", root)
		return newNoop(logger)
	}

	drv := newSysfs(root)
	for _, name := range []string{Red, Green, Blue, Backlight} {
		if _, statErr := os.Stat(filepath.Join(root, name)); statErr != nil {
			logger.Warn("Expected LED missing, writes to it will fail", "led", name)
		}
	}
	logger.Info("Using sysfs LED driver", "leds", drv.Available())
	return drv
}

// detectBoard reads the device tree model to identify the board.
func detectBoard() string {
	data, err := os.ReadFile(deviceTreeModelPath)
	if err != nil {
		return "unknown"
	}

	// Device tree model contains null bytes, trim them
	model := strings.TrimRight(string(data), "\x00")
	return model
}
