// Package store loads the declarative light state file.
//
// The file lists the initial state of logical lights keyed by identifier.
// It is read-only for the daemon: changes made through the API are not
// written back.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/smazurov/tulipd/internal/lights"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the state file format version.
const CurrentVersion = 1

// File is the parsed content of a state file.
type File struct {
	Version int                          `toml:"version" yaml:"version" json:"version"`
	Lights  map[string]lights.LightState `toml:"lights" yaml:"lights" json:"lights"`
}

// Format of a state file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the format from the file extension. Anything that is not
// .yaml or .yml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a state file. A missing file yields an empty state set.
func Load(path string) (*File, error) {
	f := &File{
		Version: CurrentVersion,
		Lights:  make(map[string]lights.LightState),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := Decode(data, FormatFor(path), f); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}

	if f.Lights == nil {
		f.Lights = make(map[string]lights.LightState)
	}
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported state file version %d in %s", f.Version, path)
	}

	return f, nil
}

// Decode parses state file content in the given format into f.
func Decode(data []byte, format Format, f *File) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, f)
	default:
		return toml.Unmarshal(data, f)
	}
}

// Apply sets every listed light on the controller in identifier order.
// Unknown identifiers are logged and skipped.
func (f *File) Apply(ctrl *lights.Controller, logger *slog.Logger) (applied, skipped []string) {
	if logger == nil {
		logger = slog.Default()
	}

	names := make([]string, 0, len(f.Lights))
	for name := range f.Lights {
		names = append(names, name)
	}
	sort.Strings(names)

	applied = make([]string, 0, len(names))
	for _, name := range names {
		dev, err := lights.Open(ctrl, name)
		if err != nil {
			logger.Warn("Skipping light from state file", "light", name, "error", err)
			skipped = append(skipped, name)
			continue
		}

		state := f.Lights[name]
		dev.Set(state)
		logger.Debug("Applied light from state file",
			"light", name,
			"color", fmt.Sprintf("%#08x", state.Color),
			"flash_mode", state.FlashMode.String())
		applied = append(applied, name)
	}

	return applied, skipped
}
