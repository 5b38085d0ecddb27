package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/emacsmode/internal/logger"
)

// ErrUnknownFormat is returned for keymap files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown keymap format")

// Format identifies a keymap file encoding.
type Format string

// Supported keymap file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// keymapConfig is the on-disk structure for keymap files.
type keymapConfig struct {
	Name     string          `toml:"name" yaml:"name" json:"name"`
	Bindings []bindingConfig `toml:"bindings" yaml:"bindings" json:"bindings"`
}

type bindingConfig struct {
	Keys   string `toml:"keys" yaml:"keys" json:"keys"`
	Action string `toml:"action" yaml:"action" json:"action"`
}

// LoadKeymapFile reads the shortcuts declared in a keymap file.
func LoadKeymapFile(path string) (Keymap, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := LoadKeymapReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	logger.Infof("Loaded %d bindings from %s", len(km), path)
	return km, nil
}

// LoadKeymapReader decodes a keymap in the given format.
func LoadKeymapReader(r io.Reader, format Format) (Keymap, error) {
	var cfg keymapConfig
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&cfg)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	km := make(Keymap, 0, len(cfg.Bindings))
	for i, bc := range cfg.Bindings {
		action, ok := ActionByName(bc.Action)
		if !ok {
			return nil, fmt.Errorf("binding %d: unknown action %q", i, bc.Action)
		}
		s, err := NewShortcut(bc.Keys, action)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		km = append(km, s)
	}
	return km, nil
}

// WithFiles returns base followed by the bindings of each file in order.
// Appended bindings have lower priority than everything before them.
func WithFiles(base Keymap, paths []string) (Keymap, error) {
	km := base.Clone()
	for _, p := range paths {
		extra, err := LoadKeymapFile(p)
		if err != nil {
			return nil, err
		}
		km = append(km, extra...)
	}
	return km, nil
}
