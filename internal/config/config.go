// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/emacsmode/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
	Keymap KeymapConfig  `toml:"keymap"`
	Theme  ThemeConfig   `toml:"theme"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	UseEmacsMode    bool     `toml:"use_emacs_mode"`
	TabStop         int      `toml:"tab_stop"`
	ShiftWidth      int      `toml:"shift_width"`
	ExpandTabs      bool     `toml:"expand_tabs"`
	KillRingSize    int      `toml:"kill_ring_size"`
	SystemClipboard bool     `toml:"system_clipboard"`
	CommentPrefix   string   `toml:"comment_prefix"`
	MessageTimeout  Duration `toml:"message_timeout"`
}

// KeymapConfig lists keymap files appended after the default bindings.
type KeymapConfig struct {
	Files []string `toml:"files"`
}

// ThemeConfig selects the terminal theme. An empty File uses the built-in one.
type ThemeConfig struct {
	File string `toml:"file"`
}

// Duration is a time.Duration written as "4s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			UseEmacsMode:    UseEmacsMode,
			TabStop:         DefaultTabStop,
			ShiftWidth:      DefaultShiftWidth,
			ExpandTabs:      ExpandTabs,
			KillRingSize:    DefaultKillRingSize,
			SystemClipboard: SystemClipboard,
			CommentPrefix:   DefaultCommentPrefix,
			MessageTimeout:  Duration{MessageTimeout},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/emacsmode/config.toml, or "" when
// no config directory can be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// Keys the decoder did not recognise are returned for the caller to report.
func loadFromFile(cfg *Config, filePath string) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, k := range metadata.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabStop <= 0 {
		c.Editor.TabStop = defaults.Editor.TabStop
	}
	if c.Editor.ShiftWidth <= 0 {
		c.Editor.ShiftWidth = defaults.Editor.ShiftWidth
	}
	if c.Editor.KillRingSize <= 0 {
		c.Editor.KillRingSize = defaults.Editor.KillRingSize
	}
	if c.Editor.CommentPrefix == "" {
		c.Editor.CommentPrefix = defaults.Editor.CommentPrefix
	}
	if c.Editor.MessageTimeout.Duration <= 0 {
		c.Editor.MessageTimeout = defaults.Editor.MessageTimeout
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result is a loaded configuration plus the notes gathered while loading.
// The logger is not running yet during LoadConfig, so the caller logs them.
type Result struct {
	Config    *Config
	Path      string   // file that was read, "" if none
	Undecoded []string // unrecognised keys
}

// LoadConfig loads defaults, then the TOML file, then flag overrides, and
// validates the result. An empty configFilePath uses DefaultPath.
func LoadConfig(configFilePath string, flags *Flags) (Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Config: cfg}

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var loadErr error
	if effectivePath != "" {
		undecoded, err := loadFromFile(cfg, effectivePath)
		if err != nil {
			// Keep the defaults, flags still apply.
			loadErr = err
			cfg = NewDefaultConfig()
			res.Config = cfg
		} else {
			res.Path = effectivePath
			res.Undecoded = undecoded
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return res, loadErr
}
