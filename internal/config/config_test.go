package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if !cfg.Editor.UseEmacsMode {
		t.Error("UseEmacsMode should default to true")
	}
	if cfg.Editor.KillRingSize != 60 {
		t.Errorf("KillRingSize = %d, want 60", cfg.Editor.KillRingSize)
	}
	if cfg.Editor.CommentPrefix != "//" {
		t.Errorf("CommentPrefix = %q", cfg.Editor.CommentPrefix)
	}
	if cfg.Editor.MessageTimeout.Duration != 4*time.Second {
		t.Errorf("MessageTimeout = %v", cfg.Editor.MessageTimeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
enabled_tags = ["killring"]

[editor]
use_emacs_mode = false
tab_stop = 8
kill_ring_size = 10
comment_prefix = "#"
message_timeout = "1500ms"
unknown_key = 1

[keymap]
files = ["extra.toml"]
`)
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := res.Config
	if res.Path != path {
		t.Errorf("Path = %q", res.Path)
	}
	if cfg.Logger.LogLevel != "debug" || len(cfg.Logger.EnabledTags) != 1 {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.Editor.UseEmacsMode {
		t.Error("use_emacs_mode = false not applied")
	}
	if cfg.Editor.TabStop != 8 || cfg.Editor.ShiftWidth != DefaultShiftWidth {
		t.Errorf("TabStop/ShiftWidth = %d/%d", cfg.Editor.TabStop, cfg.Editor.ShiftWidth)
	}
	if cfg.Editor.KillRingSize != 10 || cfg.Editor.CommentPrefix != "#" {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Editor.MessageTimeout.Duration != 1500*time.Millisecond {
		t.Errorf("MessageTimeout = %v", cfg.Editor.MessageTimeout)
	}
	if len(cfg.Keymap.Files) != 1 || cfg.Keymap.Files[0] != "extra.toml" {
		t.Errorf("Keymap.Files = %v", cfg.Keymap.Files)
	}
	if len(res.Undecoded) != 1 || res.Undecoded[0] != "editor.unknown_key" {
		t.Errorf("Undecoded = %v", res.Undecoded)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	res, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if res.Path != "" {
		t.Errorf("Path = %q, want empty", res.Path)
	}
	if res.Config.Editor.TabStop != DefaultTabStop {
		t.Errorf("TabStop = %d", res.Config.Editor.TabStop)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[editor\ntab_stop = 2"},
		{"bad duration", "[editor]\nmessage_timeout = \"soon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := LoadConfig(writeConfig(t, tt.body), nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if res.Config == nil || res.Config.Editor.TabStop != DefaultTabStop {
				t.Errorf("defaults not kept after error: %+v", res.Config)
			}
		})
	}
}

func TestValidateResetsBadValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "loud"
[editor]
tab_stop = -1
kill_ring_size = 0
comment_prefix = ""
`)
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := res.Config
	if cfg.Editor.TabStop != DefaultTabStop || cfg.Editor.KillRingSize != DefaultKillRingSize {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Editor.CommentPrefix != DefaultCommentPrefix {
		t.Errorf("CommentPrefix = %q", cfg.Editor.CommentPrefix)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.Logger.LogLevel)
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_stop = 8\nshift_width = 2\n")

	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args, err := f.ParseFlags(fs, []string{
		"-tabstop", "3",
		"-no-emacs",
		"-keymap", "a.toml, b.yaml",
		"-log-tags", "killring,event",
		"-theme", "dark.toml",
		"file.go",
	})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if len(args) != 1 || args[0] != "file.go" {
		t.Errorf("args = %v", args)
	}

	res, err := LoadConfig(path, &f)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := res.Config
	if cfg.Editor.TabStop != 3 {
		t.Errorf("TabStop = %d, want flag value 3", cfg.Editor.TabStop)
	}
	if cfg.Editor.ShiftWidth != 2 {
		t.Errorf("ShiftWidth = %d, want file value 2", cfg.Editor.ShiftWidth)
	}
	if cfg.Editor.UseEmacsMode {
		t.Error("-no-emacs not applied")
	}
	if len(cfg.Keymap.Files) != 2 || cfg.Keymap.Files[1] != "b.yaml" {
		t.Errorf("Keymap.Files = %v", cfg.Keymap.Files)
	}
	if len(cfg.Logger.EnabledTags) != 2 {
		t.Errorf("EnabledTags = %v", cfg.Logger.EnabledTags)
	}
	if cfg.Theme.File != "dark.toml" {
		t.Errorf("Theme.File = %q", cfg.Theme.File)
	}
}
