// internal/config/flags.go
package config

import (
	"flag"
	"fmt"

	"github.com/bethropolis/emacsmode/internal/utils"
)

// Flags holds values parsed from command-line flags.
// Only flags that were set on the command line override the config file.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabStop         *int
	ShiftWidth      *int
	KillRingSize    *int
	CommentPrefix   *string
	SystemClipboard *bool
	Disabled        *bool
	KeymapFiles     *string
	ThemeFile       *string
	// Logger filters
	EnableTags   *string
	DisableTags  *string
	EnablePkgs   *string
	DisablePkgs  *string
	EnableFiles  *string
	DisableFiles *string
	DebugLog     *bool
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.set = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.TabStop = fs.Int("tabstop", 0, "Tab stop width - Overrides config file")
	f.ShiftWidth = fs.Int("shiftwidth", 0, "Indent width - Overrides config file")
	f.KillRingSize = fs.Int("killring", 0, "Kill ring capacity - Overrides config file")
	f.CommentPrefix = fs.String("comment", "", "Fallback line comment prefix - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Mirror kills to the system clipboard")
	f.Disabled = fs.Bool("no-emacs", false, "Start with emacs bindings disabled")
	f.KeymapFiles = fs.String("keymap", "", "Comma-separated keymap files appended to the defaults")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
}

// ParseFlags defines and parses the flags from args.
// It returns the remaining non-flag arguments (e.g., the file path).
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	// Visit only processes flags that were actually set
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // "-" is valid
		case "tabstop":
			if *f.TabStop > 0 {
				cfg.Editor.TabStop = *f.TabStop
			}
		case "shiftwidth":
			if *f.ShiftWidth > 0 {
				cfg.Editor.ShiftWidth = *f.ShiftWidth
			}
		case "killring":
			if *f.KillRingSize > 0 {
				cfg.Editor.KillRingSize = *f.KillRingSize
			}
		case "comment":
			if *f.CommentPrefix != "" {
				cfg.Editor.CommentPrefix = *f.CommentPrefix
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "no-emacs":
			cfg.Editor.UseEmacsMode = !*f.Disabled
		case "keymap":
			cfg.Keymap.Files = append(cfg.Keymap.Files, utils.SplitCommaList(*f.KeymapFiles)...)
		case "theme":
			cfg.Theme.File = *f.ThemeFile
		case "log-tags":
			cfg.Logger.EnabledTags = utils.SplitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = utils.SplitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = utils.SplitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = utils.SplitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = utils.SplitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = utils.SplitCommaList(*f.DisableFiles)
		}
	})
}
