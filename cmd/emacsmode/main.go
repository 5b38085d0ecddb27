// cmd/emacsmode/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"os/signal"
	"strings"

	"github.com/bethropolis/emacsmode/internal/app"
	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/config"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	script := fs.String("keys", "", `Keys to replay, e.g. "<META>|k <META>|y <META>|x|s"`)
	scriptFile := fs.String("keys-file", "", "File holding keys to replay")
	printText := fs.Bool("print", false, "Print the document after the replay")
	interactive := fs.Bool("tui", false, "Edit the file in the terminal (Ctrl+Q quits)")

	var flags config.Flags
	args, err := flags.ParseFlags(fs, os.Args[1:])
	if err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	res, cfgErr := config.LoadConfig(*flags.ConfigFilePath, &flags)
	cfg := res.Config

	// --- Logger Initialization ---
	if *interactive && cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogFileName // keep stderr off the screen
	}
	logOutput, closeLog := openLog(cfg.Logger.LogFilePath)
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)
	logger.SetDebugFilter(*flags.DebugLog)

	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	if res.Path != "" {
		logger.Debugf("Config: loaded %s", res.Path)
	}
	for _, k := range res.Undecoded {
		logger.Warnf("Config: unknown key %q", k)
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			stlog.Fatalf("Failed to read keys file '%s': %v", *scriptFile, err)
		}
		*script = strings.TrimSpace(*script + " " + string(data))
	}

	if *interactive {
		if err := runTUI(cfg, filePath); err != nil {
			logger.Errorf("TUI failed: %v", err)
			fmt.Fprintln(os.Stderr, err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, filePath, *script, *printText, os.Stdout); err != nil {
		logger.Errorf("Replay failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

// run loads filePath, replays script against it and reports the result.
func run(cfg *config.Config, filePath, script string, printText bool, out io.Writer) error {
	events, err := parseScript(script)
	if err != nil {
		return err
	}

	doc := buffer.NewSliceBuffer()
	if filePath != "" {
		// A missing file loads as an empty document.
		if err := doc.Load(filePath); err != nil {
			return err
		}
	}

	a, err := app.New(cfg, nil)
	if err != nil {
		return err
	}
	h := a.Attach(doc, filePath)

	for _, ev := range events {
		res := a.Type(doc, ev)
		logger.DebugTagf("replay", "%s -> %s", ev, res)
	}

	if printText {
		text := doc.Text(0, doc.Len())
		fmt.Fprint(out, text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(out)
		}
	}
	if h.Pending() {
		logger.Infof("Replay ended inside a chord")
	}
	if msg, _, ok := a.StatusBar().Message(); ok {
		fmt.Fprintln(out, msg)
	}
	fmt.Fprintln(out, a.StatusBar().Status())
	return nil
}

// runTUI edits filePath on the terminal until the quit key.
func runTUI(cfg *config.Config, filePath string) error {
	doc := buffer.NewSliceBuffer()
	if filePath != "" {
		if err := doc.Load(filePath); err != nil {
			return err
		}
	}
	a, err := app.New(cfg, nil)
	if err != nil {
		return err
	}
	a.Attach(doc, filePath)

	ui, err := tui.New()
	if err != nil {
		return err
	}
	defer ui.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tui.Run(ctx, ui, a, doc)
}

// openLog opens the log destination. Empty or "-" is stderr.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "-" {
		return os.Stderr, func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", path, err)
	}
	return logFile, func() { logFile.Close() }
}
