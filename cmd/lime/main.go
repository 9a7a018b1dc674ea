// Package main is the entry point for the lime editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/lime/internal/app"
	"github.com/dshills/lime/internal/config"
	"github.com/dshills/lime/internal/renderer/backend"
	"github.com/dshills/lime/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	logFile    string
	snapshot   string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Args[1:], os.Stderr)
	if done {
		return code
	}

	fsys := vfs.NewOSFS()
	cfg, cfgPath, err := loadConfig(fsys, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	editor := app.NewEditor(app.Options{
		Theme:        cfg.Theme,
		ScrollMargin: cfg.Editor.ScrollMargin,
		FS:           fsys,
		Logger:       logger,
	})
	if opts.file != "" {
		if err := editor.OpenOrCreate(opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.snapshot != "" {
		return snapshot(editor, opts.snapshot)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: lime needs an interactive terminal (use -snapshot for headless output)")
		return 1
	}

	if err := runTerminal(editor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := editor.PersistTheme(cfgPath); err != nil {
		logger.Warn("%v", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return 0
}

// runTerminal owns the terminal for the session. Shutdown is deferred so
// the terminal is restored even when Run reports a recovered panic.
func runTerminal(editor *app.Editor) error {
	tty, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := tty.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer tty.Shutdown()

	// SIGTERM and SIGHUP end the session through the normal quit path.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	stop := forwardSignals(signals, tty.PostEvent)
	defer stop()

	return editor.Run(tty)
}

// forwardSignals posts a quit key for the first signal received. The
// returned stop function ends forwarding and waits for the goroutine.
func forwardSignals(signals <-chan os.Signal, post func(backend.Event)) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-signals:
			post(backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlQ})
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

// snapshot renders a single frame as ANSI text to stdout.
func snapshot(editor *app.Editor, size string) int {
	w, h, err := parseSize(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	_ = editor.Apply(app.Resize{Columns: w, Rows: h})
	if err := editor.Frame(backend.NewWriter(os.Stdout, w, h)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println()
	return 0
}

// parseSize parses "WxH", e.g. "80x24".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	return w, h, nil
}

// loadConfig reads the configuration file and applies flag overrides.
// Without -config the default location is used; if it cannot be
// determined the defaults apply and theme changes are not saved.
func loadConfig(fsys vfs.FS, opts options) (*config.Config, string, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			cfg := config.Default()
			applyFlags(cfg, opts)
			return cfg, "", cfg.Validate()
		}
		path = p
	}

	cfg, err := config.NewLoader(fsys).Load(path)
	if err != nil {
		return nil, "", err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
}

// newLogger opens the configured log file. Without one, logs are dropped.
func newLogger(cfg *config.Config) (*app.Logger, func(), error) {
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.Logging.Level)
	if cfg.Logging.File == "" {
		return app.NewLogger(lc), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	lc.Output = f
	return app.NewLogger(lc), func() { _ = f.Close() }, nil
}

// parseFlags parses args. When done is true the program exits with code.
func parseFlags(args []string, stderr io.Writer) (opts options, code int, done bool) {
	fs := flag.NewFlagSet("lime", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion bool
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML, or YAML by extension)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.snapshot, "snapshot", "", "Render one frame of size WxH to stdout and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "lime - a small terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: lime [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl-S       Save\n")
		fmt.Fprintf(stderr, "  Ctrl-Space   Next theme\n")
		fmt.Fprintf(stderr, "  Ctrl-Q       Quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Printf("lime %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fmt.Fprintln(stderr, "Error: lime edits a single file")
		return opts, 2, true
	}
	return opts, 0, false
}
