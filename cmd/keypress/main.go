// Package main is the entry point for the keypress tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/keypress/internal/input/fuzzy"
	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/keymap"
	"github.com/dshills/keypress/internal/logging"
	"github.com/dshills/keypress/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage marks a command line that does not ask for anything.
var errUsage = errors.New("nothing to do")

// options holds the parsed command line.
type options struct {
	Host       string
	KeymapPath string
	Format     string
	ScriptPath string
	Listen     bool
	Version    bool
	LogLevel   string
	LogFile    string
	Debug      bool
	Tokens     []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "keypress %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	host := key.CurrentHost()
	if opts.Host != "" {
		host, err = key.ParseHost(opts.Host)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}

	logger, closeLog, err := newLogger(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Debug("host %s", host)

	var table *keymap.Table
	if opts.KeymapPath != "" && opts.needsTable() {
		table, err = keymap.NewLoader().LoadFile(opts.KeymapPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.WithComponent("keymap").Debug("loaded %s: %d bindings", opts.KeymapPath, table.Len())
	}

	status := 0
	switch {
	case opts.Format != "":
		if err := convertTable(stdout, table, opts.Format); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	case table != nil && opts.ScriptPath == "" && !opts.Listen && len(opts.Tokens) == 0:
		printTable(stdout, table, host)
	}

	if len(opts.Tokens) > 0 && !describeTokens(stdout, stderr, opts.Tokens, host, table) {
		status = 1
	}

	if opts.ScriptPath != "" {
		logger.WithComponent("lua").Debug("running %s", opts.ScriptPath)
		if err := runScript(opts.ScriptPath, host, table); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.Listen {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := listen(ctx, host, opts.KeymapPath, logger); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	return status
}

// needsTable reports whether the keymap must be loaded up front. Listen
// mode alone loads it through its watcher.
func (o options) needsTable() bool {
	return !o.Listen || o.Format != "" || o.ScriptPath != "" || len(o.Tokens) > 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("keypress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Host, "host", "", "Host whose labels to use (mac, windows, other); default is the running system")
	fs.StringVar(&opts.KeymapPath, "keymap", "", "Keymap file to validate and list (.toml, .yaml, .json, .ini)")
	fs.StringVar(&opts.KeymapPath, "k", "", "Keymap file (shorthand)")
	fs.StringVar(&opts.Format, "format", "", "Re-encode the keymap in this format (toml, yaml, json, ini)")
	fs.StringVar(&opts.ScriptPath, "lua", "", "Run a Lua script with the keys module")
	fs.BoolVar(&opts.Listen, "listen", false, "Print tokens for keys and mouse buttons pressed in the terminal")
	fs.BoolVar(&opts.Listen, "l", false, "Listen (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	fs.BoolVar(&opts.Version, "version", false, "Show version information")
	fs.BoolVar(&opts.Version, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "keypress - inspect key binding tokens\n\n")
		fmt.Fprintf(stderr, "Usage: keypress [options] [tokens...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  keypress ctrl f5 mousemiddle      Show labels and codes\n")
		fmt.Fprintf(stderr, "  keypress -host mac meta           Show the Mac label of meta\n")
		fmt.Fprintf(stderr, "  keypress -k keys.toml             Validate and list a keymap\n")
		fmt.Fprintf(stderr, "  keypress -k keys.toml -format yaml Convert a keymap\n")
		fmt.Fprintf(stderr, "  keypress -k keys.toml -listen     Show bound commands for pressed keys\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Tokens = fs.Args()

	if opts.Debug {
		opts.LogLevel = "debug"
	}
	if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
		return opts, err
	}
	if opts.Format != "" && opts.KeymapPath == "" {
		return opts, errors.New("-format requires -keymap")
	}
	if !opts.Version && !opts.Listen && opts.KeymapPath == "" && opts.ScriptPath == "" && len(opts.Tokens) == 0 {
		fs.Usage()
		return opts, errUsage
	}

	return opts, nil
}

// newLogger builds the command logger. Without -log-file it writes to
// stderr, except while listening, when stderr shares the terminal with
// the screen and logging is discarded.
func newLogger(opts options, stderr io.Writer) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger := logging.New(logging.Config{Level: level, Output: f, Prefix: "keypress"})
		return logger, func() { _ = f.Close() }, nil
	}
	if opts.Listen {
		return logging.Discard, func() {}, nil
	}
	return logging.New(logging.Config{Level: level, Output: stderr, Prefix: "keypress"}), func() {}, nil
}

// labelWidth is the display width of the label column.
const labelWidth = 16

// describeTokens prints one line per token and reports unknown tokens
// on stderr. It returns false if any token was rejected.
func describeTokens(stdout, stderr io.Writer, tokens []string, host key.Host, table *keymap.Table) bool {
	ok := true
	for _, text := range tokens {
		tok, err := key.Parse(text)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v%s\n", err, suggestion(text))
			ok = false
			continue
		}
		fmt.Fprintln(stdout, describe(tok, host, table))
	}
	return ok
}

// describe formats a token as "label kind code [command]".
func describe(tok key.Token, host key.Host, table *keymap.Table) string {
	line := fmt.Sprintf("%s %-8s %s", runewidth.FillRight(tok.Render(host), labelWidth), tok.Kind(), codeName(tok))
	if b, ok := table.Lookup(tok); ok {
		line += "  -> " + b.Command
	}
	return strings.TrimRight(line, " ")
}

// suggestion returns a "did you mean" hint for an unrecognized token,
// or "" when no name is close.
func suggestion(text string) string {
	names := fuzzy.Suggest(text, key.Names(), 3)
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(names, ", "))
}

func codeName(tok key.Token) string {
	if tok.IsPointer() {
		return "mouse:" + tok.Button().String()
	}
	return tok.Code().String()
}

func printTable(w io.Writer, table *keymap.Table, host key.Host) {
	fmt.Fprintf(w, "%s: %d bindings\n", table.Name, table.Len())
	for _, b := range table.Bindings() {
		line := fmt.Sprintf("  %s %s", runewidth.FillRight(b.Label(host), labelWidth), b.Command)
		if b.Description != "" {
			line += "  # " + b.Description
		}
		fmt.Fprintln(w, line)
	}
}

func convertTable(w io.Writer, table *keymap.Table, name string) error {
	format, err := keymap.ParseFormat(name)
	if err != nil {
		return err
	}
	data, err := keymap.Marshal(table, format)
	if err != nil {
		return fmt.Errorf("encode keymap: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func runScript(path string, host key.Host, table *keymap.Table) error {
	state, err := lua.NewState(
		lua.WithHost(host),
		lua.WithKeymap(func() *keymap.Table { return table }),
	)
	if err != nil {
		return err
	}
	defer state.Close()

	if err := state.DoFile(path); err != nil {
		return fmt.Errorf("lua %s: %w", path, err)
	}
	return nil
}
