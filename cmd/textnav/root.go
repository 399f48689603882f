package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/textnav/internal/config"
	"github.com/dshills/textnav/internal/engine/buffer"
	"github.com/dshills/textnav/internal/logging"
	"github.com/dshills/textnav/internal/nav"
)

// ErrNoMatch is returned in strict mode when a query finds nothing.
var ErrNoMatch = errors.New("no match")

var (
	configPath   string
	logLevel     string
	inputPath    string
	cursorAt     string
	colorMode    string
	strict       bool
	unicodeWords bool
)

var rootCmd = &cobra.Command{
	Use:   "textnav",
	Short: "Resolve editor navigation ranges in a text file",
	Long: `textnav computes the ranges an editor selects when navigating text:
the enclosing bracket or string scope, the next or previous word, and the
nearest word wrapped in a pair of marker characters.

Positions are given and printed as LINE:COLUMN, both starting at 1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML or YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "file", "f", "-", "File to read, - for stdin")
	rootCmd.PersistentFlags().StringVarP(&cursorAt, "at", "a", "1:1", "Cursor position as LINE:COLUMN")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Exit with status 1 when nothing is found")
	rootCmd.PersistentFlags().BoolVar(&unicodeWords, "unicode-words", false, "Treat letters and digits of any script as word characters")

	rootCmd.AddCommand(scopeCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(enclosedCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// session is everything a query subcommand needs.
type session struct {
	doc    *buffer.Document
	cursor buffer.Point
	nav    *nav.Navigator
	logger *logging.Logger
	out    *printer
}

// newSession loads configuration, the input document and the cursor.
// Flags override configuration values.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if unicodeWords {
		cfg.Words.Unicode = true
	}
	if enclosedMulti {
		cfg.Markers.MultiChar = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: cmd.ErrOrStderr(),
		Prefix: "textnav",
	})

	text, err := readInput(cmd.InOrStdin(), inputPath)
	if err != nil {
		return nil, err
	}
	doc := buffer.NewDocument(text, cfg.DocumentOptions()...)
	logger.Debug("loaded %s: %d lines, %d characters", inputPath, doc.LineCount(), doc.Len())

	cursor, err := parsePosition(cursorAt)
	if err != nil {
		return nil, err
	}

	out, err := newPrinter(cmd.OutOrStdout(), colorMode)
	if err != nil {
		return nil, err
	}

	return &session{
		doc:    doc,
		cursor: doc.ValidatePosition(cursor),
		nav:    nav.NewNavigator(cfg.NavigatorOptions(logger)...),
		logger: logger,
		out:    out,
	}, nil
}

// report prints a query result, returning ErrNoMatch in strict mode.
func (s *session) report(res nav.Result) error {
	if !res.Found {
		s.out.noMatch()
		if strict {
			return ErrNoMatch
		}
		return nil
	}
	s.out.printRange(s.doc, res.Range)
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
