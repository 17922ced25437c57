package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/output"
)

// ErrNoSelection is returned when a picker exits without a choice.
var ErrNoSelection = errors.New("no selection")

var (
	version string
	baseDir string

	logFile  string
	logLevel string
	logClose io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Keyboard-driven dropdown menus for the terminal",
	Long: `dropdown - floating, keyboard-navigable menus for terminal UIs.

Pick from a list on the command line, preview every placement in a demo, or
inspect menu files. Defaults come from .dropdown/config.json and DROPDOWN_*
environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		file, level := cfg.Log.File, cfg.Log.Level
		if cmd.Flags().Changed("log-file") {
			file = logFile
		}
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		closer, err := setupLogging(file, level)
		if err != nil {
			return err
		}
		logClose = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun does not run when RunE fails.
	closeLog()
	if err != nil {
		if !errors.Is(err, ErrNoSelection) {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func closeLog() {
	if logClose != nil {
		logClose.Close()
		logClose = nil
	}
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory config is read from
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. The terminal belongs to the
// UI, so logs go to a file or nowhere.
func setupLogging(file, level string) (io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if file == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})))
	return f, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
