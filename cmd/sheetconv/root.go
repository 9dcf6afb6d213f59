package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// ExitError signals a non-zero exit code without printing an error message.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return "" }

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "sheetconv",
		Short: "Convert Excel workbooks to structured text",
		Long: `sheetconv loads .xls and .xlsx workbooks, turns every sheet into
records keyed by the first row, and writes them as JSON, YAML or TOON.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: SHEETCONV_LOG_LEVEL)")

	rootCmd.AddCommand(newConvertCmd(flags))
	rootCmd.AddCommand(newCombineCmd(flags))
	return rootCmd
}

// newLogger builds the console logger used by every command.
func newLogger(w io.Writer, flags *rootFlags) (*slog.Logger, error) {
	level, err := parseLevel(resolveString(flags.logLevel, "SHEETCONV_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}

// resolveString returns the flag value, then the environment value, then def.
func resolveString(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// resolveBool returns true if the flag is set or the environment value parses as true.
func resolveBool(flagValue bool, env string) bool {
	if flagValue {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(env))
	return err == nil && v
}
