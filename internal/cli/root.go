// Package cli provides the Cobra command tree for typscii.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Persistent flag names.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the root typscii command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "typscii",
		Short: "Render lightweight markup as styled terminal text",
		Long: `typscii renders a small markup language to the terminal.

Lines starting with '=' become boxed headings whose border weight follows the
level; paragraphs are word-wrapped with *bold*, _italic_ and ` + "`code`" + ` spans
drawn using ANSI styling. Unclosed or malformed markup is never an error: it
is kept as literal text and reported by "typscii check".`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logging.SetLevel("debug")
			}
			if !config.ColorMode(color).IsValid() {
				return usageErrorf("invalid --color %q: must be auto, always or never", color)
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(config.ColorAuto, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// Execute runs root and maps the outcome to a process exit code.
// Errors are logged unless they only signal the exit status.
func Execute(root *cobra.Command) int {
	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitSuccess
	}

	code := ExitCode(err)
	// The root command has no action of its own, so anything failing there
	// (an unknown subcommand, for instance) is a usage problem.
	if cmd == root && code == ExitInternalError {
		code = ExitInvalidUsage
	}

	if !isSilent(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return code
}
