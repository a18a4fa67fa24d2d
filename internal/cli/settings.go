package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/typscii/internal/configloader"
	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/internal/ui/pretty"
	"github.com/yaklabco/typscii/pkg/config"
)

// errWriteOutput wraps failures writing rendered output.
var errWriteOutput = errors.New("write output")

// layoutFlags are the flags shared by commands that discover files.
type layoutFlags struct {
	ignore []string
	jobs   int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "glob patterns to skip during discovery")
	cmd.Flags().IntVar(&f.jobs, "jobs", 0, "number of parallel workers (0 = number of CPUs)")
}

// overrides returns the CLI layer for configloader; only flags the user
// set are included.
func (f *layoutFlags) overrides(cmd *cobra.Command) *configloader.Overrides {
	o := &configloader.Overrides{}
	if cmd.Flags().Changed("ignore") {
		o.Ignore = f.ignore
	}
	if cmd.Flags().Changed("jobs") {
		o.Jobs = configloader.Int(f.jobs)
	}
	return o
}

// loadConfig resolves the layered configuration for the given inputs.
func loadConfig(cmd *cobra.Command, inputs []string, cli *configloader.Overrides) (*config.Config, string, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		Inputs:       inputs,
		ExplicitPath: configPath,
		CLI:          cli,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, result.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldWidth, result.Config.Width,
		logging.FieldIndent, result.Config.ParagraphIndent,
		logging.FieldJobs, result.Config.Jobs,
	)

	return result.Config, workDir, nil
}

// colorMode returns the validated --color value.
func colorMode(cmd *cobra.Command) config.ColorMode {
	mode, err := cmd.Flags().GetString(flagColor)
	if err != nil {
		return config.ColorAuto
	}
	return config.ColorMode(mode)
}

// colorEnabled decides whether output written to w carries ANSI styling.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	return pretty.IsColorEnabled(colorMode(cmd), w)
}

// terminalWidth returns the width of the terminal behind w, falling back to
// $COLUMNS. ok is false when neither is available.
func terminalWidth(w io.Writer) (width int, ok bool) {
	if f, isFile := w.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols, true
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols, true
	}
	return 0, false
}
