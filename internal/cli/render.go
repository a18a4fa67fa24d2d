package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typscii/internal/configloader"
	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/config"
	"github.com/yaklabco/typscii/pkg/fsutil"
	"github.com/yaklabco/typscii/pkg/pipeline"
	"github.com/yaklabco/typscii/pkg/runner"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

type renderFlags struct {
	layoutFlags

	width  int
	indent int
	output string
	plain  bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render markup files to the terminal",
		Long: `Render typscii markup as styled terminal text.

With no paths (or "-") the source is read from standard input. Directories
are searched recursively for files with a configured extension (.tscii and
.txt by default); outputs are concatenated in sorted path order.`,
		Example: `  typscii render notes.tscii
  cat notes.tscii | typscii render
  typscii render -w 0 docs/          # wrap to the terminal width
  typscii render --plain -o out.txt notes.tscii`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", config.DefaultWidth,
		"maximum paragraph width (0 = terminal width)")
	cmd.Flags().IntVar(&flags.indent, "indent", config.DefaultParagraphIndent, "paragraph indent")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "disable ANSI styling")
	flags.register(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	overrides := flags.overrides(cmd)
	if cmd.Flags().Changed("width") {
		switch {
		case flags.width < 0:
			return usageErrorf("--width must not be negative, got %d", flags.width)
		case flags.width > 0:
			overrides.Width = configloader.Int(flags.width)
		}
	}
	if cmd.Flags().Changed("indent") {
		overrides.ParagraphIndent = configloader.Int(flags.indent)
	}
	if cmd.Flags().Changed("plain") {
		overrides.Plain = configloader.Bool(flags.plain)
	}

	cfg, workDir, err := loadConfig(cmd, args, overrides)
	if err != nil {
		return err
	}
	cfg.Output = flags.output

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("width") && flags.width == 0 {
		if cols, ok := terminalWidth(out); ok {
			cfg.Width = cols
		}
	}
	if !cfg.Plain {
		if cfg.Output == "" {
			cfg.Plain = !colorEnabled(cmd, out)
		} else {
			cfg.Plain = colorMode(cmd) == config.ColorNever
		}
	}

	logger.Debug("rendering",
		logging.FieldWidth, cfg.Width,
		logging.FieldIndent, cfg.ParagraphIndent,
		logging.FieldPlain, cfg.Plain,
	)

	var rendered string
	if readsStdin(args) {
		rendered, err = renderStdin(ctx, cmd.InOrStdin(), cfg)
	} else {
		rendered, err = renderPaths(ctx, args, workDir, cfg)
	}
	if err != nil {
		return err
	}

	return writeOutput(ctx, out, cfg.Output, rendered)
}

func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == stdinArg)
}

func renderStdin(ctx context.Context, in io.Reader, cfg *config.Config) (string, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("%w: read stdin: %w", pipeline.ErrReadFailure, err)
	}

	ctx = logging.WithFields(ctx, logging.FieldPath, pipeline.StdinPath)
	result, err := pipeline.NewEngine().Process(ctx, pipeline.StdinPath, content, cfg)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// renderPaths renders every discovered file. If any file fails, nothing is
// written and the per-file errors are returned together.
func renderPaths(ctx context.Context, paths []string, workDir string, cfg *config.Config) (string, error) {
	logger := logging.FromContext(ctx)

	result, err := runner.New(pipeline.NewEngine()).Run(ctx, runOptions(paths, workDir, cfg))
	if err != nil {
		return "", err
	}

	if result.Stats.FilesDiscovered == 0 {
		logger.Warn("no input files found", logging.FieldPaths, paths)
	}

	if result.HasErrors() {
		var errs []error
		for _, f := range result.Files {
			if f.Error != nil {
				errs = append(errs, f.Error)
			}
		}
		return "", errors.Join(errs...)
	}

	return result.Output(), nil
}

func runOptions(paths []string, workDir string, cfg *config.Config) runner.Options {
	return runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}
}

func writeOutput(ctx context.Context, out io.Writer, path, rendered string) error {
	if path == "" {
		if _, err := io.WriteString(out, rendered); err != nil {
			return fmt.Errorf("%w: %w", errWriteOutput, err)
		}
		return nil
	}

	// An up-to-date output file keeps its modification time.
	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(rendered), 0)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errWriteOutput, path, err)
	}
	logging.FromContext(ctx).Debug("output",
		logging.FieldOutput, path,
		logging.FieldBytes, len(rendered),
		logging.FieldWritten, written,
	)
	return nil
}
