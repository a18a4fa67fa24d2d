package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/pipeline"
	"github.com/yaklabco/typscii/pkg/reporter"
	"github.com/yaklabco/typscii/pkg/runner"
)

type checkFlags struct {
	layoutFlags

	format    string
	strict    bool
	noContext bool
	compact   bool
	summary   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report markup that was kept as literal text",
		Long: `Parse markup files and report recovered ambiguities: unclosed
delimiters, empty headings and empty spans.

Rendering never fails on such markup; check shows where it happened. By
default the current directory is searched recursively.`,
		Example: `  typscii check
  typscii check --strict docs/
  typscii check --format json notes.tscii`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText), "output format: text, json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with status 1 when any diagnostic is reported")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary block in text output")
	flags.register(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg, workDir, err := loadConfig(cmd, args, flags.overrides(cmd))
	if err != nil {
		return err
	}
	cfg.Format = format
	cfg.Strict = flags.strict

	engine := &pipeline.Engine{SkipRender: true}
	result, err := runner.New(engine).Run(ctx, runOptions(args, workDir, cfg))
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          cfg.Format,
		Color:           colorMode(cmd),
		ShowContext:     !flags.noContext,
		ShowSummary:     true,
		DetailedSummary: flags.summary,
		Compact:         flags.compact,
		WorkingDir:      workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("%w: report results: %w", errWriteOutput, err)
	}

	logger.Debug("check complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	if result.HasErrors() {
		return fmt.Errorf("%d file(s) could not be checked: %w", result.Stats.FilesErrored, result.FirstError())
	}
	if cfg.Strict && result.HasIssues() {
		return ErrIssuesFound
	}

	return nil
}
