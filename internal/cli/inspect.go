package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/ast"
	"github.com/yaklabco/typscii/pkg/pipeline"
)

func newInspectCommand() *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the token stream or document tree of a source",
		Long: `Lex and parse one source and print its document tree, or with --tokens
its token stream, with source spans. Use "-" to read standard input.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], tokens)
		},
	}

	cmd.Flags().BoolVar(&tokens, "tokens", false, "print the token stream instead of the document tree")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, tokens bool) error {
	ctx := cmd.Context()
	engine := &pipeline.Engine{SkipRender: true}

	var (
		result *pipeline.Result
		err    error
	)
	if path == stdinArg {
		var content []byte
		content, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("%w: read stdin: %w", pipeline.ErrReadFailure, err)
		}
		result, err = engine.Process(logging.WithFields(ctx, logging.FieldPath, pipeline.StdinPath),
			pipeline.StdinPath, content, nil)
	} else {
		result, err = engine.ProcessFile(logging.WithFields(ctx, logging.FieldPath, path), path, nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tokens {
		err = ast.DumpTokens(out, result.Snapshot.Tokens)
	} else {
		err = ast.Dump(out, result.Snapshot.Document)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errWriteOutput, err)
	}

	if err := writeInspectSummary(out, result.Snapshot); err != nil {
		return fmt.Errorf("%w: %w", errWriteOutput, err)
	}

	for _, diag := range result.Diagnostics {
		source := result.Snapshot.SpanText(diag.Span)
		if _, err := fmt.Fprintf(out, "diagnostic %s (source %q)\n", diag, source); err != nil {
			return fmt.Errorf("%w: %w", errWriteOutput, err)
		}
	}

	return nil
}

// writeInspectSummary prints one line of document statistics.
func writeInspectSummary(w io.Writer, snap *ast.Snapshot) error {
	doc := snap.Document

	var nodes int
	//nolint:errcheck,revive // the callback never fails
	ast.Walk(doc, func(ast.Node) error {
		nodes++
		return nil
	})

	_, err := fmt.Fprintf(w, "summary lines=%d headings=%d paragraphs=%d nodes=%d\n",
		snap.LineCount(), len(doc.Headings()), len(doc.Paragraphs()), nodes)
	return err
}
