// Package pipeline runs one typscii source through the full
// validate → normalise → lex → parse → render sequence.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/ast"
	"github.com/yaklabco/typscii/pkg/config"
	"github.com/yaklabco/typscii/pkg/fsutil"
	"github.com/yaklabco/typscii/pkg/lexer"
	"github.com/yaklabco/typscii/pkg/parser"
	"github.com/yaklabco/typscii/pkg/render"
)

// StdinPath is the display path used for input read from standard input.
const StdinPath = "<stdin>"

// Pipeline error types for categorization.
var (
	// ErrReadFailure indicates the source could not be read.
	ErrReadFailure = errors.New("read failure")

	// ErrInvalidInput indicates the source is not renderable text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRenderFailure indicates the renderer rejected the layout.
	ErrRenderFailure = errors.New("render failure")
)

// Result is the outcome of processing one source.
type Result struct {
	// Path is the source path (StdinPath for standard input).
	Path string

	// Info is the file state when read; nil for in-memory input.
	Info *fsutil.FileInfo

	// Snapshot holds the normalised content, tokens and document.
	Snapshot *ast.Snapshot

	// Diagnostics are the recovered markup ambiguities, in detection order.
	Diagnostics []parser.Diagnostic

	// Output is the rendered text; empty when rendering was skipped.
	Output string

	// Duration is the wall time spent in Process.
	Duration time.Duration
}

// HasDiagnostics returns true if the parser reported anything.
func (r *Result) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// Engine processes sources. The zero value renders output.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	// SkipRender stops after parsing; used by check and inspect.
	SkipRender bool
}

// NewEngine creates an engine that parses and renders.
func NewEngine() *Engine {
	return &Engine{}
}

// Process runs the pipeline over in-memory content.
func (e *Engine) Process(ctx context.Context, path string, content []byte, cfg *config.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}

	logger := logging.FromContext(ctx)
	start := time.Now()

	if err := fsutil.ValidateInput(content); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, path, err)
	}

	snap := ast.NewSnapshot(path, fsutil.NormalizeNewlines(content))
	snap.Tokens = lexer.Lex(snap.Content)

	p := parser.New(snap.Tokens)
	snap.Document = p.Parse()

	result := &Result{
		Path:        path,
		Snapshot:    snap,
		Diagnostics: p.Diagnostics(),
	}

	logger.Debug("parsed source",
		logging.FieldTokens, len(snap.Tokens),
		logging.FieldBlocks, snap.Document.Len(),
		logging.FieldDiagnostics, len(result.Diagnostics),
	)

	if !e.SkipRender {
		var out strings.Builder
		if err := render.Render(&out, snap.Document, cfg.RenderConfig()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRenderFailure, err)
		}
		result.Output = out.String()
	}

	result.Duration = time.Since(start)
	logger.Debug("processed source",
		logging.FieldBytes, len(result.Output),
		logging.FieldDuration, result.Duration,
	)

	return result, nil
}

// ProcessFile reads path through fsutil and processes its content.
func (e *Engine) ProcessFile(ctx context.Context, path string, cfg *config.Config) (*Result, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	result, err := e.Process(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}
	result.Info = info

	return result, nil
}
