package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/config"
	"github.com/yaklabco/typscii/pkg/pipeline"
)

// Runner processes many files through a pipeline.Engine.
type Runner struct {
	Engine *pipeline.Engine
}

// New creates a Runner around engine.
func New(engine *pipeline.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them on a worker
// pool. Outcomes are returned in sorted path order regardless of which
// worker finished first; a file that fails does not stop the others.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("starting run",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldJobs, jobs,
	)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Config)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldDuration, time.Since(start),
	)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *config.Config,
) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: path}

		res, err := r.Engine.ProcessFile(logging.WithFields(ctx, logging.FieldPath, path), path, cfg)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = res
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
