package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typscii/pkg/config"
	"github.com/yaklabco/typscii/pkg/parser"
	"github.com/yaklabco/typscii/pkg/pipeline"
	"github.com/yaklabco/typscii/pkg/reporter"
	"github.com/yaklabco/typscii/pkg/runner"
)

// checkResult processes each source in memory and assembles a runner
// result the way Runner.Run would.
func checkResult(t *testing.T, sources map[string]string, order ...string) *runner.Result {
	t.Helper()

	engine := &pipeline.Engine{SkipRender: true}
	result := &runner.Result{}
	result.Stats.DiagnosticsBySeverity = map[parser.Severity]int{}

	for _, path := range order {
		res, err := engine.Process(context.Background(), path, []byte(sources[path]), nil)
		require.NoError(t, err)

		result.Files = append(result.Files, runner.FileOutcome{Path: path, Result: res})
		result.Stats.FilesProcessed++
		result.Stats.DiagnosticsTotal += len(res.Diagnostics)
		if res.HasDiagnostics() {
			result.Stats.FilesWithIssues++
		}
		for _, d := range res.Diagnostics {
			result.Stats.DiagnosticsBySeverity[d.Severity]++
		}
	}
	return result
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatText, false},
		{"text", reporter.FormatText, false},
		{"JSON", reporter.FormatJSON, false},
		{"sarif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := reporter.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.IsType(t, &reporter.TextReporter{}, rep)

	rep, err = reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: reporter.FormatJSON})
	require.NoError(t, err)
	assert.IsType(t, &reporter.JSONReporter{}, rep)

	_, err = reporter.New(reporter.Options{Format: "table"})
	require.Error(t, err)
}

func TestTextReporterEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: config.ColorNever, ShowSummary: true})

	n, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	result := checkResult(t, map[string]string{
		"/w/a.tscii": "Intro *bold\n",
		"/w/b.tscii": "clean",
	}, "/w/a.tscii", "/w/b.tscii")
	result.Files = append(result.Files, runner.FileOutcome{Path: "/w/c.tscii", Error: errors.New("boom")})
	result.Stats.FilesErrored++

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       config.ColorNever,
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  "/w",
	})

	n, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	want := "a.tscii (1 issue)\n" +
		"  a.tscii:1:7  warning  unclosed bold delimiter \"*\"; kept as literal text  (unclosed-delimiter)\n" +
		"        Intro *bold\n" +
		"              ^\n" +
		"\n" +
		"c.tscii: error: boom\n" +
		"1 issue (1 warning) in 1 file, 1 file failed\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporterDetailedSummary(t *testing.T) {
	t.Parallel()

	result := checkResult(t, map[string]string{"/w/a.tscii": "= \n"}, "/w/a.tscii")

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           config.ColorNever,
		ShowSummary:     true,
		DetailedSummary: true,
		WorkingDir:      "/w",
	})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Summary\n")
	assert.Contains(t, out, "  Files with issues: 1\n")
	assert.Contains(t, out, "Check completed with issues\n")
	assert.NotContains(t, out, " in 1 file")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	result := checkResult(t, map[string]string{
		"a.tscii": "x ``",
		"b.tscii": "clean",
	}, "a.tscii", "b.tscii")

	var buf bytes.Buffer
	n, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Files, 2)
	require.Len(t, out.Files[0].Diagnostics, 1)
	diag := out.Files[0].Diagnostics[0]
	assert.Equal(t, "empty-span", diag.Code)
	assert.Equal(t, "info", diag.Severity)
	assert.Equal(t, 1, diag.StartLine)
	assert.Equal(t, 3, diag.StartColumn)
	assert.Equal(t, 5, diag.EndColumn)
	assert.Equal(t, 2, diag.StartOffset)
	assert.Empty(t, out.Files[1].Diagnostics)

	assert.Equal(t, reporter.JSONSummary{
		FilesChecked:    2,
		FilesWithIssues: 1,
		TotalIssues:     1,
		BySeverity:      map[string]int{"info": 1},
	}, out.Summary)
}

func TestJSONReporterCompactAndNil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true}).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		`{"version":"1.0.0","files":[],"summary":{"filesChecked":0,"filesWithIssues":0,"filesErrored":0,"totalIssues":0,"bySeverity":{}}}`+"\n",
		buf.String())
}

func TestDisplayPathOutsideWorkingDir(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(string(filepath.Separator), "elsewhere", "x.tscii")
	result := &runner.Result{Files: []runner.FileOutcome{{Path: outside, Error: errors.New("nope")}}}

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: config.ColorNever, WorkingDir: "/w"})
	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), outside+": error: nope")
}
