package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typscii/internal/cli"
	"github.com/yaklabco/typscii/pkg/reporter"
)

const sampleSource = "= Hi\n\nsome *bold* text\n"

// writeFile creates name under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testConfig writes a config file that pins the layout independently of
// any project or user configuration.
func testConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "typscii.yml", "width: 20\nheading:\n  padding_y: 0\n")
}

type cmdResult struct {
	stdout string
	stderr string
	code   int
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	code := cli.Execute(cmd)
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestIntegrationRenderFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "doc.tscii", sampleSource)

	res := execute(t, "", "render", "--config", testConfig(t), "--color", "always", path)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	assert.Equal(t, "╔════╗\n║ Hi ║\n╚════╝\n\nsome \x1b[1mbold\x1b[0m text\n\n", res.stdout)
}

func TestIntegrationRenderStdinPlain(t *testing.T) {
	t.Parallel()

	res := execute(t, "one two three four", "render", "--config", testConfig(t), "--plain", "-w", "9")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "one two\nthree\nfour\n\n", res.stdout)

	res = execute(t, "*x*", "render", "--config", testConfig(t), "--color", "never", "-")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "x\n\n", res.stdout)
}

func TestIntegrationRenderDirectoryToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.tscii", "second")
	writeFile(t, dir, "a.tscii", "first")
	writeFile(t, dir, "skip/c.tscii", "skipped")
	writeFile(t, dir, "ignored.md", "not a source")
	out := filepath.Join(t.TempDir(), "out.txt")

	res := execute(t, "", "render", "--config", testConfig(t), "--ignore", "skip",
		"--indent", "2", "-o", out, dir)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "  first\n\n  second\n\n", string(got))
}

func TestIntegrationRenderKeepsUnchangedOutput(t *testing.T) {
	t.Parallel()

	src := writeFile(t, t.TempDir(), "doc.tscii", "same text")
	out := filepath.Join(t.TempDir(), "out.txt")
	cfg := testConfig(t)

	res := execute(t, "", "render", "--config", cfg, "-o", out, src)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(out, old, old))

	res = execute(t, "", "render", "--config", cfg, "-o", out, src)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged output must not be rewritten")

	require.NoError(t, os.WriteFile(src, []byte("new text"), 0o644))
	res = execute(t, "", "render", "--config", cfg, "-o", out, src)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "new text\n\n", string(got))
}

func TestIntegrationRenderErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	binary := writeFile(t, dir, "bin.tscii", "a\x00b")

	res := execute(t, "", "render", "--config", testConfig(t), filepath.Join(dir, "missing.tscii"))
	assert.Equal(t, cli.ExitIOError, res.code)

	res = execute(t, "", "render", "--config", testConfig(t), binary)
	assert.Equal(t, cli.ExitConfigError, res.code)
	assert.Empty(t, res.stdout)

	res = execute(t, "x", "render", "--config", testConfig(t), "--indent", "30")
	assert.Equal(t, cli.ExitConfigError, res.code, "indent must be less than width")

	res = execute(t, "x", "render", "--config", testConfig(t), "-w", "-1")
	assert.Equal(t, cli.ExitInvalidUsage, res.code)
}

func TestIntegrationCheckText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.tscii", "fine\n\nbroken *bold\n")

	res := execute(t, "", "check", "--config", testConfig(t), "--color", "never", path)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, ":3:8  warning  unclosed bold delimiter")
	assert.Contains(t, res.stdout, "        broken *bold\n               ^\n")
	assert.Contains(t, res.stdout, "1 issue (1 warning) in 1 file")

	res = execute(t, "", "check", "--config", testConfig(t), "--strict", path)
	assert.Equal(t, cli.ExitIssuesFound, res.code)

	clean := writeFile(t, dir, "clean.tscii", "all *good*")
	res = execute(t, "", "check", "--config", testConfig(t), "--strict", "--color", "never", clean)
	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "No issues found (1 file checked)")

	res = execute(t, "", "check", "--config", testConfig(t), "--summary", "--color", "never", clean)
	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "  Files checked:     1\n")
	assert.Contains(t, res.stdout, "Check passed\n")
}

func TestIntegrationCheckJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.tscii", "==\n")
	writeFile(t, dir, "b.txt", "ok")

	res := execute(t, "", "check", "--config", testConfig(t), "--format", "json", dir)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Len(t, out.Files, 2)
	require.Len(t, out.Files[0].Diagnostics, 1)
	assert.Equal(t, "empty-heading", out.Files[0].Diagnostics[0].Code)
	assert.Equal(t, 1, out.Summary.TotalIssues)

	res = execute(t, "", "check", "--format", "xml", dir)
	assert.Equal(t, cli.ExitInvalidUsage, res.code)
}

func TestIntegrationInspect(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "doc.tscii", "= T\n\n_a_")

	res := execute(t, "", "inspect", path)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Document (2 blocks)")
	assert.Contains(t, res.stdout, `Heading level=1`)
	assert.Contains(t, res.stdout, "Italic")
	assert.Contains(t, res.stdout, "summary lines=3 headings=1 paragraphs=1 nodes=4\n")

	res = execute(t, "*x", "inspect", "--tokens", "-")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Star")
	assert.Contains(t, res.stdout, "EOF")
	assert.Contains(t, res.stdout, "diagnostic 1:1: unclosed bold delimiter")
	assert.Contains(t, res.stdout, `(source "*")`)

	res = execute(t, "", "inspect")
	assert.Equal(t, cli.ExitInvalidUsage, res.code)
}

func TestIntegrationInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".typscii.yml")

	res := execute(t, "", "init", "-o", path)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# typscii configuration")
	assert.Contains(t, string(content), "TYPSCII_WIDTH")

	res = execute(t, "", "init", "-o", path)
	assert.Equal(t, cli.ExitInvalidUsage, res.code, "refuses to overwrite")

	res = execute(t, "", "init", "--force", "--full", "-o", path)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "width: 80")

	// The generated file is a valid configuration.
	doc := writeFile(t, t.TempDir(), "d.tscii", "x")
	res = execute(t, "", "render", "--config", path, "--plain", doc)
	assert.Equal(t, cli.ExitSuccess, res.code, res.stderr)
}

func TestIntegrationInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, t.TempDir(), "bad.yml", "widht: 10\n")
	res := execute(t, "x", "render", "--config", cfg)
	assert.Equal(t, cli.ExitConfigError, res.code, "unknown keys are rejected")
}

func TestIntegrationUsageErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitInvalidUsage, execute(t, "", "frobnicate").code)
	assert.Equal(t, cli.ExitInvalidUsage, execute(t, "", "render", "--no-such-flag").code)
	assert.Equal(t, cli.ExitInvalidUsage, execute(t, "x", "--color", "sometimes", "render").code)
}

func TestIntegrationVersion(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "version")
	require.Equal(t, cli.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "version=1.2.3")
	assert.Contains(t, res.stdout, "commit=abc123")
}

func TestIntegrationHelp(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--help")
	require.Equal(t, cli.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--width")
	assert.Contains(t, res.stdout, "Global Flags:")
}
