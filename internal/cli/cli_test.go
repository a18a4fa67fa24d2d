package cli_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typscii/internal/cli"
	"github.com/yaklabco/typscii/internal/configloader"
	"github.com/yaklabco/typscii/pkg/fsutil"
	"github.com/yaklabco/typscii/pkg/pipeline"
	"github.com/yaklabco/typscii/pkg/render"
)

var testInfo = cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "typscii", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %q", flag)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"render", "check", "inspect", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	tests := map[string][]string{
		"render":  {"width", "indent", "output", "plain", "jobs", "ignore"},
		"check":   {"format", "strict", "no-context", "compact", "jobs", "ignore"},
		"inspect": {"tokens"},
		"init":    {"force", "full", "output"},
	}

	for name, flags := range tests {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		for _, flag := range flags {
			assert.NotNil(t, sub.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}

	render, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)
	assert.Equal(t, "w", render.Flags().Lookup("width").Shorthand)
	assert.Equal(t, "o", render.Flags().Lookup("output").Shorthand)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"issues", cli.ErrIssuesFound, cli.ExitIssuesFound},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("load: %w", configloader.ErrInvalidConfig), cli.ExitConfigError},
		{"render config", render.ErrInvalidConfig, cli.ExitConfigError},
		{"binary input", fmt.Errorf("%w: %w", pipeline.ErrInvalidInput, fsutil.ErrBinaryInput), cli.ExitConfigError},
		{"read failure", fmt.Errorf("%w: %w", pipeline.ErrReadFailure, fsutil.ErrNotFound), cli.ExitIOError},
		{"missing path", fmt.Errorf("stat x: %w", os.ErrNotExist), cli.ExitIOError},
		{"joined", errors.Join(errors.New("other"), fsutil.ErrPermissionDenied), cli.ExitIOError},
		{"unknown", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
