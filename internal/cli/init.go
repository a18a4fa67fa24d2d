package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typscii/internal/configloader"
	"github.com/yaklabco/typscii/internal/logging"
	"github.com/yaklabco/typscii/pkg/config"
	"github.com/yaklabco/typscii/pkg/fsutil"
)

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a typscii configuration file",
		Long: `Create a .typscii.yml configuration file in the current directory.

The minimal template lists every setting commented out with its default;
--full writes the defaults as active settings.`,
		Example: `  typscii init
  typscii init --full
  typscii init -o config/typscii.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "write every setting with its default value")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0],
		"output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:        flags.full,
		Environment: configloader.ListEnvVars(),
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("%w %s: %w", errWriteOutput, flags.output, err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'typscii render' to render with these settings")

	return nil
}
