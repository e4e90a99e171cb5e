package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mangastudio/internal/render"
	"mangastudio/internal/validator"
)

func newModelsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect declared model assets",
	}
	cmd.AddCommand(newValidateCmd(root))
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var (
		manifestPath string
		jsonOutput   bool
		workers      int
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every asset declared in the manifest",
		Long: "Loads the manifest, resolves each declared path and checks it against its family layout.\n" +
			"Exits 1 when any asset is missing and 2 when the manifest cannot be loaded.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if manifestPath != "" {
				cfg.ManifestPath = manifestPath
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, true)
			v := validator.New(validator.Options{
				ManifestPath: cfg.ManifestPath,
				ProjectRoot:  cfg.ProjectRoot,
				Workers:      cfg.Workers,
				Logger:       &logger,
			})

			report, err := v.Validate("")
			if err != nil {
				return &exitError{code: exitManifest, err: err}
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				err = render.JSON(out, report)
			} else {
				err = render.Table(out, report)
			}
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if _, missing := report.Summary(); missing > 0 {
				return &exitError{code: exitMissing}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Manifest path (default <project>/config/models.json)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the flat JSON report instead of a table")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent asset checks (default from settings or 1)")
	return cmd
}
