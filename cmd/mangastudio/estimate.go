package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mangastudio/internal/estimate"
	"mangastudio/internal/render"
)

func newEstimateCmd() *cobra.Command {
	var synopsis, file string
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate shots, keyframes and duration for a synopsis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := synopsis
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read synopsis: %w", err)
				}
				text = string(b)
			}
			if text == "" {
				return errors.New("provide --synopsis or --file")
			}
			return render.Estimate(cmd.OutOrStdout(), estimate.FromText(text))
		},
	}
	cmd.Flags().StringVarP(&synopsis, "synopsis", "s", "", "Short synopsis text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Text file holding the synopsis (wins over --synopsis)")
	return cmd
}
