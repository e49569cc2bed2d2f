package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/models"
)

func newListCommand(flags *config.Flags) *cobra.Command {
	var filter models.CatalogFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the solutions recorded in the backup catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(flags)
			if err != nil {
				return err
			}
			return app.List(cmd.Context(), cmd.OutOrStdout(), filter)
		},
	}
	cmd.Flags().StringSliceVarP(&filter.Tracks, "track", "t", nil, "Only list this track (repeatable)")
	cmd.Flags().StringSliceVarP(&filter.Exercises, "exercise", "e", nil, "Only list this exercise (repeatable)")

	return cmd
}
