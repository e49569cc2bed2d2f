package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-exercism-backup/internal/client"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), client.RenderBuildInfo(client.BuildInfo{
				Version: buildVersion,
				Date:    buildDate,
				Commit:  buildCommit,
			}))
		},
	}
}
