package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-exercism-backup/internal/config"
)

func newBackupCommand(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup [path]",
		Short: "Download your solutions into path",
		Long: "Download your Exercism solutions into path, one directory per track\n" +
			"and exercise. Solutions that did not change since the previous backup\n" +
			"are skipped unless --overwrite=always is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Path = args[0]
			}

			app, err := newApp(flags)
			if err != nil {
				return err
			}
			return app.Backup(cmd.Context())
		},
	}
	flags.BindBackup(cmd.Flags())

	return cmd
}
