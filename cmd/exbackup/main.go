// Command exbackup incrementally backs up Exercism solutions to a local
// directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-exercism-backup/internal/client"
	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &config.Flags{}

	rootCmd := &cobra.Command{
		Use:   "exbackup",
		Short: "Incrementally back up your Exercism solutions",
		// main prints the error, so cobra must not print it twice.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.BindPersistent(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newBackupCommand(flags),
		newListCommand(flags),
		newVersionCommand(),
	)
	return rootCmd
}

// newApp assembles the configuration and the logger, then the runtime.
func newApp(flags *config.Flags) (*client.App, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, err
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log, err := logger.NewClientLogger("exbackup", cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log.Debug().
		Str("version", cfg.App.Version).
		Str("api_base_url", cfg.Adapter.BaseURL).
		Msg("configuration loaded")

	return client.NewApp(cfg, log), nil
}
