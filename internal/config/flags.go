package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags. Zero values mean "not
// set" and let lower priority sources fill the field.
type Flags struct {
	ConfigPath     string
	Token          string
	APIBaseURL     string
	RequestTimeout time.Duration
	CatalogDSN     string
	LogLevel       string
	LogFormat      string
	LogFile        string

	Path          string
	Tracks        []string
	Exercises     []string
	Status        string
	Overwrite     string
	Iterations    string
	DryRun        bool
	MaxDownloads  int
	IterationsDir string
	Interval      time.Duration
}

// BindPersistent registers the flags shared by every command.
//
// Flags:
//
//	-c/--config        JSON config file path
//	--token            Exercism API token
//	--api-base-url     Exercism API base URL
//	--request-timeout  per request timeout (e.g. "30s")
//	--catalog          SQLite backup catalog file
//	--log-level        log level (debug, info, warn, error)
//	--log-format       console or json
//	--log-file         write logs to this file instead of stderr
func (f *Flags) BindPersistent(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.Token, "token", "", "Exercism API token (defaults to the Exercism CLI token)")
	fs.StringVar(&f.APIBaseURL, "api-base-url", "", "Exercism API base URL")
	fs.DurationVar(&f.RequestTimeout, "request-timeout", 0, "Timeout of a single API request (e.g. 30s, 1m)")
	fs.StringVar(&f.CatalogDSN, "catalog", "", "SQLite backup catalog file (disabled when empty)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.LogFormat, "log-format", "", "Log format: console or json")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file instead of stderr")
}

// BindBackup registers the flags of the backup command.
//
// Flags:
//
//	-t/--track          track slug to back up (repeatable)
//	-e/--exercise       exercise slug to back up (repeatable)
//	-s/--status         minimum solution status
//	-o/--overwrite      overwrite policy
//	-i/--iterations     iterations sync policy
//	--dry-run           only report what would be done
//	-m/--max-downloads  concurrently outstanding requests
//	--iterations-dir    name of the iterations directory
//	--interval          repeat the backup periodically
func (f *Flags) BindBackup(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.Tracks, "track", "t", nil, "Track to back up (repeatable, default all)")
	fs.StringSliceVarP(&f.Exercises, "exercise", "e", nil, "Exercise to back up (repeatable, default all)")
	fs.StringVarP(&f.Status, "status", "s", "", "Minimum solution status: any, submitted, completed, published")
	fs.StringVarP(&f.Overwrite, "overwrite", "o", "", "Overwrite policy: always, if-newer, never")
	fs.StringVarP(&f.Iterations, "iterations", "i", "", "Iterations sync policy: do-not-sync, new, full-sync, clean-up")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Only report what would be backed up")
	fs.IntVarP(&f.MaxDownloads, "max-downloads", "m", 0, "Maximum number of concurrent requests")
	fs.StringVar(&f.IterationsDir, "iterations-dir", "", "Name of the per-solution iterations directory")
	fs.DurationVar(&f.Interval, "interval", 0, "Repeat the backup on this interval until interrupted")
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Token: f.Token,
		},
		Adapter: Adapter{
			Address:        f.APIBaseURL,
			RequestTimeout: f.RequestTimeout,
		},
		Backup: Backup{
			Path:          f.Path,
			Tracks:        f.Tracks,
			Exercises:     f.Exercises,
			Status:        f.Status,
			Overwrite:     f.Overwrite,
			Iterations:    f.Iterations,
			DryRun:        f.DryRun,
			MaxDownloads:  f.MaxDownloads,
			IterationsDir: f.IterationsDir,
		},
		Storage: Storage{
			CatalogDSN: f.CatalogDSN,
		},
		Logger: Logger{
			Level:  f.LogLevel,
			Format: f.LogFormat,
			File:   f.LogFile,
		},
		Workers: Workers{
			BackupInterval: f.Interval,
		},
		JSONFilePath: f.ConfigPath,
	}
}
