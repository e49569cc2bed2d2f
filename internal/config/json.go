package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Token string `json:"token"`
	} `json:"app,omitempty"`

	Adapter struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Backup struct {
		Path          string   `json:"path"`
		Tracks        []string `json:"tracks"`
		Exercises     []string `json:"exercises"`
		Status        string   `json:"status"`
		Overwrite     string   `json:"overwrite"`
		Iterations    string   `json:"iterations"`
		DryRun        bool     `json:"dry_run"`
		MaxDownloads  int      `json:"max_downloads"`
		IterationsDir string   `json:"iterations_dir"`
	} `json:"backup,omitempty"`

	Storage struct {
		CatalogDSN string `json:"catalog_dsn"`
	} `json:"storage,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
		File   string `json:"file"`
	} `json:"log,omitempty"`

	Workers struct {
		BackupInterval Duration `json:"backup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token: jsonCfg.App.Token,
		},
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Backup: Backup{
			Path:          jsonCfg.Backup.Path,
			Tracks:        jsonCfg.Backup.Tracks,
			Exercises:     jsonCfg.Backup.Exercises,
			Status:        jsonCfg.Backup.Status,
			Overwrite:     jsonCfg.Backup.Overwrite,
			Iterations:    jsonCfg.Backup.Iterations,
			DryRun:        jsonCfg.Backup.DryRun,
			MaxDownloads:  jsonCfg.Backup.MaxDownloads,
			IterationsDir: jsonCfg.Backup.IterationsDir,
		},
		Storage: Storage{
			CatalogDSN: jsonCfg.Storage.CatalogDSN,
		},
		Logger: Logger{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
			File:   jsonCfg.Log.File,
		},
		Workers: Workers{
			BackupInterval: time.Duration(jsonCfg.Workers.BackupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
