package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied after every other source.
const (
	DefaultAPIBaseURL     = "https://exercism.org/api"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxDownloads   = 4
	DefaultIterationsDir  = "_iterations"
	DefaultOverwrite      = "if-newer"
	DefaultIterations     = "do-not-sync"
	DefaultStatus         = "any"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultVersion        = "dev"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Sources added first take precedence:
// mergo only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags.structured())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON loads the JSON file named by the first source that sets one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{Version: DefaultVersion},
		Adapter: Adapter{
			Address:        DefaultAPIBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Backup: Backup{
			Status:        DefaultStatus,
			Overwrite:     DefaultOverwrite,
			Iterations:    DefaultIterations,
			MaxDownloads:  DefaultMaxDownloads,
			IterationsDir: DefaultIterationsDir,
		},
		Logger: Logger{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	})
	return b
}
