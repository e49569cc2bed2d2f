// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// CLIConfigFileName is the file in which the Exercism CLI stores its
// configuration.
const CLIConfigFileName = "user.json"

// Credentials are the API settings stored by the Exercism CLI.
type Credentials struct {
	Token      string `json:"token"`
	APIBaseURL string `json:"apibaseurl"`
}

// CLIConfigDir returns the directory of the Exercism CLI configuration:
// $EXERCISM_CONFIG_HOME, else $XDG_CONFIG_HOME/exercism, else
// ~/.config/exercism.
func CLIConfigDir() (string, error) {
	if dir := os.Getenv("EXERCISM_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "exercism"), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "exercism"), nil
}

// LoadCLICredentials reads the credentials of the Exercism CLI. It returns
// [ErrNoCredentials] when the configuration is missing or holds no token.
func LoadCLICredentials() (Credentials, error) {
	dir, err := CLIConfigDir()
	if err != nil {
		return Credentials{}, err
	}
	return readCredentials(filepath.Join(dir, CLIConfigFileName))
}

func readCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, fmt.Errorf("%w: %s not found", ErrNoCredentials, path)
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("read %s: %w", path, err)
	}

	var creds Credentials
	if err = json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode %s: %w", path, err)
	}

	creds.Token = strings.TrimSpace(creds.Token)
	if creds.Token == "" {
		return Credentials{}, fmt.Errorf("%w: %s has no token", ErrNoCredentials, path)
	}
	creds.APIBaseURL = strings.TrimSpace(creds.APIBaseURL)

	return creds, nil
}
