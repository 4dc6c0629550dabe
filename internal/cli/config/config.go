// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/ksuid"
)

const (
	ConfigDirectory = ".config/strata"
	DataDirectory   = ".pel/strata"
	LogFileName     = "strata.log"
)

var Config = cliconfig{}

type cliconfig struct{}

func (cliconfig) ConfigDirectory() string {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homePath, ConfigDirectory)
}

func (cliconfig) DataDirectory() string {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homePath, DataDirectory)
}

func (cliconfig) LogFilePath() string {
	dataPath := Config.DataDirectory()
	if dataPath == "" {
		return LogFileName
	}

	return filepath.Join(dataPath, "logs", LogFileName)
}

func (cliconfig) EnsureDataDirectory() error {
	dataPath := Config.DataDirectory()
	if dataPath == "" {
		return fmt.Errorf("failed to ensure strata data directory")
	}

	return os.MkdirAll(dataPath, 0700)
}

func (cliconfig) EnsureClientID() error {
	dataPath := Config.DataDirectory()
	if dataPath == "" {
		return fmt.Errorf("failed to ensure strata directory")
	}

	idFile := filepath.Join(dataPath, "cli_client_id")
	if _, err := os.Stat(idFile); os.IsNotExist(err) {
		err := os.WriteFile(idFile, []byte(ksuid.New().String()), 0600)
		if err != nil {
			return fmt.Errorf("failed to create ID file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check ID file: %w", err)
	}

	return nil
}

func (cliconfig) ClientID() (string, error) {
	dataPath := Config.DataDirectory()
	if dataPath == "" {
		return "", fmt.Errorf("failed to retrieve strata directory")
	}

	clientIDFile := filepath.Join(dataPath, "cli_client_id")
	data, err := os.ReadFile(clientIDFile)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

// NewRunID tags one pin run; it shows up on every log record of the run.
func NewRunID() string {
	return ksuid.New().String()
}
