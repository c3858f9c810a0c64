// Package config resolves client configuration: server base URL and the
// directory holding the token file, snapshot database, and log.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultServer = "http://127.0.0.1:5500"

type Config struct {
	BaseURL      string
	StateDir     string
	TokenPath    string
	SnapshotPath string
	LogPath      string
}

type fileConfig struct {
	Server string `yaml:"server"`
}

// New resolves configuration with precedence flag > environment > config
// file > default. Flag values come in as arguments; empty means unset.
func New(serverFlag, stateDirFlag string) (Config, error) {
	stateDir := stateDirFlag
	if stateDir == "" {
		stateDir = os.Getenv("GATHER_STATE_DIR")
	}
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		stateDir = filepath.Join(base, "gather")
	}

	server := serverFlag
	if server == "" {
		server = os.Getenv("GATHER_SERVER")
	}
	if server == "" {
		fromFile, err := readFileConfig(filepath.Join(stateDir, "config.yaml"))
		if err != nil {
			return Config{}, err
		}
		server = fromFile
	}
	if server == "" {
		server = defaultServer
	}

	return Config{
		BaseURL:      strings.TrimRight(server, "/"),
		StateDir:     stateDir,
		TokenPath:    filepath.Join(stateDir, "session.json"),
		SnapshotPath: filepath.Join(stateDir, "gather.db"),
		LogPath:      filepath.Join(stateDir, "gather.log"),
	}, nil
}

func readFileConfig(path string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	cfg := fileConfig{}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return "", fmt.Errorf("decode config file: %w", err)
	}
	return strings.TrimSpace(cfg.Server), nil
}
