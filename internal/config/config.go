package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL  = "http://127.0.0.1:3000"
	DefaultFetchDelay = 2 * time.Second
	DefaultLogFile    = "userdeck.log"
	DefaultListenAddr = "127.0.0.1:3000"
)

// Config holds settings loaded from userdeck.yml and the environment.
type Config struct {
	ServerURL  string        `yaml:"serverURL,omitempty"`
	FetchDelay time.Duration `yaml:"fetchDelay,omitempty"`
	LogFile    string        `yaml:"logFile,omitempty"`
	ListenAddr string        `yaml:"listenAddr,omitempty"`
	SeedFile   string        `yaml:"seedFile,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerURL:  DefaultServerURL,
		FetchDelay: DefaultFetchDelay,
		LogFile:    DefaultLogFile,
		ListenAddr: DefaultListenAddr,
	}
}

// Load reads dir/.env (if any), then userdeck.yml or userdeck.yaml over the
// defaults, then USERDECK_* environment overrides. A missing config file is
// not an error.
func Load(dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg := Default()
	for _, name := range []string{"userdeck.yml", "userdeck.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		break
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("USERDECK_SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("USERDECK_FETCH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("USERDECK_FETCH_DELAY: %w", err)
		}
		c.FetchDelay = d
	}
	if v := os.Getenv("USERDECK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("USERDECK_LISTEN"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("USERDECK_SEED_FILE"); v != "" {
		c.SeedFile = v
	}
	return nil
}
