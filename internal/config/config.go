package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FetcherConfig configures the remote document fetcher.
type FetcherConfig struct {
	TimeoutSecs int `yaml:"timeout_secs"`
}

// CleanerConfig configures the archive boilerplate cleaner. ExtraMarkers
// are appended to the built-in Project Gutenberg marker list.
type CleanerConfig struct {
	ExtraMarkers []string `yaml:"extra_markers,omitempty"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type      string `yaml:"type"`
	Sentences int    `yaml:"sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Cleaner    CleanerConfig    `yaml:"cleaner"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textprep/config.yaml.
// If neither exists, it writes defaults to ~/.config/textprep/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textprep", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server:     ServerConfig{Addr: ":8080"},
		Fetcher:    FetcherConfig{TimeoutSecs: 10},
		Summarizer: SummarizerConfig{Type: "lead", Sentences: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Fetcher.TimeoutSecs == 0 {
		cfg.Fetcher.TimeoutSecs = 10
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "lead"
	}
	if cfg.Summarizer.Sentences == 0 {
		cfg.Summarizer.Sentences = 3
	}
}
