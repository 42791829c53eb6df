package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileVar = "HMCTL_CONFIG"

// fileConfig mirrors the optional YAML config file. Every field is
// optional; zero values fall through to the compiled-in defaults.
type fileConfig struct {
	APIBaseURL         string `yaml:"api_base_url"`
	DataDir            string `yaml:"data_dir"`
	ExportDir          string `yaml:"export_dir"`
	LogLevel           string `yaml:"log_level"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	PageSize           int    `yaml:"page_size"`
}

// loadFile reads the config file if present. A missing or unparseable
// file is treated as "no file": configuration must never stop startup.
func loadFile() *fileConfig {
	path := os.Getenv(configFileVar)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".hmctl", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil
	}
	return &file
}
