package config

import (
	"os"
	"path/filepath"
)

const (
	appNameVar  = "HMCTL_APP_NAME"
	envVar      = "HMCTL_ENV"
	dataDirVar  = "HMCTL_DATA_DIR"
	logLevelVar = "HMCTL_LOG_LEVEL"
)

type EnvConfig interface {
	GetAppName() string
	GetDataDir() string
	GetLogLevel() string
	GetEnv() string
}

type EnvVars struct {
	file *fileConfig
}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "HomeManager")
}

// GetDataDir returns the directory holding persisted session state and
// the config file. Defaults to ~/.hmctl.
func (e EnvVars) GetDataDir() string {
	if dir := os.Getenv(dataDirVar); dir != "" {
		return dir
	}
	if e.file != nil && e.file.DataDir != "" {
		return e.file.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hmctl"
	}
	return filepath.Join(home, ".hmctl")
}

func (e EnvVars) GetLogLevel() string {
	if level := os.Getenv(logLevelVar); level != "" {
		return level
	}
	if e.file != nil && e.file.LogLevel != "" {
		return e.file.LogLevel
	}
	return "warn"
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
