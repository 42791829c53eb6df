package config

import (
	"os"
	"strconv"
	"time"
)

const (
	apiURLVar      = "HMCTL_API_URL"
	httpTimeoutVar = "HMCTL_HTTP_TIMEOUT"
	exportDirVar   = "HMCTL_EXPORT_DIR"
)

type ClientConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
	GetExportDir() string
}

type Client struct {
	file *fileConfig
}

var _ ClientConfig = Client{}

func (c Client) GetAPIBaseURL() string {
	if url := os.Getenv(apiURLVar); url != "" {
		return url
	}
	if c.file != nil && c.file.APIBaseURL != "" {
		return c.file.APIBaseURL
	}
	return "http://localhost:8000"
}

func (c Client) GetHTTPTimeout() time.Duration {
	if raw := os.Getenv(httpTimeoutVar); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	if c.file != nil && c.file.HTTPTimeoutSeconds > 0 {
		return time.Duration(c.file.HTTPTimeoutSeconds) * time.Second
	}
	return 30 * time.Second
}

// GetExportDir returns the directory CSV exports are written to.
// Defaults to the current working directory.
func (c Client) GetExportDir() string {
	if dir := os.Getenv(exportDirVar); dir != "" {
		return dir
	}
	if c.file != nil && c.file.ExportDir != "" {
		return c.file.ExportDir
	}
	return "."
}
