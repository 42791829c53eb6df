package config

type Config interface {
	EnvConfig
	ClientConfig
	TableConfig
}

type mainConfig struct {
	EnvVars
	Client
	Table
}

// New builds the default configuration: compiled-in defaults, overridden
// by the config file (if one exists), overridden by environment variables.
func New() Config {
	file := loadFile()
	return mainConfig{
		EnvVars: EnvVars{file: file},
		Client:  Client{file: file},
		Table:   Table{file: file},
	}
}
