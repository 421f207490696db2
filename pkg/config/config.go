package config

import (
	"os"

	"github.com/taskfs/taskfs/engine/task"
)

// Config carries the application configuration with type-safe access and
// validation. Values come from defaults, an optional YAML file and
// TASKFS_-prefixed environment variables, in that precedence order.
type Config struct {
	Runtime RuntimeConfig `koanf:"runtime"`
	Storage StorageConfig `koanf:"storage" validate:"required"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error" env:"RUNTIME_LOG_LEVEL"`
	LogJSON  bool   `koanf:"log_json"                                        env:"RUNTIME_LOG_JSON"`
}

// StorageConfig anchors where task outputs live. There is no process-wide
// fallback at use sites: tasks receive this layout explicitly at
// construction, so tests and concurrent runs can isolate state.
type StorageConfig struct {
	BaseDir string `koanf:"base_dir" validate:"required" env:"STORAGE_BASE_DIR"`
	Tag     string `koanf:"tag"      validate:"required" env:"STORAGE_TAG"`
}

// Layout returns the task layout described by the storage section.
func (c *Config) Layout() task.Layout {
	return task.Layout{BaseDir: c.Storage.BaseDir, Tag: c.Storage.Tag}
}

// Default returns the baseline configuration: outputs under the system temp
// directory, tagged "common", matching the conventional scratch layout for
// shared tasks.
func Default() *Config {
	return &Config{
		Runtime: RuntimeConfig{LogLevel: "info"},
		Storage: StorageConfig{BaseDir: os.TempDir(), Tag: "common"},
	}
}
