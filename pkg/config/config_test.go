package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfs/taskfs/engine/task"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults without file or environment", func(t *testing.T) {
		cfg, err := NewService().Load(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Runtime.LogLevel)
		assert.Equal(t, os.TempDir(), cfg.Storage.BaseDir)
		assert.Equal(t, "common", cfg.Storage.Tag)
	})

	t.Run("Should override defaults from a YAML file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "taskfs.yaml")
		require.NoError(t, os.WriteFile(file, []byte(`
runtime:
  log_level: debug
storage:
  base_dir: /srv/data
  tag: sources
`), 0o644))

		cfg, err := NewService().Load(context.Background(), file)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Runtime.LogLevel)
		assert.Equal(t, "/srv/data", cfg.Storage.BaseDir)
		assert.Equal(t, "sources", cfg.Storage.Tag)
	})

	t.Run("Should let environment variables override the file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "taskfs.yaml")
		require.NoError(t, os.WriteFile(file, []byte("storage:\n  tag: from-file\n"), 0o644))
		t.Setenv("TASKFS_STORAGE_TAG", "from-env")
		t.Setenv("TASKFS_RUNTIME_LOG_LEVEL", "warn")

		cfg, err := NewService().Load(context.Background(), file)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Storage.Tag)
		assert.Equal(t, "warn", cfg.Runtime.LogLevel)
	})

	t.Run("Should reject an invalid log level", func(t *testing.T) {
		t.Setenv("TASKFS_RUNTIME_LOG_LEVEL", "loud")
		_, err := NewService().Load(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("Should fail for a missing config file", func(t *testing.T) {
		_, err := NewService().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Should expose the storage section as a task layout", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{BaseDir: "/data", Tag: "t"}}
		assert.Equal(t, task.Layout{BaseDir: "/data", Tag: "t"}, cfg.Layout())
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map section and field names", func(t *testing.T) {
		assert.Equal(t, "storage.base_dir", transformEnvKey("STORAGE_BASE_DIR"))
		assert.Equal(t, "runtime.log_level", transformEnvKey("RUNTIME_LOG_LEVEL"))
		assert.Equal(t, "storage", transformEnvKey("STORAGE"))
		assert.Equal(t, "", transformEnvKey("___"))
	})
}
