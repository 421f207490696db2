package builtin_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfs/taskfs/engine/builtin"
	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
)

func TestDirectory(t *testing.T) {
	t.Run("Should create nested directories", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "a", "b", "c")
		d := &builtin.Directory{Path: target}
		assert.False(t, d.Complete())
		require.NoError(t, d.Run(context.Background()))
		assert.True(t, d.Complete())

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "x")
		d := &builtin.Directory{Path: target}
		require.NoError(t, d.Run(context.Background()))
		require.NoError(t, d.Run(context.Background()))
		assert.True(t, d.Complete())
	})

	t.Run("Should not consider a plain file complete", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		d := &builtin.Directory{Path: file}
		assert.False(t, d.Complete())
	})

	t.Run("Should reject an empty path", func(t *testing.T) {
		d := &builtin.Directory{}
		err := d.Run(context.Background())
		require.Error(t, err)
		assert.True(t, core.IsMisconfigured(err))
		_, err = d.OutputPath()
		assert.True(t, core.IsMisconfigured(err))
	})

	t.Run("Should report its own path as output", func(t *testing.T) {
		d := &builtin.Directory{Path: "/data/dirs/raw"}
		got, err := d.OutputPath()
		require.NoError(t, err)
		assert.Equal(t, "/data/dirs/raw", got)
	})

	t.Run("Should satisfy the task contract", func(t *testing.T) {
		var _ task.Task = (*builtin.Directory)(nil)
	})
}
