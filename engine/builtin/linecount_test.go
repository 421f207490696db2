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

func TestLineCount(t *testing.T) {
	t.Run("Should write the record count to its canonical path", func(t *testing.T) {
		l := &builtin.LineCount{
			Filename: writeFixture(t, 100),
			Layout:   task.Layout{BaseDir: t.TempDir(), Tag: "t"},
		}
		assert.False(t, l.Complete())
		require.NoError(t, l.Run(context.Background()))
		assert.True(t, l.Complete())

		path, err := l.OutputPath()
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "100\n", string(data))
	})

	t.Run("Should count a single-record file", func(t *testing.T) {
		l := &builtin.LineCount{
			Filename: writeFixture(t, 1),
			Layout:   task.Layout{BaseDir: t.TempDir(), Tag: "t"},
		}
		require.NoError(t, l.Run(context.Background()))
		path, err := l.OutputPath()
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1\n", string(data))
	})

	t.Run("Should reject a missing input file", func(t *testing.T) {
		l := &builtin.LineCount{
			Filename: filepath.Join(t.TempDir(), "missing.txt"),
			Layout:   task.Layout{BaseDir: t.TempDir(), Tag: "t"},
		}
		err := l.Run(context.Background())
		require.Error(t, err)
		assert.True(t, core.IsMisconfigured(err))
	})

	t.Run("Should satisfy the task contract", func(t *testing.T) {
		var _ task.Task = (*builtin.LineCount)(nil)
	})
}
