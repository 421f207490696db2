package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
	"github.com/taskfs/taskfs/pkg/logger"
)

// Directory ensures a directory exists at a fixed path. Creating a directory
// tree is already atomic enough for completeness purposes: either the path
// is a directory or the task is not done.
type Directory struct {
	Path string
}

func (d *Directory) Name() string {
	return "directory"
}

func (d *Directory) Params() *task.Params {
	return task.NewParams().Set("path", d.Path)
}

func (d *Directory) OutputPath() (string, error) {
	if d.Path == "" {
		return "", core.NewMisconfiguredError("path", "")
	}
	return d.Path, nil
}

func (d *Directory) Complete() bool {
	info, err := os.Stat(d.Path)
	return err == nil && info.IsDir()
}

func (d *Directory) Run(ctx context.Context) error {
	if d.Path == "" {
		return core.NewMisconfiguredError("path", "")
	}
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", d.Path, err)
	}
	logger.FromContext(ctx).Debug("directory ensured", "path", d.Path)
	return nil
}
