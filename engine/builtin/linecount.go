package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
	"github.com/taskfs/taskfs/pkg/logger"
)

// LineCount writes the number of newline-terminated records of an input file
// to its canonical output path. Digest naming keeps the arbitrary input path
// out of the filename.
type LineCount struct {
	Filename string
	Layout   task.Layout
}

func (l *LineCount) Name() string {
	return "line_count"
}

func (l *LineCount) Params() *task.Params {
	return task.NewParams().Set("filename", l.Filename)
}

func (l *LineCount) OutputPath() (string, error) {
	return l.Layout.Path(l.Name(), l.Params(), task.PathOpts{Digest: true})
}

func (l *LineCount) Complete() bool {
	path, err := l.OutputPath()
	if err != nil {
		return false
	}
	return core.OutputExists(path)
}

func (l *LineCount) Run(ctx context.Context) error {
	if strings.TrimSpace(l.Filename) == "" {
		return core.NewMisconfiguredError("filename", "")
	}
	if _, err := os.Stat(l.Filename); err != nil {
		return core.NewMisconfiguredError("filename", err.Error())
	}
	path, err := l.OutputPath()
	if err != nil {
		return err
	}
	count, err := core.CountLines(l.Filename)
	if err != nil {
		return err
	}
	if err := core.WriteFileAtomic(path, func(w io.Writer) error {
		_, werr := fmt.Fprintf(w, "%d\n", count)
		return werr
	}); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("line count written", "filename", l.Filename, "lines", count, "output", path)
	return nil
}
