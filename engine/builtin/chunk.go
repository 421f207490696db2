package builtin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
	"github.com/taskfs/taskfs/pkg/logger"
)

// SplitFile splits an input file into a bounded number of chunk files and
// records their absolute paths in a manifest, one per line. The manifest is
// the task's only output and the sole completeness signal: once it exists at
// its canonical path, re-running the same (filename, chunks) pair is a no-op.
//
// The manifest is digest-named because the filename parameter carries an
// arbitrary path that may be unsafe or too long for a filename.
type SplitFile struct {
	Filename string
	Chunks   int
	Layout   task.Layout
}

func (s *SplitFile) Name() string {
	return "split_file"
}

func (s *SplitFile) Params() *task.Params {
	return task.NewParams().
		Set("filename", s.Filename).
		Set("chunks", strconv.Itoa(s.Chunks))
}

func (s *SplitFile) OutputPath() (string, error) {
	return s.Layout.Path(s.Name(), s.Params(), task.PathOpts{Digest: true})
}

func (s *SplitFile) Complete() bool {
	path, err := s.OutputPath()
	if err != nil {
		return false
	}
	return core.OutputExists(path)
}

func (s *SplitFile) Run(ctx context.Context) error {
	if err := s.validate(); err != nil {
		return err
	}
	manifestPath, err := s.OutputPath()
	if err != nil {
		return err
	}

	lineCount, err := core.CountLines(s.Filename)
	if err != nil {
		return core.NewMisconfiguredError("filename", err.Error())
	}
	// Deliberately larger than the mathematical ceiling: the split is biased
	// toward equal-sized chunks with a short final remainder, and downstream
	// chunk-count expectations depend on this exact formula.
	linesPerChunk := (lineCount + s.Chunks) / s.Chunks

	// Manifest entries are absolute paths, so anchor the working directory
	// before any chunk file is named.
	workdir, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return core.NewMisconfiguredError("base_dir", fmt.Sprintf("working directory not writable: %v", err))
	}

	// The random prefix is the only isolation against concurrent or prior
	// invocations sharing this directory; there is no lock file.
	prefix := core.MustNewID().String()
	chunkPaths, err := s.writeChunks(workdir, prefix, linesPerChunk)
	if err != nil {
		return err
	}
	sort.Strings(chunkPaths)

	if err := core.WriteFileAtomic(manifestPath, func(w io.Writer) error {
		for _, chunk := range chunkPaths {
			if _, werr := fmt.Fprintln(w, chunk); werr != nil {
				return fmt.Errorf("failed to write manifest entry: %w", werr)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("input split into chunks",
		"filename", s.Filename, "lines", lineCount, "chunks", len(chunkPaths), "manifest", manifestPath)
	return nil
}

// writeChunks copies consecutive runs of linesPerChunk records into
// prefix-named files under workdir and returns their absolute paths. A
// trailing unterminated record is written out unchanged so concatenation
// reproduces the input byte for byte.
func (s *SplitFile) writeChunks(workdir, prefix string, linesPerChunk int) ([]string, error) {
	in, err := os.Open(s.Filename)
	if err != nil {
		return nil, core.NewMisconfiguredError("filename", err.Error())
	}
	defer in.Close()

	var (
		paths   []string
		out     *os.File
		written int
		index   int
	)
	closeOut := func() error {
		if out == nil {
			return nil
		}
		err := out.Close()
		out = nil
		return err
	}

	reader := bufio.NewReader(in)
	for {
		record, readErr := reader.ReadBytes('\n')
		if len(record) > 0 {
			if out == nil {
				name := fmt.Sprintf("%s-%05d", prefix, index)
				index++
				out, err = os.Create(filepath.Join(workdir, name))
				if err != nil {
					return nil, fmt.Errorf("failed to create chunk file: %w", err)
				}
				paths = append(paths, out.Name())
				written = 0
			}
			if _, err := out.Write(record); err != nil {
				closeOut()
				return nil, fmt.Errorf("failed to write chunk file: %w", err)
			}
			written++
			if written >= linesPerChunk && readErr == nil {
				if err := closeOut(); err != nil {
					return nil, fmt.Errorf("failed to close chunk file: %w", err)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			closeOut()
			return nil, fmt.Errorf("failed to read %s: %w", s.Filename, readErr)
		}
	}
	if err := closeOut(); err != nil {
		return nil, fmt.Errorf("failed to close chunk file: %w", err)
	}
	return paths, nil
}

func (s *SplitFile) validate() error {
	if s.Chunks <= 0 {
		return core.NewMisconfiguredError("chunks", "must be positive")
	}
	if strings.TrimSpace(s.Filename) == "" {
		return core.NewMisconfiguredError("filename", "")
	}
	info, err := os.Stat(s.Filename)
	if err != nil {
		return core.NewMisconfiguredError("filename", err.Error())
	}
	if !info.Mode().IsRegular() {
		return core.NewMisconfiguredError("filename", "not a regular file")
	}
	return s.Layout.Validate()
}
