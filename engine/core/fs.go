package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// tmpInfix marks in-flight outputs written by WriteFileAtomic. A file carrying
// it is never a valid final output.
const tmpInfix = ".tmp-"

// WriteFileAtomic writes data to path through a uniquely named temporary file
// in the same directory followed by a rename, so a reader either sees the
// complete output or no output at all. Parent directories are created as
// needed.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp := path + tmpInfix + MustNewID().String()
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename output into place: %w", err)
	}
	return nil
}

// OutputExists reports whether a final output is present at path. Temporary
// leftovers from an interrupted write do not count: a path that only exists
// in tmp form is treated as absent, never as corrupt-but-usable.
func OutputExists(path string) bool {
	if strings.Contains(filepath.Base(path), tmpInfix) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CountLines returns the number of newline-terminated records in the file.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	count := 0
	buf := make([]byte, 64*1024)
	for {
		n, err := f.Read(buf)
		for _, b := range buf[:n] {
			if b == '\n' {
				count++
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}
