package task

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taskfs/taskfs/engine/core"
)

// DefaultExt is the extension used when PathOpts leaves Ext empty.
const DefaultExt = "tsv"

// emptyName is the filename stem for tasks without identity parameters.
const emptyName = "output"

// -----------------------------------------------------------------------------
// Layout
// -----------------------------------------------------------------------------

// Layout anchors a family of related tasks on the filesystem. Outputs live
// under {BaseDir}/{Tag}/{type name}/{filename}. Both fields are injected at
// construction; there is no process-wide default.
type Layout struct {
	BaseDir string `json:"base_dir" yaml:"base_dir" mapstructure:"base_dir"`
	Tag     string `json:"tag"      yaml:"tag"      mapstructure:"tag"`
}

func (l Layout) Validate() error {
	if l.BaseDir == "" {
		return core.NewMisconfiguredError("base_dir", "")
	}
	if l.Tag == "" {
		return core.NewMisconfiguredError("tag", "")
	}
	return nil
}

// PathOpts tunes canonical path construction.
type PathOpts struct {
	// Ext is the filename extension, DefaultExt when empty.
	Ext string
	// Digest replaces the readable name with its lowercase hex SHA-1. Used
	// when parameter values may exceed path-length limits or contain
	// characters unsafe for a filename.
	Digest bool
	// Filename, when set, overrides name construction entirely.
	Filename string
}

// Path builds the canonical output path for one task identity. It is a pure
// function: identical inputs always yield the identical string, independent
// of parameter insertion order, so concurrent computations agree on the
// target without coordination.
func (l Layout) Path(typeName string, params *Params, opts PathOpts) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	if typeName == "" {
		return "", core.NewMisconfiguredError("type_name", "")
	}
	filename := opts.Filename
	if filename == "" {
		ext := opts.Ext
		if ext == "" {
			ext = DefaultExt
		}
		filename = canonicalName(params, opts.Digest) + "." + ext
	}
	return filepath.Join(l.BaseDir, l.Tag, typeName, filename), nil
}

// canonicalName joins the sorted "key-value" pairs. Distinct parameter
// mappings sort to distinct strings; mappings that normalize to equal pairs
// intentionally collide so their outputs are shared.
func canonicalName(params *Params, digest bool) string {
	name := emptyName
	if params.Len() > 0 {
		parts := make([]string, 0, params.Len())
		for _, key := range params.Keys() {
			value, _ := params.Get(key)
			parts = append(parts, fmt.Sprintf("%s-%s", key, value))
		}
		sort.Strings(parts)
		name = strings.Join(parts, "-")
	}
	if digest {
		sum := sha1.Sum([]byte(name))
		name = hex.EncodeToString(sum[:])
	}
	return name
}
