// Package preset implements the preset store: a flat directory of JSON files,
// one per preset, where the file stem is the preset name.
//
// Preset content is produced elsewhere (a serialized subgraph document) and is
// moved around here as opaque bytes.
package preset

import (
	"errors"
	"path/filepath"
	"strings"
)

// Preset identifies one preset by name and file location. Name and path are
// mutually derivable: only one needs to be known, the other is computed and
// cached on first access. Setting one discards the cached other.
type Preset struct {
	dir  string
	name string
	path string
}

// ErrUnidentified is returned when a preset is constructed with neither a
// name nor a path.
var ErrUnidentified = errors.New("either preset name or path must be given")

// New builds a Preset over dir from a name, a path, or both.
func New(dir, name, path string) (*Preset, error) {
	if name == "" && path == "" {
		return nil, ErrUnidentified
	}

	return &Preset{dir: dir, name: name, path: path}, nil
}

// FromName builds a Preset identified by name; its path is derived lazily.
func FromName(dir, name string) *Preset {
	return &Preset{dir: dir, name: name}
}

// FromPath builds a Preset identified by path; its name is derived lazily.
func FromPath(dir, path string) *Preset {
	return &Preset{dir: dir, path: path}
}

// Name returns the preset name, deriving it from the path's file stem when
// not yet known.
func (p *Preset) Name() string {
	if p.name == "" {
		p.name = Stem(p.path)
	}

	return p.name
}

// Path returns the preset file path, deriving it from the name when not yet
// known. The filesystem is not touched.
func (p *Preset) Path() string {
	if p.path == "" {
		p.path = filepath.Join(p.dir, p.name+".json")
	}

	return p.path
}

// SetName renames the preset identity. Any previously distinct path is
// discarded and recomputed on next access.
func (p *Preset) SetName(name string) {
	p.name = name
	p.path = ""
}

// SetPath relocates the preset identity. The name is discarded and recomputed
// from the new path's stem on next access.
func (p *Preset) SetPath(path string) {
	p.path = path
	p.name = ""
}

// Stem returns the file name of path without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
