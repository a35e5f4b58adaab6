package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the file access the loader needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
}

// OSFS reads the real filesystem.
type OSFS struct{}

// NewOSFS creates an OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat calls os.Stat.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile calls os.ReadFile.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- config paths come from the operator
	return os.ReadFile(path)
}

// IsDir reports whether path is a directory.
func (o OSFS) IsDir(path string) (bool, error) {
	return isDir(o, path)
}

// MountedFS serves an fs.FS as if it were mounted at Mount. Sites in tests
// live in an fstest.MapFS while the loader keeps working with absolute paths.
type MountedFS struct {
	FS    fs.FS
	Mount string
}

// NewMountedFS mounts fsys at mount.
func NewMountedFS(mount string, fsys fs.FS) *MountedFS {
	return &MountedFS{FS: fsys, Mount: filepath.Clean(mount)}
}

// Stat stats the mounted path.
func (m *MountedFS) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.name(path))
}

// ReadFile reads the mounted path.
func (m *MountedFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.name(path))
}

// IsDir reports whether the mounted path is a directory.
func (m *MountedFS) IsDir(path string) (bool, error) {
	return isDir(m, path)
}

// name maps path to an fs.FS name. Paths outside the mount are returned as
// they are, which fs.FS rejects as invalid.
func (m *MountedFS) name(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(filepath.Clean(path))
	}
	rel, err := filepath.Rel(m.Mount, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

func isDir(fsys FileSystem, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
