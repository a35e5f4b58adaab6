package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".logolink"

	// OptionsFileName is the name of the option store file inside the state directory.
	OptionsFileName = "options.yaml"

	// ConfigFileName is the name of the site configuration file.
	ConfigFileName = "logolink.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStatePath returns the default root directory for logolink state.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultOptionsPath returns the default path of the option store file.
// It joins .logolink and options.yaml.
func DefaultOptionsPath() string {
	return filepath.Join(StateDirName, OptionsFileName)
}
