package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths holds the directories the application resolves files against
type Paths struct {
	WorkingDir    string
	ExecutableDir string
}

// GetPaths returns the working directory and the directory containing the executable
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return &Paths{
		WorkingDir:    wd,
		ExecutableDir: filepath.Dir(exe),
	}, nil
}

// Resolve maps a configured path to an absolute one.
// Absolute paths are returned as-is. Relative paths are tried against the
// working directory first and then against the executable directory; when
// neither exists the working-directory form is returned so the caller reports
// a sensible "file not found".
func (p *Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	fromWD := filepath.Join(p.WorkingDir, path)
	if FileExists(fromWD) {
		return fromWD
	}

	fromExe := filepath.Join(p.ExecutableDir, path)
	if FileExists(fromExe) {
		slog.Default().Debug("Resolved path relative to executable",
			slog.String("configured", path),
			slog.String("resolved", fromExe))
		return fromExe
	}

	return fromWD
}

// EnsureDir creates the parent directory of path if it doesn't exist
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ResolveDataFile resolves the configured input table path
func (c *Config) ResolveDataFile() (string, error) {
	paths, err := GetPaths()
	if err != nil {
		return "", err
	}
	return paths.Resolve(c.Data.InputFile), nil
}
