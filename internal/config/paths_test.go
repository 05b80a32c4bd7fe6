package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)
	require.NotNil(t, paths)

	assert.True(t, filepath.IsAbs(paths.WorkingDir), "WorkingDir should be absolute")
	assert.True(t, filepath.IsAbs(paths.ExecutableDir), "ExecutableDir should be absolute")
}

func TestPaths_Resolve(t *testing.T) {
	wd := t.TempDir()
	exeDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(wd, "in_wd.csv"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(exeDir, "in_exe.csv"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(exeDir, "in_wd.csv"), []byte("x"), 0644))

	paths := &Paths{WorkingDir: wd, ExecutableDir: exeDir}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute untouched", "/abs/file.csv", "/abs/file.csv"},
		{"working dir wins", "in_wd.csv", filepath.Join(wd, "in_wd.csv")},
		{"falls back to executable dir", "in_exe.csv", filepath.Join(exeDir, "in_exe.csv")},
		{"missing resolves against working dir", "missing.csv", filepath.Join(wd, "missing.csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Resolve(tt.in))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logs", "nested", "app.log")
	require.NoError(t, EnsureDir(target))
	assert.True(t, FileExists(filepath.Dir(target)))
	assert.False(t, FileExists(target))
}
