package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
)

// File persists the token in a single file, created with 0600 permissions.
// All failures collapse into boolean results per the Store contract.
type File struct {
	path string
}

// NewFile creates a file-backed store at the given path. Parent directories
// are created lazily on the first successful Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the conventional token location under the user config
// directory, or false when the config directory cannot be resolved.
func DefaultPath(appName string) (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, appName, "token"), true
}

func (f *File) Get() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

func (f *File) Set(token string) bool {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return false
	}
	// Write-then-rename so a crash mid-write never leaves a truncated token.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0o600); err != nil {
		return false
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return false
	}
	return true
}

func (f *File) Remove() bool {
	err := os.Remove(f.path)
	return err == nil || os.IsNotExist(err)
}
