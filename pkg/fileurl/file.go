package fileurl

import (
	"os"
	"path/filepath"
	"strings"
)

// IsExist checks whether a file or directory exists.
func IsExist(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsExist(err) {
			return true
		}
		return false
	}
	return true
}

// IsDir determines if the given path is a directory.
func IsDir(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// CreatePath creates all parent directories of the given file path.
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

// PathSuffixCheckAdd appends suffix to path unless it is already present.
// Empty paths stay empty so joining does not produce a rooted key.
func PathSuffixCheckAdd(path string, suffix string) string {
	if path == "" {
		return path
	}
	if strings.HasSuffix(path, suffix) {
		return path
	}
	return path + suffix
}

// GetExePath returns the directory holding the running binary.
func GetExePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
