package roster

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFile returns the path of the first entry in dir whose name starts with
// prefix. Directory listing order is platform-dependent and not guaranteed
// stable.
func FindFile(dir string, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no file matching '%s*' in %s (%w)", prefix, dir, fs.ErrNotExist)
}
