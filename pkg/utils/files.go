package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath returns the absolute, symlink-free form of path.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path must be specified")
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist: %s", absolute)
		}

		return "", err
	}

	return resolved, nil
}

// ExpandUser replaces a leading "~" or "~/" with the current user's home
// directory. Paths without the prefix come back unchanged; when the home
// directory cannot be determined the path also comes back unchanged, which
// downstream existence checks then reject.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ListSubdirs returns the names of the immediate subdirectories of dir.
func ListSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
