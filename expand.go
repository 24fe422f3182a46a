package ehhscan

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~/ with the current user's home directory.
// The path is returned untouched when no home directory can be found.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home := ""
	if usr, err := user.Current(); err == nil {
		home = usr.HomeDir
	} else if dir, err := os.UserHomeDir(); err == nil {
		home = dir
	}
	if home == "" {
		return path
	}

	return filepath.Join(home, path[2:])
}
