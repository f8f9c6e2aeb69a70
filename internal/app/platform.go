package app

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveStartDir expands a leading ~ and makes dir absolute. An empty dir
// stays empty so the remembered item or the working directory is used.
func ResolveStartDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", nil
	}
	return filepath.Abs(expandUserPath(dir))
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	if path[1] != '/' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}
