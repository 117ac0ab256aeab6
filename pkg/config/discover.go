package config

import (
	"os"
	"path/filepath"
	"strings"
)

const markerDir = ".canopy"

// FindRoot walks up from dir looking for a project root: first a directory
// containing .canopy/, then one containing .git/. The walk stops at the home
// directory and at the filesystem root. When neither marker is found, dir
// itself is returned with ok=false.
func FindRoot(dir string) (string, bool) {
	dir = expandHome(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if root, ok := findMarker(dir, markerDir); ok {
		return root, true
	}
	if root, ok := findMarker(dir, ".git"); ok {
		return root, true
	}
	return dir, false
}

// findMarker walks up from dir looking for a directory containing marker.
func findMarker(dir, marker string) (string, bool) {
	home, _ := os.UserHomeDir()

	for {
		candidate := filepath.Join(dir, marker)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		// Don't go above home directory
		if home != "" && dir == home {
			break
		}
		dir = parent
	}
	return "", false
}

// ConfigPath returns the configuration file location under root.
func ConfigPath(root string) string {
	return filepath.Join(root, markerDir, "config.yaml")
}

// StatePath returns the persisted explorer state location under root.
func StatePath(root string) string {
	return filepath.Join(root, markerDir, "explorer-state.json")
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
