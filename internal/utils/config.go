package utils

import (
	"os"
	"path/filepath"
)

var configMarkers = []string{"userdeck.yml", "userdeck.yaml", "go.mod"}

// FindConfigDir walks up from the working directory and returns the first
// directory holding a userdeck config file or a go.mod.
func FindConfigDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "." // fallback
	}
	return findConfigDirFrom(dir)
}

func findConfigDirFrom(dir string) string {
	for {
		for _, name := range configMarkers {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached root
		}
		dir = parent
	}
	return "." // fallback
}
