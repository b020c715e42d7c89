package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root markers looked for by FindRoot.
const (
	SystemDir  = ".rapport"
	ConfigFile = "rapport.yaml"
)

// FindRoot looks upwards from startDir for a project root: a directory holding
// a .rapport directory or a rapport.yaml file. It returns the absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, SystemDir) || hasFile(dir, ConfigFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
