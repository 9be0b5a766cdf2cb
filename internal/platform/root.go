package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir is the directory that marks a board data root.
const MarkerDir = ".boardflow"

// ErrDataDirNotFound is returned by FindDataDir when no marker is found.
var ErrDataDirNotFound = errors.New("data dir not found")

// FindDataDir looks upwards from startDir for a .boardflow directory and
// returns its absolute path.
func FindDataDir(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, MarkerDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrDataDirNotFound
}
