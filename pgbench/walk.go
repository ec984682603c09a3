package pgbench

import (
	"os"
	"path/filepath"
)

// WalkDirectory lists the regular files directly inside dir, grounded on
// benchmarkTestSet's opendir/readdir loop, which likewise only looks one
// level deep and skips anything that isn't DT_REG.
func WalkDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
