package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteModule writes a source tree to disk as a module directory under
// location. It refuses to overwrite an existing module directory and
// returns the path of the created module.
func WriteModule(tree map[string]string, name, location string) (string, error) {
	moduleDir := filepath.Join(location, name)

	if _, err := os.Stat(moduleDir); err == nil {
		return "", fmt.Errorf("module directory %s already exists", moduleDir)
	}

	paths := make([]string, 0, len(tree))
	for path := range tree {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		outputPath := filepath.Join(moduleDir, filepath.FromSlash(path))

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(outputPath, []byte(tree[path]), filePerm)
		if err != nil {
			return "", fmt.Errorf("writing file %s: %w", path, err)
		}
	}

	return moduleDir, nil
}
