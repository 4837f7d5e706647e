// Package filex contains small filesystem helpers shared by the client.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDirName is the user-scoped directory holding the local database.
const DefaultDataDirName = ".menacor_vital"

// ResolveDataFile picks the path for a local data file, resolved once at
// startup. It prefers a user-scoped directory under the home dir and falls
// back to the current working directory when the preferred location cannot
// be created or written.
func ResolveDataFile(fileName string) string {
	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, DefaultDataDirName)
		if err := ensureWritableDir(dir); err == nil {
			return filepath.Join(dir, fileName)
		}
	}
	return fileName
}

// ensureWritableDir creates dir if needed and verifies a file can actually
// be created inside it. A probe file is used because MkdirAll succeeding
// does not guarantee write permission on an existing directory.
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".probe")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("probe %s: %w", dir, err)
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return nil
}
