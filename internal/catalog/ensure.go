package catalog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// EnsureFile copies the reserve snapshot into place when the working data
// file is missing, so a fresh deployment starts from the shipped catalogs.
func EnsureFile(path, reserve string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("ensure file: stat %q: %w", path, err)
	}

	log.Printf("data file missing path=%q, restoring from reserve=%q", path, reserve)

	src, err := os.Open(reserve)
	if err != nil {
		return fmt.Errorf("ensure file: open reserve %q: %w", reserve, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure file: create dir for %q: %w", path, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ensure file: create %q: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("ensure file: copy %q -> %q: %w", reserve, path, err)
	}

	return nil
}
