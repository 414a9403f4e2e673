package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getmockd/mockapi/pkg/store/example"
	"github.com/getmockd/mockapi/pkg/value"
)

// CheckCatalog verifies that data is a catalog: a list of objects.
func CheckCatalog(data []byte, ext string) error {
	doc, err := ParseDocument(data, ext)
	if err != nil {
		return err
	}
	arr := doc.Array()
	if arr == nil {
		return ErrInvalidCatalog
	}
	for i, item := range arr.Items() {
		if item.Object() == nil {
			return fmt.Errorf("%w: entry %d is %s", ErrInvalidCatalog, i, item.Kind())
		}
	}
	return nil
}

// CheckSettings verifies that data is a settings object.
func CheckSettings(data []byte, ext string) error {
	doc, err := ParseDocument(data, ext)
	if err != nil {
		return err
	}
	if doc.Object() == nil {
		return ErrInvalidSettings
	}
	return nil
}

// InstallCatalog checks src and copies it over the installed catalog. A
// YAML source is converted to JSON.
func (s *Store) InstallCatalog(src string) error {
	data, err := readInstallable(src, CheckCatalog)
	if err != nil {
		return err
	}
	return writeAtomic(s.paths.Mocks, data)
}

// InstallSettings checks src and copies it over the installed settings. A
// YAML source is converted to JSON.
func (s *Store) InstallSettings(src string) error {
	data, err := readInstallable(src, CheckSettings)
	if err != nil {
		return err
	}
	return writeAtomic(s.paths.Settings, data)
}

func readInstallable(src string, check func([]byte, string) error) ([]byte, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(src))
	if err := check(data, ext); err != nil {
		return nil, err
	}
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	doc, err := value.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

// ResetCatalog installs the bundled example catalog.
func (s *Store) ResetCatalog() error {
	return writeAtomic(s.paths.Mocks, example.Mocks)
}

// ResetSettings installs the bundled example settings.
func (s *Store) ResetSettings() error {
	return writeAtomic(s.paths.Settings, example.Settings)
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
