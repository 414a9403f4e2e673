// Package store reads the mock catalog and settings from disk.
//
// Nothing is cached: every call re-reads the files, so edits take effect
// on the next request. When the installed file is missing or unreadable
// the bundled example is used instead.
//
// The catalog file is chosen in this order:
//   - $MOCKS_FILE, when it names an existing file or a glob with matches
//   - mocks.json in the data directory
//   - the bundled example
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/getmockd/mockapi/pkg/config"
	"github.com/getmockd/mockapi/pkg/logging"
	"github.com/getmockd/mockapi/pkg/mock"
	"github.com/getmockd/mockapi/pkg/store/example"
	"github.com/getmockd/mockapi/pkg/value"
)

// Common errors.
var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidCatalog  = errors.New("catalog must be a list of mock objects")
	ErrInvalidSettings = errors.New("settings must be an object")
)

// Snapshot is the catalog and settings read for one request.
type Snapshot struct {
	Mocks    []*mock.Definition
	Settings *config.Settings
}

// Store reads the files under Paths.
type Store struct {
	paths Paths
	log   *slog.Logger
}

// New creates a Store over paths.
func New(paths Paths) *Store {
	return &Store{
		paths: paths,
		log:   logging.Nop(),
	}
}

// SetLogger sets the logger.
func (s *Store) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Paths returns the installed file locations.
func (s *Store) Paths() Paths {
	return s.paths
}

// Snapshot reads the catalog and the settings.
func (s *Store) Snapshot() (*Snapshot, error) {
	mocks, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Mocks: mocks, Settings: settings}, nil
}

// Settings reads the settings file.
func (s *Store) Settings() (*config.Settings, error) {
	path := s.paths.Settings
	if !exists(path) {
		path = ""
	}
	return config.Load(path, example.Settings, s.log)
}

// Catalog reads the catalog. A file holding a single object is treated as
// a one-entry list and an empty document as an empty catalog. Entries that
// are not objects are logged and skipped.
func (s *Store) Catalog() ([]*mock.Definition, error) {
	files := s.catalogFiles()

	var entries []value.Value
	var err error
	if files == nil {
		entries, err = readEntries(example.Mocks, ".json")
	} else {
		entries, err = readCatalogFiles(files)
		if err != nil {
			s.log.Warn("can't read catalog, using bundled example", "files", files, "error", err)
			entries, err = readEntries(example.Mocks, ".json")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read bundled catalog: %w", err)
	}

	defs := make([]*mock.Definition, 0, len(entries))
	for i, entry := range entries {
		d, err := mock.New(entry)
		if err != nil {
			s.log.Warn("skipping mock entry", "index", i, "error", err)
			continue
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// catalogFiles returns the files to read, or nil for the bundled example.
func (s *Store) catalogFiles() []string {
	if env := os.Getenv(EnvMocksFile); env != "" {
		if IsGlob(env) {
			matches, err := expandGlob(env)
			if err != nil {
				s.log.Warn("invalid MOCKS_FILE pattern", "pattern", env, "error", err)
			} else if len(matches) > 0 {
				return matches
			}
		} else if exists(env) {
			return []string{env}
		}
	}
	if exists(s.paths.Mocks) {
		return []string{s.paths.Mocks}
	}
	return nil
}

func readCatalogFiles(files []string) ([]value.Value, error) {
	var all []value.Value
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		entries, err := readEntries(data, filepath.Ext(f))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		all = append(all, entries...)
	}
	return all, nil
}

// readEntries parses a catalog document. ext selects YAML for .yaml and
// .yml; anything else is JSON.
func readEntries(data []byte, ext string) ([]value.Value, error) {
	doc, err := ParseDocument(data, ext)
	if err != nil {
		return nil, err
	}
	if !doc.Truthy() {
		return nil, nil
	}
	if arr := doc.Array(); arr != nil {
		return arr.Items(), nil
	}
	return []value.Value{doc}, nil
}

// ParseDocument parses JSON, or YAML when ext is .yaml or .yml.
func ParseDocument(data []byte, ext string) (value.Value, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return value.Null(), ErrEmptyFile
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return value.ParseYAML(data)
	default:
		return value.Parse(data)
	}
}

// IsGlob reports whether pattern contains glob metacharacters.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob returns the files matching pattern in lexical order. ** is
// supported.
func expandGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(filepath.ToSlash(pattern)) {
		return nil, doublestar.ErrBadPattern
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
