package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockapi/pkg/value"
)

func newTestStore(t *testing.T) (*Store, Paths) {
	t.Helper()
	t.Setenv(EnvMocksFile, "")
	paths := PathsIn(t.TempDir())
	return New(paths), paths
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func catalogPaths(t *testing.T, s *Store) []string {
	t.Helper()
	defs, err := s.Catalog()
	require.NoError(t, err)
	out := make([]string, len(defs))
	for i, d := range defs {
		p, _ := d.Path()
		out[i] = p
	}
	return out
}

func TestCatalog_BundledExampleWhenNotInstalled(t *testing.T) {
	s, _ := newTestStore(t)
	got := catalogPaths(t, s)
	require.NotEmpty(t, got)
	assert.Equal(t, "/ping", got[0])
}

func TestCatalog_InstalledFile(t *testing.T) {
	s, p := newTestStore(t)
	write(t, p.Mocks, `[{"path":"/a"},{"path":"/b"}]`)
	assert.Equal(t, []string{"/a", "/b"}, catalogPaths(t, s))
}

func TestCatalog_ReReadsEveryCall(t *testing.T) {
	s, p := newTestStore(t)
	write(t, p.Mocks, `[{"path":"/before"}]`)
	assert.Equal(t, []string{"/before"}, catalogPaths(t, s))

	write(t, p.Mocks, `[{"path":"/after"}]`)
	assert.Equal(t, []string{"/after"}, catalogPaths(t, s))
}

func TestCatalog_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single object", `{"path":"/only"}`, []string{"/only"}},
		{"empty list", `[]`, []string{}},
		{"empty object", `{}`, []string{}},
		{"non-object entries skipped", `[1,{"path":"/kept"},"x"]`, []string{"/kept"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := newTestStore(t)
			write(t, p.Mocks, tt.content)
			assert.Equal(t, tt.want, catalogPaths(t, s))
		})
	}
}

func TestCatalog_UnreadableFallsBackToExample(t *testing.T) {
	s, p := newTestStore(t)
	write(t, p.Mocks, `[{"path":`)
	got := catalogPaths(t, s)
	require.NotEmpty(t, got)
	assert.Equal(t, "/ping", got[0])
}

func TestCatalog_MocksFileOverride(t *testing.T) {
	s, p := newTestStore(t)
	write(t, p.Mocks, `[{"path":"/installed"}]`)

	override := filepath.Join(t.TempDir(), "custom.json")
	write(t, override, `[{"path":"/override"}]`)
	t.Setenv(EnvMocksFile, override)
	assert.Equal(t, []string{"/override"}, catalogPaths(t, s))

	t.Setenv(EnvMocksFile, filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, []string{"/installed"}, catalogPaths(t, s))
}

func TestCatalog_MocksFileGlob(t *testing.T) {
	s, _ := newTestStore(t)
	dir := t.TempDir()
	write(t, filepath.Join(dir, "b.json"), `[{"path":"/b"}]`)
	write(t, filepath.Join(dir, "a.json"), `[{"path":"/a"}]`)
	write(t, filepath.Join(dir, "nested", "c.yaml"), "- path: /c\n  method: [GET, POST]\n")

	t.Setenv(EnvMocksFile, filepath.Join(dir, "**", "*.{json,yaml}"))
	assert.Equal(t, []string{"/a", "/b", "/c"}, catalogPaths(t, s))
}

func TestCatalog_YAMLKeepsKeyOrder(t *testing.T) {
	s, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "mocks.yml")
	write(t, path, "- path: /y\n  response:\n    z: 1\n    a: 2\n")
	t.Setenv(EnvMocksFile, path)

	defs, err := s.Catalog()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	b, err := defs[0].Get("response").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2}`, string(b))
}

func TestSettings(t *testing.T) {
	s, p := newTestStore(t)

	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, "8000", got.Port)

	write(t, p.Settings, `{"port":"9000","append_slash":true}`)
	got, err = s.Settings()
	require.NoError(t, err)
	assert.Equal(t, "9000", got.Port)
	assert.True(t, got.AppendSlash)
}

func TestSnapshot(t *testing.T) {
	s, p := newTestStore(t)
	write(t, p.Mocks, `[{"path":"/a"}]`)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Mocks, 1)
	assert.NotNil(t, snap.Settings)
}

func TestInstall(t *testing.T) {
	s, p := newTestStore(t)
	src := filepath.Join(t.TempDir(), "user.json")

	write(t, src, `{"path":"/x"}`)
	assert.ErrorIs(t, s.InstallCatalog(src), ErrInvalidCatalog)

	write(t, src, `[{"path":"/x"}]`)
	require.NoError(t, s.InstallCatalog(src))
	assert.Equal(t, []string{"/x"}, catalogPaths(t, s))

	write(t, src, `[]`)
	assert.ErrorIs(t, s.InstallSettings(src), ErrInvalidSettings)

	write(t, src, `{"port":"9100"}`)
	require.NoError(t, s.InstallSettings(src))
	data, err := os.ReadFile(p.Settings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"port":"9100"}`, string(data))

	write(t, src, `{"broken"`)
	assert.Error(t, s.InstallSettings(src))
}

func TestInstall_YAMLConvertedToJSON(t *testing.T) {
	s, p := newTestStore(t)
	src := filepath.Join(t.TempDir(), "user.yaml")
	write(t, src, "- path: /yaml\n")

	require.NoError(t, s.InstallCatalog(src))
	data, err := os.ReadFile(p.Mocks)
	require.NoError(t, err)
	doc, err := value.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Array().Len())
}

func TestReset(t *testing.T) {
	s, p := newTestStore(t)
	require.NoError(t, s.ResetCatalog())
	require.NoError(t, s.ResetSettings())

	for _, path := range []string{p.Mocks, p.Settings} {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
	assert.Equal(t, "/ping", catalogPaths(t, s)[0])
}

func TestDefaultDir_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	assert.Equal(t, dir, DefaultDir())
	assert.Equal(t, filepath.Join(dir, MocksFileName), DefaultPaths().Mocks)
}
