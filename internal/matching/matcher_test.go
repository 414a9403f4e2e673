package matching

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockapi/pkg/mock"
	"github.com/getmockd/mockapi/pkg/value"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		appendSlash bool
		want        string
	}{
		{"empty", "", false, "/"},
		{"empty with slash", "", true, "/"},
		{"root", "/", true, "/"},
		{"no leading slash", "ping", false, "/ping"},
		{"leading slashes collapsed", "//ping", false, "/ping"},
		{"append slash", "ping", true, "/ping/"},
		{"already terminated", "ping/", true, "/ping/"},
		{"trailing kept without flag", "api/users/", false, "/api/users/"},
		{"nested", "/api/users", true, "/api/users/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path, tt.appendSlash))
		})
	}
}

func TestMatchMethod(t *testing.T) {
	assert.True(t, MatchMethod([]string{"GET"}, "GET"))
	assert.True(t, MatchMethod([]string{"PUT", "PATCH"}, "PATCH"))
	assert.False(t, MatchMethod([]string{"get"}, "GET"))
	assert.False(t, MatchMethod(nil, "GET"))
}

func catalog(t *testing.T, s string) []*mock.Definition {
	t.Helper()
	raw, err := value.ParseString(s)
	require.NoError(t, err)

	var defs []*mock.Definition
	for _, item := range raw.Array().Items() {
		d, err := mock.New(item)
		require.NoError(t, err)
		defs = append(defs, d)
	}
	return defs
}

func TestFind(t *testing.T) {
	defs := catalog(t, `[
		{"path":"/ping","response":"first"},
		{"path":"/ping","response":"second"},
		{"path":"/items","method":["POST","PUT"],"response":"write"},
		{"path":"/items","method":"GET","response":"read"}
	]`)

	tests := []struct {
		name   string
		path   string
		method string
		want   string
	}{
		{"first match wins", "/ping", "GET", "first"},
		{"default method only GET", "/ping", "POST", ""},
		{"method list", "/items", "PUT", "write"},
		{"single method", "/items", "GET", "read"},
		{"no path", "/missing", "GET", ""},
		{"path is verbatim", "/ping/", "GET", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(defs, tt.path, tt.method, nil)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, value.Format(got.Get("response")))
		})
	}
}

func TestFind_SkipsBrokenEntries(t *testing.T) {
	defs := catalog(t, `[
		{"path":42},
		{"path":"/ping","method":{"bad":true}},
		{"path":"/ping","response":"ok"}
	]`)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	got := Find(defs, "/ping", "GET", log)
	require.NotNil(t, got)
	assert.Equal(t, "ok", value.Format(got.Get("response")))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("skipping mock entry")))
}
