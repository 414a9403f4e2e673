package server

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockapi/pkg/config"
	"github.com/getmockd/mockapi/pkg/engine"
	"github.com/getmockd/mockapi/pkg/mock"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/store"
	"github.com/getmockd/mockapi/pkg/value"
)

const testCatalog = `[
	{"path": "/ping", "response": {"ok": true}},
	{"path": "/item", "method": "POST", "data": [{"name": "id", "type": "int"}],
	 "on_pass": {"status": 201, "response": {"created": true}}},
	{"path": "/echo", "method": ["POST", "PUT"], "fallback_data": true},
	{"path": "/empty", "method": "DELETE", "status": 204, "response": {"gone": true}}
]`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	raw, err := value.ParseString(testCatalog)
	require.NoError(t, err)

	var defs []*mock.Definition
	for _, item := range raw.Array().Items() {
		d, err := mock.New(item)
		require.NoError(t, err)
		defs = append(defs, d)
	}
	src := engine.SourceFunc(func() (*store.Snapshot, error) {
		return &store.Snapshot{Mocks: defs, Settings: config.Default()}, nil
	})
	return NewHandler(engine.New(src, random.NewLocked(7)))
}

func do(t *testing.T, h http.Handler, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Responses(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{"ping", "GET", "/ping", "", "", http.StatusOK, `{"ok":true}`},
		{"missing", "GET", "/missing", "", "", http.StatusNotFound, `{"error":"No mock defined"}`},
		{"valid json", "POST", "/item", "application/json", `{"id":5}`, http.StatusCreated, `{"created":true}`},
		{"json with charset", "POST", "/item", "application/json; charset=utf-8", `{"id":5}`, http.StatusCreated, `{"created":true}`},
		{"invalid json", "POST", "/item", "application/json", `{"id":`, http.StatusBadRequest, `{"error":"invalid json body"}`},
		{"urlencoded", "PUT", "/echo", "application/x-www-form-urlencoded", "a[b]=1&a[c]=x&tags=1&tags=2", http.StatusOK, `{"a":{"b":1,"c":"x"},"tags":["1","2"]}`},
		{"bad urlencoding", "POST", "/echo", "application/x-www-form-urlencoded", "a=%zz", http.StatusInternalServerError, `{"error":"failed to read request body"}`},
		{"unknown content type decodes empty", "POST", "/echo", "text/plain", "hello", http.StatusOK, `{}`},
		{"no content", "DELETE", "/empty", "", "", http.StatusNoContent, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.contentType, strings.NewReader(tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_Multipart(t *testing.T) {
	h := newTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user[name]", "ada"))
	require.NoError(t, mw.WriteField("user[age]", "36"))
	fw, err := mw.CreateFormFile("avatar", "ada.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := do(t, h, "POST", "/echo", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user": {"age": 36, "name": "ada"},
		"avatar": {"filename": "ada.png", "size": 9, "content_type": "application/octet-stream"}
	}`, rec.Body.String())
}

func TestHandler_RequestID(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, "GET", "/ping", "", nil)
	assert.Len(t, rec.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestServer_StartStop(t *testing.T) {
	srv := New("127.0.0.1:0", newTestHandler(t))
	require.NoError(t, srv.Start())
	assert.Error(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(body))

	require.NoError(t, srv.Stop(context.Background()))
	require.NoError(t, srv.Stop(context.Background()))
}

func TestServer_Run(t *testing.T) {
	srv := New("127.0.0.1:0", newTestHandler(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}
