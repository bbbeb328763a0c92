package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	payload := []byte("PK\x03\x04 archive bytes")
	var gotAuth, gotRequestID, gotAsFile string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, ExportPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotAsFile = r.URL.Query().Get("as_file")
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	ac := GetClient(server.URL, "secret", 5*time.Second)
	body, contentType, err := ac.Export()
	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "application/zip", contentType)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "true", gotAsFile)
	assert.NotEmpty(t, gotRequestID)
}

func TestExport_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, _, err := GetClient(server.URL, "bad", time.Second).Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestImport(t *testing.T) {
	source := filepath.Join(t.TempDir(), "slotify_export_20250601_120000.zip")
	require.NoError(t, os.WriteFile(source, []byte("archive"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, ImportPath, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		b, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "archive", string(b))
		assert.Equal(t, "slotify_export_20250601_120000.zip", header.Filename)
		assert.Equal(t, "application/zip", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"restored 12 slots"}`))
	}))
	defer server.Close()

	result, err := GetClient(server.URL, "secret", 5*time.Second).Import(source)
	require.NoError(t, err)
	assert.Equal(t, "restored 12 slots", result.Message)
}

func TestImport_EmptyBodyIsSuccess(t *testing.T) {
	source := filepath.Join(t.TempDir(), "dump.zip")
	require.NoError(t, os.WriteFile(source, []byte("archive"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result, err := GetClient(server.URL, "secret", time.Second).Import(source)
	require.NoError(t, err)
	assert.Empty(t, result.Message)
}

func TestImport_NonOKKeepsSource(t *testing.T) {
	source := filepath.Join(t.TempDir(), "dump.zip")
	require.NoError(t, os.WriteFile(source, []byte("archive"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "restore failed", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := GetClient(server.URL, "secret", time.Second).Import(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	_, statErr := os.Stat(source)
	assert.NoError(t, statErr)
}

func TestImport_MissingFileMakesNoRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := GetClient(server.URL, "secret", time.Second).Import(filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)
	assert.False(t, called)
}

func TestExport_MalformedBaseURL(t *testing.T) {
	_, _, err := GetClient("://bad", "secret", time.Second).Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not build export request")
}

func TestImport_MalformedBaseURL(t *testing.T) {
	source := filepath.Join(t.TempDir(), "dump.zip")
	require.NoError(t, os.WriteFile(source, []byte("archive"), 0644))

	_, err := GetClient("://bad", "secret", time.Second).Import(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not build import request")
}

func TestArchiveContentType(t *testing.T) {
	assert.Equal(t, "application/json", ArchiveContentType("dump.json"))
	assert.Equal(t, "application/json", ArchiveContentType("DUMP.JSON"))
	assert.Equal(t, "application/zip", ArchiveContentType("slotify_export_20250601_120000.zip"))
	assert.Equal(t, "application/zip", ArchiveContentType("dump"))
}
