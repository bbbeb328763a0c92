package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slotify/cli/pkg/data"
	"github.com/slotify/cli/pkg/logging"
)

const (
	ExportPath = "/api/v1/export"
	ImportPath = "/api/v1/import"

	// cap on how much of a response body is echoed into error messages
	maxErrorBody = 512
)

type tripper struct {
	token string
	rt    http.RoundTripper
}

type SlotifyClient struct {
	client  *http.Client
	baseURL string
}

func GetClient(baseURL string, token string, timeout time.Duration) *SlotifyClient {
	return &SlotifyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &tripper{
				token: token,
				rt:    http.DefaultTransport,
			},
		},
	}
}

// Export downloads the full data export as an opaque archive. The
// returned content type is the server's Content-Type header, used by
// the caller to pick a file extension.
func (sc *SlotifyClient) Export() ([]byte, string, error) {
	req, err := http.NewRequest("GET", sc.baseURL+ExportPath+"?as_file=true", nil)
	if err != nil {
		return nil, "", fmt.Errorf("could not build export request: %w", err)
	}

	b, headers, err := handle(sc.client.Do(req))
	if err != nil {
		return nil, "", err
	}

	var contentType string
	if v, ok := headers["Content-Type"]; ok {
		contentType = v[0]
	}

	return b, contentType, nil
}

// Import uploads a previously exported archive as a multipart form with
// a single part named "file". The source file is never deleted.
func (sc *SlotifyClient) Import(sourceFilePath string) (*data.ImportResult, error) {
	file, err := os.Open(sourceFilePath)
	if err != nil {
		logging.Log.Error(err)
		return nil, err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(sourceFilePath)))
	header.Set("Content-Type", ArchiveContentType(sourceFilePath))
	part, err := writer.CreatePart(header)
	if err != nil {
		logging.Log.Error(err)
		return nil, err
	}
	_, _ = io.Copy(part, file)
	_ = writer.Close()

	req, err := http.NewRequest("POST", sc.baseURL+ImportPath, body)
	if err != nil {
		return nil, fmt.Errorf("could not build import request: %w", err)
	}
	req.Header.Set("content-type", writer.FormDataContentType())

	var result data.ImportResult
	b, _, err := handle(sc.client.Do(req))
	if err != nil {
		return nil, err
	}
	// success is the status code; a missing or non-JSON body is fine
	_ = json.Unmarshal(b, &result)

	return &result, nil
}

// ArchiveContentType maps an archive filename to the MIME type sent for
// its multipart part.
func ArchiveContentType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "application/json"
	}
	return "application/zip"
}

func (t *tripper) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("authorization", "Bearer "+t.token)
	request.Header.Set("x-request-id", uuid.NewString())

	return t.rt.RoundTrip(request)
}

func handle(res *http.Response, err error) ([]byte, map[string][]string, error) {
	if err != nil {
		return nil, nil, err
	}

	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status %d: %s", res.StatusCode, errorBody(b))
	}

	headers := map[string][]string{}
	for key, values := range res.Header {
		headers[key] = values
	}

	return b, headers, nil
}

func errorBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "(empty body)"
	}
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
