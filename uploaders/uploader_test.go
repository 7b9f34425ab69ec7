package uploaders

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeB2 is an in-process stand-in for the B2 API, serving the calls one upload needs.
type fakeB2 struct {
	t      *testing.T
	server *httptest.Server

	authorizeStatus  int
	restrictedBucket bool
	uploadStatus     int
	uploadFailures   []int
	storedSHA1       string

	mu      sync.Mutex
	calls   map[string]int
	uploads []recordedUpload
}

type recordedUpload struct {
	headers       http.Header
	body          []byte
	contentLength int64
}

func newFakeB2(t *testing.T) *fakeB2 {
	f := &fakeB2{
		t:                t,
		authorizeStatus:  http.StatusOK,
		restrictedBucket: true,
		uploadStatus:     http.StatusOK,
		calls:            map[string]int{},
	}

	router := mux.NewRouter()
	router.HandleFunc("/b2api/v2/b2_authorize_account", f.authorize).Methods(http.MethodGet)
	router.HandleFunc("/b2api/v2/b2_list_buckets", f.listBuckets).Methods(http.MethodGet)
	router.HandleFunc("/b2api/v2/b2_get_upload_url", f.getUploadURL).Methods(http.MethodGet).Queries("bucketId", "{bucketId}")
	router.HandleFunc("/b2api/v2/b2_upload_file/{bucketId}/{pod}", f.uploadFile).Methods(http.MethodPost)

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeB2) authorize(w http.ResponseWriter, r *http.Request) {
	f.record("b2_authorize_account")

	user, password, ok := r.BasicAuth()
	if !ok || user != testKeyID || password != testKey || f.authorizeStatus != http.StatusOK {
		status := f.authorizeStatus
		if status == http.StatusOK {
			status = http.StatusUnauthorized
		}
		f.writeJSON(w, status, map[string]interface{}{"status": status, "code": "unauthorized", "message": "invalid key"})
		return
	}

	allowed := map[string]interface{}{"bucketId": nil, "bucketName": nil}
	if f.restrictedBucket {
		allowed = map[string]interface{}{"bucketId": "bucket-id", "bucketName": "screenshots"}
	}

	f.writeJSON(w, http.StatusOK, map[string]interface{}{
		"accountId":          "account-id",
		"authorizationToken": testAuthToken,
		"apiUrl":             f.server.URL,
		"downloadUrl":        f.server.URL,
		"allowed":            allowed,
	})
}

func (f *fakeB2) listBuckets(w http.ResponseWriter, r *http.Request) {
	f.record("b2_list_buckets")

	if r.Header.Get("Authorization") != testAuthToken {
		f.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"status": 401, "code": "bad_auth_token"})
		return
	}

	var buckets []map[string]string
	if r.URL.Query().Get("bucketName") == "screenshots" {
		buckets = append(buckets, map[string]string{"bucketId": "bucket-id", "bucketName": "screenshots"})
	}
	f.writeJSON(w, http.StatusOK, map[string]interface{}{"buckets": buckets})
}

func (f *fakeB2) getUploadURL(w http.ResponseWriter, r *http.Request) {
	lease := f.record("b2_get_upload_url")

	bucketID := mux.Vars(r)["bucketId"]
	f.writeJSON(w, http.StatusOK, map[string]interface{}{
		"bucketId":           bucketID,
		"uploadUrl":          fmt.Sprintf("%s/b2api/v2/b2_upload_file/%s/c%03d", f.server.URL, bucketID, lease),
		"authorizationToken": fmt.Sprintf("upload-token-%d", lease),
	})
}

func (f *fakeB2) uploadFile(w http.ResponseWriter, r *http.Request) {
	attempt := f.record("b2_upload_file")

	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)
	f.mu.Lock()
	f.uploads = append(f.uploads, recordedUpload{headers: r.Header.Clone(), body: body, contentLength: r.ContentLength})
	f.mu.Unlock()

	status := f.uploadStatus
	if attempt <= len(f.uploadFailures) {
		status = f.uploadFailures[attempt-1]
	}
	if status != http.StatusOK {
		f.writeJSON(w, status, map[string]interface{}{"status": status, "code": "service_unavailable", "message": "incident id 1234"})
		return
	}

	sum := sha1.Sum(body)
	stored := hex.EncodeToString(sum[:])
	if f.storedSHA1 != "" {
		stored = f.storedSHA1
	}

	f.writeJSON(w, http.StatusOK, map[string]interface{}{
		"fileId":          "4_zbucket-id_f1",
		"fileName":        r.Header.Get("X-Bz-File-Name"),
		"bucketId":        mux.Vars(r)["bucketId"],
		"contentType":     r.Header.Get("Content-Type"),
		"contentLength":   len(body),
		"contentSha1":     stored,
		"uploadTimestamp": 1700000000000,
	})
}

func (f *fakeB2) record(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[operation]++
	return f.calls[operation]
}

func (f *fakeB2) callCount(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[operation]
}

func (f *fakeB2) recordedUploads() []recordedUpload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedUpload(nil), f.uploads...)
}

func (f *fakeB2) lastUpload() (http.Header, []byte) {
	uploads := f.recordedUploads()
	require.NotEmpty(f.t, uploads)
	last := uploads[len(uploads)-1]
	return last.headers, last.body
}

func (f *fakeB2) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeB2) uploader(config Config) *B2Uploader {
	config.Credentials = Credentials{KeyID: testKeyID, Key: testKey}
	config.AuthURL = f.server.URL
	config.Author = "unknown"
	u := NewB2Uploader(config, log.NewLogger())
	u.backoff = func(int) time.Duration { return 0 }
	return u
}

func writeScreenshot(t *testing.T, name string) (string, []byte) {
	content := []byte("\x89PNG\r\n\x1a\nfake screenshot bytes")
	pth := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(pth, content, 0600))
	return pth, content
}

func TestB2Uploader_Upload(t *testing.T) {
	const name = "push-the-red-button.png"

	t.Run("Name based url", func(t *testing.T) {
		fake := newFakeB2(t)
		pth, content := writeScreenshot(t, name)

		result, err := fake.uploader(Config{URLStyle: URLStyleName}).Upload(context.Background(), pth, name)
		require.NoError(t, err)

		assert.Equal(t, fake.server.URL+"/file/screenshots/"+name, result.URL)
		assert.Equal(t, "4_zbucket-id_f1", result.File.ID)

		headers, body := fake.lastUpload()
		sum := sha1.Sum(content)
		assert.Equal(t, hex.EncodeToString(sum[:]), headers.Get("X-Bz-Content-Sha1"))
		assert.Equal(t, "upload-token-1", headers.Get("Authorization"))
		assert.Equal(t, ContentTypePNG, headers.Get("Content-Type"))
		assert.Equal(t, "unknown", headers.Get("X-Bz-Info-Author"))
		assert.Equal(t, content, body)

		assert.EqualValues(t, 1, fake.callCount("b2_authorize_account"))
		assert.EqualValues(t, 0, fake.callCount("b2_list_buckets"))
		assert.EqualValues(t, 1, fake.callCount("b2_get_upload_url"))
		assert.EqualValues(t, 1, fake.callCount("b2_upload_file"))
	})

	t.Run("Id based url", func(t *testing.T) {
		fake := newFakeB2(t)
		pth, _ := writeScreenshot(t, name)

		result, err := fake.uploader(Config{URLStyle: URLStyleID}).Upload(context.Background(), pth, name)
		require.NoError(t, err)

		assert.Equal(t, fake.server.URL+"/b2api/v2/b2_download_file_by_id?fileId=4_zbucket-id_f1", result.URL)
	})

	t.Run("Unrestricted key resolves the bucket by name", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.restrictedBucket = false
		pth, _ := writeScreenshot(t, name)

		result, err := fake.uploader(Config{BucketName: "screenshots"}).Upload(context.Background(), pth, name)
		require.NoError(t, err)

		assert.Equal(t, fake.server.URL+"/file/screenshots/"+name, result.URL)
		assert.EqualValues(t, 1, fake.callCount("b2_list_buckets"))
	})

	t.Run("Failed authorization stops before any upload", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.authorizeStatus = http.StatusUnauthorized
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{}).Upload(context.Background(), pth, name)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.EqualValues(t, 1, fake.callCount("b2_authorize_account"))
		assert.EqualValues(t, 0, fake.callCount("b2_get_upload_url"))
		assert.EqualValues(t, 0, fake.callCount("b2_upload_file"))
	})

	t.Run("Failed upload keeps the local file", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.uploadStatus = http.StatusInternalServerError
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{}).Upload(context.Background(), pth, name)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service_unavailable: incident id 1234")
		assert.FileExists(t, pth)
	})

	t.Run("Stored hash mismatch", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.storedSHA1 = "0000000000000000000000000000000000000000"
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{}).Upload(context.Background(), pth, name)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content sha1 mismatch")
	})
}

func TestB2Uploader_UploadRetries(t *testing.T) {
	const name = "lift-the-heavy-anchor.png"

	t.Run("Server error is retried on a new upload url", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.uploadFailures = []int{http.StatusServiceUnavailable}
		pth, content := writeScreenshot(t, name)

		result, err := fake.uploader(Config{RetryMax: 2}).Upload(context.Background(), pth, name)
		require.NoError(t, err)
		assert.Equal(t, fake.server.URL+"/file/screenshots/"+name, result.URL)

		uploads := fake.recordedUploads()
		require.Len(t, uploads, 2)
		for _, upload := range uploads {
			assert.Equal(t, content, upload.body)
			assert.EqualValues(t, len(content), upload.contentLength)
		}
		assert.Equal(t, "upload-token-1", uploads[0].headers.Get("Authorization"))
		assert.Equal(t, "upload-token-2", uploads[1].headers.Get("Authorization"))

		assert.EqualValues(t, 1, fake.callCount("b2_authorize_account"))
		assert.EqualValues(t, 2, fake.callCount("b2_get_upload_url"))
	})

	t.Run("Gives up after the configured retries", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.uploadStatus = http.StatusServiceUnavailable
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{RetryMax: 2}).Upload(context.Background(), pth, name)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		assert.EqualValues(t, 3, fake.callCount("b2_upload_file"))
		assert.EqualValues(t, 3, fake.callCount("b2_get_upload_url"))
		assert.FileExists(t, pth)
	})

	t.Run("No retries by default", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.uploadFailures = []int{http.StatusInternalServerError}
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{}).Upload(context.Background(), pth, name)
		require.Error(t, err)
		assert.EqualValues(t, 1, fake.callCount("b2_upload_file"))
		assert.EqualValues(t, 1, fake.callCount("b2_get_upload_url"))
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		fake := newFakeB2(t)
		fake.uploadFailures = []int{http.StatusBadRequest}
		pth, _ := writeScreenshot(t, name)

		_, err := fake.uploader(Config{RetryMax: 2}).Upload(context.Background(), pth, name)
		require.Error(t, err)
		assert.EqualValues(t, 1, fake.callCount("b2_upload_file"))
	})
}

func TestIsRetryableUpload(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "Service unavailable", err: &APIError{Status: http.StatusServiceUnavailable}, want: true},
		{name: "Too many requests", err: &APIError{Status: http.StatusTooManyRequests}, want: true},
		{name: "Request timeout", err: &APIError{Status: http.StatusRequestTimeout}, want: true},
		{name: "Expired upload token", err: &APIError{Status: http.StatusUnauthorized, Code: "expired_auth_token"}, want: true},
		{name: "Bad upload token", err: &APIError{Status: http.StatusUnauthorized, Code: "bad_auth_token"}, want: false},
		{name: "Bad request", err: &APIError{Status: http.StatusBadRequest, Code: "bad_request"}, want: false},
		{name: "Wrapped transport error", err: fmt.Errorf("failed to upload file: %w", errors.New("connection reset by peer")), want: true},
		{name: "Unknown bucket", err: fmt.Errorf("failed to get upload url: %w", ErrBucketUnknown), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableUpload(tt.err))
		})
	}
}
