package uploaders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bitrise-io/go-utils/urlutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultAuthURL is the production account authorization host.
const DefaultAuthURL = "https://api.backblazeb2.com"

const apiPrefix = "/b2api/v2"

// HTTPClient ...
type HTTPClient interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// B2Client talks to the B2 native API. A client is used by a single caller:
// Authorize first, then the bucket scoped calls.
type B2Client struct {
	logger       log.Logger
	httpClient   HTTPClient
	uploadClient HTTPClient
	authURL      string
	credentials Credentials
	session     *Session
}

// NewB2Client ...
func NewB2Client(authURL string, credentials Credentials, httpClient HTTPClient, logger log.Logger) *B2Client {
	if authURL == "" {
		authURL = DefaultAuthURL
	}

	return &B2Client{
		logger:      logger,
		httpClient:  httpClient,
		authURL:     strings.TrimSuffix(authURL, "/"),
		credentials: credentials,
	}
}

// WithUploadClient sets the client used for b2_upload_file only.
// Upload retries need a new upload url, so this client should not retry on its own.
func (c *B2Client) WithUploadClient(httpClient HTTPClient) *B2Client {
	c.uploadClient = httpClient
	return c
}

// Authorize exchanges the key pair for an authorization token and the account's API and download hosts.
func (c *B2Client) Authorize(ctx context.Context) (Session, error) {
	uri := c.authURL + apiPrefix + "/b2_authorize_account"
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return Session{}, err
	}
	req.SetBasicAuth(c.credentials.KeyID, string(c.credentials.Key))

	var response authorizeAccountResponse
	if err := c.perform(req, &response); err != nil {
		return Session{}, fmt.Errorf("failed to authorize account: %w", err)
	}

	if response.AuthorizationToken == "" {
		return Session{}, fmt.Errorf("failed to authorize account: no authorization token received")
	}
	if response.APIURL == "" || response.DownloadURL == "" {
		return Session{}, fmt.Errorf("failed to authorize account: no api or download url received")
	}

	c.session = &Session{
		AccountID:          response.AccountID,
		AuthorizationToken: response.AuthorizationToken,
		APIURL:             strings.TrimSuffix(response.APIURL, "/"),
		DownloadURL:        strings.TrimSuffix(response.DownloadURL, "/"),
		BucketID:           response.Allowed.BucketID,
		BucketName:         response.Allowed.BucketName,
	}

	return *c.session, nil
}

// ResolveBucket makes sure the session has a bucket id.
// Keys restricted to a bucket already carry it; otherwise the bucket is looked up by name.
func (c *B2Client) ResolveBucket(ctx context.Context, bucketName string) (Session, error) {
	if c.session == nil {
		return Session{}, ErrNotAuthorized
	}

	if c.session.BucketID != "" {
		if bucketName != "" && c.session.BucketName != "" && bucketName != c.session.BucketName {
			return Session{}, fmt.Errorf("key is restricted to bucket (%s), but bucket (%s) was requested", c.session.BucketName, bucketName)
		}
		return *c.session, nil
	}

	if bucketName == "" {
		return Session{}, fmt.Errorf("key is not restricted to a bucket and no bucket name is set: %w", ErrBucketUnknown)
	}

	uri, err := c.apiURL("b2_list_buckets", url.Values{
		"accountId":  {c.session.AccountID},
		"bucketName": {bucketName},
	})
	if err != nil {
		return Session{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Authorization", c.session.AuthorizationToken)

	var response listBucketsResponse
	if err := c.perform(req, &response); err != nil {
		return Session{}, fmt.Errorf("failed to list buckets: %w", err)
	}

	for _, bucket := range response.Buckets {
		if bucket.BucketName == bucketName {
			c.session.BucketID = bucket.BucketID
			c.session.BucketName = bucket.BucketName
			return *c.session, nil
		}
	}

	return Session{}, fmt.Errorf("bucket (%s) not found: %w", bucketName, ErrBucketUnknown)
}

// GetUploadURL asks for an upload endpoint of the session's bucket.
func (c *B2Client) GetUploadURL(ctx context.Context) (UploadLease, error) {
	if c.session == nil {
		return UploadLease{}, ErrNotAuthorized
	}
	if c.session.BucketID == "" {
		return UploadLease{}, ErrBucketUnknown
	}

	uri, err := c.apiURL("b2_get_upload_url", url.Values{"bucketId": {c.session.BucketID}})
	if err != nil {
		return UploadLease{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return UploadLease{}, err
	}
	req.Header.Set("Authorization", c.session.AuthorizationToken)

	var response getUploadURLResponse
	if err := c.perform(req, &response); err != nil {
		return UploadLease{}, fmt.Errorf("failed to get upload url: %w", err)
	}

	if response.UploadURL == "" {
		return UploadLease{}, fmt.Errorf("failed to get upload url: no upload url received")
	}
	if response.AuthorizationToken == "" {
		return UploadLease{}, fmt.Errorf("failed to get upload url: no upload token received")
	}

	return UploadLease{
		BucketID:           response.BucketID,
		UploadURL:          response.UploadURL,
		AuthorizationToken: response.AuthorizationToken,
	}, nil
}

// UploadFile posts the file to the leased upload url. The body is streamed from disk
// and reopened for every attempt.
func (c *B2Client) UploadFile(ctx context.Context, lease UploadLease, file FileUpload) (FileInfo, error) {
	body := retryablehttp.ReaderFunc(func() (io.Reader, error) {
		return os.Open(file.Path)
	})

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, lease.UploadURL, body)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to create upload request: %w", err)
	}

	// Set Content Length manually, B2 rejects uploads without it.
	req.ContentLength = file.Size
	req.Header.Set("Authorization", lease.AuthorizationToken)
	req.Header.Set("X-Bz-File-Name", escapeFileName(file.Name))
	req.Header.Set("Content-Type", file.ContentType)
	req.Header.Set("X-Bz-Content-Sha1", file.SHA1)
	if file.Author != "" {
		req.Header.Set("X-Bz-Info-Author", file.Author)
	}

	uploadClient := c.uploadClient
	if uploadClient == nil {
		uploadClient = c.httpClient
	}

	var response uploadFileResponse
	if err := c.performWith(uploadClient, req, &response); err != nil {
		return FileInfo{}, fmt.Errorf("failed to upload file: %w", err)
	}

	if response.FileID == "" {
		return FileInfo{}, fmt.Errorf("failed to upload file: no file id received")
	}

	return response.fileInfo(), nil
}

func (c *B2Client) apiURL(operation string, query url.Values) (string, error) {
	uri, err := urlutil.Join(c.session.APIURL, apiPrefix, operation)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s url: %w", operation, err)
	}
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	return uri, nil
}

func (c *B2Client) perform(req *retryablehttp.Request, output interface{}) error {
	return c.performWith(c.httpClient, req, output)
}

func (c *B2Client) performWith(httpClient HTTPClient, req *retryablehttp.Request, output interface{}) error {
	c.logger.Debugf("Request: %s %s", req.Method, req.URL.Redacted())

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debugf("Response status: %d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request to %s failed: %w", req.URL.Redacted(), newAPIError(resp.StatusCode, body))
	}

	if output == nil {
		return nil
	}
	if err := json.Unmarshal(body, output); err != nil {
		return fmt.Errorf("failed to unmarshal response (%s): %w", string(body), err)
	}

	return nil
}

// escapeFileName percent-encodes a file name segment by segment, the form B2 expects in X-Bz-File-Name.
func escapeFileName(name string) string {
	segments := strings.Split(name, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
