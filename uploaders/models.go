package uploaders

import (
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
)

// Credentials is the application key pair used to authorize against B2.
type Credentials struct {
	KeyID string
	Key   stepconf.Secret
}

// Session holds what b2_authorize_account hands back, plus the resolved bucket.
type Session struct {
	AccountID          string
	AuthorizationToken string
	APIURL             string
	DownloadURL        string
	BucketID           string
	BucketName         string
}

func (s Session) redacted() Session {
	if s.AuthorizationToken != "" {
		s.AuthorizationToken = redactedValue
	}
	return s
}

// UploadLease is a short-lived upload endpoint, valid for a single upload.
type UploadLease struct {
	BucketID           string
	UploadURL          string
	AuthorizationToken string
}

// FileUpload ...
type FileUpload struct {
	Path        string
	Name        string
	ContentType string
	SHA1        string
	Size        int64
	Author      string
}

// FileInfo describes a stored file version.
type FileInfo struct {
	ID              string
	Name            string
	BucketID        string
	ContentType     string
	ContentLength   int64
	ContentSHA1     string
	UploadTimestamp time.Time
}

const redactedValue = "*****"

type authorizeAccountResponse struct {
	AccountID          string `json:"accountId"`
	AuthorizationToken string `json:"authorizationToken"`
	APIURL             string `json:"apiUrl"`
	DownloadURL        string `json:"downloadUrl"`
	Allowed            struct {
		BucketID   string `json:"bucketId"`
		BucketName string `json:"bucketName"`
	} `json:"allowed"`
}

type listBucketsResponse struct {
	Buckets []struct {
		BucketID   string `json:"bucketId"`
		BucketName string `json:"bucketName"`
	} `json:"buckets"`
}

type getUploadURLResponse struct {
	BucketID           string `json:"bucketId"`
	UploadURL          string `json:"uploadUrl"`
	AuthorizationToken string `json:"authorizationToken"`
}

type uploadFileResponse struct {
	FileID          string `json:"fileId"`
	FileName        string `json:"fileName"`
	BucketID        string `json:"bucketId"`
	ContentType     string `json:"contentType"`
	ContentLength   int64  `json:"contentLength"`
	ContentSHA1     string `json:"contentSha1"`
	UploadTimestamp int64  `json:"uploadTimestamp"`
}

func (r uploadFileResponse) fileInfo() FileInfo {
	info := FileInfo{
		ID:            r.FileID,
		Name:          r.FileName,
		BucketID:      r.BucketID,
		ContentType:   r.ContentType,
		ContentLength: r.ContentLength,
		ContentSHA1:   r.ContentSHA1,
	}
	if r.UploadTimestamp > 0 {
		info.UploadTimestamp = time.UnixMilli(r.UploadTimestamp).UTC()
	}
	return info
}
