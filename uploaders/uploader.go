package uploaders

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/kr/pretty"
)

const (
	uploadRetryWaitMin = time.Second
	uploadRetryWaitMax = 30 * time.Second
)

// ContentTypePNG is the content type of every uploaded screenshot.
const ContentTypePNG = "image/png"

// Uploader stores a local file and returns where it can be downloaded from.
type Uploader interface {
	Upload(ctx context.Context, pth, name string) (Result, error)
}

// Result ...
type Result struct {
	File FileInfo
	URL  string
}

// Config is everything the B2 uploader needs; it never reads the environment itself.
type Config struct {
	Credentials Credentials
	BucketName  string
	Author      string
	AuthURL     string
	URLStyle    URLStyle
	RetryMax    int
	HTTPTimeout time.Duration
}

// B2Uploader runs authorize, get upload url and upload in sequence, one file per call.
// A failed upload is retried up to RetryMax times, each time on a new upload url.
type B2Uploader struct {
	logger  log.Logger
	client  *B2Client
	config  Config
	tracker tracker
	backoff func(attempt int) time.Duration
}

// NewB2Uploader ...
func NewB2Uploader(config Config, logger log.Logger) *B2Uploader {
	apiClient := NewRetryableClient(logger, config.RetryMax, config.HTTPTimeout)
	uploadClient := NewRetryableClient(logger, 0, config.HTTPTimeout)
	client := NewB2Client(config.AuthURL, config.Credentials, apiClient, logger).WithUploadClient(uploadClient)

	return newB2Uploader(config, client, logger)
}

func newB2Uploader(config Config, client *B2Client, logger log.Logger) *B2Uploader {
	if config.URLStyle == "" {
		config.URLStyle = URLStyleName
	}

	return &B2Uploader{
		logger:  logger,
		client:  client,
		config:  config,
		tracker: newTracker(logger),
		backoff: func(attempt int) time.Duration {
			return retryablehttp.DefaultBackoff(uploadRetryWaitMin, uploadRetryWaitMax, attempt, nil)
		},
	}
}

// Upload ...
func (u *B2Uploader) Upload(ctx context.Context, pth, name string) (Result, error) {
	u.logger.Printf("authorizing account")
	if _, err := u.client.Authorize(ctx); err != nil {
		return Result{}, err
	}

	session, err := u.client.ResolveBucket(ctx, u.config.BucketName)
	if err != nil {
		return Result{}, err
	}
	u.logger.Debugf("Session: %s", pretty.Sprint(session.redacted()))

	size, err := fileSizeInBytes(pth)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get file size: %w", err)
	}
	u.logger.Printf("  file size: %s", units.HumanSize(float64(size)))

	sha1, err := ContentSHA1(pth)
	if err != nil {
		return Result{}, err
	}
	u.logger.Debugf("  content sha1: %s", sha1)

	upload := FileUpload{
		Path:        pth,
		Name:        name,
		ContentType: ContentTypePNG,
		SHA1:        sha1,
		Size:        size,
		Author:      u.config.Author,
	}

	info, err := u.uploadWithRetry(ctx, upload)
	if err != nil {
		return Result{}, err
	}

	if info.ContentSHA1 != "" && info.ContentSHA1 != sha1 {
		return Result{}, fmt.Errorf("content sha1 mismatch for %s: sent %s, stored %s", name, sha1, info.ContentSHA1)
	}

	return Result{
		File: info,
		URL:  u.downloadURL(session, info),
	}, nil
}

func (u *B2Uploader) uploadWithRetry(ctx context.Context, upload FileUpload) (FileInfo, error) {
	for attempt := 0; ; attempt++ {
		info, err := u.uploadOnce(ctx, upload)
		if err == nil {
			return info, nil
		}
		if attempt >= u.config.RetryMax || ctx.Err() != nil || !isRetryableUpload(err) {
			return FileInfo{}, err
		}

		wait := u.backoff(attempt)
		u.logger.Warnf("upload attempt %d failed, retrying in %s with a new upload url: %s", attempt+1, wait, err)
		select {
		case <-ctx.Done():
			return FileInfo{}, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *B2Uploader) uploadOnce(ctx context.Context, upload FileUpload) (FileInfo, error) {
	u.logger.Printf("getting upload url")
	lease, err := u.client.GetUploadURL(ctx)
	if err != nil {
		return FileInfo{}, err
	}

	u.logger.Printf("uploading %s", upload.Name)
	start := time.Now()
	info, err := u.client.UploadFile(ctx, lease, upload)
	u.tracker.logFileTransfer(TransferDetails{
		Hostname: hostname(lease.UploadURL),
		Duration: time.Since(start),
		Size:     upload.Size,
	}, err)

	return info, err
}

func (u *B2Uploader) downloadURL(session Session, info FileInfo) string {
	if u.config.URLStyle == URLStyleName {
		bucketName := session.BucketName
		if bucketName == "" {
			bucketName = u.config.BucketName
		}
		if bucketName != "" {
			return DownloadURLByName(session.DownloadURL, bucketName, info.Name)
		}
		u.logger.Warnf("bucket name is unknown, falling back to a file id based download url")
	}

	return DownloadURLByID(session.DownloadURL, info.ID)
}

func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
