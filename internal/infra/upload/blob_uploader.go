// Package upload stores user-submitted files in a blob bucket.
package upload

import (
	"context"
	"log/slog"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
	_ "gocloud.dev/blob/memblob"  // mem:// bucket URLs, used in tests

	"go.uber.org/fx"

	"spotter/config"
	"spotter/internal/domain/service"
	"spotter/internal/errors"
)

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobUploader implements service.Uploader on top of a gocloud.dev bucket.
// The bucket URL decides the backend (file://, mem://, s3://, gs://, ...).
type blobUploader struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and registers its closer with the
// application lifecycle.
func New(params Params) (service.Uploader, error) {
	if params.Config.Upload == nil || params.Config.Upload.BucketURL == "" {
		return nil, errors.New("upload bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobUploader{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Upload.PublicBaseURL, "/"),
	}, nil
}

// NewWithBucket builds an uploader around an already open bucket.
func NewWithBucket(bucket *blob.Bucket, baseURL string) service.Uploader {
	return &blobUploader{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes the file and returns the URL it will be served from.
func (u *blobUploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := u.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write upload to bucket")
	}

	return u.baseURL + "/" + key, nil
}
