package service

import "context"

// Uploader stores an uploaded file and returns the public URL it will be
// served from. The backing bucket is configuration; callers never see it.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
