package port

import (
	"context"
	"io"
)

// PutObjectInput describes a generated report to store.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	ContentType string
}

// ObjectStorage abstracts the bucket that holds generated reports.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) (location string, err error)
	PresignGet(ctx context.Context, key string, expirySeconds int64) (string, error)
}
