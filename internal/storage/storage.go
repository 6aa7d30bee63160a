package storage

import (
	"context"
	"io"
)

// Package storage contains the object storage abstraction used to
// archive generated export workbooks. Implementations rely on streaming
// I/O only; no local disk is used.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to
// -1 and the implementation will buffer/chunk as supported by the
// backend. ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage is an S3-compatible object storage client interface covering
// the archive operations the service needs.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
