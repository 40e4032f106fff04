package runs

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"roster-sync/core/importer"
	"roster-sync/core/storage"
)

// dropSource reads drop documents from the object-storage drop zone.
type dropSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewDropSource adapts the storage drop zone to the importer. Documents are
// expected at prefix + file name, e.g. "drops/students.csv".
func NewDropSource(client storage.Client, bucket, prefix string) importer.Source {
	return &dropSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *dropSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.prefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open drop object %s: %w", s.prefix+name, err)
	}
	return obj, nil
}

// HasObjects reports whether at least one object sits under prefix. An
// empty drop zone fails a run with one clear error instead of a
// missing-object error per document.
func HasObjects(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
		MaxKeys:   1,
	}
	for range client.ListObjects(ctx, bucket, opts) {
		return true
	}
	return false
}
