// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the two
// things this service keeps in a bucket: the CSV drop zone districts upload
// exports into, and the archive of full change reports. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (archived reports).
//   - GetObject: Retrieves content as a stream (drop documents).
//   - ListObjects: Lists objects (pending drops, archived reports).
//   - RemoveObject: Deletes an object (processed drop cleanup).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "roster")
package storage
