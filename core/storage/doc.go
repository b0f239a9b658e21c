// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so input documents (BOM, PKP, stock) can be
// fetched from a bucket and finished reports uploaded back. Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Object references
//
// Inputs are addressed as s3://bucket/key. ParseURI splits such a reference;
// ReadObject and WriteObject move whole objects in and out of memory.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	bucket, key, err := storage.ParseURI("s3://boards/rev-b/bom.xlsx", config.Bucket)
//	data, err := storage.ReadObject(ctx, client, bucket, key)
package storage
