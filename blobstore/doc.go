// Package blobstore provides storage abstraction for dataset documents.
//
// BlobStore is the interface for reading and writing whole annotation files.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap-backed reads and atomic writes
//   - MemoryStore: in-memory store for testing
//   - Throttled: wraps any store with a rate limit and concurrency cap
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends. For
// backends that can expose file contents without copying, additionally
// implement Mappable on the returned Blob.
package blobstore
