// Package blobstore provides storage abstraction for queue snapshots.
//
// Store is the interface for reading and writing immutable snapshot blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: map-backed, for tests
//   - LocalStore: local filesystem with atomic temp-file + rename writes
//   - minio.Store: MinIO and S3-compatible object storage
//
// Snapshots are small (the complete queue state), so the interface works on
// whole blobs rather than ranged reads.
package blobstore
