package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// SnapshotStorage defines the interface for archiving generated plan
// snapshots to object storage.
type SnapshotStorage interface {
	// UploadSnapshot writes the serialized snapshot under objectKey.
	UploadSnapshot(ctx context.Context, objectKey string, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading a snapshot directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes a snapshot from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
