package interfaces

import "context"

// GcsInterface uploads payment proof documents and hands back only the
// object reference; file bytes never cross into the core.
type GcsInterface interface {
	UploadProof(ctx context.Context, paymentID string, data []byte, contentType string) (string, error)
	Close(ctx context.Context)
}
