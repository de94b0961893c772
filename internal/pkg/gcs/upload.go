package gcs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/config"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/log_messages"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

type GCSClient struct {
	Client     *storage.Client
	BucketName string
	FolderName string
}

func NewGCSClient(ctx context.Context, cfg config.GCSConfig) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSClient{
		Client:     client,
		BucketName: cfg.BucketName,
		FolderName: cfg.FolderName,
	}, nil
}

func (g *GCSClient) Close(ctx context.Context) {
	if g.Client == nil {
		return
	}
	if err := g.Client.Close(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClosingGCSClient, err)
	}
}

// UploadProof stores a payment proof document and returns the object name.
// The DoesNotExist condition keeps a retried upload from clobbering the
// original proof.
func (g *GCSClient) UploadProof(ctx context.Context, paymentID string, data []byte, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s/%d_%s", g.FolderName, time.Now().Unix(), paymentID)
	object := g.Client.Bucket(g.BucketName).Object(objectName)

	writer := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := writer.Write(data); err != nil {
		logger.CtxError(ctx, log_messages.ErrorUploadingToGCSBucket, err)
		return "", err
	}
	if err := writer.Close(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClosingGCSWriter, err)
		return "", err
	}

	logger.CtxInfo(ctx, log_messages.UploadedToGCSBucket, slog.String("objectName", objectName))
	return objectName, nil
}
