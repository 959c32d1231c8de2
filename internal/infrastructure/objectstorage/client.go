// Package objectstorage is the gateway to the S3-compatible blob store
// holding ticket attachments. Clients upload directly to the store with a
// presigned URL; the API only ever streams objects back out after the
// ownership gate has passed.
package objectstorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// UploadTarget is handed to the client for a direct-to-storage upload.
type UploadTarget struct {
	UploadURL  string
	ObjectPath string
}

type Client struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
	log       logger.Interface
}

func NewClient(cfg *config.StorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	expiry := time.Duration(cfg.URLExpiryMinutes) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &Client{
		client:    mc,
		bucket:    cfg.Bucket,
		urlExpiry: expiry,
		log:       logger.NewLogger().Named("objectstorage"),
	}, nil
}

// EnsureBucket creates the attachment bucket if it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	c.log.Infow("created attachment bucket", "bucket", c.bucket)
	return nil
}

// GetUploadURL issues a presigned PUT URL for a fresh, opaque object path.
func (c *Client) GetUploadURL(ctx context.Context) (*UploadTarget, error) {
	objectPath := fmt.Sprintf("uploads/%s", uuid.NewString())

	presigned, err := c.client.PresignedPutObject(ctx, c.bucket, objectPath, c.urlExpiry)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create upload URL", err.Error())
	}

	return &UploadTarget{
		UploadURL:  presigned.String(),
		ObjectPath: objectPath,
	}, nil
}

// StatObject verifies that an object exists and returns its metadata.
func (c *Client) StatObject(ctx context.Context, objectPath string) (*ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, c.bucket, objectPath, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("object not found", objectPath)
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return &ObjectInfo{
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

// FetchObject opens a stream over a stored object. The caller must close it.
func (c *Client) FetchObject(ctx context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch object: %w", err)
	}

	// GetObject is lazy; Stat forces the first request so missing objects
	// surface here instead of mid-stream.
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if isNotFound(err) {
			return nil, nil, apperrors.NewNotFoundError("object not found", objectPath)
		}
		return nil, nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return obj, &ObjectInfo{
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}, nil
}

// RemoveObject deletes a stored object. Missing objects are not an error.
func (c *Client) RemoveObject(ctx context.Context, objectPath string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

// SanitizeObjectPath normalizes a client-supplied object path and rejects
// anything that escapes the upload prefix.
func SanitizeObjectPath(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperrors.NewValidationError("invalid object path")
	}

	for _, part := range []string{"..", "//", "\\"} {
		if strings.Contains(decoded, part) {
			return "", apperrors.NewValidationError("invalid object path")
		}
	}

	return decoded, nil
}
