package gcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

var ErrObjectNotFound = errors.New("gcp: object not found")

type ObjectAttrs struct {
	Size        int64
	ContentType string
	Updated     time.Time
}

// MusicBucket is the read-only view of the background-music bucket.
type MusicBucket interface {
	ObjectAttrs(ctx context.Context, key string) (*ObjectAttrs, error)
	URI(key string) string
	Close() error
}

type musicBucket struct {
	log    *logger.Logger
	client *storage.Client
	bucket string
}

func NewMusicBucket(ctx context.Context, log *logger.Logger, bucketName string) (MusicBucket, error) {
	bucketName = strings.TrimSpace(bucketName)
	if bucketName == "" {
		return nil, fmt.Errorf("missing music bucket name")
	}
	client, err := storage.NewClient(ctx, ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	log.Info("Music bucket client ready", "bucket", bucketName)
	return &musicBucket{
		log:    log.With("service", "MusicBucket"),
		client: client,
		bucket: bucketName,
	}, nil
}

func (b *musicBucket) ObjectAttrs(ctx context.Context, key string) (*ObjectAttrs, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return nil, fmt.Errorf("empty object key")
	}
	attrs, err := b.client.Bucket(b.bucket).Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("object attrs %s: %w", key, err)
	}
	return &ObjectAttrs{Size: attrs.Size, ContentType: attrs.ContentType, Updated: attrs.Updated}, nil
}

func (b *musicBucket) URI(key string) string {
	return ObjectURI(b.bucket, key)
}

func (b *musicBucket) Close() error {
	return b.client.Close()
}

// ObjectURI formats a gs:// reference for the render worker.
func ObjectURI(bucket, key string) string {
	return "gs://" + strings.TrimSpace(bucket) + "/" + strings.TrimLeft(strings.TrimSpace(key), "/")
}
