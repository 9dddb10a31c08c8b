package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores product images and returns a public URL for them.
type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// NewUploader picks S3-compatible storage when S3_ENDPOINT is configured and
// falls back to the local uploads directory otherwise.
func NewUploader() (Uploader, error) {
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		return newS3Uploader(endpoint)
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads/products"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &localUploader{dir: dir}, nil
}

type localUploader struct {
	dir string
}

func (u *localUploader) Save(_ context.Context, filename string, r io.Reader, _ int64, _ string) (string, error) {
	path := filepath.Join(u.dir, filename)
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", err
	}
	return "/uploads/products/" + filename, nil
}

type s3Uploader struct {
	client *minio.Client
	bucket string
}

func newS3Uploader(endpoint string) (*s3Uploader, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "product-images"
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Secure: os.Getenv("S3_USE_SSL") == "true",
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &s3Uploader{client: client, bucket: bucket}, nil
}

func (u *s3Uploader) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	key := "products/" + filename
	_, err := u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, key), nil
}
