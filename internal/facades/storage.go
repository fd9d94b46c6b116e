package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pixelift/pixelift-api/internal/logger"
)

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// S3API is the subset of the S3 client used by the storage facade.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ObjectStorageS3Facade stores image bytes in an S3 compatible bucket.
type ObjectStorageS3Facade struct {
	client S3API
	bucket string
}

func NewObjectStorageS3Facade(client S3API, bucket string) *ObjectStorageS3Facade {
	return &ObjectStorageS3Facade{client: client, bucket: bucket}
}

// Put uploads data under key.
func (f *ObjectStorageS3Facade) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})

	logger.Log.Infow(
		"bucket", f.bucket,
		"key", key,
		"size", len(data),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// Get downloads the object under key and returns its bytes and content type.
func (f *ObjectStorageS3Facade) Get(ctx context.Context, key string) ([]byte, string, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, "", ErrObjectNotFound
		}
		logger.Log.Errorw("failed to get object", "bucket", f.bucket, "key", key, "error", err)
		return nil, "", fmt.Errorf("get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read object %s: %w", key, err)
	}
	return data, aws.ToString(out.ContentType), nil
}
