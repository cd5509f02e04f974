package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chris/reservation-invoices/pkg/objectstore"
)

//go:generate mockery --name S3API --output mocks --outpkg mocks
//go:generate mockery --name PresignAPI --output mocks --outpkg mocks

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PresignAPI is the subset of the S3 presign client used by Store.
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Store implements the ObjectStore interface on an S3 bucket.
type Store struct {
	Client     S3API
	Presigner  PresignAPI
	BucketName string
}

// New creates a new Store for bucket using client for uploads and presigning.
func New(client *s3.Client, bucket string) *Store {
	return &Store{
		Client:     client,
		Presigner:  s3.NewPresignClient(client),
		BucketName: bucket,
	}
}

// Make sure we conform to the interface
var _ objectstore.ObjectStore = (*Store)(nil)

// PutObject uploads body under key.
func (s *Store) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object %s to S3: %w", key, err)
	}

	return nil
}

// PresignGetURL generates a presigned GET URL for key valid for expires.
func (s *Store) PresignGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}

	return req.URL, nil
}
