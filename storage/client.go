// Package storage adapts the durable collaborators: Cloudflare R2 for media
// blobs and postgres (via gorm) for action rows.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/green-citizen/api-go/config"
)

// Client talks to R2 through the S3 API. Logical buckets ("videos",
// "photos") map to key prefixes inside the configured bucket, so one set of
// credentials covers both.
type Client struct {
	s3Client *s3.Client
	cfg      *config.R2Config
}

func NewClient(cfg *config.R2Config) *Client {
	s3Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})
	return &Client{s3Client: s3Client, cfg: cfg}
}

func (c *Client) objectKey(bucket, key string) string {
	return fmt.Sprintf("%s/%s", bucket, key)
}

// Upload writes one media blob. Best-effort: callers do not retry and a
// blob orphaned by a later persist failure is not deleted.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.BucketName),
		Key:         aws.String(c.objectKey(bucket, key)),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	})
	return err
}

// PublicURL returns the publicly dereferenceable URL for an uploaded key.
func (c *Client) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s", c.cfg.PublicURL, c.objectKey(bucket, key))
}
