package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// s3Backend stores documents in an S3 bucket under their content hash, so
// repeated uploads of the same document are idempotent.
type s3Backend struct {
	client *s3.S3
	bucket string
	prefix string
}

func newS3Backend(bucket, prefix, region string) (*s3Backend, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}
	return &s3Backend{client: s3.New(sess), bucket: bucket, prefix: prefix}, nil
}

func (b *s3Backend) Put(ctx context.Context, data []byte, filename string) (string, error) {
	sum := sha256.Sum256(data)
	cid := hex.EncodeToString(sum[:])

	_, err := b.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(path.Join(b.prefix, cid)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
		Metadata:    map[string]*string{"filename": aws.String(filename)},
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}
	return cid, nil
}
