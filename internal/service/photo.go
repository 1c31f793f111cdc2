package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/snapmenu/backend/config"
)

// PhotoStore uploads base64 photo payloads to S3 so the database keeps a
// URL instead of an inline blob. Optional: a nil store leaves payloads
// stored inline.
type PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewPhotoStore initializes the S3 client. Returns (nil, nil) when no
// bucket is configured.
func NewPhotoStore(ctx context.Context, cfg *config.Config) (*PhotoStore, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	baseURL := cfg.S3PublicURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &PhotoStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save decodes a base64 payload (with or without a data URI prefix),
// uploads it under a fresh object key and returns the public URL.
func (p *PhotoStore) Save(ctx context.Context, payload string) (string, error) {
	contentType := "image/jpeg"
	data := payload
	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		if mt := strings.SplitN(meta, ";", 2)[0]; mt != "" {
			contentType = mt
		}
		data = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode photo payload: %w", err)
	}

	key := fmt.Sprintf("photos/%s", uuid.New().String())
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return p.baseURL + "/" + key, nil
}
