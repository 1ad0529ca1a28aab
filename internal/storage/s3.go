package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	appconfig "warungpos/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

var _ ImageStorage = (*S3Storage)(nil)

// S3Storage stores menu images in any S3-compatible backend (AWS S3, MinIO,
// and the like). Public URLs are built as publicURL/folder/filename; Delete
// derives the object key back from the URL path.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	folder    string
	publicURL string
	log       zerolog.Logger
}

// NewS3Storage builds an S3 client with static credentials and path-style
// addressing against the configured endpoint.
func NewS3Storage(cfg *appconfig.Config, log zerolog.Logger) (*S3Storage, error) {
	if cfg.StorageBucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.StorageEndpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.StorageRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	publicURL := strings.TrimRight(cfg.StoragePublicURL, "/")
	if publicURL == "" {
		publicURL = strings.TrimRight(endpoint, "/") + "/" + cfg.StorageBucket
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.StorageBucket,
		folder:    cfg.StorageFolder,
		publicURL: publicURL,
		log:       log.With().Str("component", "s3_storage").Logger(),
	}, nil
}

func (s *S3Storage) key(filename string) string {
	if s.folder == "" {
		return filename
	}
	return path.Join(s.folder, filename)
}

// Upload streams the image into the bucket and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	key := s.key(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	s.log.Debug().Str("key", key).Msg("image uploaded")
	return s.publicURL + "/" + key, nil
}

// Delete removes the object whose key is encoded in the public URL path.
// Deleting an already-absent object is not an error on S3, which suits the
// best-effort cleanup queue.
func (s *S3Storage) Delete(ctx context.Context, publicURL string) error {
	key, err := s.keyFromURL(publicURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}

	s.log.Debug().Str("key", key).Msg("image deleted")
	return nil
}

// keyFromURL strips the configured public prefix (or, failing that, the
// bucket segment) off the URL path to recover the object key.
func (s *S3Storage) keyFromURL(publicURL string) (string, error) {
	if rest, ok := strings.CutPrefix(publicURL, s.publicURL+"/"); ok {
		return rest, nil
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("storage: parse image url: %w", err)
	}
	p := strings.TrimPrefix(u.Path, "/")
	if rest, ok := strings.CutPrefix(p, s.bucket+"/"); ok {
		return rest, nil
	}
	if p == "" {
		return "", fmt.Errorf("storage: no object key in url %q", publicURL)
	}
	return p, nil
}
