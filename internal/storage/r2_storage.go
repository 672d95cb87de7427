package storage

import (
	"errors"
	"fmt"
	"herbal/internal/config"
	"strings"
)

var (
	errR2Bucket      = errors.New("storage: missing R2 bucket")
	errR2Credentials = errors.New("storage: missing R2 credentials")
	errR2Endpoint    = errors.New("storage: missing R2 endpoint or account id")
)

// NewR2Storage stores plant and identification images in Cloudflare R2
// through its S3 compatible API.
func NewR2Storage(cfg config.Config) (Storage, error) {
	opts, err := r2ClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	client, err := newS3Client(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: create R2 client: %w", err)
	}
	return &remoteS3Storage{
		client: client,
		bucket: strings.TrimSpace(cfg.StorageR2Bucket),
		prefix: trimPrefix(cfg.StorageR2Prefix),
	}, nil
}

// r2ClientOptions validates the R2 settings. An explicit endpoint wins over
// the account-derived one; R2 only accepts path-style addressing.
func r2ClientOptions(cfg config.Config) (s3ClientOptions, error) {
	if strings.TrimSpace(cfg.StorageR2Bucket) == "" {
		return s3ClientOptions{}, errR2Bucket
	}
	opts := s3ClientOptions{
		Region:          strings.TrimSpace(cfg.StorageR2Region),
		Endpoint:        strings.TrimRight(strings.TrimSpace(cfg.StorageR2Endpoint), "/"),
		AccessKeyID:     strings.TrimSpace(cfg.StorageR2AccessKeyID),
		SecretAccessKey: strings.TrimSpace(cfg.StorageR2SecretAccessKey),
		ForcePathStyle:  true,
	}
	if opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return s3ClientOptions{}, errR2Credentials
	}
	if opts.Endpoint == "" {
		account := strings.TrimSpace(cfg.StorageR2AccountID)
		if account == "" {
			return s3ClientOptions{}, errR2Endpoint
		}
		opts.Endpoint = "https://" + account + ".r2.cloudflarestorage.com"
	}
	if opts.Region == "" {
		opts.Region = "auto"
	}
	return opts, nil
}
