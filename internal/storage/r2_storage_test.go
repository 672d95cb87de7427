package storage

import (
	"errors"
	"herbal/internal/config"
	"testing"
)

func TestR2ClientOptions(t *testing.T) {
	base := config.Config{
		StorageR2Bucket:          "herbal",
		StorageR2AccountID:       "acct123",
		StorageR2AccessKeyID:     "key",
		StorageR2SecretAccessKey: "secret",
	}

	opts, err := r2ClientOptions(base)
	if err != nil {
		t.Fatalf("r2ClientOptions() error = %v", err)
	}
	if opts.Endpoint != "https://acct123.r2.cloudflarestorage.com" {
		t.Errorf("endpoint = %q", opts.Endpoint)
	}
	if opts.Region != "auto" || !opts.ForcePathStyle {
		t.Errorf("region = %q, path style = %v", opts.Region, opts.ForcePathStyle)
	}

	explicit := base
	explicit.StorageR2Endpoint = " https://r2.internal.example/ "
	explicit.StorageR2Region = "weur"
	opts, err = r2ClientOptions(explicit)
	if err != nil {
		t.Fatalf("r2ClientOptions() error = %v", err)
	}
	if opts.Endpoint != "https://r2.internal.example" || opts.Region != "weur" {
		t.Errorf("explicit endpoint/region not honoured: %+v", opts)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"no bucket", func(c *config.Config) { c.StorageR2Bucket = " " }, errR2Bucket},
		{"no secret", func(c *config.Config) { c.StorageR2SecretAccessKey = "" }, errR2Credentials},
		{"no endpoint or account", func(c *config.Config) { c.StorageR2AccountID = "" }, errR2Endpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if _, err := r2ClientOptions(cfg); !errors.Is(err, tt.want) {
				t.Errorf("r2ClientOptions() error = %v, want %v", err, tt.want)
			}
		})
	}
}
