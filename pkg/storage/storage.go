// Package storage provides the snapshot blob store contract: a two
// operation get/put interface guarded by an opaque version token.
package storage

import (
	"context"

	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/storage/aws_s3"
	"github.com/takvimhub/event-calendar-service/pkg/storage/local_fs"
	"github.com/takvimhub/event-calendar-service/pkg/storage/webdav"
)

type Type = string

const LOCAL Type = "localfs"
const S3 Type = "s3"
const WebDAV Type = "webdav"

var StorageTypeMap = map[Type]bool{
	LOCAL:  true,
	S3:     true,
	WebDAV: true,
}

// Config Unified storage configuration
type Config struct {
	Type Type `yaml:"type"`

	// Common settings
	IsEnabled  bool   `yaml:"is-enable"`
	CustomPath string `yaml:"custom-path"`

	// Cloud Storage (S3)
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Path     string `yaml:"path"`

	// Local FS
	SavePath string `yaml:"save-path"`
}

// BlobStore is the whole-blob storage contract. Get returns the current
// content together with its version token; Put requires the token the
// caller last observed and rejects the write when the live token moved.
//
// Backends report code.ErrorBlobNotFound for a missing blob and
// code.ErrorSnapshotConflict for a token precondition failure.
type BlobStore interface {
	// Get returns (content, versionToken). A blob that does not exist yields
	// code.ErrorBlobNotFound and an empty token.
	Get(ctx context.Context, pathKey string) ([]byte, string, error)
	// Put writes content whole. expectedToken empty means "create, must not
	// exist yet". Returns the new version token.
	Put(ctx context.Context, pathKey string, content []byte, expectedToken string) (string, error)
}

func NewClient(config *Config) (BlobStore, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath:   config.SavePath,
			CustomPath: config.CustomPath,
		})
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case WebDAV:
		return webdav.NewClient(&webdav.Config{
			Endpoint:   config.Endpoint,
			Path:       config.Path,
			User:       config.User,
			Password:   config.Password,
			CustomPath: config.CustomPath,
		})
	}
	return nil, code.ErrorInvalidStorageType
}
