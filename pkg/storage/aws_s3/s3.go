package aws_s3

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pkg/errors"
)

type Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

// AWSS3 stores blobs as S3 objects. The version token is the object ETag,
// enforced server side with conditional writes.
type AWSS3 struct {
	Client *s3.Client
	Config *Config
}

var clients = make(map[string]*AWSS3)

func NewClient(conf *Config) (*AWSS3, error) {
	key := conf.Endpoint + conf.Region + conf.BucketName + conf.AccessKeyID + conf.CustomPath
	if clients[key] != nil {
		return clients[key], nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret, ""),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "aws_s3")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = &conf.Endpoint
			o.UsePathStyle = true
		}
	})

	clients[key] = &AWSS3{
		Client: client,
		Config: conf,
	}
	return clients[key], nil
}
