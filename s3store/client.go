package s3store

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Region          string
	Endpoint        string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool

	// BandwidthBytesPerSecond caps the upload rate; zero means unlimited.
	BandwidthBytesPerSecond int64
}

func newClient(config Config) *s3.Client {
	creds := aws.NewCredentialsCache(
		credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""))

	options := s3.Options{
		Credentials:  creds,
		Region:       config.Region,
		UsePathStyle: config.UsePathStyle,
	}
	if config.Endpoint != "" {
		options.BaseEndpoint = aws.String(config.Endpoint)
	}

	return s3.New(options)
}
