package s3store

import (
	"context"
	goerrors "errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/ratelimiter"
	"github.com/keepsake-backup/keepsake/remote"
	"github.com/pkg/errors"
)

// API is the subset of the S3 client the store uses.
type API interface {
	HeadBucket(ctx context.Context, input *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, input *s3.DeleteObjectsInput, opts ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	s3.ListObjectsV2APIClient
}

// Store is the S3-native cloud tier backend, for deployments that talk to
// object storage directly instead of going through an external copy tool.
type Store struct {
	client         API
	bucket         string
	prefix         string
	bytesPerSecond int64
	logger         orchestrator.Logger
}

func NewStore(config Config, logger orchestrator.Logger) *Store {
	return NewStoreWithClient(newClient(config), config, logger)
}

func NewStoreWithClient(client API, config Config, logger orchestrator.Logger) *Store {
	return &Store{
		client:         client,
		bucket:         config.Bucket,
		prefix:         strings.Trim(config.Prefix, "/"),
		bytesPerSecond: config.BandwidthBytesPerSecond,
		logger:         logger,
	}
}

func (s *Store) Probe(ctx context.Context) error {
	if s.bucket == "" {
		return errors.New("bucket is not configured")
	}
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return errors.Wrapf(err, "bucket %s is not reachable", s.bucket)
}

func (s *Store) List(ctx context.Context, pattern string) ([]remote.Object, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	var objects []remote.Object
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list objects in %s", s.bucket)
		}
		for _, item := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(item.Key), s.keyPrefix())
			if matched, err := path.Match(pattern, key); err != nil || !matched {
				continue
			}
			objects = append(objects, remote.Object{
				Key:     key,
				Size:    aws.ToInt64(item.Size),
				ModTime: aws.ToTime(item.LastModified),
			})
		}
	}
	return objects, nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyPrefix() + key),
	})
	if err != nil {
		var notFound *types.NotFound
		if goerrors.As(err, &notFound) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to probe %s", key)
	}
	return true, nil
}

func (s *Store) Copy(ctx context.Context, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", localPath)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", localPath)
	}

	body, err := s.throttledBody(file)
	if err != nil {
		return err
	}

	key := s.keyPrefix() + filepath.Base(localPath)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(info.Size()),
	})
	return errors.Wrapf(err, "failed to upload %s", key)
}

// throttledBody applies the configured bandwidth limit by pumping the file
// through a paced writer into a pipe. The pipe's reader is what PutObject
// consumes, so the limit holds no matter how fast the client drains it.
func (s *Store) throttledBody(file *os.File) (io.Reader, error) {
	if s.bytesPerSecond <= 0 {
		return file, nil
	}

	throttledPipe, pipeWriter := io.Pipe()
	throttled, err := ratelimiter.NewThrottledWriter(pipeWriter, s.bytesPerSecond)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bandwidth limit")
	}

	go func() {
		_, copyErr := io.Copy(throttled, file)
		pipeWriter.CloseWithError(copyErr)
	}()

	return throttledPipe, nil
}

func (s *Store) Delete(ctx context.Context, keys []string) error {
	identifiers := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		identifiers = append(identifiers, types.ObjectIdentifier{Key: aws.String(s.keyPrefix() + key)})
	}

	output, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: identifiers, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete %d objects", len(keys))
	}
	if len(output.Errors) > 0 {
		first := output.Errors[0]
		return errors.Errorf("%d of %d deletions were rejected, first: %s %s",
			len(output.Errors), len(keys), aws.ToString(first.Key), aws.ToString(first.Message))
	}
	return nil
}

func (s *Store) keyPrefix() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}
