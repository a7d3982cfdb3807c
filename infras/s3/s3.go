package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cowork/config"
	"cowork/infras/otel"
	"cowork/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

// Object is a file ready to be stored.
type Object struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Storage keeps imagery for workspaces and site content in an S3 compatible bucket.
type Storage interface {
	Put(ctx context.Context, directory string, object Object) (url string, err error)
	Remove(ctx context.Context, url string) error
	ObjectKey(url string) string
}

type storageImpl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Storage {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}
		o.UsePathStyle = true
	})

	return &storageImpl{
		client: client,
		config: config,
		otel:   otel,
	}
}

// Put uploads the object under a generated name that keeps the original extension.
func (svc *storageImpl) Put(ctx context.Context, directory string, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := uuid.NewString()
	if ext := path.Ext(object.Filename); ext != "" {
		name += strings.ToLower(ext)
	}

	key := path.Join(directory, name)
	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        object.Body,
		ContentType: aws.String(object.ContentType),
	}
	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err = svc.client.PutObject(ctx, input); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(svc.config.External.S3.PublicDomain, "/"), key), nil
}

// Remove deletes the object behind a URL previously returned by Put. Foreign URLs are ignored.
func (svc *storageImpl) Remove(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := svc.ObjectKey(url)
	if key == constant.Empty {
		return nil
	}

	bucket := svc.config.External.S3.BucketName
	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *storageImpl) ObjectKey(url string) string {
	prefixes := []string{
		strings.TrimRight(svc.config.External.S3.PublicDomain, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimRight(svc.config.External.S3.APIEndpoint, "/"), svc.config.External.S3.BucketName),
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(prefix, "/") {
			continue
		}

		if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
			return key
		}
	}

	return constant.Empty
}
