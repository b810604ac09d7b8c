package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/timeline/internal/editor"
	sc "github.com/dmitrijs2005/timeline/internal/server/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// OverlayUpload is where a client should PUT an overlay image and the URL
// under which it can afterwards be shown. ImageURL does not expire; it is
// stored as the event's map link.
type OverlayUpload struct {
	Key       string
	UploadURL string
	ImageURL  string
}

// OverlayService hands out presigned S3 upload URLs for map overlay images.
type OverlayService struct {
	config *sc.Config
}

func NewOverlayService(config *sc.Config) *OverlayService {
	return &OverlayService{config: config}
}

func overlayStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("overlays/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *OverlayService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// NewUpload reserves a storage key for an image of the given content type,
// presigns its upload and returns its permanent object URL.
func (s *OverlayService) NewUpload(ctx context.Context, contentType string) (*OverlayUpload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, &editor.ValidationError{Field: "content_type", Reason: "must be an image type"}
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := overlayStorageKey()
	expires := s3.WithPresignExpires(s.config.OverlayURLValidity)

	put, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, expires)
	if err != nil {
		return nil, err
	}

	image, err := s.objectURL(key)
	if err != nil {
		return nil, err
	}

	return &OverlayUpload{Key: key, UploadURL: put.URL, ImageURL: image}, nil
}

// objectURL is the unsigned, path-style address of key.
func (s *OverlayService) objectURL(key string) (string, error) {
	base := s.config.OverlayPublicURL
	if base == "" {
		b, err := url.JoinPath(s.config.S3BaseEndpoint, s.config.S3Bucket)
		if err != nil {
			return "", fmt.Errorf("overlay base url: %w", err)
		}
		base = b
	}
	return url.JoinPath(base, key)
}
