package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/timeline/internal/common"
	sc "github.com/dmitrijs2005/timeline/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverlaySvc() *OverlayService {
	return NewOverlayService(&sc.Config{
		S3Region:           "us-east-1",
		S3RootUser:         "minioadmin",
		S3RootPassword:     "minioadmin",
		S3BaseEndpoint:     "http://127.0.0.1:9000",
		S3Bucket:           "overlays",
		OverlayURLValidity: 10 * time.Minute,
	})
}

// stubS3 replaces the AWS seams and restores them on cleanup.
func stubS3(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut := presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://127.0.0.1:9000" {
			t.Fatalf("BaseEndpoint not applied")
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		if po.Expires != 10*time.Minute {
			t.Fatalf("expiry not applied: %v", po.Expires)
		}
		return &v4.PresignedHTTPRequest{URL: "http://put/" + *in.Bucket + "/" + *in.Key + "?X-Amz-Expires=600"}, nil
	}
}

func TestOverlayService_NewUpload(t *testing.T) {
	stubS3(t)

	up, err := newOverlaySvc().NewUpload(context.Background(), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.Key, "overlays/"), up.Key)
	assert.Equal(t, "http://put/overlays/"+up.Key+"?X-Amz-Expires=600", up.UploadURL)
	assert.Equal(t, "http://127.0.0.1:9000/overlays/"+up.Key, up.ImageURL)
}

func TestOverlayService_ImageURLDoesNotExpire(t *testing.T) {
	stubS3(t)

	up, err := newOverlaySvc().NewUpload(context.Background(), "image/png")
	require.NoError(t, err)

	u, err := url.Parse(up.ImageURL)
	require.NoError(t, err)
	assert.Empty(t, u.RawQuery)
	assert.NotContains(t, up.ImageURL, "X-Amz-")
}

func TestOverlayService_PublicURLOverride(t *testing.T) {
	stubS3(t)
	svc := newOverlaySvc()
	svc.config.OverlayPublicURL = "https://cdn.example/maps/"

	up, err := svc.NewUpload(context.Background(), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/maps/"+up.Key, up.ImageURL)
}

func TestOverlayService_RejectsNonImage(t *testing.T) {
	_, err := newOverlaySvc().NewUpload(context.Background(), "text/plain")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestOverlayService_Errors(t *testing.T) {
	t.Run("config load", func(t *testing.T) {
		stubS3(t)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}
		_, err := newOverlaySvc().NewUpload(context.Background(), "image/jpeg")
		require.EqualError(t, err, "load-fail")
	})

	t.Run("presign put", func(t *testing.T) {
		stubS3(t)
		presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("presign-put-fail")
		}
		_, err := newOverlaySvc().NewUpload(context.Background(), "image/jpeg")
		require.EqualError(t, err, "presign-put-fail")
	})

	t.Run("bad public url", func(t *testing.T) {
		stubS3(t)
		svc := newOverlaySvc()
		svc.config.OverlayPublicURL = "http://[::1"
		_, err := svc.NewUpload(context.Background(), "image/jpeg")
		require.Error(t, err)
	})
}
