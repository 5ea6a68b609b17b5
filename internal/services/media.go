package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogcrm/internal/common"
)

const (
	defaultUploadName   = "image"
	fallbackContentType = "application/octet-stream"
	maxSanitizedNameLen = 80
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9.\-_]`)
	hyphenRuns      = regexp.MustCompile(`-+`)
)

// ObjectPutter is the subset of the S3 client used by the media service.
// *s3.Client satisfies it; tests supply fakes.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// MediaService uploads base64-encoded payloads to the media bucket and hands
// back publicly fetchable URLs.
type MediaService struct {
	client  ObjectPutter
	bucket  string
	baseURL string
	prefix  string
}

func NewMediaService(client ObjectPutter, bucket, baseURL, prefix string) *MediaService {
	return &MediaService{client: client, bucket: bucket, baseURL: baseURL, prefix: prefix}
}

// UploadInput carries one base64 media upload.
type UploadInput struct {
	Base64Data   string
	ContentType  string
	OriginalName string
}

// UploadResult is the stored key and the public URL it resolves to.
type UploadResult struct {
	Key string
	URL string
}

// UploadFromBase64 decodes the payload and writes it to the bucket under a
// collision-free key: {prefix}{unix-millis}-{uuid}-{sanitized-name}. It
// fails with common.ErrNotConfigured before touching the store when bucket
// or base URL are missing, and with common.ErrValidation when the payload
// does not decode or is empty.
func (s *MediaService) UploadFromBase64(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if s.bucket == "" || s.baseURL == "" {
		return nil, fmt.Errorf("media bucket or base URL: %w", common.ErrNotConfigured)
	}

	data, err := base64.StdEncoding.DecodeString(in.Base64Data)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", common.ErrValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload: %w", common.ErrValidation)
	}

	name := in.OriginalName
	if name == "" {
		name = defaultUploadName
	}
	key := fmt.Sprintf("%s%d-%s-%s", s.prefix, time.Now().UnixMilli(), uuid.New(), SanitizeFilename(name))

	contentType := in.ContentType
	if contentType == "" {
		contentType = fallbackContentType
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("put media object: %w", err)
	}

	return &UploadResult{
		Key: key,
		URL: strings.TrimRight(s.baseURL, "/") + "/" + key,
	}, nil
}

// SanitizeFilename lowercases the name, collapses anything outside
// a-z0-9.-_ into single hyphens and caps the result at 80 characters.
func SanitizeFilename(name string) string {
	out := strings.ToLower(name)
	out = disallowedChars.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	if len(out) > maxSanitizedNameLen {
		out = out[:maxSanitizedNameLen]
	}
	return out
}
