package adapter

import (
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/model"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageAdapter is the media-storage collaborator. It accepts raw attachment
// bytes, stores them in object storage, and hands back an opaque reference;
// the core only ever persists the reference.
type StorageAdapter struct {
	client       *s3.Client
	bucket       string
	endpoint     string
	publicDomain string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client:       s3Client,
		bucket:       cfg.S3Bucket,
		endpoint:     cfg.S3Endpoint,
		publicDomain: cfg.S3PublicDomain,
	}
}

func (s *StorageAdapter) Store(ctx context.Context, file *multipart.FileHeader) (*model.MediaRef, error) {
	if s.client == nil {
		return nil, errors.New("s3 client is not initialized")
	}

	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uniqueObjectKey(file.Filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        opened,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}

	return &model.MediaRef{
		Type:     mediaTypeFromContentType(contentType),
		URL:      s.objectURL(key),
		Filename: file.Filename,
		Size:     file.Size,
		MimeType: contentType,
	}, nil
}

func (s *StorageAdapter) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// DeleteByURL removes a stored object given the public URL carried by a
// media reference. The object key is the URL path from the upload prefix on.
func (s *StorageAdapter) DeleteByURL(ctx context.Context, url string) error {
	idx := strings.Index(url, "/"+objectKeyPrefix+"/")
	if idx < 0 {
		return errors.New("url does not reference a stored object")
	}
	return s.Delete(ctx, url[idx+1:])
}

func (s *StorageAdapter) objectURL(key string) string {
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicDomain, "/"), key)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

const objectKeyPrefix = "reports"

func uniqueObjectKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%d-%s%s", objectKeyPrefix, time.Now().UTC().UnixNano(), uuid.New().String(), ext)
}

func mediaTypeFromContentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	default:
		return "image"
	}
}
