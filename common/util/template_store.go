package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateLocation is a parsed template reference: either an object in the
// resource bucket or an external URL fetched over HTTP.
type TemplateLocation struct {
	ObjectName string
	RemoteURL  string
}

func (l TemplateLocation) IsObject() bool {
	return l.ObjectName != ""
}

// ParseTemplateLocation classifies a stored template location. URLs that
// point at the configured MinIO endpoint and bucket are read through the
// MinIO client; other http(s) URLs are fetched directly; anything without a
// scheme is an object key in the bucket.
func ParseTemplateLocation(location string, endpoint string, bucketName string) (TemplateLocation, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return TemplateLocation{}, fmt.Errorf("template location is empty")
	}

	if !strings.Contains(location, "://") {
		return TemplateLocation{ObjectName: strings.TrimPrefix(location, "/")}, nil
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return TemplateLocation{}, fmt.Errorf("invalid template URL: %w", err)
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return TemplateLocation{}, fmt.Errorf("unsupported template URL scheme %q", parsed.Scheme)
	}

	if endpoint != "" && strings.EqualFold(parsed.Host, endpoint) {
		if objectName, err := ExtractObjectNameFromURL(parsed.Path, bucketName); err == nil {
			return TemplateLocation{ObjectName: objectName}, nil
		}
	}

	return TemplateLocation{RemoteURL: location}, nil
}

// TemplateStore reads and writes certificate templates.
type TemplateStore struct {
	client     *minio.Client
	endpoint   string
	secure     bool
	bucketName string
	httpClient *http.Client
}

func NewTemplateStore(client *minio.Client, endpoint string, secure bool, bucketName string, fetchTimeout time.Duration) *TemplateStore {
	return &TemplateStore{
		client:     client,
		endpoint:   endpoint,
		secure:     secure,
		bucketName: bucketName,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

func (s *TemplateStore) Fetch(ctx context.Context, location string) ([]byte, error) {
	loc, err := ParseTemplateLocation(location, s.endpoint, s.bucketName)
	if err != nil {
		return nil, err
	}

	if loc.IsObject() {
		return s.fetchObject(ctx, loc.ObjectName)
	}
	return s.fetchURL(ctx, loc.RemoteURL)
}

func (s *TemplateStore) fetchObject(ctx context.Context, objectName string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("MinIO client not initialized")
	}

	object, err := s.client.GetObject(ctx, s.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download template: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, objectName)
		}
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	return data, nil
}

func (s *TemplateStore) fetchURL(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, location)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("template fetch returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Upload stores template bytes in the resource bucket and returns the URL to
// keep on the event.
func (s *TemplateStore) Upload(ctx context.Context, objectName string, data []byte) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return ObjectURL(s.endpoint, s.secure, s.bucketName, objectName), nil
}

// Remove deletes a template previously uploaded to the bucket. External URLs
// are left alone.
func (s *TemplateStore) Remove(ctx context.Context, location string) error {
	loc, err := ParseTemplateLocation(location, s.endpoint, s.bucketName)
	if err != nil || !loc.IsObject() {
		return nil
	}
	if s.client == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	if err := s.client.RemoveObject(ctx, s.bucketName, loc.ObjectName, minio.RemoveObjectOptions{}); err != nil {
		slog.Warn("Template Remove failed", "error", err, "object", loc.ObjectName)
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
