package util

import (
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/easy-cert-claim/common"
)

func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: MinIOSecure(),
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	common.MinIOClient = client
	return nil
}

// MinIOSecure defaults to TLS unless the config turns it off.
func MinIOSecure() bool {
	if common.Config == nil || common.Config.MinIoSecure == nil {
		return true
	}
	return *common.Config.MinIoSecure
}

// ObjectURL builds the public URL stored for an uploaded object.
func ObjectURL(endpoint string, secure bool, bucketName string, objectName string) string {
	scheme := "https"
	if !secure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucketName, objectName)
}

// ExtractObjectNameFromURL extracts the object name from a MinIO URL
// Example: https://endpoint/bucket/path/to/file.pdf -> path/to/file.pdf
func ExtractObjectNameFromURL(url string, bucketName string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("URL is empty")
	}

	bucketPrefix := fmt.Sprintf("/%s/", bucketName)
	idx := strings.Index(url, bucketPrefix)
	if idx == -1 {
		return "", fmt.Errorf("bucket name not found in URL")
	}

	objectName := url[idx+len(bucketPrefix):]
	if objectName == "" {
		return "", fmt.Errorf("object name is empty")
	}

	return objectName, nil
}
