package s3_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/config"
	s3storage "mrtrack/internal/storage/s3"
)

func TestNewReportStore_RequiresBucket(t *testing.T) {
	_, err := s3storage.NewReportStore(context.Background(), &config.S3Config{Region: "ap-south-1"})
	assert.Error(t, err)
}

func TestReportStore_PresignGetIsOffline(t *testing.T) {
	store, err := s3storage.NewReportStore(context.Background(), &config.S3Config{
		Region:    "ap-south-1",
		Bucket:    "reports",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio-secret",
	})
	require.NoError(t, err)

	url, err := store.PresignGet(context.Background(), "reports/2024-01.xlsx", 600)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/reports/reports/2024-01.xlsx?"), url)
	assert.Contains(t, url, "X-Amz-Expires=600")
}
