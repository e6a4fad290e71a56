package minio

import (
	"Inkwell/internal/api/config"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

var ErrNotInitialized = errors.New("minio client is not initialized")

// ObjectStore 图片对象存储
type ObjectStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	URL(objectName string) string
}

type bucketStore struct{}

// NewObjectStore 返回基于全局 Client 的存储实现
func NewObjectStore() ObjectStore {
	return bucketStore{}
}

func (bucketStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadFile(ctx, objectName, reader, size, contentType)
}

func (bucketStore) Remove(ctx context.Context, objectName string) error {
	return DeleteFile(ctx, objectName)
}

func (bucketStore) URL(objectName string) string {
	return GetPublicURL(objectName)
}

// UploadFile 上传文件到 MinIO
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", ErrNotInitialized
	}

	uploadInfo, err := Client.PutObject(ctx, ImageBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// DeleteFile 删除 MinIO 中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return ErrNotInitialized
	}

	if err := Client.RemoveObject(ctx, ImageBucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetPublicURL 获取文件的公共访问 URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.ExternalUseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.ExternalEndpoint, cfg.ImageBucket, objectName)
}
