package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	putErr      error
	bucket      string
	objectName  string
	body        []byte
	contentType string
}

func (f *fakeObjectClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	f.bucket, f.objectName, f.contentType = bucketName, objectName, opts.ContentType
	f.body, _ = io.ReadAll(reader)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (f *fakeObjectClient) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	return url.Parse("http://minio.local/" + bucketName + "/" + objectName + "?X-Amz-Expires=" + expires.String())
}

func TestMinioStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("upload passes bucket, name and content type", func(t *testing.T) {
		client := &fakeObjectClient{}
		storage := NewMinioStorage(client)

		name, err := storage.UploadObject(ctx, "medconnect", "avatar.png", bytes.NewReader([]byte("png")), 3, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", name)
		assert.Equal(t, "medconnect", client.bucket)
		assert.Equal(t, "image/png", client.contentType)
		assert.Equal(t, []byte("png"), client.body)
	})

	t.Run("upload failure is wrapped", func(t *testing.T) {
		storage := NewMinioStorage(&fakeObjectClient{putErr: errors.New("down")})

		_, err := storage.UploadObject(ctx, "medconnect", "avatar.png", bytes.NewReader(nil), 0, "image/png")
		assert.ErrorContains(t, err, "failed to create object in bucket medconnect")
	})

	t.Run("presigned url", func(t *testing.T) {
		storage := NewMinioStorage(&fakeObjectClient{})

		link, err := storage.GetObjectUrlWithExpiryTime(ctx, "medconnect", "avatar.png", time.Hour)
		require.NoError(t, err)
		assert.Contains(t, link, "medconnect/avatar.png")
	})
}
