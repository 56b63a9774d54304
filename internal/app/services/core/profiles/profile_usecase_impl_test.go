package profiles

import (
	"context"
	"errors"
	"io"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/services/shared/clock"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

var minioConfig = config.AppMinio{
	BucketName:                      "medconnect",
	ProfilePictureMaxUploadSizeInMB: 2,
	PreSignedUrlExpiry:              time.Hour,
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestGetProfile(t *testing.T) {
	uc := NewProfileUsecase(nil, clock.Fixed(now), minioConfig, zap.NewNop())

	profile, err := uc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PT001234", profile.PatientID)
	assert.Equal(t, "John Doe", profile.FullName)
	assert.Equal(t, "O+", profile.BloodType)
	assert.Equal(t, now, profile.UpdatedAt)
}

func TestUpdateProfile(t *testing.T) {
	uc := NewProfileUsecase(nil, clock.Fixed(now), minioConfig, zap.NewNop())
	ctx := context.Background()

	updated, err := uc.UpdateProfile(ctx, &requests.UpdateProfile{
		FirstName:   "Jane",
		LastName:    "Roe",
		Email:       "jane.roe@email.com",
		DateOfBirth: "1991-02-03",
		BloodType:   "AB-",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", updated.FullName)

	stored, err := uc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	invalid := []*requests.UpdateProfile{
		{LastName: "Roe", Email: "jane.roe@email.com"},
		{FirstName: "Jane", LastName: "Roe", Email: "not-an-email"},
		{FirstName: "Jane", LastName: "Roe", Email: "jane.roe@email.com", DateOfBirth: "03/02/1991"},
		{FirstName: "Jane", LastName: "Roe", Email: "jane.roe@email.com", BloodType: "Z+"},
	}
	for _, request := range invalid {
		_, err := uc.UpdateProfile(ctx, request)
		requireStatus(t, err, constvars.StatusBadRequest)
	}
}

func TestUpdateProfileConcurrently(t *testing.T) {
	uc := NewProfileUsecase(nil, clock.Fixed(now), minioConfig, zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.UpdateProfile(ctx, &requests.UpdateProfile{FirstName: "John", LastName: "Doe", Email: "john.doe@email.com"})
			_, _ = uc.GetProfile(ctx)
		}()
	}
	wg.Wait()
}

func TestListAppointments(t *testing.T) {
	uc := NewProfileUsecase(nil, clock.Fixed(now), minioConfig, zap.NewNop())

	history, err := uc.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "upcoming", history[0].Status)
	assert.Equal(t, "Dr. Michael Chen", history[1].DoctorName)
}

func TestUploadProfilePicture(t *testing.T) {
	ctx := context.Background()
	request := &requests.UploadProfilePicture{
		FileName:    "me.png",
		ContentType: "image/png",
		Size:        3,
		Data:        []byte("png"),
	}

	t.Run("stores and presigns", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("UploadObject", mock.Anything, "medconnect", mock.AnythingOfType("string"), mock.Anything, int64(3), "image/png").
			Return("avatar_PT001234.png", nil).Once()
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "medconnect", "avatar_PT001234.png", time.Hour).
			Return("http://minio.local/medconnect/avatar_PT001234.png", nil).Once()

		uc := NewProfileUsecase(storage, clock.Fixed(now), minioConfig, zap.NewNop())
		uploaded, err := uc.UploadProfilePicture(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "avatar_PT001234.png", uploaded.ObjectName)

		profile, err := uc.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, uploaded.ProfilePictureURL, profile.ProfilePictureURL)
		storage.AssertExpectations(t)
	})

	t.Run("too large", func(t *testing.T) {
		uc := NewProfileUsecase(new(mockStorage), clock.Fixed(now), minioConfig, zap.NewNop())
		_, err := uc.UploadProfilePicture(ctx, &requests.UploadProfilePicture{Size: 3 * 1024 * 1024})
		requireStatus(t, err, constvars.StatusRequestEntityTooBig)
	})

	t.Run("storage failure", func(t *testing.T) {
		storage := new(mockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", exceptions.ErrMinioCreateObject(errors.New("down"), "medconnect"))

		uc := NewProfileUsecase(storage, clock.Fixed(now), minioConfig, zap.NewNop())
		_, err := uc.UploadProfilePicture(ctx, request)
		requireStatus(t, err, constvars.StatusInternalServerError)
	})

	t.Run("storage not configured", func(t *testing.T) {
		uc := NewProfileUsecase(nil, clock.Fixed(now), minioConfig, zap.NewNop())
		_, err := uc.UploadProfilePicture(ctx, request)
		requireStatus(t, err, constvars.StatusInternalServerError)
	})
}
