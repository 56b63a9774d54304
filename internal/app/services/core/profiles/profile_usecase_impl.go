package profiles

import (
	"bytes"
	"context"
	"errors"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

const avatarFilePrefix = "avatar"

var errStorageNotConfigured = errors.New("profile picture storage is not configured")

func mockProfile() models.PatientProfile {
	return models.PatientProfile{
		PatientID:        "PT001234",
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john.doe@email.com",
		Phone:            "+1 (555) 123-4567",
		DateOfBirth:      "1990-05-15",
		Address:          "123 Main St, City, State 12345",
		EmergencyContact: "Jane Doe - +1 (555) 987-6543",
		BloodType:        "O+",
		Allergies:        "Penicillin, Nuts",
		Medications:      "Lisinopril 10mg daily",
		MedicalHistory:   "Hypertension diagnosed 2020",
	}
}

func mockAppointmentHistory() []models.AppointmentHistory {
	return []models.AppointmentHistory{
		{ID: "1", DoctorName: "Dr. Sarah Johnson", Specialty: "Cardiologist", Date: "2024-01-20", Time: "10:00 AM", Status: "upcoming"},
		{ID: "2", DoctorName: "Dr. Michael Chen", Specialty: "General Practitioner", Date: "2024-01-10", Time: "2:30 PM", Status: "completed"},
	}
}

type profileUsecase struct {
	mu           sync.RWMutex
	profile      models.PatientProfile
	appointments []models.AppointmentHistory

	Storage contracts.Storage
	Clock   contracts.Clock
	Config  config.AppMinio
	Log     *zap.Logger
}

// NewProfileUsecase serves the single demo patient. storage may be nil, in
// which case avatar uploads fail.
func NewProfileUsecase(storage contracts.Storage, clock contracts.Clock, minioConfig config.AppMinio, logger *zap.Logger) contracts.ProfileUsecase {
	profile := mockProfile()
	profile.UpdatedAt = clock.Now()
	return &profileUsecase{
		profile:      profile,
		appointments: mockAppointmentHistory(),
		Storage:      storage,
		Clock:        clock,
		Config:       minioConfig,
		Log:          logger,
	}
}

func (uc *profileUsecase) GetProfile(ctx context.Context) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	response := uc.profile.ConvertIntoResponse()
	return &response, nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Info("profileUsecase.UpdateProfile rejected invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.profile.FirstName = request.FirstName
	uc.profile.LastName = request.LastName
	uc.profile.Email = request.Email
	uc.profile.Phone = request.Phone
	uc.profile.DateOfBirth = request.DateOfBirth
	uc.profile.Address = request.Address
	uc.profile.EmergencyContact = request.EmergencyContact
	uc.profile.BloodType = request.BloodType
	uc.profile.Allergies = request.Allergies
	uc.profile.Medications = request.Medications
	uc.profile.MedicalHistory = request.MedicalHistory
	uc.profile.UpdatedAt = uc.Clock.Now()

	response := uc.profile.ConvertIntoResponse()
	return &response, nil
}

func (uc *profileUsecase) ListAppointments(ctx context.Context) ([]responses.AppointmentHistory, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	response := make([]responses.AppointmentHistory, len(uc.appointments))
	for i, eachAppointment := range uc.appointments {
		response[i] = eachAppointment.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *profileUsecase) UploadProfilePicture(ctx context.Context, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("size", request.Size),
	)

	limitMB := uc.Config.ProfilePictureMaxUploadSizeInMB
	if limitMB > 0 && request.Size > int64(limitMB)*1024*1024 {
		return nil, exceptions.ErrImageTooLarge(utils.ErrImageTooLarge, limitMB)
	}
	if uc.Storage == nil {
		return nil, exceptions.ErrServerProcess(errStorageNotConfigured)
	}

	uc.mu.RLock()
	patientID := uc.profile.PatientID
	uc.mu.RUnlock()

	objectName := utils.GenerateFileName(avatarFilePrefix, patientID, request.FileName, uc.Clock.Now())
	objectName, err := uc.Storage.UploadObject(ctx, uc.Config.BucketName, objectName, bytes.NewReader(request.Data), request.Size, request.ContentType)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, uc.Config.BucketName),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.Config.BucketName, objectName, uc.Config.PreSignedUrlExpiry)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.mu.Lock()
	uc.profile.ProfilePictureURL = url
	uc.profile.UpdatedAt = uc.Clock.Now()
	uc.mu.Unlock()

	uc.Log.Info("profileUsecase.UploadProfilePicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadProfilePicture{
		ObjectName:        objectName,
		ProfilePictureURL: url,
	}, nil
}
