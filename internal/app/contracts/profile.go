package contracts

import (
	"context"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Profile, error)
	ListAppointments(ctx context.Context) ([]responses.AppointmentHistory, error)
	UploadProfilePicture(ctx context.Context, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error)
}
