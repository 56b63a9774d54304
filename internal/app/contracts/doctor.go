package contracts

import (
	"context"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context, request *requests.FindDoctors) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindFacets(ctx context.Context) (*responses.DoctorFacets, error)
	FindModelByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}
