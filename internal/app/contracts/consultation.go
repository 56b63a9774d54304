package contracts

import (
	"context"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	GetConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error)
	SubmitPreConsultation(ctx context.Context, sessionID string, request *requests.SubmitPreConsultation) (*responses.Consultation, error)
	StartConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error)
	EndConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error)
	JoinConsultation(ctx context.Context, sessionID, joinToken string) (*responses.Consultation, error)
	ToggleMedia(ctx context.Context, sessionID string, device models.MediaDevice, on bool) (*responses.Consultation, *responses.Notice, error)
}

type ConsultationRepository interface {
	Save(ctx context.Context, session *models.ConsultationSession) error
	FindByID(ctx context.Context, sessionID string) (*models.ConsultationSession, error)
}
