package contracts

import (
	"context"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentConfirmation, error)
}
