package contracts

import (
	"context"
	"medconnect-service/internal/pkg/dto/requests"
)

type AppointmentNotifier interface {
	PublishAppointmentBooked(ctx context.Context, notification *requests.AppointmentNotification) error
}
