package contracts

import (
	"context"
	"medconnect-service/internal/pkg/dto/responses"
	"time"
)

type CalendarUsecase interface {
	GetCalendar(ctx context.Context) (*responses.Calendar, error)
	RefreshCalendar(ctx context.Context) (*responses.Calendar, error)
	AvailableDates(ctx context.Context) []time.Time
}
