package calendar

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type calendarUsecase struct {
	RedisRepository contracts.RedisRepository
	Clock           contracts.Clock
	Config          config.AppCalendar
	Log             *zap.Logger
}

func NewCalendarUsecase(
	redisRepository contracts.RedisRepository,
	clock contracts.Clock,
	calendarConfig config.AppCalendar,
	logger *zap.Logger,
) contracts.CalendarUsecase {
	return &calendarUsecase{
		RedisRepository: redisRepository,
		Clock:           clock,
		Config:          calendarConfig,
		Log:             logger,
	}
}

func cacheKey(day time.Time) string {
	return constvars.RedisKeyCalendarPrefix + FormatISODate(day)
}

// GetCalendar serves today's calendar from Redis when present. A Redis failure
// degrades to computing the calendar in place.
func (uc *calendarUsecase) GetCalendar(ctx context.Context) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.Clock.Now()
	key := cacheKey(now)
	uc.Log.Info("calendarUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("calendarUsecase.GetCalendar error retrieving data from Redis, computing in place",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.build(now), nil
	}

	if cached != "" {
		var calendar responses.Calendar
		err = json.Unmarshal([]byte(cached), &calendar)
		if err == nil {
			return &calendar, nil
		}
		uc.Log.Warn("calendarUsecase.GetCalendar error parsing JSON from Redis, rebuilding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return uc.store(ctx, now)
}

// RefreshCalendar rebuilds today's calendar and overwrites the cached copy.
func (uc *calendarUsecase) RefreshCalendar(ctx context.Context) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.Clock.Now()
	uc.Log.Info("calendarUsecase.RefreshCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	previous := cacheKey(now.AddDate(0, 0, -1))
	err := uc.RedisRepository.Delete(ctx, previous)
	if err != nil {
		uc.Log.Error("calendarUsecase.RefreshCalendar error deleting previous calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, previous),
			zap.Error(err),
		)
		return nil, err
	}
	return uc.store(ctx, now)
}

func (uc *calendarUsecase) AvailableDates(ctx context.Context) []time.Time {
	return GenerateAvailableDates(uc.Clock.Now(), uc.Config.HorizonDays, uc.Config.ExcludedWeekday)
}

func (uc *calendarUsecase) build(now time.Time) *responses.Calendar {
	dates := GenerateAvailableDates(now, uc.Config.HorizonDays, uc.Config.ExcludedWeekday)
	slots := GenerateTimeSlots()

	calendar := &responses.Calendar{
		Dates:     FormatISODates(dates),
		TimeSlots: make([]responses.TimeSlot, len(slots)),
	}
	for i, slot := range slots {
		calendar.TimeSlots[i] = slot.ConvertIntoResponse()
	}
	return calendar
}

// store caches the calendar until the next local midnight, when the dates roll over.
func (uc *calendarUsecase) store(ctx context.Context, now time.Time) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	calendar := uc.build(now)
	key := cacheKey(now)

	err := uc.RedisRepository.Set(ctx, key, calendar, utils.DurationUntilNextMidnight(now))
	if err != nil {
		uc.Log.Error("calendarUsecase.store error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("calendarUsecase.store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDateCountKey, len(calendar.Dates)),
	)
	return calendar, nil
}
