package calendar

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@daily"

// Worker rebuilds the cached calendar on a cron schedule. Only the instance
// holding the leader lock does the work on each tick.
type Worker struct {
	log      *zap.Logger
	cronSpec string
	locker   contracts.LockerService
	calendar contracts.CalendarUsecase
	lockTTL  time.Duration
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cronSpec string, lockerService contracts.LockerService, calendarUsecase contracts.CalendarUsecase) *Worker {
	return &Worker{
		log:      log,
		cronSpec: cronSpec,
		locker:   lockerService,
		calendar: calendarUsecase,
		lockTTL:  constvars.RedisCalendarWorkerLeaderTTL,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cronSpec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("calendar.worker: invalid cron spec, falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, w.cronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the running job to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// RunOnce refreshes the calendar if this instance wins the leader lock.
func (w *Worker) RunOnce(ctx context.Context) bool {
	key := constvars.RedisKeyCalendarWorkerLeader
	acquired, token, err := w.locker.TryLock(ctx, key, w.lockTTL)
	if err != nil {
		w.log.Warn("calendar.worker: leader lock attempt failed", zap.Error(err))
		return false
	}
	if !acquired {
		w.log.Info("calendar.worker: leader lock held by another instance")
		return false
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			w.log.Warn("calendar.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(w.lockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, key, token, w.lockTTL); err != nil {
					w.log.Warn("calendar.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	calendar, err := w.calendar.RefreshCalendar(ctx)
	if err != nil {
		w.log.Error("calendar.worker: refresh failed", zap.Error(err))
		return false
	}
	w.log.Info("calendar.worker: calendar refreshed",
		zap.Int(constvars.LoggingDateCountKey, len(calendar.Dates)),
	)
	return true
}
