package controllers

import (
	"context"
	"errors"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// writeUsecaseError logs a usecase failure and writes it, reporting deadline
// expiry as a gateway timeout.
func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, operation, requestID string, err error) {
	log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
