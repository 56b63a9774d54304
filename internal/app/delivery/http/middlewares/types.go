package middlewares

import (
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Metrics        *metrics.ServiceMetrics
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, serviceMetrics *metrics.ServiceMetrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Metrics:        serviceMetrics,
	}
}
