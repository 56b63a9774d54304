package contracts

import (
	"context"
	"medconnect-service/internal/app/models"
)

type CapabilityProvider interface {
	Status(ctx context.Context, capability models.Capability) models.CapabilityStatus
}
