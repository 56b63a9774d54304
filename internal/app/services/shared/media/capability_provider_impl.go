package media

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"strings"
)

type staticCapabilityProvider struct {
	statuses map[models.Capability]models.CapabilityStatus
}

// NewStaticCapabilityProvider reports the capability statuses configured for the deployment.
func NewStaticCapabilityProvider(cfg config.AppMedia) contracts.CapabilityProvider {
	return &staticCapabilityProvider{
		statuses: map[models.Capability]models.CapabilityStatus{
			models.CapabilityCamera:            ParseStatus(cfg.Camera),
			models.CapabilityMicrophone:        ParseStatus(cfg.Microphone),
			models.CapabilitySpeechRecognition: ParseStatus(cfg.SpeechRecognition),
		},
	}
}

// ParseStatus treats anything unrecognised as unavailable.
func ParseStatus(value string) models.CapabilityStatus {
	switch models.CapabilityStatus(strings.ToLower(strings.TrimSpace(value))) {
	case models.CapabilityAvailable:
		return models.CapabilityAvailable
	case models.CapabilityPermissionDenied:
		return models.CapabilityPermissionDenied
	default:
		return models.CapabilityUnavailable
	}
}

func (p *staticCapabilityProvider) Status(ctx context.Context, capability models.Capability) models.CapabilityStatus {
	status, ok := p.statuses[capability]
	if !ok {
		return models.CapabilityUnavailable
	}
	return status
}
