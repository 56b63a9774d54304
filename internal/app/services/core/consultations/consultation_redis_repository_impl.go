package consultations

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type ConsultationRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewConsultationRedisRepository(redisRepository contracts.RedisRepository) contracts.ConsultationRepository {
	return &ConsultationRedisRepository{
		RedisRepository: redisRepository,
		TTL:             constvars.RedisConsultationTTL,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeyConsultationPrefix + sessionID
}

func (repo *ConsultationRedisRepository) Save(ctx context.Context, session *models.ConsultationSession) error {
	return repo.RedisRepository.Set(ctx, sessionKey(session.ID), session, repo.TTL)
}

func (repo *ConsultationRedisRepository) FindByID(ctx context.Context, sessionID string) (*models.ConsultationSession, error) {
	data, err := repo.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var session models.ConsultationSession
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return &session, nil
}
