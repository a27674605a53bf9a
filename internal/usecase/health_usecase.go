package usecase

import (
	"context"

	"contact-mail-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redisEnabled bool
}

// NewHealthUsecase reports on the rate limit store; redisEnabled tells whether
// REDIS_URL was configured.
func NewHealthUsecase(redisEnabled bool) HealthUsecase {
	return &healthUsecase{redisEnabled: redisEnabled}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":           "ok",
		"rate_limit_store": "memory",
	}

	if u.redisEnabled {
		if redis.IsAvailable(ctx) {
			status["rate_limit_store"] = "redis"
		} else {
			status["rate_limit_store"] = "redis_unavailable"
		}
	}

	return status
}
