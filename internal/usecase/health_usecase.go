package usecase

import (
	"context"
	"time"
)

// HealthCheckFunc probes one dependency; nil means healthy
type HealthCheckFunc func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]HealthCheckFunc
}

func NewHealthUsecase(checks map[string]HealthCheckFunc) HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check runs every probe with a short timeout and reports overall health
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	result := map[string]string{
		"status": "ok",
	}
	healthy := true
	for name, check := range u.checks {
		probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(probeCtx)
		cancel()
		if err != nil {
			result[name] = "unavailable"
			healthy = false
			continue
		}
		result[name] = "ok"
	}
	if !healthy {
		result["status"] = "degraded"
	}
	return result, healthy
}
