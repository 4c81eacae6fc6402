package service

import (
	"context"

	"course_enrollment/internal/repository"
)

type HealthService struct {
	pinger repository.Pinger
}

func NewHealthService(pinger repository.Pinger) *HealthService {
	return &HealthService{pinger: pinger}
}

func (s *HealthService) Check(ctx context.Context) error {
	return s.pinger.Ping(ctx)
}
