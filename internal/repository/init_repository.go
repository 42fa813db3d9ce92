package repository

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/internal/adapter"
)

type Repository struct {
	Report     *ReportRepository
	User       *UserRepository
	Department *DepartmentRepository
	RateLimit  *RateLimitRepository
	Sweep      *SweepRepository
}

func NewRepository(client *ent.Client, redisAdapter *adapter.RedisAdapter) *Repository {
	return &Repository{
		Report:     NewReportRepository(client),
		User:       NewUserRepository(client),
		Department: NewDepartmentRepository(client),
		RateLimit:  NewRateLimitRepository(redisAdapter),
		Sweep:      NewSweepRepository(redisAdapter),
	}
}
