// Package health reports liveness of the process and its dependencies.
package health

import (
	"context"
	"time"

	"stoxify-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Started time.Time
}

// Report is the JSON health payload.
type Report struct {
	Status        string `json:"status"`
	Uptime        string `json:"uptime"`
	Database      string `json:"database"`
	Redis         string `json:"redis"`
	RequestCount  int64  `json:"requestCount"`
	LastRequestAt string `json:"lastRequestAt,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// Check pings both stores. Status degrades to "degraded" if either fails;
// the endpoint itself still returns 200 so load balancers see the process up.
// Both stores are optional; a nil handle reports "down".
func (s *Service) Check(ctx context.Context) *Report {
	r := &Report{
		Status:    "ok",
		Uptime:    time.Since(s.Started).Round(time.Second).String(),
		Database:  "up",
		Redis:     "up",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if !s.dbUp(ctx) {
		r.Database = "down"
		r.Status = "degraded"
	}
	if s.Redis == nil || s.Redis.Ping(ctx).Err() != nil {
		r.Redis = "down"
		r.Status = "degraded"
	} else {
		r.RequestCount, r.LastRequestAt = middleware.HealthCounters(ctx, s.Redis)
	}
	return r
}

func (s *Service) dbUp(ctx context.Context) bool {
	if s.DB == nil {
		return false
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
