package health

import (
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/tokoretail/retail-platform/internal/config"
)

const (
	componentName    = "retail-platform"
	componentVersion = "1.0.0"
)

// NewHealthHandler builds the /health checker for the database and Redis.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:    "redis",
				Timeout: 2 * time.Second,
				// The storefront keeps serving from Postgres when Redis is down.
				SkipOnErr: true,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
