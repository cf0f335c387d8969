// Package dependency provides dependency injection for the application.
package dependency

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/hashlab/backend/config"
	"github.com/hashlab/backend/internal/application/usecase/hashing"
	"github.com/hashlab/backend/internal/domain/valueobject"
	"github.com/hashlab/backend/internal/infra/server/router"
	"github.com/hashlab/backend/internal/integration/adapters"
	"github.com/hashlab/backend/internal/integration/entrypoint/controller"
	"github.com/hashlab/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient and redisHealthChecker may be nil; the service then runs
// without rate limiting and reports Redis as disconnected.
func NewInjector(cfg *config.Config, redisClient *goredis.Client, redisHealthChecker func() bool) *Injector {
	// Create adapters/services
	policy := valueobject.NewHashPolicy(cfg.Hashing.BcryptCost)
	passwordService := adapters.NewPasswordService(policy)

	// Create hashing use cases
	hashUseCase := hashing.NewHashPasswordUseCase(passwordService, policy)
	verifyUseCase := hashing.NewVerifyPasswordUseCase(passwordService)

	// Create controllers
	healthController := controller.NewHealthController(redisHealthChecker)
	hashingController := controller.NewHashingController(hashUseCase, verifyUseCase)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiterWithConfig(
			redisClient,
			cfg.RateLimit.MaxAttempts,
			cfg.RateLimit.WindowDuration,
		)
	}

	return &Injector{
		Config: cfg,
		Router: router.NewRouter(healthController, hashingController, rateLimiter),
	}
}
