package handler

import (
	"betmachine/internal/adapter/http/middleware"
	redisStore "betmachine/internal/adapter/storage/redis"
	"betmachine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	BetSvc         ports.BetService
	EventSvc       ports.EventService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	userHandler := NewUserHandler(deps.WalletSvc)
	betHandler := NewBetHandler(deps.BetSvc)
	eventHandler := NewEventHandler(deps.EventSvc)

	api := r.Group("/api")
	{
		api.GET("/user/:id", rl("reads"), userHandler.GetUser)
		api.GET("/leaderboard", rl("reads"), userHandler.Leaderboard)

		api.GET("/events", rl("reads"), eventHandler.Events)
		api.GET("/events/refresh", rl("reads"), eventHandler.RefreshEvents)

		api.POST("/bet", rl("bets"), betHandler.PlaceBet)
		api.POST("/cashout", rl("cashouts"), betHandler.Cashout)
		api.POST("/quick-bet", rl("quick_bet"), betHandler.QuickBet)
		api.GET("/bets/:user_id", rl("reads"), betHandler.UserBets)
	}

	return r
}
