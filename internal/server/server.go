package server

import (
	"strings"
	"time"

	"anoa.com/clubrank/internal/config"
	"anoa.com/clubrank/internal/middleware"

	authHttp "anoa.com/clubrank/internal/modules/auth/delivery/http"
	"anoa.com/clubrank/internal/modules/auth/session"
	authService "anoa.com/clubrank/internal/modules/auth/service"

	eventsHttp "anoa.com/clubrank/internal/modules/events/delivery/http"
	eventsService "anoa.com/clubrank/internal/modules/events/service"

	leaderboardHttp "anoa.com/clubrank/internal/modules/leaderboard/delivery/http"
	leaderboardService "anoa.com/clubrank/internal/modules/leaderboard/service"

	memberHttp "anoa.com/clubrank/internal/modules/member/delivery/http"
	memberRepo "anoa.com/clubrank/internal/modules/member/repository"
	memberService "anoa.com/clubrank/internal/modules/member/service"

	userRepo "anoa.com/clubrank/internal/modules/user/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	users := userRepo.NewUserRepository(db)
	members := memberRepo.NewMemberRepository(db)

	sessions := session.NewRedisStore(redisClient)

	authSvc := authService.NewAuthService(users, sessions, cfg.SessionTTL, cfg.RememberTTL)
	authHandler := authHttp.NewAuthHandler(authSvc)

	eventPublisher := eventsService.NewRedisPublisher(redisClient)
	eventsHandler := eventsHttp.NewEventsHandler(redisClient)

	memberSvc := memberService.NewMemberService(members, eventPublisher)
	memberHandler := memberHttp.NewMemberHandler(memberSvc)

	leaderboardSvc := leaderboardService.NewLeaderboardService(members)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	api := router.Group("/api")

	// Public routes: reads and login
	api.POST("/auth/login", authHandler.Login)
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	api.GET("/members", memberHandler.ListMembers)
	api.GET("/members/:id", memberHandler.GetProfile)

	// Protected routes: everything that writes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/auth/check", authHandler.Check)

		protected.POST("/points", memberHandler.AddPoints)
		protected.POST("/members/:id/contributions", memberHandler.AddContribution)

		protected.GET("/events/ws", eventsHandler.HandleWebSocket)

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.DELETE("/members/:id", memberHandler.DeleteMember)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
