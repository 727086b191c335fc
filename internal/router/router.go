package router

import (
	"time"

	"smartsave/config"
	"smartsave/internal/handler"
	"smartsave/internal/middleware"
	"smartsave/internal/repository"
	"smartsave/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	splitRepo := repository.NewSplitRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	goalRepo := repository.NewSavingsGoalRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	splitSvc := service.NewSplitService(splitRepo, groupRepo, userRepo)
	groupSvc := service.NewGroupService(groupRepo, userRepo)
	settlementSvc := service.NewSettlementService(settlementRepo, splitRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userRepo)
	splitHandler := handler.NewSplitHandler(splitSvc, userRepo, groupRepo)
	groupHandler := handler.NewGroupHandler(groupSvc)
	settlementHandler := handler.NewSettlementHandler(settlementSvc)
	txnHandler := handler.NewTransactionHandler(txnRepo)
	goalHandler := handler.NewSavingsGoalHandler(goalRepo)
	adminHandler := handler.NewAdminHandler(userRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired()

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		user := api.Group("/user")
		user.Use(authMw)
		{
			user.GET("", userHandler.GetProfile)
			user.PUT("", userHandler.UpdateProfile)
		}
		api.GET("/users/search", authMw, userHandler.Search)

		groups := api.Group("/groups")
		groups.Use(authMw)
		{
			groups.POST("", groupHandler.Create)
			groups.GET("", groupHandler.List)
			groups.GET("/:id", groupHandler.Get)
			groups.PUT("/:id", groupHandler.Update)
			groups.DELETE("/:id", groupHandler.Delete)
		}

		splits := api.Group("/bill_splits")
		splits.Use(authMw)
		{
			splits.POST("", splitHandler.Create)
			splits.GET("", splitHandler.List)
			splits.PUT("/:id", splitHandler.Update)
			splits.DELETE("/:id", splitHandler.Delete)
		}

		settlements := api.Group("/settlements")
		settlements.Use(authMw)
		{
			settlements.POST("", settlementHandler.Create)
			settlements.GET("", settlementHandler.List)
		}

		txns := api.Group("/transactions")
		txns.Use(authMw)
		{
			txns.POST("/income", txnHandler.AddIncome)
			txns.POST("/expense", txnHandler.AddExpense)
			txns.GET("", txnHandler.List)
			txns.GET("/summary", txnHandler.Summary)
			txns.GET("/:id", txnHandler.Get)
			txns.PUT("/:id", txnHandler.Update)
			txns.DELETE("/:id", txnHandler.Delete)
		}

		goals := api.Group("/savings")
		goals.Use(authMw)
		{
			goals.POST("/goals", goalHandler.Create)
			goals.GET("/goals", goalHandler.List)
			goals.PUT("/goals/:id", goalHandler.Update)
			goals.DELETE("/goals/:id", goalHandler.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/users/count", adminHandler.UserCount)
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.POST("/users/:id/ban", adminHandler.BanUser)
			admin.POST("/users/:id/unban", adminHandler.UnbanUser)
			admin.GET("/analytics/financial", analyticsHandler.Financial)
		}
	}

	return r
}
