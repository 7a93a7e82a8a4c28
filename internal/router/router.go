package router

import (
	"github.com/vaibhavharit14/BudgetBox/internal/config"
	"github.com/vaibhavharit14/BudgetBox/internal/handler"
	"github.com/vaibhavharit14/BudgetBox/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires up all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(db)
	r.GET("/health", healthHandler.Live)
	r.GET("/health/db", healthHandler.DB)

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost)

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/users", authHandler.ListUsers)

	budgetHandler := handler.NewBudgetHandler(db, cfg.Server.Mode == "debug")

	budget := r.Group("/budget")
	budget.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	budget.POST("/sync", budgetHandler.Sync)
	budget.GET("/latest", budgetHandler.Latest)

	return r
}
