package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler serves liveness and database reachability probes.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *gin.Context) {
	util.Success(c, http.StatusOK, "", util.Response{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DB reports database reachability.
func (h *HealthHandler) DB(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		log.Printf("health: db ping: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Database unreachable")
		return
	}
	util.Success(c, http.StatusOK, "", util.Response{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
