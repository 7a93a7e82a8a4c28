package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/vaibhavharit14/BudgetBox/internal/middleware"
	"github.com/vaibhavharit14/BudgetBox/internal/models"
	"github.com/vaibhavharit14/BudgetBox/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler serves the per-user budget upsert and fetch.
type BudgetHandler struct {
	DB      *gorm.DB
	DevMode bool
}

func NewBudgetHandler(db *gorm.DB, devMode bool) *BudgetHandler {
	return &BudgetHandler{DB: db, DevMode: devMode}
}

// syncReq carries the seven budget fields. All are required strings; numeric
// content is deliberately not validated server-side.
type syncReq struct {
	Income        *string `json:"income" binding:"required"`
	MonthlyBills  *string `json:"monthly_bills" binding:"required"`
	Food          *string `json:"food" binding:"required"`
	Transport     *string `json:"transport" binding:"required"`
	Subscriptions *string `json:"subscriptions" binding:"required"`
	Misc          *string `json:"misc" binding:"required"`
	Description   *string `json:"description" binding:"required"`
}

// Sync upserts the caller's budget: create on first sync, overwrite all seven
// fields afterwards. The unique index on user_id makes the first-create race
// safe: the loser gets a duplicate-key error and a 409, never a second row.
func (h *BudgetHandler) Sync(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied. No token provided.")
		return
	}

	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationError(c, util.BindingErrors(err))
		return
	}

	var budget models.Budget
	err := h.DB.Where("user_id = ?", claims.UserID).First(&budget).Error
	switch {
	case err == nil:
		budget.Income = *req.Income
		budget.MonthlyBills = *req.MonthlyBills
		budget.Food = *req.Food
		budget.Transport = *req.Transport
		budget.Subscriptions = *req.Subscriptions
		budget.Misc = *req.Misc
		budget.Description = *req.Description
		if err := h.DB.Save(&budget).Error; err != nil {
			h.serverError(c, "sync budget: update", err, "Failed to sync budget")
			return
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{
			UserID:        claims.UserID,
			Income:        *req.Income,
			MonthlyBills:  *req.MonthlyBills,
			Food:          *req.Food,
			Transport:     *req.Transport,
			Subscriptions: *req.Subscriptions,
			Misc:          *req.Misc,
			Description:   *req.Description,
		}
		if err := h.DB.Create(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				util.Error(c, http.StatusConflict, util.CodeConflict,
					"Budget already exists for this user. Please update instead.")
				return
			}
			h.serverError(c, "sync budget: create", err, "Failed to sync budget")
			return
		}

	default:
		h.serverError(c, "sync budget: query", err, "Failed to sync budget")
		return
	}

	util.Success(c, http.StatusOK, "Budget synced successfully", util.Response{
		"budget": budget,
	})
}

// Latest returns the single budget row for the caller, or 404 if the user
// has never synced.
func (h *BudgetHandler) Latest(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied. No token provided.")
		return
	}

	var budget models.Budget
	if err := h.DB.Where("user_id = ?", claims.UserID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "No budget found")
			return
		}
		h.serverError(c, "get latest budget", err, "Failed to fetch latest budget")
		return
	}

	util.Success(c, http.StatusOK, "", util.Response{
		"budget": budget,
	})
}

// serverError logs the full failure and returns a generic message, appending
// the underlying error only in development mode.
func (h *BudgetHandler) serverError(c *gin.Context, op string, err error, msg string) {
	log.Printf("%s: %v", op, err)
	if h.DevMode {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    util.CodeServer,
			"message": msg,
			"error":   err.Error(),
		})
		return
	}
	util.Error(c, http.StatusInternalServerError, util.CodeServer, msg)
}
