package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/models"
	"github.com/vaibhavharit14/BudgetBox/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and the debug user listing.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 1
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		JWTIssuer:  issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// Register creates a new account. Validation failures enumerate every
// failing field; an existing email is a 409 conflict.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationError(c, util.BindingErrors(err))
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		log.Printf("register: count users: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to register user")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.CodeConflict, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to register user")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "User already exists")
			return
		}
		log.Printf("register: create user: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to register user")
		return
	}

	util.Success(c, http.StatusCreated, "User registered successfully", util.Response{
		"user": user.Public(),
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login authenticates a user and issues a signed, time-limited bearer token.
// Unknown email and wrong password produce identical responses so callers
// cannot enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.ValidationError(c, util.BindingErrors(err))
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid email or password")
		} else {
			log.Printf("login: query user: %v", err)
			util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to login user")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid email or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.ID, user.Email, h.TokenTTL)
	if err != nil {
		log.Printf("login: generate token: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to login user")
		return
	}

	util.Success(c, http.StatusOK, "Login successful", util.Response{
		"token": token,
		"user":  user.Public(),
	})
}

// ListUsers is a debug endpoint returning all registered accounts
// (id, email, created_at only, never password hashes).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("created_at").Find(&users).Error; err != nil {
		log.Printf("list users: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServer, "Failed to fetch users")
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":         u.ID,
			"email":      u.Email,
			"created_at": u.CreatedAt,
		})
	}
	util.Success(c, http.StatusOK, "", util.Response{"users": out})
}

// EnsureDemoUser provisions the fixed evaluation account if absent.
// Idempotent; intended to run once at startup when demo mode is enabled.
func (h *AuthHandler) EnsureDemoUser(email, password string) error {
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.BcryptCost)
	if err != nil {
		return err
	}
	return h.DB.Create(&models.User{Email: email, PasswordHash: string(hash)}).Error
}
