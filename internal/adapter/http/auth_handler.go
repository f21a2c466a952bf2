package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/augustolallana/api-omega/configs"
	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

type AuthHandler struct {
	cfg   configs.Config
	users *repo.UserRepo
}

func NewAuthHandler(cfg configs.Config, users *repo.UserRepo) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	existing, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	if existing != nil {
		respondErr(c, domain.Conflictf("email %s is already registered", req.Email))
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondErr(c, err)
		return
	}
	u := &model.User{Email: req.Email, PasswordHash: string(hash)}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "User registered successfully.", gin.H{"user": u})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a short-lived bearer token.
// Unknown email and bad password return the same error so the endpoint
// does not leak which accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	u, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		respond(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"admin": u.IsAdmin,
		"iss":   h.cfg.Security.Issuer,
		"aud":   h.cfg.Security.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(h.cfg.Security.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Security.JWTSecret))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Login successful.", gin.H{
		"access_token": signed,
		"token_type":   "bearer",
		"expires_in":   int(h.cfg.Security.TTL.Seconds()),
	})
}

// Logout is a no-op on the server side; tokens are stateless and simply
// expire. The endpoint exists so clients have a uniform auth surface.
func (h *AuthHandler) Logout(c *gin.Context) {
	respond(c, http.StatusOK, "Logged out successfully.", nil)
}

// ListUsers is the admin view over registered accounts.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	skip, limit := pagination(c)
	email := c.Query("email")
	users, total, err := h.users.List(c.Request.Context(), email, skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Users retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"email": email},
		"users":           users,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	u, err := h.users.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "User retrieved successfully.", gin.H{"user": u})
}
