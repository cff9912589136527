package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/channelry/accounts/internal/domain"
	"github.com/channelry/accounts/internal/token"
	"github.com/channelry/accounts/internal/usecase"
	"github.com/gin-gonic/gin"
)

// accountUsecaser is the subset of AccountUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type accountUsecaser interface {
	Signup(ctx context.Context, input usecase.SignupInput) error
	Login(ctx context.Context, email, password string) (string, error)
	ConfirmEmail(ctx context.Context, rawToken string) (bool, error)
	Account(ctx context.Context, userID string) (*domain.User, error)
}

type AccountHandler struct {
	accounts     accountUsecaser
	dashboardURL string
	logger       *slog.Logger
}

func NewAccountHandler(accounts accountUsecaser, dashboardURL string, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts:     accounts,
		dashboardURL: dashboardURL,
		logger:       logger.With("component", "account_handler"),
	}
}

type signupRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Fullname string `json:"fullname" binding:"required"`
	Password string `json:"password" binding:"required"`
	Confirm  string `json:"confirm"  binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GET /signup
// The API has no signup page of its own; browsers land on the dashboard.
func (h *AccountHandler) SignupRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.dashboardURL+"/signup")
}

// POST /signup
func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	err := h.accounts.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    req.Email,
		Fullname: req.Fullname,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"field": "email", "reason": errEmailTaken})
			return
		}
		h.logger.Error("signup", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s created", req.Email)})
}

// GET /login
func (h *AccountHandler) LoginRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.dashboardURL+"/login")
}

// POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	accessToken, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errBadCredentials})
			return
		}
		h.logger.Error("login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// GET /email/:confirmation_token
// All token failures collapse into one generic message; the caller learns
// nothing about whether the link was expired, tampered or never issued.
func (h *AccountHandler) ConfirmEmail(c *gin.Context) {
	rawToken := c.Param("confirmation_token")

	alreadyConfirmed, err := h.accounts.ConfirmEmail(c.Request.Context(), rawToken)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) || errors.Is(err, token.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errLinkInvalid})
			return
		}
		h.logger.Error("confirm email", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	if alreadyConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": msgAlreadyConfirmed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgConfirmed})
}

type meResponse struct {
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	IsConfirmed bool   `json:"is_confirmed"`
}

// GET /me (bearer-protected)
func (h *AccountHandler) Me(c *gin.Context) {
	user, err := h.accounts.Account(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errAccountNotFound})
			return
		}
		h.logger.Error("me", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		Email:       user.Email,
		Fullname:    user.Fullname,
		IsConfirmed: user.IsConfirmed,
	})
}
