package httptransport

import (
	"log/slog"

	"github.com/channelry/accounts/internal/transport/http/handler"
	"github.com/channelry/accounts/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, accountHandler *handler.AccountHandler, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/signup", accountHandler.SignupRedirect)
	r.POST("/signup", accountHandler.Signup)

	r.GET("/login", accountHandler.LoginRedirect)
	r.POST("/login", accountHandler.Login)

	r.GET("/email/:confirmation_token", accountHandler.ConfirmEmail)

	// Protected routes
	r.GET("/me", middleware.Auth(jwtKey), accountHandler.Me)

	return r
}
