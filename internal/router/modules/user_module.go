package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notasdev/api-notas/internal/container"
	repo "github.com/notasdev/api-notas/internal/domain/repository"
	handlers "github.com/notasdev/api-notas/internal/interface/http"
	"github.com/notasdev/api-notas/internal/interface/middleware"
)

// UserModule wires user HTTP handlers plus the auth and admin gates into
// routes.
// Public: POST /api/users/login, POST /api/users/init-admin
// Authenticated: GET/PUT /api/users/perfil, PUT /api/users/cambiar-password
// Admin: POST /api/users, GET /api/users, DELETE /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repo.UserRepository
}

func NewUserModule(h *handlers.UserHandler, users repo.UserRepository) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	logger := container.GetLogger()
	rdb := container.GetRedis()

	// Public, with per-IP limits on the credential endpoints
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath())
	initAdminLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users/login", loginLimiter, m.Handler.Login)
	rg.POST("/users/init-admin", initAdminLimiter, m.Handler.InitAdmin)

	// Authenticated
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Users, container.GetJWT(), logger))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/perfil", m.Handler.GetPerfil)
		auth.PUT("/perfil", m.Handler.UpdatePerfil)
		auth.PUT("/cambiar-password", m.Handler.CambiarPassword)

		// Admin only
		admin := auth.Group("")
		admin.Use(middleware.Admin(logger))
		{
			admin.POST("", m.Handler.Register)
			admin.GET("", m.Handler.List)
			admin.DELETE("/:id", m.Handler.Delete)
		}
	}
}
