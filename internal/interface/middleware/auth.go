package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notasdev/api-notas/internal/domain/entity"
	repo "github.com/notasdev/api-notas/internal/domain/repository"
	"github.com/notasdev/api-notas/pkg/helpers"
	"github.com/notasdev/api-notas/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserKey   = "usuario"
	CtxUserIDKey = "userID"
)

const bearerPrefix = "Bearer "

// Auth resolves the Authorization bearer token to a user and stores it in
// the Gin context. The request terminates with 401 when the token is
// missing, fails verification, or names an account that no longer exists.
// The resolved user never carries the password hash.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
			logger.WithField("path", c.Request.URL.Path).Warn("acceso a ruta protegida sin token")
			response.AbortError(c, http.StatusUnauthorized, "No autorizado, no hay token", nil)
			return
		}
		token := strings.TrimSpace(header[len(bearerPrefix):])

		claims, err := jwt.ParseToken(token)
		if err != nil {
			logger.WithError(err).Warn("error de autenticación")
			response.AbortError(c, http.StatusUnauthorized, "No autorizado, token inválido", nil)
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil {
			// token was valid, the account disappeared after issuance
			logger.WithField("user_id", claims.UserID).Warn("token válido pero usuario no existente")
			response.AbortError(c, http.StatusUnauthorized, "No autorizado, token inválido", nil)
			return
		}

		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// Admin enforces the admin role. It must run after Auth; a request that
// reaches it without a resolved user is a routing mistake and is rejected.
func Admin(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFromContext(c)
		if u == nil || !u.EsAdmin() {
			if u != nil {
				logger.WithField("user_id", u.ID).Warn("acceso a ruta de admin por usuario no autorizado")
			}
			response.AbortError(c, http.StatusForbidden, "No autorizado como administrador", nil)
			return
		}
		c.Next()
	}
}

// UserFromContext returns the user resolved by Auth, or nil.
func UserFromContext(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
