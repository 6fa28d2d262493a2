package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notasdev/api-notas/internal/apperrors"
	"github.com/notasdev/api-notas/internal/application"
	"github.com/notasdev/api-notas/internal/domain/entity"
	"github.com/notasdev/api-notas/internal/interface/middleware"
	"github.com/notasdev/api-notas/pkg/response"
	"github.com/notasdev/api-notas/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	Telefono  string `json:"telefono"`
	Foto      string `json:"foto"`
	Empresa   string `json:"empresa"`
	Equipo    string `json:"equipo"`
	Rol       string `json:"rol" binding:"omitempty,oneof=usuario admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updatePerfilRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telefono  string `json:"telefono"`
	Foto      string `json:"foto"`
	Empresa   string `json:"empresa"`
	Equipo    string `json:"equipo"`
}

type cambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual" binding:"required"`
	NuevaPassword  string `json:"nuevaPassword" binding:"required,pwd"`
}

// userJSON shapes the wire representation of a user. The password hash is
// never part of it.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"_id":          u.ID,
		"nombre":       u.Nombre,
		"apellidos":    u.Apellidos,
		"email":        u.Email,
		"telefono":     u.Telefono,
		"foto":         u.Foto,
		"empresa":      u.Empresa,
		"equipo":       u.Equipo,
		"status":       u.Status,
		"rol":          u.Rol,
		"createdAt":    u.CreatedAt,
		"ultimoAcceso": u.UltimoAcceso,
	}
}

// Register handles POST /api/users (admin only).
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validación fallida", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Password:  req.Password,
		Telefono:  req.Telefono,
		Foto:      req.Foto,
		Empresa:   req.Empresa,
		Equipo:    req.Equipo,
		Rol:       req.Rol,
	})
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}

	data := userJSON(u)
	data["token"] = token
	response.Success(c, http.StatusCreated, data, "Usuario registrado")
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validación fallida", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"_id":    u.ID,
		"nombre": u.Nombre,
		"email":  u.Email,
		"rol":    u.Rol,
		"token":  token,
	}, "Usuario autenticado")
}

// InitAdmin handles POST /api/users/init-admin. Public, but only succeeds
// while no admin account exists.
func (h *UserHandler) InitAdmin(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validación fallida", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.InitAdmin(c.Request.Context(), application.RegisterInput{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Password:  req.Password,
		Telefono:  req.Telefono,
		Foto:      req.Foto,
		Empresa:   req.Empresa,
		Equipo:    req.Equipo,
	})
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}

	data := userJSON(u)
	data["token"] = token
	response.Success(c, http.StatusCreated, data, "Usuario administrador inicializado correctamente")
}

// GetPerfil handles GET /api/users/perfil.
func (h *UserHandler) GetPerfil(c *gin.Context) {
	u := middleware.UserFromContext(c)
	perfil, err := h.Svc.GetPerfil(c.Request.Context(), u.ID)
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(perfil), "Perfil de usuario")
}

// UpdatePerfil handles PUT /api/users/perfil. The password cannot be
// changed here; only provided fields are merged.
func (h *UserHandler) UpdatePerfil(c *gin.Context) {
	var req updatePerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validación fallida", validation.ToDetails(err))
		return
	}

	u := middleware.UserFromContext(c)
	updated, token, err := h.Svc.UpdatePerfil(c.Request.Context(), u.ID, application.UpdatePerfilInput{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Foto:      req.Foto,
		Empresa:   req.Empresa,
		Equipo:    req.Equipo,
	})
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}

	data := userJSON(updated)
	data["token"] = token
	response.Success(c, http.StatusOK, data, "Perfil actualizado")
}

// CambiarPassword handles PUT /api/users/cambiar-password.
func (h *UserHandler) CambiarPassword(c *gin.Context) {
	var req cambiarPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Se requiere la contraseña actual y la nueva contraseña", validation.ToDetails(err))
		return
	}

	u := middleware.UserFromContext(c)
	if err := h.Svc.CambiarPassword(c.Request.Context(), u.ID, req.PasswordActual, req.NuevaPassword); err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Contraseña actualizada correctamente")
}

// List handles GET /api/users (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "Lista de usuarios")
}

// Delete handles DELETE /api/users/:id (admin only).
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Usuario eliminado")
}
