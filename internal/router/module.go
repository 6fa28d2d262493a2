package router

import "github.com/gin-gonic/gin"

// Module is a feature slice (users, notes) that mounts its own routes and
// route-level middleware on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
