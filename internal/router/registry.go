package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them all under /api. Modules
// are added during startup (see InitModules) and registered in one pass, so
// route ownership stays with each module rather than a central route table.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Add queues a module for registration.
func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts every queued module on the /api group.
func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
