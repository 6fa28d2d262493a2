package router

import (
	"github.com/notasdev/api-notas/internal/application"
	"github.com/notasdev/api-notas/internal/container"
	pginfra "github.com/notasdev/api-notas/internal/infrastructure/postgres"
	handlers "github.com/notasdev/api-notas/internal/interface/http"
	"github.com/notasdev/api-notas/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger, container.GetConfig().BcryptCost)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	noteRepo := pginfra.NewNoteRepository(pool)
	noteSvc := application.NewNoteService(noteRepo, container.GetRedis(), logger)
	noteHandler := handlers.NewNoteHandler(noteSvc, logger)

	r.Add(modules.NewUserModule(userHandler, userRepo))
	r.Add(modules.NewNoteModule(noteHandler))
}
