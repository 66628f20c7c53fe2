package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
	"github.com/tu-usuario/campo-registros/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SetupUC    *auth.SetupUseCase
	CategoryUC *usecase.CategoryUseCase
	AnimalUC   *usecase.AnimalUseCase
	UserUC     *usecase.UserUseCase
	UserRepo   repository.UserRepository
	Store      *session.Store
	Log        *logger.Logger
}

// Router registra las rutas de la aplicación. El orden de los middlewares
// importa: primero el gate de setup (estado), después la carga de usuario
// (identidad) y recién entonces las guardas de login/admin (autorización).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SetupGate(deps.SetupUC))
	app.Use(LoadUser(deps.Store, deps.UserRepo))

	authHandler := NewAuthHandler(deps.AuthUC, deps.SetupUC, deps.Store, deps.Log)
	app.Get("/", authHandler.Root)
	app.Get("/setup_admin", authHandler.SetupPage)
	app.Post("/setup_admin", authHandler.SetupSubmit)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.LoginSubmit)

	// Rutas con sesión
	logged := app.Group("/", RequireLogin())
	logged.Get("/logout", authHandler.Logout)

	menuHandler := NewMenuHandler(deps.Store)
	logged.Get("/menu", menuHandler.Menu)
	logged.Get("/movimientos", menuHandler.Movimientos)
	logged.Get("/resumen", menuHandler.Resumen)

	animalHandler := NewAnimalHandler(deps.AnimalUC, deps.CategoryUC, deps.Store)
	logged.Get("/animals", animalHandler.List)
	logged.Get("/animals/new", animalHandler.NewPage)
	logged.Post("/animals/new", animalHandler.Create)
	logged.Get("/animals/:id/edit", animalHandler.EditPage)
	logged.Post("/animals/:id/edit", animalHandler.EditSubmit)

	// Rutas solo-admin
	admin := app.Group("/", RequireLogin(), RequireAdmin(deps.Store))
	admin.Post("/animals/:id/delete", animalHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Store)
	admin.Get("/categories", categoryHandler.List)
	admin.Post("/categories", categoryHandler.Create)
	admin.Get("/categories/:id/edit", categoryHandler.EditPage)
	admin.Post("/categories/:id/edit", categoryHandler.EditSubmit)
	admin.Post("/categories/:id/toggle", categoryHandler.Toggle)

	userHandler := NewUserHandler(deps.UserUC, deps.Store)
	admin.Get("/users", userHandler.List)
	admin.Get("/users/new", userHandler.NewPage)
	admin.Post("/users/new", userHandler.Create)
	admin.Get("/users/:id/edit", userHandler.EditPage)
	admin.Post("/users/:id/edit", userHandler.EditSubmit)
	admin.Post("/users/:id/delete", userHandler.Delete)
	admin.Post("/users/:id/toggle", userHandler.Toggle)
}
