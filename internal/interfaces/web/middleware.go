package web

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

// LoadUser resuelve el usuario de la sesión y lo deja en c.Locals. No corta
// el request: eso es tarea de RequireLogin/RequireAdmin.
func LoadUser(store *session.Store, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}
		id, ok := sess.Get(sessionUserKey).(int64)
		if !ok {
			return c.Next()
		}
		u, err := users.GetByID(id)
		if err == nil && u != nil && u.IsActive {
			c.Locals(localUser, u)
		}
		return c.Next()
	}
}

// RequireLogin corta con redirección a /login si no hay usuario autenticado.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin exige sesión de administrador; al resto lo devuelve al menú
// con un aviso visible. Es la guarda de toda operación solo-admin.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := CurrentUser(c)
		if u == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if !u.IsAdmin {
			setFlash(c, store, "operación reservada a administradores")
			return c.Redirect("/menu", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// SetupGate fuerza toda la aplicación hacia /setup_admin mientras el admin
// provisorio no tenga contraseña, y vuelve /setup_admin inalcanzable
// (redirige a /login) una vez completado. La transición a listo es de ida,
// así que se cachea y no se consulta más la base.
func SetupGate(setupUC *auth.SetupUseCase) fiber.Handler {
	var ready atomic.Bool
	return func(c *fiber.Ctx) error {
		if !ready.Load() {
			state, err := setupUC.State()
			if err != nil {
				return err
			}
			if state != auth.StateReady {
				if c.Path() != "/setup_admin" {
					return c.Redirect("/setup_admin", fiber.StatusSeeOther)
				}
				return c.Next()
			}
			ready.Store(true)
		}
		if c.Path() == "/setup_admin" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
