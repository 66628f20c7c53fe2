package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// MenuHandler menú principal y pantallas de caja aún no implementadas.
type MenuHandler struct {
	store *session.Store
}

// NewMenuHandler construye el handler del menú.
func NewMenuHandler(store *session.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// Menu pantalla de inicio tras autenticarse.
func (h *MenuHandler) Menu(c *fiber.Ctx) error {
	return c.Render("menu", fiber.Map{
		"User":  CurrentUser(c),
		"Flash": takeFlash(c, h.store),
	})
}

// Movimientos placeholder de movimientos de caja.
func (h *MenuHandler) Movimientos(c *fiber.Ctx) error {
	return c.Render("stub", fiber.Map{
		"User":  CurrentUser(c),
		"Title": "Movimientos de Caja",
	})
}

// Resumen placeholder del resumen de caja.
func (h *MenuHandler) Resumen(c *fiber.Ctx) error {
	return c.Render("stub", fiber.Map{
		"User":  CurrentUser(c),
		"Title": "Resumen de Caja",
	})
}
