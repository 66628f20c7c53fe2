package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain"
)

// UserHandler administración de usuarios (todo solo-admin, la ruta lo
// garantiza).
type UserHandler struct {
	uc    *usecase.UserUseCase
	store *session.Store
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, store *session.Store) *UserHandler {
	return &UserHandler{uc: uc, store: store}
}

// List muestra los usuarios por id ascendente, filtrable por email.
func (h *UserHandler) List(c *fiber.Ctx) error {
	filter := c.Query("q")
	list, err := h.uc.List(filter)
	if err != nil {
		return err
	}
	return c.Render("users", fiber.Map{
		"User":   CurrentUser(c),
		"List":   list,
		"Filter": filter,
		"Flash":  takeFlash(c, h.store),
	})
}

// NewPage muestra el formulario de alta.
func (h *UserHandler) NewPage(c *fiber.Ctx) error {
	return c.Render("user_form", fiber.Map{
		"User": CurrentUser(c),
		"ID":   int64(0),
		"Form": dto.UserForm{IsActive: true},
	})
}

// Create procesa el alta.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in := userFormFromRequest(c)
	if _, err := h.uc.Create(in); err != nil {
		if msg, ok := domain.IsValidation(err); ok {
			return c.Render("user_form", fiber.Map{
				"User":  CurrentUser(c),
				"ID":    int64(0),
				"Form":  in,
				"Error": msg,
			})
		}
		return err
	}
	setFlash(c, h.store, "usuario creado")
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// EditPage muestra el formulario cargado con la fila.
func (h *UserHandler) EditPage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	u, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.Render("user_form", fiber.Map{
		"User": CurrentUser(c),
		"ID":   id,
		"Form": userFormOf(u),
	})
}

// EditSubmit persiste la edición; contraseña vacía conserva la actual.
func (h *UserHandler) EditSubmit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	in := userFormFromRequest(c)
	if _, err := h.uc.Update(id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		if msg, ok := domain.IsValidation(err); ok {
			return c.Render("user_form", fiber.Map{
				"User":  CurrentUser(c),
				"ID":    id,
				"Form":  in,
				"Error": msg,
			})
		}
		return err
	}
	setFlash(c, h.store, "usuario actualizado")
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// Delete elimina la cuenta, salvo la propia: borrarse a sí mismo se rechaza
// con aviso visible.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	acting := CurrentUser(c)
	if err := h.uc.Delete(id, acting.ID); err != nil {
		if errors.Is(err, domain.ErrSelfDelete) {
			setFlash(c, h.store, "no podés eliminar tu propia cuenta")
			return c.Redirect("/users", fiber.StatusSeeOther)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	setFlash(c, h.store, "usuario eliminado")
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// Toggle activa/desactiva la cuenta.
func (h *UserHandler) Toggle(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	if _, err := h.uc.Toggle(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}

func userFormFromRequest(c *fiber.Ctx) dto.UserForm {
	return dto.UserForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		IsAdmin:  c.FormValue("is_admin") == "on",
		IsActive: c.FormValue("is_active") == "on",
	}
}
