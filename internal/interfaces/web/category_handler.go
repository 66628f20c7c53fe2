package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain"
)

// CategoryHandler CRUD de categorías (todo solo-admin, la ruta lo garantiza).
type CategoryHandler struct {
	uc    *usecase.CategoryUseCase
	store *session.Store
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase, store *session.Store) *CategoryHandler {
	return &CategoryHandler{uc: uc, store: store}
}

// List muestra el listado con el alta inline, filtrable por nombre.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.CategoryForm{}, "")
}

// Create procesa el alta inline del listado.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in := dto.CategoryForm{
		Name:        c.FormValue("name"),
		DailyGainKg: c.FormValue("daily_gain_kg"),
	}
	if _, err := h.uc.Create(in); err != nil {
		if msg, ok := domain.IsValidation(err); ok {
			return h.renderList(c, in, msg)
		}
		return err
	}
	setFlash(c, h.store, "categoría creada")
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

// EditPage muestra el formulario de edición.
func (h *CategoryHandler) EditPage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	cat, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.Render("category_form", fiber.Map{
		"User": CurrentUser(c),
		"ID":   id,
		"Form": categoryFormOf(cat),
	})
}

// EditSubmit persiste la edición.
func (h *CategoryHandler) EditSubmit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	in := dto.CategoryForm{
		Name:        c.FormValue("name"),
		DailyGainKg: c.FormValue("daily_gain_kg"),
	}
	if _, err := h.uc.Update(id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		if msg, ok := domain.IsValidation(err); ok {
			return c.Render("category_form", fiber.Map{
				"User":  CurrentUser(c),
				"ID":    id,
				"Form":  in,
				"Error": msg,
			})
		}
		return err
	}
	setFlash(c, h.store, "categoría actualizada")
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

// Toggle activa/desactiva sin tocar los animales que la referencian.
func (h *CategoryHandler) Toggle(c *fiber.Ctx) error {
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
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

func (h *CategoryHandler) renderList(c *fiber.Ctx, form dto.CategoryForm, errMsg string) error {
	filter := c.Query("q")
	list, err := h.uc.List(filter)
	if err != nil {
		return err
	}
	return c.Render("categories", fiber.Map{
		"User":   CurrentUser(c),
		"List":   categoryRows(list),
		"Filter": filter,
		"Form":   form,
		"Error":  errMsg,
		"Flash":  takeFlash(c, h.store),
	})
}
