package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/fields"
)

// AnimalHandler CRUD de animales; alta y edición para cualquier usuario con
// sesión, eliminación solo-admin (la ruta lo garantiza).
type AnimalHandler struct {
	uc    *usecase.AnimalUseCase
	catUC *usecase.CategoryUseCase
	store *session.Store
}

// NewAnimalHandler construye el handler de animales.
func NewAnimalHandler(uc *usecase.AnimalUseCase, catUC *usecase.CategoryUseCase, store *session.Store) *AnimalHandler {
	return &AnimalHandler{uc: uc, catUC: catUC, store: store}
}

// List muestra el listado, más nuevos primero, filtrable por caravana,
// categoría o lote.
func (h *AnimalHandler) List(c *fiber.Ctx) error {
	filter := c.Query("q")
	list, err := h.uc.List(filter)
	if err != nil {
		return err
	}
	u := CurrentUser(c)
	return c.Render("animals", fiber.Map{
		"User":   u,
		"List":   animalRows(list),
		"Filter": filter,
		"Flash":  takeFlash(c, h.store),
	})
}

// NewPage muestra el formulario de alta.
func (h *AnimalHandler) NewPage(c *fiber.Ctx) error {
	return h.renderForm(c, 0, dto.AnimalForm{}, "")
}

// Create procesa el alta.
func (h *AnimalHandler) Create(c *fiber.Ctx) error {
	in := animalFormFromRequest(c)
	if _, err := h.uc.Create(in); err != nil {
		if msg, ok := domain.IsValidation(err); ok {
			return h.renderForm(c, 0, in, msg)
		}
		return err
	}
	setFlash(c, h.store, "animal registrado")
	return c.Redirect("/animals", fiber.StatusSeeOther)
}

// EditPage muestra el formulario cargado con la fila.
func (h *AnimalHandler) EditPage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	a, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return h.renderForm(c, id, animalFormOf(a), "")
}

// EditSubmit persiste la edición.
func (h *AnimalHandler) EditSubmit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	in := animalFormFromRequest(c)
	if _, err := h.uc.Update(id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		if msg, ok := domain.IsValidation(err); ok {
			return h.renderForm(c, id, in, msg)
		}
		return err
	}
	setFlash(c, h.store, "animal actualizado")
	return c.Redirect("/animals", fiber.StatusSeeOther)
}

// Delete elimina la fila (solo-admin por ruta).
func (h *AnimalHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	setFlash(c, h.store, "animal eliminado")
	return c.Redirect("/animals", fiber.StatusSeeOther)
}

// renderForm arma el formulario con las opciones de categoría activas (más
// la heredada del animal si quedó inactiva) y la lista fija de razas.
func (h *AnimalHandler) renderForm(c *fiber.Ctx, id int64, form dto.AnimalForm, errMsg string) error {
	active, err := h.catUC.ListActive()
	if err != nil {
		return err
	}
	return c.Render("animal_form", fiber.Map{
		"User":       CurrentUser(c),
		"ID":         id,
		"Form":       form,
		"Categories": categoryNames(active, form.Category),
		"Breeds":     fields.Breeds,
		"Error":      errMsg,
	})
}

func animalFormFromRequest(c *fiber.Ctx) dto.AnimalForm {
	return dto.AnimalForm{
		TagCurrent:     c.FormValue("tag_current"),
		TagPrevious:    c.FormValue("tag_previous"),
		Weight:         c.FormValue("weight"),
		WeighDate:      c.FormValue("weigh_date"),
		EstWeightToday: c.FormValue("est_weight_today"),
		Comment:        c.FormValue("comment"),
		Origin:         c.FormValue("origin"),
		Category:       c.FormValue("category"),
		ReadDate:       c.FormValue("read_date"),
		LastSeen:       c.FormValue("last_seen"),
		BirthDate:      c.FormValue("birth_date"),
		Sex:            c.FormValue("sex"),
		Breed:          c.FormValue("breed"),
		Diagnosis:      c.FormValue("diagnosis"),
		Lot:            c.FormValue("lot"),
	}
}
