package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/fields"
)

// Modelos de vista: los templates reciben texto ya formateado (fechas en
// DD/MM/AA, pesos con un decimal), nunca tipos del dominio a medio cocinar.

type categoryRow struct {
	ID        int64
	Name      string
	DailyGain string
	IsActive  bool
}

type animalRow struct {
	ID        int64
	Tag       string
	Category  string
	Weight    string
	EstWeight string
	LastSeen  string
	Lot       string
}

func categoryRows(list []*entity.Category) []categoryRow {
	rows := make([]categoryRow, 0, len(list))
	for _, c := range list {
		rows = append(rows, categoryRow{
			ID:        c.ID,
			Name:      c.Name,
			DailyGain: c.DailyGainKg.StringFixed(2),
			IsActive:  c.IsActive,
		})
	}
	return rows
}

func animalRows(list []*entity.Animal) []animalRow {
	rows := make([]animalRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, animalRow{
			ID:        a.ID,
			Tag:       a.TagCurrent,
			Category:  a.Category,
			Weight:    weightString(a.Weight),
			EstWeight: weightString(a.EstWeightToday),
			LastSeen:  fields.FormatDate(a.LastSeen),
			Lot:       a.Lot,
		})
	}
	return rows
}

// animalFormOf rellena el formulario desde la entidad para la pantalla de
// edición; el formato es el mismo que tipea el usuario.
func animalFormOf(a *entity.Animal) dto.AnimalForm {
	return dto.AnimalForm{
		TagCurrent:     a.TagCurrent,
		TagPrevious:    a.TagPrevious,
		Weight:         weightString(a.Weight),
		WeighDate:      fields.FormatDate(a.WeighDate),
		EstWeightToday: weightString(a.EstWeightToday),
		Comment:        a.Comment,
		Origin:         a.Origin,
		Category:       a.Category,
		ReadDate:       fields.FormatDate(a.ReadDate),
		LastSeen:       fields.FormatDate(a.LastSeen),
		BirthDate:      fields.FormatDate(a.BirthDate),
		Sex:            a.Sex,
		Breed:          a.Breed,
		Diagnosis:      a.Diagnosis,
		Lot:            a.Lot,
	}
}

func categoryFormOf(c *entity.Category) dto.CategoryForm {
	return dto.CategoryForm{
		Name:        c.Name,
		DailyGainKg: c.DailyGainKg.StringFixed(2),
	}
}

func userFormOf(u *entity.User) dto.UserForm {
	return dto.UserForm{
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}
}

func weightString(w decimal.NullDecimal) string {
	if !w.Valid {
		return ""
	}
	return w.Decimal.StringFixed(1)
}

// categoryNames arma las opciones del selector de categoría, insertando la
// categoría heredada del animal si ya no figura entre las activas.
func categoryNames(active []*entity.Category, current string) []string {
	names := make([]string, 0, len(active)+1)
	found := false
	for _, c := range active {
		names = append(names, c.Name)
		if c.Name == current {
			found = true
		}
	}
	if current != "" && !found {
		names = append(names, current)
	}
	return names
}

// paramID lee el :id de la ruta; inválido o ausente cuenta como no
// encontrado.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("no encontrado")
}
