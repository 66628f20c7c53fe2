package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/fields"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

const categoryNameMax = 30

// CategoryUseCase CRUD de categorías de hacienda. No hay baja física: las
// categorías se desactivan para no romper los animales que las nombran.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	collator *collate.Collator
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		repo:     repo,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
	}
}

// List devuelve las categorías que contienen filter en el nombre, ordenadas
// por nombre con colación española (la Ñ después de la N, no al final).
func (uc *CategoryUseCase) List(filter string) ([]*entity.Category, error) {
	list, err := uc.repo.List(strings.TrimSpace(filter))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return uc.collator.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list, nil
}

// ListActive devuelve las categorías activas, para el selector del
// formulario de animales.
func (uc *CategoryUseCase) ListActive() ([]*entity.Category, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return uc.collator.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list, nil
}

// Create valida y persiste una categoría nueva.
func (uc *CategoryUseCase) Create(in dto.CategoryForm) (*entity.Category, error) {
	name, gain, err := uc.validate(in, 0)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cat := &entity.Category{
		Name:        name,
		IsActive:    true,
		DailyGainKg: gain,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Update re-valida y persiste una categoría existente; la unicidad del
// nombre excluye a la propia fila.
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryForm) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	name, gain, err := uc.validate(in, id)
	if err != nil {
		return nil, err
	}
	cat.Name = name
	cat.DailyGainKg = gain
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Toggle invierte el estado activo. Desactivar no toca los animales que
// referencian la categoría por nombre.
func (uc *CategoryUseCase) Toggle(id int64) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.IsActive = !cat.IsActive
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// GetByID carga una categoría o ErrNotFound.
func (uc *CategoryUseCase) GetByID(id int64) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return cat, nil
}

// validate normaliza nombre y ganancia; excludeID exime a esa fila del
// chequeo de unicidad (0 en alta).
func (uc *CategoryUseCase) validate(in dto.CategoryForm, excludeID int64) (string, decimal.Decimal, error) {
	name := fields.Truncate(in.Name, categoryNameMax)
	if name == "" {
		return "", decimal.Zero, domain.Validation("el nombre es requerido")
	}

	raw := strings.TrimSpace(strings.ReplaceAll(in.DailyGainKg, ",", "."))
	if raw == "" {
		raw = entity.DefaultDailyGain.String()
	}
	gain, err := decimal.NewFromString(raw)
	if err != nil {
		return "", decimal.Zero, domain.Validation("ganancia diaria inválida")
	}
	if !entity.GainWithinRange(gain) {
		return "", decimal.Zero, domain.Validation("la ganancia diaria debe estar entre 0.0 y 3.0 kg")
	}

	// Unicidad global del nombre, activas e inactivas por igual.
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return "", decimal.Zero, err
	}
	if existing != nil && existing.ID != excludeID {
		return "", decimal.Zero, domain.Validation("ya existe una categoría con ese nombre")
	}
	return name, gain, nil
}
