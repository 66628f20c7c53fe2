package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/fields"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

// Longitudes máximas de los campos de texto libre (truncado silencioso).
const (
	commentMax   = 30
	originMax    = 30
	diagnosisMax = 10
	lotMax       = 20
)

// AnimalUseCase CRUD de animales: validación de campos, unicidad de
// caravana y recálculo del peso estimado a hoy.
type AnimalUseCase struct {
	repo    repository.AnimalRepository
	catRepo repository.CategoryRepository
	now     func() time.Time
}

// NewAnimalUseCase construye el caso de uso de animales.
func NewAnimalUseCase(repo repository.AnimalRepository, catRepo repository.CategoryRepository) *AnimalUseCase {
	return &AnimalUseCase{repo: repo, catRepo: catRepo, now: time.Now}
}

// List devuelve los animales más nuevos primero; filter busca subcadena
// case-insensitive en caravanas, categoría y lote.
func (uc *AnimalUseCase) List(filter string) ([]*entity.Animal, error) {
	return uc.repo.List(strings.TrimSpace(filter))
}

// GetByID carga un animal o ErrNotFound.
func (uc *AnimalUseCase) GetByID(id int64) (*entity.Animal, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// Create valida el formulario completo y persiste el animal nuevo.
func (uc *AnimalUseCase) Create(in dto.AnimalForm) (*entity.Animal, error) {
	a, err := uc.build(in, nil)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update re-valida y persiste un animal existente. La caravana excluye a la
// propia fila del chequeo de unicidad.
func (uc *AnimalUseCase) Update(id int64, in dto.AnimalForm) (*entity.Animal, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	a, err := uc.build(in, existing)
	if err != nil {
		return nil, err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = uc.now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete elimina un animal (la capa web exige admin antes de llegar acá).
func (uc *AnimalUseCase) Delete(id int64) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// build valida campo por campo y arma la entidad. existing es nil en alta;
// en edición habilita la excepción de categoría heredada inactiva.
func (uc *AnimalUseCase) build(in dto.AnimalForm, existing *entity.Animal) (*entity.Animal, error) {
	tag, ok := fields.ParseTag(in.TagCurrent)
	if !ok {
		return nil, domain.Validation("caravana actual inválida: solo dígitos y espacios")
	}

	tagPrev := ""
	if strings.TrimSpace(in.TagPrevious) != "" {
		tagPrev, ok = fields.ParseTag(in.TagPrevious)
		if !ok {
			return nil, domain.Validation("caravana anterior inválida: solo dígitos y espacios")
		}
	}

	weight, ok := fields.ParseWeight(in.Weight)
	if !ok {
		return nil, domain.Validation("peso inválido: hasta 4 enteros y 1 decimal")
	}
	weighDate, ok := fields.ParseDate(in.WeighDate)
	if !ok {
		return nil, domain.Validation("fecha de pesada inválida (DD/MM/AA)")
	}
	readDate, ok := fields.ParseDate(in.ReadDate)
	if !ok {
		return nil, domain.Validation("fecha de lectura inválida (DD/MM/AA)")
	}
	lastSeen, ok := fields.ParseDate(in.LastSeen)
	if !ok {
		return nil, domain.Validation("fecha de última vista inválida (DD/MM/AA)")
	}
	birthDate, ok := fields.ParseDate(in.BirthDate)
	if !ok {
		return nil, domain.Validation("fecha de nacimiento inválida (DD/MM/AA)")
	}

	sex := strings.ToUpper(strings.TrimSpace(in.Sex))
	if !fields.ValidSex(sex) {
		return nil, domain.Validation("sexo inválido: M o H")
	}
	breed := strings.TrimSpace(in.Breed)
	if !fields.ValidBreed(breed) {
		return nil, domain.Validation("raza inválida")
	}

	category := strings.TrimSpace(in.Category)
	if err := uc.validateCategory(category, existing); err != nil {
		return nil, err
	}

	// Unicidad global de la caravana normalizada, excluyendo la propia fila
	// en edición.
	dup, err := uc.repo.GetByTag(tag)
	if err != nil {
		return nil, err
	}
	if dup != nil && (existing == nil || dup.ID != existing.ID) {
		return nil, domain.Validation("ya existe un animal con esa caravana")
	}

	a := &entity.Animal{
		TagCurrent:  tag,
		TagPrevious: tagPrev,
		Weight:      weight,
		WeighDate:   weighDate,
		Comment:     fields.Truncate(in.Comment, commentMax),
		Origin:      fields.Truncate(in.Origin, originMax),
		Category:    category,
		ReadDate:    readDate,
		LastSeen:    lastSeen,
		BirthDate:   birthDate,
		Sex:         sex,
		Breed:       breed,
		Diagnosis:   fields.Truncate(in.Diagnosis, diagnosisMax),
		Lot:         fields.Truncate(in.Lot, lotMax),
	}

	// Estimación: la explícita del formulario manda; si no viene, se
	// proyecta desde el último peso con la ganancia de la categoría.
	est, ok := fields.ParseWeight(in.EstWeightToday)
	if !ok {
		return nil, domain.Validation("peso estimado inválido: hasta 4 enteros y 1 decimal")
	}
	if est.Valid {
		a.EstWeightToday = est
	} else {
		a.EstWeightToday = a.EstimateWeightToday(uc.gainFor(category), uc.now())
	}
	return a, nil
}

// validateCategory exige una categoría activa, con la excepción de edición:
// conservar sin cambios la categoría ya asignada (aunque esté inactiva o ya
// no exista) siempre es válido.
func (uc *AnimalUseCase) validateCategory(name string, existing *entity.Animal) error {
	if name == "" {
		return nil
	}
	if existing != nil && name == existing.Category {
		return nil
	}
	cat, err := uc.catRepo.GetByName(name)
	if err != nil {
		return err
	}
	if cat == nil || !cat.IsActive {
		return domain.Validation("la categoría no existe o está inactiva")
	}
	return nil
}

// gainFor resuelve la ganancia diaria por nombre de categoría; desconocida o
// inactiva cae al valor por defecto.
func (uc *AnimalUseCase) gainFor(name string) decimal.Decimal {
	if name == "" {
		return entity.DefaultDailyGain
	}
	cat, err := uc.catRepo.GetByName(name)
	if err != nil || cat == nil || !cat.IsActive {
		return entity.DefaultDailyGain
	}
	return cat.DailyGainKg
}
