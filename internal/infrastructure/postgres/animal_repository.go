package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

const animalColumns = `id, tag_current, COALESCE(tag_previous, ''), weight, weigh_date,
	est_weight_today, COALESCE(comment, ''), COALESCE(origin, ''), COALESCE(category, ''),
	read_date, last_seen, birth_date, COALESCE(sex, ''), COALESCE(breed, ''),
	COALESCE(diagnosis, ''), COALESCE(lot, ''), created_at, updated_at`

// AnimalRepo implementación del puerto AnimalRepository sobre PostgreSQL.
// Los textos opcionales vacíos se guardan como NULL y vuelven como "".
type AnimalRepo struct {
	pool *pgxpool.Pool
}

// NewAnimalRepository construye el adaptador de persistencia para animales.
func NewAnimalRepository(pool *pgxpool.Pool) *AnimalRepo {
	return &AnimalRepo{pool: pool}
}

// Create persiste un animal nuevo y asigna el id generado.
func (r *AnimalRepo) Create(a *entity.Animal) error {
	query := `
		INSERT INTO animals (tag_current, tag_previous, weight, weigh_date, est_weight_today,
			comment, origin, category, read_date, last_seen, birth_date, sex, breed,
			diagnosis, lot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.TagCurrent, nullif(a.TagPrevious), a.Weight, a.WeighDate, a.EstWeightToday,
		nullif(a.Comment), nullif(a.Origin), nullif(a.Category),
		a.ReadDate, a.LastSeen, a.BirthDate, nullif(a.Sex), nullif(a.Breed),
		nullif(a.Diagnosis), nullif(a.Lot), a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

// GetByID obtiene un animal por id; (nil, nil) si no existe.
func (r *AnimalRepo) GetByID(id int64) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get animal by id")
}

// GetByTag obtiene un animal por caravana actual; (nil, nil) si no existe.
func (r *AnimalRepo) GetByTag(tag string) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE tag_current = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, tag), "get animal by tag")
}

// Update actualiza un animal.
func (r *AnimalRepo) Update(a *entity.Animal) error {
	query := `
		UPDATE animals SET tag_current = $2, tag_previous = $3, weight = $4, weigh_date = $5,
			est_weight_today = $6, comment = $7, origin = $8, category = $9, read_date = $10,
			last_seen = $11, birth_date = $12, sex = $13, breed = $14, diagnosis = $15,
			lot = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.TagCurrent, nullif(a.TagPrevious), a.Weight, a.WeighDate, a.EstWeightToday,
		nullif(a.Comment), nullif(a.Origin), nullif(a.Category),
		a.ReadDate, a.LastSeen, a.BirthDate, nullif(a.Sex), nullif(a.Breed),
		nullif(a.Diagnosis), nullif(a.Lot), a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update animal: %w", err)
	}
	return nil
}

// List devuelve los animales más nuevos primero; filter busca subcadena
// case-insensitive en caravanas, categoría y lote.
func (r *AnimalRepo) List(filter string) ([]*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	args := []any{}
	if filter != "" {
		query += ` WHERE tag_current ILIKE $1 OR tag_previous ILIKE $1 OR category ILIKE $1 OR lot ILIKE $1`
		args = append(args, "%"+filter+"%")
	}
	query += ` ORDER BY id DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina un animal por id.
func (r *AnimalRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	return nil
}

func (r *AnimalRepo) scanOne(row pgx.Row, op string) (*entity.Animal, error) {
	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func scanAnimal(row pgx.Row) (*entity.Animal, error) {
	var a entity.Animal
	err := row.Scan(
		&a.ID, &a.TagCurrent, &a.TagPrevious, &a.Weight, &a.WeighDate,
		&a.EstWeightToday, &a.Comment, &a.Origin, &a.Category,
		&a.ReadDate, &a.LastSeen, &a.BirthDate, &a.Sex, &a.Breed,
		&a.Diagnosis, &a.Lot, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
