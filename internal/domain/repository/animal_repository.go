package repository

import "github.com/tu-usuario/campo-registros/internal/domain/entity"

// AnimalRepository define el puerto de persistencia para Animal (DIP).
type AnimalRepository interface {
	Create(animal *entity.Animal) error
	GetByID(id int64) (*entity.Animal, error)
	// GetByTag busca por caravana actual normalizada; (nil, nil) si no hay.
	GetByTag(tag string) (*entity.Animal, error)
	Update(animal *entity.Animal) error
	// List devuelve los animales ordenados por id descendente (más nuevos
	// primero); filter (opcional) es una subcadena case-insensitive sobre
	// caravana actual/anterior, categoría y lote.
	List(filter string) ([]*entity.Animal, error)
	Delete(id int64) error
}
