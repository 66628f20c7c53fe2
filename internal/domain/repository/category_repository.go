package repository

import "github.com/tu-usuario/campo-registros/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// No hay Delete: las categorías se desactivan para preservar el historial de
// los animales que las referencian por nombre.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	// GetByName busca por nombre exacto sin importar el estado activo;
	// devuelve (nil, nil) si no existe.
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve todas las categorías; filter (opcional) es una subcadena
	// case-insensitive sobre el nombre. El orden final lo impone el caso de
	// uso con colación española.
	List(filter string) ([]*entity.Category, error)
	ListActive() ([]*entity.Category, error)
}
