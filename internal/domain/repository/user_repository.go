package repository

import "github.com/tu-usuario/campo-registros/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// FindAdmin devuelve la fila admin más antigua, o (nil, nil) si no hay.
	FindAdmin() (*entity.User, error)
	Update(user *entity.User) error
	// List devuelve todos los usuarios ordenados por id ascendente; filter
	// (opcional) es una subcadena case-insensitive sobre el email.
	List(filter string) ([]*entity.User, error)
	Delete(id int64) error
}
