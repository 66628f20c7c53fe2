package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

// UserUseCase administración de usuarios; todas las operaciones son de uso
// exclusivo del admin (la capa web lo garantiza antes de llegar acá).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve los usuarios por id ascendente; filter busca subcadena
// case-insensitive en el email.
func (uc *UserUseCase) List(filter string) ([]*entity.User, error) {
	return uc.repo.List(strings.TrimSpace(filter))
}

// GetByID carga un usuario o ErrNotFound.
func (uc *UserUseCase) GetByID(id int64) (*entity.User, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Create valida y persiste un usuario nuevo con su contraseña hasheada.
func (uc *UserUseCase) Create(in dto.UserForm) (*entity.User, error) {
	email, err := uc.validateEmail(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, domain.Validation("la contraseña es requerida")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update re-valida y persiste un usuario existente. Password vacío conserva
// la contraseña actual.
func (uc *UserUseCase) Update(id int64, in dto.UserForm) (*entity.User, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	email, err := uc.validateEmail(in.Email, id)
	if err != nil {
		return nil, err
	}
	u.Email = email
	u.IsAdmin = in.IsAdmin
	u.IsActive = in.IsActive
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete elimina un usuario. Borrarse a sí mismo nunca está permitido,
// tampoco para un admin.
func (uc *UserUseCase) Delete(id, actingUserID int64) error {
	if id == actingUserID {
		return domain.ErrSelfDelete
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Toggle invierte el estado activo de la cuenta.
func (uc *UserUseCase) Toggle(id int64) (*entity.User, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.IsActive = !u.IsActive
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// validateEmail normaliza a minúsculas y chequea unicidad global,
// excluyendo a excludeID (0 en alta).
func (uc *UserUseCase) validateEmail(raw string, excludeID int64) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.Validation("el email es requerido")
	}
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ID != excludeID {
		return "", domain.Validation("ya existe un usuario con ese email")
	}
	return email, nil
}
