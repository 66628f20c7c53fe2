package auth

import (
	"strings"
	"time"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

// SetupState estado del flujo de configuración inicial.
type SetupState int

const (
	// StateNoAdmin no existe ninguna fila admin. Solo se observa antes de
	// que corra el bootstrap de arranque.
	StateNoAdmin SetupState = iota
	// StatePending existe el admin provisorio pero sin contraseña: toda la
	// aplicación redirige a la pantalla de setup.
	StatePending
	// StateReady el admin tiene contraseña; el setup queda inalcanzable.
	// La transición es de ida: no hay camino de vuelta a StatePending.
	StateReady
)

// SetupUseCase máquina de estados del alta del administrador inicial.
type SetupUseCase struct {
	userRepo repository.UserRepository
}

// NewSetupUseCase construye el caso de uso de setup.
func NewSetupUseCase(userRepo repository.UserRepository) *SetupUseCase {
	return &SetupUseCase{userRepo: userRepo}
}

// State consulta el estado actual del flujo contra la base.
func (uc *SetupUseCase) State() (SetupState, error) {
	admin, err := uc.userRepo.FindAdmin()
	if err != nil {
		return StateNoAdmin, err
	}
	if admin == nil {
		return StateNoAdmin, nil
	}
	if !admin.HasPassword() {
		return StatePending, nil
	}
	return StateReady, nil
}

// Complete procesa el formulario de setup. En StatePending asigna email y
// contraseña al admin provisorio; si el email enviado pertenece a otro
// usuario ya existente, esa cuenta se promueve a admin y el provisorio se
// elimina. Fuera de StatePending devuelve ErrSetupDone.
func (uc *SetupUseCase) Complete(in dto.SetupForm) error {
	admin, err := uc.userRepo.FindAdmin()
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotFound
	}
	if admin.HasPassword() {
		return domain.ErrSetupDone
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return domain.Validation("email y contraseña son requeridos")
	}
	if in.Password != in.Confirm {
		return domain.Validation("las contraseñas no coinciden")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return err
	}
	now := time.Now()

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != admin.ID {
		// Promoción: la cuenta ya creada pasa a ser el admin y el
		// provisorio sobra.
		existing.IsAdmin = true
		existing.IsActive = true
		existing.PasswordHash = hash
		existing.UpdatedAt = now
		if err := uc.userRepo.Update(existing); err != nil {
			return err
		}
		return uc.userRepo.Delete(admin.ID)
	}

	admin.Email = email
	admin.PasswordHash = hash
	admin.UpdatedAt = now
	return uc.userRepo.Update(admin)
}
