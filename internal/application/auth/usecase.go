package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/internal/domain/repository"
)

// AuthUseCase caso de uso de autenticación: verificación de credenciales.
// La persistencia de la identidad entre requests queda a cargo de la sesión
// en la capa web; acá solo se decide si las credenciales valen.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login verifica email/password y devuelve el usuario autenticado.
// Un usuario sin hash de contraseña (admin provisorio sin completar) nunca
// autentica, sin importar qué password se envíe.
func (uc *AuthUseCase) Login(in dto.LoginForm) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrBadCredentials
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasPassword() {
		return nil, domain.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrBadCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	return user, nil
}

// HashPassword deriva el hash bcrypt de una contraseña en claro.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
