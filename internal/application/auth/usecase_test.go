package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/internal/domain/entity"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *entity.User {
	t.Helper()
	hash := ""
	if password != "" {
		var err error
		hash, err = auth.HashPassword(password)
		require.NoError(t, err)
	}
	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "peon@campo.com", "secreto", true)
	uc := auth.NewAuthUseCase(repo)

	u, err := uc.Login(dto.LoginForm{Email: "  Peon@Campo.com ", Password: "secreto"})
	require.NoError(t, err, "el email se normaliza antes de buscar")
	assert.Equal(t, "peon@campo.com", u.Email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "peon@campo.com", "secreto", true)
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Login(dto.LoginForm{Email: "peon@campo.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginForm{Email: "nadie@campo.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

// Un usuario sin hash (el admin provisorio) nunca autentica, mande lo que
// mande: ni siquiera con la contraseña vacía.
func TestLogin_SinHashNuncaAutentica(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "provisorio@campo.com", "", true)
	uc := auth.NewAuthUseCase(repo)

	for _, pw := range []string{"", "cualquiera", "provisorio@campo.com"} {
		_, err := uc.Login(dto.LoginForm{Email: "provisorio@campo.com", Password: pw})
		assert.ErrorIs(t, err, domain.ErrBadCredentials, "password=%q", pw)
	}
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "baja@campo.com", "secreto", false)
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Login(dto.LoginForm{Email: "baja@campo.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}
