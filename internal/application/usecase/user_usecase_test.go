package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain"
)

func TestUserCreate_NormalizaEmailYHashea(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	u, err := uc.Create(dto.UserForm{Email: " Peon@Campo.COM ", Password: "secreto", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "peon@campo.com", u.Email)
	assert.NotEqual(t, "secreto", u.PasswordHash, "nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreto")))
}

func TestUserCreate_Validaciones(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.UserForm{Email: "uno@campo.com", Password: "p", IsActive: true})
	require.NoError(t, err)

	cases := []dto.UserForm{
		{Email: "", Password: "p"},
		{Email: "dos@campo.com", Password: ""},
		{Email: "uno@campo.com", Password: "p"},  // duplicado
		{Email: "UNO@campo.com", Password: "p"},  // duplicado tras normalizar
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		_, isValidation := domain.IsValidation(err)
		assert.True(t, isValidation, "Create(%+v) debe fallar con validación", in)
	}
}

func TestUserUpdate_PasswordVaciaConserva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.Create(dto.UserForm{Email: "uno@campo.com", Password: "original", IsActive: true})
	require.NoError(t, err)
	hashBefore := u.PasswordHash

	upd, err := uc.Update(u.ID, dto.UserForm{Email: "uno@campo.com", IsAdmin: true, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, hashBefore, upd.PasswordHash, "sin password nueva el hash no cambia")
	assert.True(t, upd.IsAdmin)

	upd, err = uc.Update(u.ID, dto.UserForm{Email: "uno@campo.com", Password: "nueva", IsActive: true})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(upd.PasswordHash), []byte("nueva")))
}

func TestUserUpdate_EmailExcluyePropiaFila(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.Create(dto.UserForm{Email: "uno@campo.com", Password: "p", IsActive: true})
	require.NoError(t, err)
	_, err = uc.Create(dto.UserForm{Email: "dos@campo.com", Password: "p", IsActive: true})
	require.NoError(t, err)

	_, err = uc.Update(u.ID, dto.UserForm{Email: "uno@campo.com", IsActive: true})
	assert.NoError(t, err)

	_, err = uc.Update(u.ID, dto.UserForm{Email: "dos@campo.com", IsActive: true})
	_, isValidation := domain.IsValidation(err)
	assert.True(t, isValidation)
}

// Un admin jamás puede borrar su propia cuenta.
func TestUserDelete_RechazaAutoBorrado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin, err := uc.Create(dto.UserForm{Email: "admin@campo.com", Password: "p", IsAdmin: true, IsActive: true})
	require.NoError(t, err)
	otro, err := uc.Create(dto.UserForm{Email: "otro@campo.com", Password: "p", IsActive: true})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(admin.ID, admin.ID), domain.ErrSelfDelete)

	assert.NoError(t, uc.Delete(otro.ID, admin.ID))
	assert.ErrorIs(t, uc.Delete(otro.ID, admin.ID), domain.ErrNotFound)
}

func TestUserToggle(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.Create(dto.UserForm{Email: "uno@campo.com", Password: "p", IsActive: true})
	require.NoError(t, err)

	off, err := uc.Toggle(u.ID)
	require.NoError(t, err)
	assert.False(t, off.IsActive)
}

func TestUserList_OrdenPorID(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	for _, email := range []string{"a@campo.com", "b@campo.com", "c@campo.com"} {
		_, err := uc.Create(dto.UserForm{Email: email, Password: "p", IsActive: true})
		require.NoError(t, err)
	}

	list, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a@campo.com", list[0].Email, "id ascendente")

	filtered, err := uc.List("b@")
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}
