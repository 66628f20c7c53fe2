package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/domain"
)

func TestCategoryCreate_Basica(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	c, err := uc.Create(dto.CategoryForm{Name: "  Ternero ", DailyGainKg: "0,8"})
	require.NoError(t, err)
	assert.Equal(t, "Ternero", c.Name)
	assert.Equal(t, "0.8", c.DailyGainKg.String())
	assert.True(t, c.IsActive)
}

func TestCategoryCreate_GananciaPorDefecto(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	c, err := uc.Create(dto.CategoryForm{Name: "Vaca"})
	require.NoError(t, err)
	assert.Equal(t, "0.6", c.DailyGainKg.String())
}

func TestCategoryCreate_Validaciones(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CategoryForm{Name: "Novillo"})
	require.NoError(t, err)

	cases := []dto.CategoryForm{
		{Name: ""},
		{Name: "   "},
		{Name: "Novillo"},           // duplicado
		{Name: "X", DailyGainKg: "3.1"},
		{Name: "X", DailyGainKg: "-0.1"},
		{Name: "X", DailyGainKg: "mucho"},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		_, isValidation := domain.IsValidation(err)
		assert.True(t, isValidation, "Create(%+v) debe fallar con validación", in)
	}
}

// La unicidad es global, sin importar el estado: una inactiva también choca.
func TestCategoryCreate_UnicidadIncluyeInactivas(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	c, err := uc.Create(dto.CategoryForm{Name: "Toro"})
	require.NoError(t, err)
	_, err = uc.Toggle(c.ID)
	require.NoError(t, err)

	_, err = uc.Create(dto.CategoryForm{Name: "Toro"})
	_, isValidation := domain.IsValidation(err)
	assert.True(t, isValidation)
}

func TestCategoryUpdate_ExcluyePropiaFila(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	c, err := uc.Create(dto.CategoryForm{Name: "Ternero", DailyGainKg: "0.8"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CategoryForm{Name: "Vaca"})
	require.NoError(t, err)

	// Renombrarse a sí misma no es conflicto; pisar otro nombre sí.
	_, err = uc.Update(c.ID, dto.CategoryForm{Name: "Ternero", DailyGainKg: "0.9"})
	assert.NoError(t, err)

	_, err = uc.Update(c.ID, dto.CategoryForm{Name: "Vaca"})
	_, isValidation := domain.IsValidation(err)
	assert.True(t, isValidation)
}

func TestCategoryUpdate_NoEncontrada(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Update(99, dto.CategoryForm{Name: "Nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryToggle(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	c, err := uc.Create(dto.CategoryForm{Name: "Vaquillona"})
	require.NoError(t, err)

	off, err := uc.Toggle(c.ID)
	require.NoError(t, err)
	assert.False(t, off.IsActive)

	on, err := uc.Toggle(c.ID)
	require.NoError(t, err)
	assert.True(t, on.IsActive)
}

// Orden con colación española: la Ñ va entre la N y la O, no al final.
func TestCategoryList_ColacionEspanola(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	for _, name := range []string{"Overo", "Ñata", "Novillo"} {
		_, err := uc.Create(dto.CategoryForm{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Novillo", list[0].Name)
	assert.Equal(t, "Ñata", list[1].Name)
	assert.Equal(t, "Overo", list[2].Name)
}
