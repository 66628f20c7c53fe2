package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de la ganancia diaria de peso (kg/día) y valor por defecto cuando
// el animal referencia una categoría inexistente o inactiva.
var (
	MinDailyGain     = decimal.Zero
	MaxDailyGain     = decimal.NewFromInt(3)
	DefaultDailyGain = decimal.RequireFromString("0.6")
)

// Category representa una categoría de hacienda (Ternero, Novillo, etc.).
// Los animales la referencian por nombre, no por clave foránea: desactivar o
// renombrar una categoría no toca las filas de animales que la usan.
type Category struct {
	ID          int64
	Name        string // único global, activas e inactivas por igual
	IsActive    bool
	DailyGainKg decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GainWithinRange valida que la ganancia diaria esté en [0.0, 3.0].
func GainWithinRange(g decimal.Decimal) bool {
	return g.Cmp(MinDailyGain) >= 0 && g.Cmp(MaxDailyGain) <= 0
}
