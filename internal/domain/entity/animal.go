package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Animal representa una cabeza de hacienda identificada por su caravana.
// Los campos de texto cortos (Comment, Origin, Diagnosis, Lot) llegan ya
// truncados desde la capa de validación; las fechas ausentes son nil y los
// pesos ausentes NullDecimal sin valor.
type Animal struct {
	ID             int64
	TagCurrent     string // caravana actual, única y normalizada
	TagPrevious    string // caravana anterior, vacío si no hay
	Weight         decimal.NullDecimal
	WeighDate      *time.Time
	EstWeightToday decimal.NullDecimal
	Comment        string
	Origin         string
	Category       string // referencia blanda por nombre a Category
	ReadDate       *time.Time
	LastSeen       *time.Time
	BirthDate      *time.Time
	Sex            string // M, H o vacío
	Breed          string
	Diagnosis      string
	Lot            string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EstimateWeightToday proyecta el último peso conocido al día de hoy usando
// la ganancia diaria indicada: peso + max(0, días transcurridos) * ganancia,
// redondeado a un decimal. Sin peso o sin fecha de pesada no hay estimación.
// Una pesada con fecha futura no descuenta: los días se recortan en cero.
func (a *Animal) EstimateWeightToday(gain decimal.Decimal, today time.Time) decimal.NullDecimal {
	if !a.Weight.Valid || a.WeighDate == nil {
		return decimal.NullDecimal{}
	}
	days := daysBetween(*a.WeighDate, today)
	if days < 0 {
		days = 0
	}
	est := a.Weight.Decimal.Add(gain.Mul(decimal.NewFromInt(days))).Round(1)
	return decimal.NullDecimal{Decimal: est, Valid: true}
}

// daysBetween cuenta días calendario completos de from a to (negativo si
// from es posterior).
func daysBetween(from, to time.Time) int64 {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int64(t.Sub(f).Hours() / 24)
}
