package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/campo-registros/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func animalWeighed(weight string, daysAgo int, today time.Time) *entity.Animal {
	d := today.AddDate(0, 0, -daysAgo)
	return &entity.Animal{
		Weight:    decimal.NullDecimal{Decimal: dec(weight), Valid: true},
		WeighDate: &d,
	}
}

// 500 kg pesados hace 10 días con 0.6 kg/día → 506.0 exactos.
func TestEstimateWeightToday_ProyeccionBasica(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	a := animalWeighed("500", 10, today)

	est := a.EstimateWeightToday(dec("0.6"), today)
	require.True(t, est.Valid)
	assert.Equal(t, "506.0", est.Decimal.StringFixed(1))
}

func TestEstimateWeightToday_SinPesoOSinFecha(t *testing.T) {
	today := time.Now()

	sinPeso := &entity.Animal{WeighDate: &today}
	assert.False(t, sinPeso.EstimateWeightToday(dec("0.6"), today).Valid)

	sinFecha := &entity.Animal{Weight: decimal.NullDecimal{Decimal: dec("400"), Valid: true}}
	assert.False(t, sinFecha.EstimateWeightToday(dec("0.6"), today).Valid)
}

// Pesada de hoy o con fecha futura: la estimación es el peso tal cual, los
// días nunca restan.
func TestEstimateWeightToday_HoyYFuturoNoDescuentan(t *testing.T) {
	today := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	hoy := animalWeighed("450.5", 0, today)
	est := hoy.EstimateWeightToday(dec("0.6"), today)
	require.True(t, est.Valid)
	assert.Equal(t, "450.5", est.Decimal.StringFixed(1))

	futuro := animalWeighed("450.5", -7, today)
	est = futuro.EstimateWeightToday(dec("0.6"), today)
	require.True(t, est.Valid)
	assert.Equal(t, "450.5", est.Decimal.StringFixed(1), "fecha futura no produce ajuste negativo")
}

// La proyección es monótona no decreciente en los días transcurridos para
// una ganancia positiva fija.
func TestEstimateWeightToday_MonotonaEnDias(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	gain := dec("0.6")

	prev := decimal.Zero
	for days := 0; days <= 120; days += 7 {
		a := animalWeighed("300", days, today)
		est := a.EstimateWeightToday(gain, today)
		require.True(t, est.Valid)
		assert.True(t, est.Decimal.Cmp(prev) >= 0,
			"a %d días la estimación no puede bajar (%s < %s)", days, est.Decimal, prev)
		prev = est.Decimal
	}
}

func TestEstimateWeightToday_RedondeaAUnDecimal(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	a := animalWeighed("100", 3, today)

	// 100 + 3*0.25 = 100.75 → 100.8
	est := a.EstimateWeightToday(dec("0.25"), today)
	require.True(t, est.Valid)
	assert.Equal(t, "100.8", est.Decimal.StringFixed(1))
}

func TestGainWithinRange(t *testing.T) {
	assert.True(t, entity.GainWithinRange(dec("0")))
	assert.True(t, entity.GainWithinRange(dec("0.6")))
	assert.True(t, entity.GainWithinRange(dec("3")))
	assert.False(t, entity.GainWithinRange(dec("3.1")))
	assert.False(t, entity.GainWithinRange(dec("-0.1")))
}
