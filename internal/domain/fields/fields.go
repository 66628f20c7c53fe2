package fields

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formato de fecha usado en todos los formularios: día/mes/año de dos dígitos.
const DateLayout = "DD/MM/AA"

// Sexos válidos para un animal.
const (
	SexMacho  = "M"
	SexHembra = "H"
)

// Breeds razas aceptadas para el campo breed. Lista fija; cualquier otro
// valor no vacío se rechaza en validación.
var Breeds = []string{
	"Angus",
	"Hereford",
	"Braford",
	"Brangus",
	"Limousin",
	"Charolais",
	"Holando",
	"Criollo",
	"Cruza",
}

var (
	tagPattern    = regexp.MustCompile(`^[0-9 ]+$`)
	weightPattern = regexp.MustCompile(`^[0-9]{1,4}([.,][0-9])?$`)
	datePattern   = regexp.MustCompile(`^([0-9]{2})/([0-9]{2})/([0-9]{2})$`)
)

// ParseTag normaliza una caravana: recorta espacios, exige solo dígitos y
// espacios, y colapsa corridas internas de espacios a uno. Devuelve ok=false
// si la entrada queda vacía o contiene otros caracteres.
func ParseTag(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || !tagPattern.MatchString(s) {
		return "", false
	}
	return strings.Join(strings.Fields(s), " "), true
}

// ParseWeight interpreta un peso en kilogramos: 1 a 4 dígitos enteros y un
// decimal opcional separado por punto o coma. Vacío es "sin valor" (ok=true,
// Valid=false); cualquier otra cosa que no cumpla el formato es inválida.
func ParseWeight(raw string) (decimal.NullDecimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}, true
	}
	if !weightPattern.MatchString(s) {
		return decimal.NullDecimal{}, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NullDecimal{Decimal: d.Round(1), Valid: true}, true
}

// ParseDate interpreta una fecha DD/MM/AA estricta. Vacío es "sin fecha"
// (nil, ok=true). El siglo de los años de dos dígitos queda fijado aquí:
// 00–68 → 20xx, 69–99 → 19xx, la misma ventana en parseo y formateo para que
// el ida y vuelta con FormatDate sea exacto.
func ParseDate(raw string) (*time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, true
	}
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	day := atoi2(m[1])
	month := atoi2(m[2])
	year := expandYear(atoi2(m[3]))

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza desbordes (32/01 → 01/02); rechazarlos.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return nil, false
	}
	return &t, true
}

// FormatDate es la inversa de ParseDate para mostrar en pantalla; una fecha
// ausente se muestra como cadena vacía.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/06")
}

// Truncate recorta espacios y trunca en silencio a maxLen caracteres (runas,
// no bytes). El desborde no es un error: la política es truncar, no rechazar.
func Truncate(raw string, maxLen int) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen])
	}
	return s
}

// ValidSex acepta M, H o vacío (sin dato).
func ValidSex(s string) bool {
	return s == "" || s == SexMacho || s == SexHembra
}

// ValidBreed acepta una raza de la lista fija o vacío (sin dato).
func ValidBreed(s string) bool {
	if s == "" {
		return true
	}
	for _, b := range Breeds {
		if b == s {
			return true
		}
	}
	return false
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func expandYear(yy int) int {
	if yy <= 68 {
		return 2000 + yy
	}
	return 1900 + yy
}
