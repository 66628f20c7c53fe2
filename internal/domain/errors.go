package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrBadCredentials  = errors.New("credenciales inválidas")
	ErrAccountInactive = errors.New("cuenta inactiva")
	ErrForbidden       = errors.New("acceso denegado")
	ErrSelfDelete      = errors.New("no podés eliminar tu propia cuenta")
	ErrSetupDone       = errors.New("la configuración inicial ya fue completada")
)

// ValidationError lleva un mensaje de validación apto para mostrar en el
// formulario. Se distingue de los errores de infraestructura con errors.As.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validation construye un ValidationError.
func Validation(msg string) error { return ValidationError(msg) }

// IsValidation indica si err es un error de validación y devuelve su mensaje.
func IsValidation(err error) (string, bool) {
	var v ValidationError
	if errors.As(err, &v) {
		return string(v), true
	}
	return "", false
}
