package dto

// Formularios crudos tal como llegan del navegador: todo texto, sin tipar.
// La validación y el tipado ocurren en los casos de uso.

// LoginForm credenciales del formulario de ingreso.
type LoginForm struct {
	Email    string
	Password string
}

// SetupForm alta del administrador inicial.
type SetupForm struct {
	Email    string
	Password string
	Confirm  string
}

// CategoryForm alta/edición de categoría.
type CategoryForm struct {
	Name        string
	DailyGainKg string
}

// UserForm alta/edición de usuario. Password vacío en edición significa
// "no cambiar la contraseña".
type UserForm struct {
	Email    string
	Password string
	IsAdmin  bool
	IsActive bool
}

// AnimalForm alta/edición de animal; los campos de fecha vienen en DD/MM/AA
// y los pesos como texto con punto o coma decimal.
type AnimalForm struct {
	TagCurrent     string
	TagPrevious    string
	Weight         string
	WeighDate      string
	EstWeightToday string // vacío = calcular a partir del peso y la categoría
	Comment        string
	Origin         string
	Category       string
	ReadDate       string
	LastSeen       string
	BirthDate      string
	Sex            string
	Breed          string
	Diagnosis      string
	Lot            string
}
