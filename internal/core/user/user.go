package user

import "context"

// User is a row from the external back-office user table. Only the fields
// the service reads are modeled; signup writes arbitrary table columns
// through the repository's field map.
type User struct {
	Identificacion string
	Nombre         string
	Apellido       string
	Perfil         string
	Correo         string
	Telefono       string
	Empresa        string
}

// Repository abstracts access to the seg_maeusuario table.
type Repository interface {
	// FindByID returns the user with the given identification, or nil when
	// no such user exists.
	FindByID(ctx context.Context, identificacion string) (*User, error)

	// Validate returns the user matching the supplied credentials, or nil
	// when they do not match any row.
	Validate(ctx context.Context, identificacion, clave string) (*User, error)

	// Create inserts a new user from form fields. Keys may be either form
	// names (usuid, usunombre, ...) or table column names.
	Create(ctx context.Context, fields map[string]any) error
}
