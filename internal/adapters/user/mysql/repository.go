package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	coreuser "firmasecuador/ms_reportes_core/internal/core/user"
)

// formColumns maps signup form field names to seg_maeusuario column names.
var formColumns = map[string]string{
	"usuid":             "USUIDENTIFICACION",
	"usuclave":          "USUCLAVE",
	"usuruci":           "USURUCI",
	"usuapellido":       "USUAPELLIDO",
	"usunombre":         "USUNOMBRE",
	"comcodigo":         "COMCODIGO",
	"usuperfil":         "USUPERFIL",
	"usuFechainicio":    "USUFECHAINICIO",
	"usuFechafinal":     "USUFECHAFINAL",
	"nivel":             "NIVEL",
	"direccion":         "DIRECCION",
	"perfil_codigo":     "PERFIL_CODIGO",
	"ven_codigo":        "VEN_CODIGO",
	"telefono":          "telefono",
	"correo":            "correo",
	"horaIngreso":       "horaIngreso",
	"id_f":              "id_f",
	"bod_codigo":        "BOD_CODIGO",
	"lazzate":           "LAZZATE",
	"empresa":           "EMPRESA",
	"pto_emision":       "PTO_EMISION",
	"nuevo_usr":         "nuevo_usr",
	"regalo":            "regalo",
	"firma_un_anio":     "firma_un_anio",
	"puntos_reclamados": "puntos_reclamados",
}

// columnNames is the set of raw column names accepted as-is, for callers
// that send table columns instead of form fields.
var columnNames = func() map[string]bool {
	set := make(map[string]bool, len(formColumns))
	for _, col := range formColumns {
		set[col] = true
	}
	return set
}()

// Repository implements user.Repository over the seg_maeusuario table.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRepository(db *sql.DB, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

const userSelect = `SELECT USUIDENTIFICACION, USUNOMBRE,
	COALESCE(USUAPELLIDO, ''), COALESCE(USUPERFIL, ''),
	COALESCE(correo, ''), COALESCE(telefono, ''), COALESCE(EMPRESA, '')
	FROM seg_maeusuario`

func (r *Repository) FindByID(ctx context.Context, identificacion string) (*coreuser.User, error) {
	row := r.db.QueryRowContext(ctx, userSelect+" WHERE USUIDENTIFICACION = ?", identificacion)
	return scanUser(row)
}

func (r *Repository) Validate(ctx context.Context, identificacion, clave string) (*coreuser.User, error) {
	row := r.db.QueryRowContext(ctx,
		userSelect+" WHERE USUIDENTIFICACION = ? AND USUCLAVE = ?",
		identificacion, clave)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*coreuser.User, error) {
	var u coreuser.User
	err := row.Scan(&u.Identificacion, &u.Nombre, &u.Apellido, &u.Perfil,
		&u.Correo, &u.Telefono, &u.Empresa)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}
	return &u, nil
}

// Create inserts a user built from the supplied fields. Unknown keys are
// dropped rather than rejected; the form sends more fields than the table
// version in every environment accepts.
func (r *Repository) Create(ctx context.Context, fields map[string]any) error {
	columns, values := mapFields(fields)
	if len(columns) == 0 {
		return errors.New("No hay campos válidos para crear el usuario")
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO seg_maeusuario (%s) VALUES (%s)",
		strings.Join(columns, ", "), placeholders)

	if _, err := r.db.ExecContext(ctx, query, values...); err != nil {
		r.log.Error("insert user failed", "error", err, "columns", len(columns))
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// mapFields translates form field names to column names, passing through
// keys that already are column names.
func mapFields(fields map[string]any) ([]string, []any) {
	// Payloads exported straight from the table carry column-name keys.
	hasDBKeys := false
	if _, ok := fields["USUIDENTIFICACION"]; ok {
		if _, ok := fields["USUCLAVE"]; ok {
			hasDBKeys = true
		}
	}

	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	appendField := func(col string, v any) {
		if seen[col] {
			return
		}
		seen[col] = true
		columns = append(columns, col)
		values = append(values, v)
	}

	if hasDBKeys {
		for key, v := range fields {
			if columnNames[key] {
				appendField(key, v)
			}
		}
		return columns, values
	}

	for key, v := range fields {
		if col, ok := formColumns[key]; ok {
			appendField(col, v)
		} else if columnNames[key] {
			appendField(key, v)
		}
	}
	return columns, values
}
