package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"firmasecuador/ms_reportes_core/internal/core/user"
)

var (
	// ErrInvalidCredentials reports a login attempt that matched no user.
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrUserExists reports a signup for an identification already on file.
	ErrUserExists = errors.New("usuario ya existe")
)

// PublicUser is the subset of user fields returned to clients.
type PublicUser struct {
	Identificacion string `json:"USUIDENTIFICACION"`
	Nombre         string `json:"USUNOMBRE"`
}

// LoginResult carries a signed token plus the public user fields.
type LoginResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Config holds token issuance parameters.
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// Service implements the credential shim over the external user table.
type Service struct {
	repo user.Repository
	cfg  Config
	log  *slog.Logger
}

func NewService(repo user.Repository, cfg Config, log *slog.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Login validates credentials and issues an HS256 token.
func (s *Service) Login(ctx context.Context, usuario, clave string) (LoginResult, error) {
	if usuario == "" || clave == "" {
		return LoginResult{}, fmt.Errorf("Usuario y Clave son requeridos")
	}

	found, err := s.repo.Validate(ctx, usuario, clave)
	if err != nil {
		return LoginResult{}, fmt.Errorf("validate user: %w", err)
	}
	if found == nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(found.Identificacion)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", "usuario", found.Identificacion)

	return LoginResult{
		Token: token,
		User: PublicUser{
			Identificacion: found.Identificacion,
			Nombre:         found.Nombre,
		},
	}, nil
}

// Signup creates a new user after a duplicate check. fields may use form
// names or table column names; the repository maps them.
func (s *Service) Signup(ctx context.Context, fields map[string]any) error {
	usuid := identificacionFrom(fields)
	if usuid == "" {
		return fmt.Errorf("USUIDENTIFICACION es requerido")
	}

	existing, err := s.repo.FindByID(ctx, usuid)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	if err := s.repo.Create(ctx, fields); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", "usuario", usuid)
	return nil
}

func (s *Service) issueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.cfg.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func identificacionFrom(fields map[string]any) string {
	for _, key := range []string{"usuid", "USUIDENTIFICACION"} {
		if v, ok := fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
