package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"firmasecuador/ms_reportes_core/internal/core/user"
	"firmasecuador/ms_reportes_core/internal/testutil"
)

type fakeRepo struct {
	users       map[string]*user.User
	validateErr error
	createErr   error
	created     map[string]any
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) Validate(_ context.Context, id, clave string) (*user.User, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	u := f.users[id]
	if u == nil {
		return nil, nil
	}
	return u, nil
}

func (f *fakeRepo) Create(_ context.Context, fields map[string]any) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = fields
	return nil
}

func testConfig() Config {
	return Config{Secret: "test-secret", Issuer: "test-issuer", TokenTTL: time.Hour}
}

func TestService_Login_Success(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{
		"0911111111": {Identificacion: "0911111111", Nombre: "MARIA"},
	}}
	svc := NewService(repo, testConfig(), testutil.NewNullLogger())

	result, err := svc.Login(context.Background(), "0911111111", "MARIA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.Identificacion != "0911111111" {
		t.Errorf("expected user identification, got %q", result.User.Identificacion)
	}
	if result.User.Nombre != "MARIA" {
		t.Errorf("expected user nombre, got %q", result.User.Nombre)
	}

	// The issued token must verify against the same secret.
	token, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithIssuer("test-issuer"), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		t.Fatalf("issued token did not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["sub"] != "0911111111" {
		t.Errorf("expected sub claim 0911111111, got %v", claims["sub"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("expected non-empty jti claim")
	}
}

func TestService_Login_MissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{}, testConfig(), testutil.NewNullLogger())

	if _, err := svc.Login(context.Background(), "", "clave"); err == nil {
		t.Error("expected error for missing usuario")
	}
	if _, err := svc.Login(context.Background(), "usuario", ""); err == nil {
		t.Error("expected error for missing clave")
	}
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	svc := NewService(&fakeRepo{users: map[string]*user.User{}}, testConfig(), testutil.NewNullLogger())

	_, err := svc.Login(context.Background(), "0911111111", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_RepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := NewService(&fakeRepo{validateErr: repoErr}, testConfig(), testutil.NewNullLogger())

	_, err := svc.Login(context.Background(), "0911111111", "clave")
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}
}

func TestService_Signup_Success(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{}}
	svc := NewService(repo, testConfig(), testutil.NewNullLogger())

	fields := map[string]any{"usuid": "0922222222", "usunombre": "PEDRO"}
	if err := svc.Signup(context.Background(), fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected repository create to be called")
	}
}

func TestService_Signup_MissingIdentification(t *testing.T) {
	svc := NewService(&fakeRepo{}, testConfig(), testutil.NewNullLogger())

	err := svc.Signup(context.Background(), map[string]any{"usunombre": "PEDRO"})
	if err == nil {
		t.Error("expected error for missing identification")
	}
}

func TestService_Signup_DuplicateUser(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{
		"0922222222": {Identificacion: "0922222222"},
	}}
	svc := NewService(repo, testConfig(), testutil.NewNullLogger())

	err := svc.Signup(context.Background(), map[string]any{"usuid": "0922222222"})
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestService_Signup_ColumnNamePayload(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{}}
	svc := NewService(repo, testConfig(), testutil.NewNullLogger())

	err := svc.Signup(context.Background(), map[string]any{"USUIDENTIFICACION": "0933333333"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
