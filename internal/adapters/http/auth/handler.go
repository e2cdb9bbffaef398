package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appauth "firmasecuador/ms_reportes_core/internal/application/auth"
	infrahttp "firmasecuador/ms_reportes_core/internal/infrastructure/http"
)

// Handler exposes login and signup over HTTP.
type Handler struct {
	service *appauth.Service
	log     *slog.Logger
}

func NewHandler(service *appauth.Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

type loginRequest struct {
	Usuario string `json:"Usuario"`
	Clave   string `json:"Clave"`
}

// Login handles POST /api/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil, h.log)
		return
	}
	if req.Usuario == "" || req.Clave == "" {
		infrahttp.WriteError(w, http.StatusBadRequest, "Usuario y Clave son requeridos", nil, h.log)
		return
	}

	result, err := h.service.Login(r.Context(), req.Usuario, req.Clave)
	if err != nil {
		if errors.Is(err, appauth.ErrInvalidCredentials) {
			infrahttp.WriteError(w, http.StatusUnauthorized, "Usuario o Clave incorrectos", nil, h.log)
			return
		}
		h.log.Error("login failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError, "Error interno del servidor", nil, h.log)
		return
	}

	infrahttp.WriteJSON(w, http.StatusOK, result, h.log)
}

// Signup handles POST /api/signup. The payload may use either form field
// names or table column names.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil, h.log)
		return
	}
	if !hasIdentification(fields) {
		infrahttp.WriteError(w, http.StatusBadRequest, "USUIDENTIFICACION es requerido", nil, h.log)
		return
	}

	if err := h.service.Signup(r.Context(), fields); err != nil {
		if errors.Is(err, appauth.ErrUserExists) {
			infrahttp.WriteError(w, http.StatusConflict, "El usuario ya existe", nil, h.log)
			return
		}
		h.log.Error("signup failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError, "Error interno del servidor", nil, h.log)
		return
	}

	infrahttp.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Usuario creado"}, h.log)
}

// hasIdentification mirrors the service's lookup: only a non-empty string
// counts, so a numeric payload fails here as a 400 instead of deeper in.
func hasIdentification(fields map[string]any) bool {
	for _, key := range []string{"usuid", "USUIDENTIFICACION"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return true
		}
	}
	return false
}
