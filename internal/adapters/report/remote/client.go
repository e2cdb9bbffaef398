package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	corereport "firmasecuador/ms_reportes_core/internal/core/report"
	"firmasecuador/ms_reportes_core/internal/infrastructure/cache"
	ctxutil "firmasecuador/ms_reportes_core/internal/infrastructure/context"
	infrahttp "firmasecuador/ms_reportes_core/internal/infrastructure/http"
	"firmasecuador/ms_reportes_core/internal/infrastructure/security"
)

// endpoints maps report types to the paths the remote report API serves
// them under.
var endpoints = map[corereport.Type]string{
	corereport.FacturasFecha:          "/api/facturas/por-fechas",
	corereport.FirmasGeneradasFactura: "/api/firmas/generadas-con-factura",
	corereport.FiltroDistribuidores:   "/api/distribuidores/filtro",
	corereport.FirmasPorEnganchador:   "/api/firmas/por-enganchador",
	corereport.FirmasVendidas:         "/api/firmas/vendidas",
	corereport.PagosFacturadores:      "/api/imprenta/pagos-facturadores",
	corereport.AuditoriaEmisores:      "/api/imprenta/emisores-por-fechas",
	corereport.PlantillasCaducar:      "/api/plantillas/por-caducar",
}

// Config holds connection and credential settings for the remote report API.
type Config struct {
	BaseURL  string
	Username string
	Password string
	TokenTTL time.Duration
	Timeout  time.Duration
}

// Client is a report Source backed by the remote report API. Responses
// come back in whatever envelope each endpoint fancies; the caller's
// normalizer sorts that out.
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     *cache.TokenCache
	log        *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: infrahttp.NewClient(&infrahttp.ClientConfig{
			Timeout: cfg.Timeout,
		}),
		tokens: cache.NewTokenCache(),
		log:    log,
	}
}

// Serves reports whether the remote API backs the given report type.
func (c *Client) Serves(t corereport.Type) bool {
	_, ok := endpoints[t]
	return ok
}

// Fetch implements the report Source contract. A 401 clears the cached
// token and retries once with a fresh one.
func (c *Client) Fetch(ctx context.Context, query appreport.Query) (any, error) {
	path, ok := endpoints[query.Type]
	if !ok {
		return nil, fmt.Errorf("report type %s is not served remotely", query.Type)
	}

	body := requestBody(query)

	raw, status, err := c.post(ctx, path, body, false)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.tokens.Clear()
		raw, status, err = c.post(ctx, path, body, true)
		if err != nil {
			return nil, err
		}
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("report API returned status %d for %s", status, query.Type)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode report response: %w", err)
	}
	return decoded, nil
}

func requestBody(query appreport.Query) map[string]any {
	body := map[string]any{}
	if query.StartDate != "" {
		body["fecha_inicio"] = query.StartDate
	}
	if query.EndDate != "" {
		body["fecha_fin"] = query.EndDate
	}
	if query.Estado != "" {
		body["estado"] = query.Estado
	}
	if query.CodDistribuidor != "" {
		body["cod_dis"] = query.CodDistribuidor
	}
	if query.CodigoEnganchador != "" {
		body["codigo_enganchador"] = query.CodigoEnganchador
	}
	return body
}

func (c *Client) post(ctx context.Context, path string, body map[string]any, forceRefresh bool) ([]byte, int, error) {
	token, err := c.ensureToken(ctx, forceRefresh)
	if err != nil {
		return nil, 0, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request body: %w", err)
	}

	url := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	c.log.Debug("calling report API",
		"url", security.SanitizeURL(url),
		"headers", security.SanitizeHeaders(req.Header),
		"correlation_id", ctxutil.GetCorrelationID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("call report API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read report response: %w", err)
	}
	return raw, resp.StatusCode, nil
}

// ensureToken returns a valid bearer token, logging in when the cached one
// is missing or expired.
func (c *Client) ensureToken(ctx context.Context, forceRefresh bool) (string, error) {
	if !forceRefresh {
		if token, ok := c.tokens.Get(); ok {
			return token, nil
		}
	}

	payload, err := json.Marshal(map[string]string{
		"Usuario": c.cfg.Username,
		"Clave":   c.cfg.Password,
	})
	if err != nil {
		return "", fmt.Errorf("encode login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login to report API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("report API login returned status %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("report API login returned an empty token")
	}

	c.tokens.Set(loginResp.Token, c.cfg.TokenTTL)
	return loginResp.Token, nil
}
