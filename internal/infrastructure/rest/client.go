// Package rest implementa el Remote Access Gateway: un adaptador fino por
// entidad que traduce llamadas de aplicación a las formas
// request/response del backend e inyecta la credencial bearer leída del
// estado de sesión persistido.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
)

// TokenSource entrega la credencial bearer vigente. Un token vacío no es
// error: simplemente se omite la cabecera y el remoto reporta la falta de
// autorización.
type TokenSource interface {
	Token() string
}

// kvTokenSource lee el token del almacenamiento durable de sesión, igual
// que hacía el interceptor del cliente original en cada petición.
type kvTokenSource struct {
	kv ports.KeyValueStore
}

// TokenFromKV construye un TokenSource sobre la superficie clave-valor.
func TokenFromKV(kv ports.KeyValueStore) TokenSource {
	return kvTokenSource{kv: kv}
}

func (t kvTokenSource) Token() string {
	v, ok, err := t.kv.Get("authToken")
	if err != nil || !ok {
		return ""
	}
	return v
}

// StaticToken es un TokenSource fijo, útil en tests y herramientas.
type StaticToken string

// Token devuelve el token fijo.
func (t StaticToken) Token() string { return string(t) }

// Client transporte HTTP compartido por los gateways de entidad.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente base del gateway.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// request ejecuta la petición y devuelve el estado HTTP y el cuerpo. Los
// fallos de red se reportan como ErrTransport.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("serializar petición %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %v: %w", method, path, err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: leer respuesta: %w", method, path, domain.ErrTransport)
	}
	return resp.StatusCode, raw, nil
}

// do ejecuta la petición, traduce los estados de error a la taxonomía de
// dominio y decodifica el cuerpo en out (si out no es nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	status, raw, err := c.request(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s %s: HTTP %d: %w", method, path, status, domain.ErrUnauthorized)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s %s: HTTP %d: %w", method, path, status, domain.ErrNotFound)
	case status < 200 || status >= 300:
		return fmt.Errorf("%s %s: HTTP %d: %w", method, path, status, domain.ErrTransport)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, domain.ErrInvalidResponse)
	}
	return nil
}

// listQueryValues traduce los parámetros de listado a la query del
// backend: page, per_page y search.
func listQueryValues(q ports.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", fmt.Sprint(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", fmt.Sprint(q.PerPage))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
