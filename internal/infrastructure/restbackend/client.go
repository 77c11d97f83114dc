// Package restbackend implementa los puertos de repositorio contra un
// backend REST de recursos genérico (semántica json-server): una colección
// por tipo de recurso con list/get/create/patch/delete estándar.
package restbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmedina/abarrotes-api/internal/domain"
	"github.com/lmedina/abarrotes-api/pkg/logger"
	"github.com/lmedina/abarrotes-api/pkg/metrics"
)

func init() {
	// El backend persiste price/stock/quantity como números JSON;
	// sin esto decimal serializa entrecomillado.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client cliente HTTP del backend de recursos.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout de red configurado.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do ejecuta una petición JSON contra el backend y decodifica la respuesta
// en out (si out no es nil). Mapea los fallos a los errores de dominio:
// 404 -> ErrNotFound; error de transporte o estado inesperado ->
// ErrBackendUnavailable.
func (c *Client) do(ctx context.Context, method, collection, path string, body, out any) error {
	defer metrics.TrackBackendRequest(method, collection)(time.Now())

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend inaccesible")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s devolvió estado %d", domain.ErrBackendUnavailable, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decodificar respuesta de %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
		}
	}
	return nil
}

// flexID identificador numérico que el backend puede devolver como número o
// como string (json-server guarda como string los ids enviados por el
// cliente). Los ids no numéricos quedan en 0 y se ignoran aguas arriba.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexID(n)
	return nil
}

// MarshalJSON emite el id como string: así lo tiene guardado el dataset del
// backend existente y mezclar tipos de id rompería las búsquedas por ruta.
func (f flexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(f), 10))
}
