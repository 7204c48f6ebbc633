// Package mindicador obtiene el valor del dólar observado desde mindicador.cl.
package mindicador

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

var _ ports.ProveedorTasa = (*Client)(nil)

// URLDolar endpoint público por defecto.
const URLDolar = "https://mindicador.cl/api/dolar"

// Client consulta la API pública. No requiere token.
type Client struct {
	url        string
	httpClient *http.Client
	ahora      func() time.Time
}

// NewClient construye el cliente; url vacía usa URLDolar.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = URLDolar
	}
	return &Client{url: url, httpClient: &http.Client{Timeout: timeout}, ahora: time.Now}
}

type indicador struct {
	Nombre       string `json:"nombre"`
	UnidadMedida string `json:"unidad_medida"`
	Serie        []struct {
		Fecha time.Time       `json:"fecha"`
		Valor json.RawMessage `json:"valor"`
	} `json:"serie"`
}

// ValorDolar devuelve el primer valor de la serie. Un valor no positivo o no numérico es error.
func (c *Client) ValorDolar(ctx context.Context) (*entity.ValorDolar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("mindicador: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mindicador: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: mindicador HTTP %d", domain.ErrTasaNoDisponible, resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("mindicador: leer respuesta: %w", err)
	}

	var ind indicador
	if err := json.Unmarshal(raw, &ind); err != nil {
		return nil, fmt.Errorf("%w: respuesta inesperada: %v", domain.ErrTasaNoDisponible, err)
	}
	if len(ind.Serie) == 0 {
		return nil, fmt.Errorf("%w: serie vacía", domain.ErrTasaNoDisponible)
	}
	valor, err := decimal.NewFromString(trimComillas(string(ind.Serie[0].Valor)))
	if err != nil || !valor.IsPositive() {
		return nil, fmt.Errorf("%w: valor de dólar no válido %s", domain.ErrTasaNoDisponible, ind.Serie[0].Valor)
	}
	fuente := ind.Nombre
	if fuente == "" {
		fuente = "mindicador.cl"
	}
	return &entity.ValorDolar{
		Valor:      valor,
		Fecha:      ind.Serie[0].Fecha,
		ObtenidoEn: c.ahora(),
		Fuente:     fuente,
	}, nil
}

func trimComillas(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
