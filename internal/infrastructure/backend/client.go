// Package backend es el adaptador HTTP hacia la API REST del negocio (auth, productos,
// usuarios, ventas y reportes).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
)

// Verificar en tiempo de compilación que Client implementa ports.Backend.
var _ ports.Backend = (*Client)(nil)

const (
	limiteJSON    = 8 << 20
	limiteArchivo = 64 << 20
)

// ErrRespuestaExcesiva el cuerpo supera el límite de lectura; nunca se entrega truncado.
var ErrRespuestaExcesiva = errors.New("respuesta del backend excede el límite")

// Client adaptador de ports.Backend sobre net/http. No reintenta: un fallo vuelve al caso de uso.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	ahora      func() time.Time
}

// NewClient construye el adaptador. timeout aplica a cada petición completa.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
		ahora:      time.Now,
	}
}

// UpstreamError respuesta no 2xx del backend.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

// Is permite errors.Is contra los errores de dominio equivalentes al status.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case domain.ErrUpstream:
		return true
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// ── Transporte ────────────────────────────────────────────────────────────────

type peticion struct {
	op      string
	metodo  string
	ruta    string
	token   string
	query   url.Values
	cuerpo  any
	publica bool
	limite  int64
}

type respuesta struct {
	cuerpo []byte
	header http.Header
}

func (c *Client) do(ctx context.Context, p peticion) (resp *respuesta, err error) {
	if !p.publica && strings.TrimSpace(p.token) == "" {
		return nil, domain.ErrMissingToken
	}
	defer func() { c.metrics.Backend(p.op, err) }()

	u := c.baseURL + p.ruta
	if len(p.query) > 0 {
		u += "?" + p.query.Encode()
	}

	var body io.Reader
	if p.cuerpo != nil {
		raw, err := json.Marshal(p.cuerpo)
		if err != nil {
			return nil, fmt.Errorf("backend %s: serializar cuerpo: %w", p.op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, p.metodo, u, body)
	if err != nil {
		return nil, fmt.Errorf("backend %s: crear request: %w", p.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !p.publica {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	inicio := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend %s: cancelado: %w", p.op, ctx.Err())
		}
		return nil, fmt.Errorf("backend %s: llamada HTTP fallida: %w", p.op, err)
	}
	defer httpResp.Body.Close()

	limite := p.limite
	if limite == 0 {
		limite = limiteJSON
	}
	// un byte extra distingue "justo en el límite" de "excedido"
	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, limite+1))
	if err != nil {
		return nil, fmt.Errorf("backend %s: leer respuesta: %w", p.op, err)
	}
	if int64(len(raw)) > limite {
		return nil, fmt.Errorf("backend %s: %w (%d bytes): %w", p.op, ErrRespuestaExcesiva, limite, domain.ErrUpstream)
	}

	log.Debug().
		Str("op", p.op).
		Str("method", p.metodo).
		Str("path", p.ruta).
		Int("status", httpResp.StatusCode).
		Dur("latency", time.Since(inicio)).
		Msg("backend")

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &UpstreamError{Status: httpResp.StatusCode, Message: mensajeError(raw, httpResp.StatusCode)}
	}
	return &respuesta{cuerpo: raw, header: httpResp.Header}, nil
}

// mensajeError toma {message} o {error} del cuerpo; si no, el texto del status.
func mensajeError(raw []byte, status int) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return http.StatusText(status)
}

// ── Decodificación tolerante ──────────────────────────────────────────────────

type sobre struct {
	Data    json.RawMessage `json:"data"`
	Success *bool           `json:"success"`
	Message string          `json:"message"`
}

func esNulo(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}

// decodeLista acepta [...], {data: [...]} y {success, data}. Sin datos => lista vacía.
func decodeLista[T any](op string, raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if esNulo(raw) {
		return []T{}, nil
	}
	if raw[0] != '[' {
		var s sobre
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("backend %s: respuesta inesperada: %w", op, err)
		}
		if s.Success != nil && !*s.Success {
			return nil, &UpstreamError{Status: http.StatusOK, Message: s.Message}
		}
		if esNulo(s.Data) {
			return []T{}, nil
		}
		raw = s.Data
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("backend %s: respuesta inesperada: %w", op, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// decodeObjeto acepta el objeto directo o envuelto en {data: {...}}. Cuerpo vacío => nil.
func decodeObjeto[T any](op string, raw []byte) (*T, error) {
	if esNulo(raw) {
		return nil, nil
	}
	var s sobre
	if err := json.Unmarshal(raw, &s); err == nil {
		if s.Success != nil && !*s.Success {
			return nil, &UpstreamError{Status: http.StatusOK, Message: s.Message}
		}
		if d := bytes.TrimSpace(s.Data); len(d) > 0 && d[0] == '{' {
			raw = d
		}
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("backend %s: respuesta inesperada: %w", op, err)
	}
	return &out, nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.LoginResult, error) {
	resp, err := c.do(ctx, peticion{
		op: "login", metodo: http.MethodPost, ruta: "/api/auth/login", publica: true,
		cuerpo: map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}
	res, err := decodeObjeto[entity.LoginResult]("login", resp.cuerpo)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Token == "" {
		return nil, errors.New("backend login: respuesta sin token")
	}
	return res, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListarProductos GET /api/productos con filtros opcionales.
func (c *Client) ListarProductos(ctx context.Context, token string, f entity.FiltroProductos) ([]entity.Producto, error) {
	q := url.Values{}
	setSiNoVacio(q, "almacen_id", f.AlmacenID.String())
	setSiNoVacio(q, "tipo_producto_id", f.TipoProductoID.String())
	setSiNoVacio(q, "search_name", f.Nombre)
	setSiNoVacio(q, "search_sku", f.SKU)
	resp, err := c.do(ctx, peticion{op: "productos_listar", metodo: http.MethodGet, ruta: "/api/productos", token: token, query: q})
	if err != nil {
		return nil, err
	}
	return decodeLista[entity.Producto]("productos_listar", resp.cuerpo)
}

// CrearProducto POST /api/productos.
func (c *Client) CrearProducto(ctx context.Context, token string, in entity.ProductoInput) (*entity.Producto, error) {
	resp, err := c.do(ctx, peticion{op: "productos_crear", metodo: http.MethodPost, ruta: "/api/productos", token: token, cuerpo: in})
	if err != nil {
		return nil, err
	}
	return decodeObjeto[entity.Producto]("productos_crear", resp.cuerpo)
}

// ActualizarProducto PUT /api/productos/:id.
func (c *Client) ActualizarProducto(ctx context.Context, token string, id entity.ID, in entity.ProductoInput) (*entity.Producto, error) {
	resp, err := c.do(ctx, peticion{op: "productos_actualizar", metodo: http.MethodPut, ruta: "/api/productos/" + url.PathEscape(id.String()), token: token, cuerpo: in})
	if err != nil {
		return nil, err
	}
	return decodeObjeto[entity.Producto]("productos_actualizar", resp.cuerpo)
}

// EliminarProducto DELETE /api/productos/:id.
func (c *Client) EliminarProducto(ctx context.Context, token string, id entity.ID) error {
	_, err := c.do(ctx, peticion{op: "productos_eliminar", metodo: http.MethodDelete, ruta: "/api/productos/" + url.PathEscape(id.String()), token: token})
	return err
}

// ListarTiposProducto GET /api/productos/tipo_producto.
func (c *Client) ListarTiposProducto(ctx context.Context, token string) ([]entity.TipoProducto, error) {
	resp, err := c.do(ctx, peticion{op: "tipos_producto", metodo: http.MethodGet, ruta: "/api/productos/tipo_producto", token: token})
	if err != nil {
		return nil, err
	}
	return decodeLista[entity.TipoProducto]("tipos_producto", resp.cuerpo)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// ListarUsuarios GET /api/users?almacen_id.
func (c *Client) ListarUsuarios(ctx context.Context, token string, almacenID entity.ID) ([]entity.Usuario, error) {
	q := url.Values{}
	setSiNoVacio(q, "almacen_id", almacenID.String())
	resp, err := c.do(ctx, peticion{op: "usuarios_listar", metodo: http.MethodGet, ruta: "/api/users", token: token, query: q})
	if err != nil {
		return nil, err
	}
	return decodeLista[entity.Usuario]("usuarios_listar", resp.cuerpo)
}

// CrearUsuario POST /api/users (el cuerpo va sin envolver).
func (c *Client) CrearUsuario(ctx context.Context, token string, in entity.UsuarioInput) (*entity.Usuario, error) {
	resp, err := c.do(ctx, peticion{op: "usuarios_crear", metodo: http.MethodPost, ruta: "/api/users", token: token, cuerpo: in})
	if err != nil {
		return nil, err
	}
	return decodeObjeto[entity.Usuario]("usuarios_crear", resp.cuerpo)
}

// ActualizarUsuario PUT /api/users/:id.
func (c *Client) ActualizarUsuario(ctx context.Context, token string, id entity.ID, in entity.UsuarioInput) (*entity.Usuario, error) {
	resp, err := c.do(ctx, peticion{op: "usuarios_actualizar", metodo: http.MethodPut, ruta: "/api/users/" + url.PathEscape(id.String()), token: token, cuerpo: in})
	if err != nil {
		return nil, err
	}
	return decodeObjeto[entity.Usuario]("usuarios_actualizar", resp.cuerpo)
}

// EliminarUsuario DELETE /api/users/:id.
func (c *Client) EliminarUsuario(ctx context.Context, token string, id entity.ID) error {
	_, err := c.do(ctx, peticion{op: "usuarios_eliminar", metodo: http.MethodDelete, ruta: "/api/users/" + url.PathEscape(id.String()), token: token})
	return err
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// ListarVentas GET /api/ventas/almacen/:almacenId.
func (c *Client) ListarVentas(ctx context.Context, token string, almacenID entity.ID) ([]entity.Venta, error) {
	if almacenID.Empty() {
		return nil, domain.ErrSinAlmacen
	}
	resp, err := c.do(ctx, peticion{op: "ventas_listar", metodo: http.MethodGet, ruta: "/api/ventas/almacen/" + url.PathEscape(almacenID.String()), token: token})
	if err != nil {
		return nil, err
	}
	return decodeLista[entity.Venta]("ventas_listar", resp.cuerpo)
}

// CrearVenta POST /api/ventas.
func (c *Client) CrearVenta(ctx context.Context, token string, in entity.NuevaVenta) (*entity.Venta, error) {
	resp, err := c.do(ctx, peticion{op: "ventas_crear", metodo: http.MethodPost, ruta: "/api/ventas", token: token, cuerpo: in})
	if err != nil {
		return nil, err
	}
	return decodeObjeto[entity.Venta]("ventas_crear", resp.cuerpo)
}

// ListarTiposVenta GET /api/tipos-venta.
func (c *Client) ListarTiposVenta(ctx context.Context, token string) ([]entity.TipoVenta, error) {
	resp, err := c.do(ctx, peticion{op: "tipos_venta", metodo: http.MethodGet, ruta: "/api/tipos-venta", token: token})
	if err != nil {
		return nil, err
	}
	return decodeLista[entity.TipoVenta]("tipos_venta", resp.cuerpo)
}

// DescargarReporte GET /api/ventas/reporte/:almacenId?fechaInicio&fechaFin.
func (c *Client) DescargarReporte(ctx context.Context, token string, almacenID entity.ID, rango periodo.Rango) (*entity.Archivo, error) {
	if almacenID.Empty() {
		return nil, domain.ErrSinAlmacen
	}
	q := url.Values{}
	setSiNoVacio(q, "fechaInicio", rango.Inicio)
	setSiNoVacio(q, "fechaFin", rango.Fin)
	resp, err := c.do(ctx, peticion{
		op: "reporte", metodo: http.MethodGet, ruta: "/api/ventas/reporte/" + url.PathEscape(almacenID.String()),
		token: token, query: q, limite: limiteArchivo,
	})
	if err != nil {
		return nil, err
	}
	ct := resp.header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &entity.Archivo{
		Nombre:      NombreArchivo(resp.header.Get("Content-Disposition"), periodo.Hoy(c.ahora())),
		ContentType: ct,
		Contenido:   resp.cuerpo,
	}, nil
}

var reFilename = regexp.MustCompile(`filename="?([^";]*)"?`)

// NombreArchivo nombre de descarga desde Content-Disposition; si no viene, reporte-ventas-<hoy>.xlsx.
func NombreArchivo(contentDisposition, hoy string) string {
	nombre := ""
	if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
		nombre = params["filename"]
	} else if m := reFilename.FindStringSubmatch(contentDisposition); m != nil {
		nombre = m[1]
	}
	nombre = strings.TrimSpace(nombre)
	if nombre != "" {
		nombre = path.Base(strings.ReplaceAll(nombre, "\\", "/"))
	}
	if nombre == "" || nombre == "." || nombre == "/" {
		return fmt.Sprintf("reporte-ventas-%s.xlsx", hoy)
	}
	return nombre
}

func setSiNoVacio(q url.Values, k, v string) {
	if v = strings.TrimSpace(v); v != "" {
		q.Set(k, v)
	}
}
