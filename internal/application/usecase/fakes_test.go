package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
)

// backendFalso guarda lo recibido y responde con los valores configurados.
type backendFalso struct {
	mu sync.Mutex

	ventas     []entity.Venta
	errVentas  error
	tipos      []entity.TipoVenta
	errTipos   error
	productos  []entity.Producto
	errProd    error
	usuarios   []entity.Usuario
	errUsuario error
	archivo    *entity.Archivo

	// antesDeVentas se ejecuta dentro de ListarVentas, antes de responder.
	antesDeVentas func()
	// antesDeResponder lo mismo para usuarios, productos y reporte.
	antesDeResponder func()

	llamadasVentas atomic.Int32
	ventaCreada    *entity.NuevaVenta
	filtro         entity.FiltroProductos
	productoInput  *entity.ProductoInput
	usuarioInput   *entity.UsuarioInput
	rango          periodo.Rango
	eliminado      entity.ID
}

func (b *backendFalso) Login(context.Context, string, string) (*entity.LoginResult, error) {
	return nil, domain.ErrUnauthorized
}

func (b *backendFalso) ListarProductos(_ context.Context, token string, filtro entity.FiltroProductos) ([]entity.Producto, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	b.mu.Lock()
	b.filtro = filtro
	b.mu.Unlock()
	b.responder()
	return b.productos, b.errProd
}

func (b *backendFalso) CrearProducto(_ context.Context, _ string, in entity.ProductoInput) (*entity.Producto, error) {
	b.mu.Lock()
	b.productoInput = &in
	b.mu.Unlock()
	return &entity.Producto{ID: "10", Nombre: in.Nombre, AlmacenID: in.AlmacenID, Valor: in.Valor}, nil
}

func (b *backendFalso) ActualizarProducto(_ context.Context, _ string, id entity.ID, in entity.ProductoInput) (*entity.Producto, error) {
	b.mu.Lock()
	b.productoInput = &in
	b.mu.Unlock()
	return &entity.Producto{ID: id, Nombre: in.Nombre, AlmacenID: in.AlmacenID}, nil
}

func (b *backendFalso) EliminarProducto(_ context.Context, _ string, id entity.ID) error {
	b.eliminado = id
	return nil
}

func (b *backendFalso) ListarTiposProducto(context.Context, string) ([]entity.TipoProducto, error) {
	return []entity.TipoProducto{{ID: "1", Nombre: "Bebidas"}}, nil
}

func (b *backendFalso) ListarUsuarios(context.Context, string, entity.ID) ([]entity.Usuario, error) {
	b.responder()
	return b.usuarios, b.errUsuario
}

func (b *backendFalso) CrearUsuario(_ context.Context, _ string, in entity.UsuarioInput) (*entity.Usuario, error) {
	b.usuarioInput = &in
	return &entity.Usuario{ID: "20", Nombre: in.Nombre, Email: in.Email, Rol: in.Rol}, nil
}

func (b *backendFalso) ActualizarUsuario(_ context.Context, _ string, id entity.ID, in entity.UsuarioInput) (*entity.Usuario, error) {
	b.usuarioInput = &in
	return &entity.Usuario{ID: id, Nombre: in.Nombre, Email: in.Email, Rol: in.Rol}, nil
}

func (b *backendFalso) EliminarUsuario(_ context.Context, _ string, id entity.ID) error {
	b.eliminado = id
	return nil
}

func (b *backendFalso) ListarVentas(_ context.Context, token string, almacenID entity.ID) ([]entity.Venta, error) {
	b.llamadasVentas.Add(1)
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	if b.antesDeVentas != nil {
		b.antesDeVentas()
	}
	if b.errVentas != nil {
		return nil, b.errVentas
	}
	out := make([]entity.Venta, 0, len(b.ventas))
	for _, v := range b.ventas {
		if v.AlmacenID == almacenID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (b *backendFalso) CrearVenta(_ context.Context, _ string, in entity.NuevaVenta) (*entity.Venta, error) {
	b.mu.Lock()
	b.ventaCreada = &in
	b.mu.Unlock()
	return &entity.Venta{ID: "99", MontoBruto: entity.MontoDe(in.MontoBruto), TipoVentaID: in.TipoVentaID, AlmacenID: in.AlmacenID}, nil
}

func (b *backendFalso) ListarTiposVenta(context.Context, string) ([]entity.TipoVenta, error) {
	return b.tipos, b.errTipos
}

func (b *backendFalso) DescargarReporte(_ context.Context, _ string, _ entity.ID, rango periodo.Rango) (*entity.Archivo, error) {
	b.rango = rango
	b.responder()
	return b.archivo, nil
}

func (b *backendFalso) responder() {
	if b.antesDeResponder != nil {
		b.antesDeResponder()
	}
}

type tasaFija struct {
	valor string
	err   error
}

func (t tasaFija) ValorDolar(context.Context) (*entity.ValorDolar, error) {
	if t.err != nil {
		return nil, t.err
	}
	return &entity.ValorDolar{Valor: decimal.RequireFromString(t.valor), Fecha: time.Now(), Fuente: "fija"}, nil
}

type metricasFalsas struct{ obsoletas atomic.Int32 }

func (m *metricasFalsas) RespuestaObsoleta() { m.obsoletas.Add(1) }

type pdfFalso struct{ recibido *dto.AnalisisVentasResponse }

func (p *pdfFalso) GenerarResumen(r *dto.AnalisisVentasResponse) ([]byte, error) {
	p.recibido = r
	return []byte("%PDF-1.4"), nil
}

func venta(id, fecha, bruto string, tipo, almacen entity.ID) entity.Venta {
	return entity.Venta{ID: entity.ID(id), Fecha: fecha, MontoBruto: entity.MontoTexto(bruto), TipoVentaID: tipo, AlmacenID: almacen}
}
