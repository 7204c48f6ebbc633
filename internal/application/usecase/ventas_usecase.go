package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/repository"
	"github.com/jhoicas/negocify/internal/domain/ventas"
)

// VentasConfig parámetros del análisis.
type VentasConfig struct {
	// IVA nil usa la tasa chilena por defecto.
	IVA         *decimal.Decimal
	SnapshotTTL time.Duration
}

// snapshot ventas ya normalizadas de un almacén en una generación de la sesión.
type snapshot struct {
	ventas []ventas.VentaNormalizada
	tasa   *decimal.Decimal
	creado time.Time
}

// VentasUseCase análisis, listado y alta de ventas del almacén seleccionado.
//
// Cada consulta captura el ticket (almacén + generación) antes de ir al backend y lo compara
// con la sesión al volver: si el usuario cambió de almacén entretanto la respuesta se descarta.
// Las ventas normalizadas se reutilizan durante SnapshotTTL para la misma sesión, almacén y
// generación, de modo que cambiar período o gráfico no vuelve a consultar el backend.
type VentasUseCase struct {
	backend  ports.Backend
	vigencia vigencia
	tasa     ports.ProveedorTasa
	metricas ports.Metricas
	cfg      VentasConfig

	mu        sync.Mutex
	snapshots map[string]snapshot
	carga     singleflight.Group
	ahora     func() time.Time
}

// NewVentasUseCase construye el caso de uso. tasa y metricas pueden ser nil.
func NewVentasUseCase(
	backend ports.Backend,
	sesiones repository.SesionRepository,
	tasa ports.ProveedorTasa,
	metricas ports.Metricas,
	cfg VentasConfig,
) *VentasUseCase {
	return &VentasUseCase{
		backend:   backend,
		vigencia:  vigencia{sesiones: sesiones, metricas: metricas},
		tasa:      tasa,
		metricas:  metricas,
		cfg:       cfg,
		snapshots: map[string]snapshot{},
		ahora:     time.Now,
	}
}

func claveSnapshot(s *entity.Sesion) string {
	return fmt.Sprintf("%s|%s|%d", s.ID, s.AlmacenID, s.Generacion)
}

// Analizar ventas del almacén seleccionado filtradas por período, agrupadas y resumidas.
// Una lectura fallida devuelve un análisis vacío con Error; nunca un error de agregación.
func (uc *VentasUseCase) Analizar(ctx context.Context, s *entity.Sesion, q dto.ConsultaVentas) (*dto.AnalisisVentasResponse, error) {
	if err := exigirAlmacen(s.AlmacenID); err != nil {
		return nil, err
	}
	ticket := s.Ticket()
	ahora := uc.ahora()
	if q.Granularidad == "" {
		q.Granularidad = ventas.PorMes
	}
	if q.Campo == "" {
		q.Campo = ventas.CampoBruto
	}

	res := &dto.AnalisisVentasResponse{
		Periodo:      q.Periodo.String(),
		Descripcion:  periodo.Descripcion(q.Periodo, ahora),
		Rango:        periodo.Limites(q.Periodo, ahora),
		Granularidad: q.Granularidad,
		Campo:        q.Campo,
		Almacen:      s.AlmacenSeleccionado(),
		Ventas:       []ventas.VentaNormalizada{},
		Series:       []ventas.Bucket{},
		MetodosPago:  []ventas.ResumenMetodoPago{},
	}

	snap, errCarga := uc.cargar(ctx, s, q.Refrescar)
	if err := uc.vigencia.verificar(ctx, "analizar_ventas", ticket); err != nil {
		return nil, err
	}
	if errCarga != nil {
		aviso, err := lecturaFallida("analizar_ventas", errCarga, avisoVentas)
		if err != nil {
			return nil, err
		}
		res.Error = aviso
		return res, nil
	}

	agregador := ventas.Agregador{Campo: q.Campo, RellenarCeros: q.Rellenar, Ahora: uc.ahora}
	filtradas := ventas.FiltrarPorPeriodo(snap.ventas, q.Periodo, ahora)

	res.Ventas = filtradas
	res.Series = agregador.Agregar(filtradas, q.Granularidad)
	res.Estadisticas = agregador.Estadisticas(filtradas)
	res.MetodosPago = agregador.PorMetodoPago(filtradas)
	res.TasaDolar = snap.tasa
	return res, nil
}

// Listar tabla de ventas; con fecha filtra por ese día. TotalSinFiltro permite distinguir
// "no hay ventas para la fecha" de "no hay ventas".
func (uc *VentasUseCase) Listar(ctx context.Context, s *entity.Sesion, fecha string, refrescar bool) (*dto.ListadoVentasResponse, error) {
	if err := exigirAlmacen(s.AlmacenID); err != nil {
		return nil, err
	}
	dia := ""
	if fecha = strings.TrimSpace(fecha); fecha != "" {
		p, err := periodo.ExactoDe(fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		dia = p.Fecha
	}
	ticket := s.Ticket()

	res := &dto.ListadoVentasResponse{Data: []ventas.VentaNormalizada{}, Fecha: dia}
	snap, errCarga := uc.cargar(ctx, s, refrescar)
	if err := uc.vigencia.verificar(ctx, "listar_ventas", ticket); err != nil {
		return nil, err
	}
	if errCarga != nil {
		aviso, err := lecturaFallida("listar_ventas", errCarga, avisoVentas)
		if err != nil {
			return nil, err
		}
		res.Error = aviso
		return res, nil
	}

	res.TotalSinFiltro = len(snap.ventas)
	if dia == "" {
		res.Data = append(res.Data, snap.ventas...)
	} else {
		res.Data = ventas.FiltrarPorDia(snap.ventas, dia)
	}
	return res, nil
}

// Crear registra una venta del punto de venta en el almacén seleccionado.
func (uc *VentasUseCase) Crear(ctx context.Context, s *entity.Sesion, carrito ventas.Carrito) (*entity.Venta, error) {
	nueva, err := carrito.NuevaVenta(s.AlmacenID)
	if err != nil {
		return nil, err
	}
	venta, err := uc.backend.CrearVenta(ctx, s.Token, nueva)
	if err != nil {
		return nil, err
	}
	uc.invalidar(s.ID, s.AlmacenID)
	log.Info().
		Str("sesion", s.ID).
		Str("almacen", s.AlmacenID.String()).
		Str("monto_bruto", nueva.MontoBruto.String()).
		Int("lineas", len(nueva.Productos)).
		Msg("venta registrada")
	return venta, nil
}

// TiposVenta catálogo de métodos de pago para el punto de venta.
func (uc *VentasUseCase) TiposVenta(ctx context.Context, s *entity.Sesion) (dto.ListaResponse[entity.TipoVenta], error) {
	tipos, err := uc.backend.ListarTiposVenta(ctx, s.Token)
	if err != nil {
		aviso, err := lecturaFallida("tipos_venta", err, avisoTipos)
		if err != nil {
			return dto.ListaResponse[entity.TipoVenta]{}, err
		}
		return dto.NuevaLista[entity.TipoVenta](nil, aviso), nil
	}
	return dto.NuevaLista(tipos, ""), nil
}

// cargar devuelve el snapshot vigente o consulta ventas, tipos y dólar en paralelo.
func (uc *VentasUseCase) cargar(ctx context.Context, s *entity.Sesion, refrescar bool) (snapshot, error) {
	clave := claveSnapshot(s)
	if !refrescar {
		if snap, ok := uc.snapshotVigente(clave); ok {
			return snap, nil
		}
	}

	ch := uc.carga.DoChan(clave, func() (interface{}, error) {
		snap, err := uc.consultar(context.WithoutCancel(ctx), s.Token, s.AlmacenID)
		if err != nil {
			return snapshot{}, err
		}
		uc.guardarSnapshot(clave, snap)
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return snapshot{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return snapshot{}, r.Err
		}
		return r.Val.(snapshot), nil
	}
}

func (uc *VentasUseCase) consultar(ctx context.Context, token string, almacenID entity.ID) (snapshot, error) {
	var (
		crudas []entity.Venta
		tipos  []entity.TipoVenta
		tasa   *decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		crudas, err = uc.backend.ListarVentas(gctx, token, almacenID)
		return err
	})
	g.Go(func() error {
		t, err := uc.backend.ListarTiposVenta(gctx, token)
		if err != nil {
			log.Warn().Err(err).Msg("sin catálogo de métodos de pago")
			return nil
		}
		tipos = t
		return nil
	})
	if uc.tasa != nil {
		g.Go(func() error {
			v, err := uc.tasa.ValorDolar(gctx)
			if err != nil {
				log.Warn().Err(err).Msg("sin valor del dólar, monto en divisa queda en 0")
				return nil
			}
			tasa = &v.Valor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}

	n := ventas.Normalizador{Metodos: ventas.NuevoCatalogo(tipos), Tasa: tasa, IVA: uc.cfg.IVA}
	return snapshot{ventas: n.NormalizarTodas(crudas), tasa: tasa, creado: uc.ahora()}, nil
}

func (uc *VentasUseCase) snapshotVigente(clave string) (snapshot, bool) {
	if uc.cfg.SnapshotTTL <= 0 {
		return snapshot{}, false
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snap, ok := uc.snapshots[clave]
	if !ok || uc.ahora().Sub(snap.creado) >= uc.cfg.SnapshotTTL {
		return snapshot{}, false
	}
	return snap, true
}

func (uc *VentasUseCase) guardarSnapshot(clave string, snap snapshot) {
	if uc.cfg.SnapshotTTL <= 0 {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ahora := uc.ahora()
	for k, v := range uc.snapshots {
		if ahora.Sub(v.creado) >= uc.cfg.SnapshotTTL {
			delete(uc.snapshots, k)
		}
	}
	uc.snapshots[clave] = snap
}

// invalidar descarta los snapshots del almacén en todas las generaciones de la sesión.
func (uc *VentasUseCase) invalidar(sesionID string, almacenID entity.ID) {
	prefijo := sesionID + "|" + almacenID.String() + "|"
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for k := range uc.snapshots {
		if strings.HasPrefix(k, prefijo) {
			delete(uc.snapshots, k)
		}
	}
}
