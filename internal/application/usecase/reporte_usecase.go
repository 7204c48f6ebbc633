package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

// ReporteUseCase descargas de reportes de ventas.
type ReporteUseCase struct {
	backend  ports.Backend
	vigencia vigencia
	ventas   *VentasUseCase
	pdf      ports.GeneradorResumenPDF
	ahora    func() time.Time
}

// NewReporteUseCase construye el caso de uso. metricas puede ser nil.
func NewReporteUseCase(
	backend ports.Backend,
	sesiones repository.SesionRepository,
	metricas ports.Metricas,
	ventas *VentasUseCase,
	pdf ports.GeneradorResumenPDF,
) *ReporteUseCase {
	return &ReporteUseCase{
		backend:  backend,
		vigencia: vigencia{sesiones: sesiones, metricas: metricas},
		ventas:   ventas,
		pdf:      pdf,
		ahora:    time.Now,
	}
}

// Descargar reenvía el archivo que genera el backend para el período. Todo => sin fechas.
func (uc *ReporteUseCase) Descargar(ctx context.Context, s *entity.Sesion, p periodo.Periodo) (*entity.Archivo, error) {
	if err := exigirAlmacen(s.AlmacenID); err != nil {
		return nil, err
	}
	ticket := s.Ticket()
	rango := periodo.Limites(p, uc.ahora())
	archivo, err := uc.backend.DescargarReporte(ctx, s.Token, s.AlmacenID, rango)
	if errVig := uc.vigencia.verificar(ctx, "descargar_reporte", ticket); errVig != nil {
		return nil, errVig
	}
	if err != nil {
		return nil, err
	}
	return archivo, nil
}

// ResumenPDF resumen de estadísticas y series del período en PDF.
func (uc *ReporteUseCase) ResumenPDF(ctx context.Context, s *entity.Sesion, q dto.ConsultaVentas) (*entity.Archivo, error) {
	analisis, err := uc.ventas.Analizar(ctx, s, q)
	if err != nil {
		return nil, err
	}
	contenido, err := uc.pdf.GenerarResumen(analisis)
	if err != nil {
		return nil, fmt.Errorf("resumen pdf: %w", err)
	}
	return &entity.Archivo{
		Nombre:      "resumen-ventas-" + periodo.Hoy(uc.ahora()) + ".pdf",
		ContentType: "application/pdf",
		Contenido:   contenido,
	}, nil
}
