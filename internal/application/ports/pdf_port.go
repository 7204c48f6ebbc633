package ports

import "github.com/jhoicas/negocify/internal/application/dto"

// GeneradorResumenPDF renderiza el resumen de ventas a PDF.
type GeneradorResumenPDF interface {
	GenerarResumen(r *dto.AnalisisVentasResponse) ([]byte, error)
}
