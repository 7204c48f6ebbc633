package usecase

import (
	"context"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/pkg/moneda"
)

// DolarUseCase valor del dólar para mostrar en el panel.
type DolarUseCase struct {
	proveedor ports.ProveedorTasa
}

// NewDolarUseCase construye el caso de uso.
func NewDolarUseCase(proveedor ports.ProveedorTasa) *DolarUseCase {
	return &DolarUseCase{proveedor: proveedor}
}

// Actual valor vigente formateado en pesos chilenos.
func (uc *DolarUseCase) Actual(ctx context.Context) (*dto.DolarResponse, error) {
	v, err := uc.proveedor.ValorDolar(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DolarResponse{
		Valor:      v.Valor,
		Formateado: moneda.FormatearCLP(v.Valor),
		Fecha:      v.Fecha,
		Fuente:     v.Fuente,
	}, nil
}
