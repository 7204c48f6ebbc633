package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

// Avisos de lectura fallida que la interfaz muestra junto al estado vacío.
const (
	avisoVentas    = "No se pudieron obtener las ventas."
	avisoProductos = "No se pudieron obtener los productos."
	avisoTipos     = "No se pudieron obtener los tipos."
	avisoUsuarios  = "No se pudieron obtener los usuarios."
)

// degradable indica si una lectura fallida se convierte en lista vacía con aviso.
// Los errores de sesión y la cancelación se propagan: la interfaz debe reaccionar a ellos.
func degradable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrSesionExpirada),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

// lecturaFallida registra el error y devuelve el aviso o, si no es degradable, el error.
func lecturaFallida(op string, err error, aviso string) (string, error) {
	if !degradable(err) {
		return "", err
	}
	log.Warn().Err(err).Str("operacion", op).Msg("lectura fallida, se responde vacío")
	return aviso, nil
}

func exigirAlmacen(almacenID entity.ID) error {
	if almacenID.Empty() {
		return domain.ErrSinAlmacen
	}
	return nil
}

// vigencia compara el ticket capturado antes de una lectura con la sesión guardada al volver.
// Toda lectura atada al almacén seleccionado pasa por aquí antes de responder.
type vigencia struct {
	sesiones repository.SesionRepository
	metricas ports.Metricas
}

// verificar vuelve a leer la sesión y descarta la respuesta si el ticket quedó obsoleto.
func (v vigencia) verificar(ctx context.Context, op string, ticket entity.Ticket) error {
	actual, err := v.sesiones.Obtener(ctx, ticket.SesionID)
	if err != nil {
		return err
	}
	if actual == nil {
		return domain.ErrSesionExpirada
	}
	if !actual.EsVigente(ticket) {
		if v.metricas != nil {
			v.metricas.RespuestaObsoleta()
		}
		log.Ctx(ctx).Info().
			Str("operacion", op).
			Str("sesion", ticket.SesionID).
			Str("almacen_consultado", ticket.AlmacenID.String()).
			Str("almacen_actual", actual.AlmacenID.String()).
			Msg("respuesta descartada por cambio de almacén")
		return domain.ErrSeleccionObsoleta
	}
	return nil
}
