package ventas

import (
	"time"

	"github.com/jhoicas/negocify/internal/domain/periodo"
)

// FiltrarPorRango deja las ventas cuyo día canónico cae en el rango (inclusivo).
// Sin límites devuelve los mismos elementos en el mismo orden. Con límites, las ventas
// sin fecha válida quedan fuera.
func FiltrarPorRango(ventas []VentaNormalizada, r periodo.Rango) []VentaNormalizada {
	out := make([]VentaNormalizada, 0, len(ventas))
	if !r.Acotado() {
		return append(out, ventas...)
	}
	for _, v := range ventas {
		if r.Contiene(v.Dia) {
			out = append(out, v)
		}
	}
	return out
}

// FiltrarPorPeriodo calcula los límites del período respecto de ahora y filtra.
func FiltrarPorPeriodo(ventas []VentaNormalizada, p periodo.Periodo, ahora time.Time) []VentaNormalizada {
	return FiltrarPorRango(ventas, periodo.Limites(p, ahora))
}

// FiltrarPorDia filtro de fecha exacta de la tabla de ventas. Día vacío no filtra.
func FiltrarPorDia(ventas []VentaNormalizada, dia string) []VentaNormalizada {
	return FiltrarPorRango(ventas, periodo.Rango{Inicio: dia, Fin: dia})
}
