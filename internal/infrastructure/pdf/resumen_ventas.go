// Package pdf genera el resumen de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén + Período  │  Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADÍSTICAS: Total | Promedio | Máximo | Mínimo | N°       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERIE: Etiqueta | Monto                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTODOS DE PAGO: Método | Cantidad | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: tasa del dólar / aviso de lectura                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/ventas"
	"github.com/jhoicas/negocify/pkg/moneda"
)

var _ ports.GeneradorResumenPDF = (*MarotoResumenGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 25, Green: 118, Blue: 210}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAviso   = &props.Color{Red: 198, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoResumenGenerator implementa ports.GeneradorResumenPDF usando Maroto v2.
type MarotoResumenGenerator struct {
	ahora func() time.Time
}

// NewMarotoResumenGenerator construye el generador.
func NewMarotoResumenGenerator() *MarotoResumenGenerator {
	return &MarotoResumenGenerator{ahora: time.Now}
}

// GenerarResumen genera el PDF y devuelve sus bytes.
func (g *MarotoResumenGenerator) GenerarResumen(r *dto.AnalisisVentasResponse) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de ventas", true).
		WithAuthor("Negocify", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r, g.ahora()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(estadisticasRows(r.Estadisticas)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tituloRow("SERIE " + etiquetaGranularidad(r.Granularidad)))
	m.AddRows(tableHeaderRow(encabezado{"Etiqueta", 8, align.Left}, encabezado{"Monto", 4, align.Right}))
	m.AddRows(serieRows(r.Series)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(tituloRow("MÉTODOS DE PAGO"))
	m.AddRows(tableHeaderRow(
		encabezado{"Método", 6, align.Left},
		encabezado{"Cantidad", 2, align.Center},
		encabezado{"Total", 4, align.Right},
	))
	m.AddRows(metodoPagoRows(r.MetodosPago)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: almacén y período (izq), fecha de emisión (der).
func headerRow(r *dto.AnalisisVentasResponse, emitido time.Time) core.Row {
	almacen := "Almacén sin nombre"
	if r.Almacen != nil && r.Almacen.Nombre != "" {
		almacen = r.Almacen.Nombre
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(almacen, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(r.Descripcion, "Todo el historial"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RESUMEN DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+emitido.In(periodo.Zona).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// estadisticasRows: etiquetas y valores en cinco columnas.
func estadisticasRows(e ventas.Estadisticas) []core.Row {
	etiqueta := func(s string) core.Col {
		return col.New(2).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
		}))
	}
	valor := func(s string) core.Col {
		return col.New(2).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
		}))
	}
	return []core.Row{
		row.New(6).Add(
			col.New(1),
			etiqueta("Total"), etiqueta("Promedio"), etiqueta("Máximo"), etiqueta("Mínimo"), etiqueta("N° ventas"),
			col.New(1),
		),
		row.New(9).Add(
			col.New(1),
			valor(moneda.FormatearCLP(e.Total)),
			valor(moneda.FormatearCLP(e.Promedio)),
			valor(moneda.FormatearCLP(e.Maximo)),
			valor(moneda.FormatearCLP(e.Minimo)),
			valor(strconv.Itoa(e.Cantidad)),
			col.New(1),
		),
	}
}

func tituloRow(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

type encabezado struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla con fondo de color.
func tableHeaderRow(cols ...encabezado) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func serieRows(series []ventas.Bucket) []core.Row {
	if len(series) == 0 {
		return []core.Row{filaVacia("Sin ventas en el período")}
	}
	out := make([]core.Row, 0, len(series))
	for _, b := range series {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(b.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(moneda.FormatearCLP(b.Ventas), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func metodoPagoRows(metodos []ventas.ResumenMetodoPago) []core.Row {
	if len(metodos) == 0 {
		return []core.Row{filaVacia("Sin ventas en el período")}
	}
	out := make([]core.Row, 0, len(metodos))
	for _, mp := range metodos {
		out = append(out, row.New(6).Add(
			col.New(6).Add(text.New(mp.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(mp.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(moneda.FormatearCLP(mp.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func filaVacia(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
	))
}

// footerRows: tasa usada para los montos en divisa y aviso si la lectura falló.
func footerRows(r *dto.AnalisisVentasResponse) []core.Row {
	tasa := "Valor del dólar no disponible: montos en divisa en 0."
	if r.TasaDolar != nil {
		tasa = "Dólar observado: " + moneda.FormatearCLP(*r.TasaDolar)
	}
	rows := []core.Row{row.New(6).Add(col.New(12).Add(
		text.New(tasa, props.Text{Size: 7, Color: colorGray, Top: 1}),
	))}
	if r.Error != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(r.Error, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorAviso, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func etiquetaGranularidad(g ventas.Granularidad) string {
	switch g {
	case ventas.PorAnio:
		return "POR AÑO"
	case ventas.PorMes:
		return "POR MES"
	case ventas.PorDiaSemana:
		return "POR DÍA DE LA SEMANA"
	case ventas.PorUltimosSieteDias:
		return "ÚLTIMOS 7 DÍAS"
	default:
		return ""
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
