package ventas

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/domain/periodo"
)

// Granularidad agrupación de los gráficos.
type Granularidad string

const (
	PorAnio             Granularidad = "anual"
	PorMes              Granularidad = "mensual"
	PorDiaSemana        Granularidad = "semanal"
	PorUltimosSieteDias Granularidad = "ultimosSieteDias"
)

var aliasGranularidad = map[string]Granularidad{
	"anual":            PorAnio,
	"annual":           PorAnio,
	"mensual":          PorMes,
	"monthly":          PorMes,
	"semanal":          PorDiaSemana,
	"weekly":           PorDiaSemana,
	"ultimossietedias": PorUltimosSieteDias,
	"last-7-days":      PorUltimosSieteDias,
}

// GranularidadDe resuelve el texto de la consulta. Desconocida => (texto, false); Agregar devolverá vacío.
func GranularidadDe(s string) (Granularidad, bool) {
	g, ok := aliasGranularidad[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Granularidad(s), false
	}
	return g, true
}

// Campo monto que se suma en los buckets y estadísticas.
type Campo string

const (
	CampoBruto Campo = "bruto"
	CampoNeto  Campo = "neto"
)

// CampoDe resuelve "bruto"/"neto"; cualquier otro valor => bruto.
func CampoDe(s string) Campo {
	if strings.EqualFold(strings.TrimSpace(s), string(CampoNeto)) {
		return CampoNeto
	}
	return CampoBruto
}

// Bucket punto de una serie para gráficos.
type Bucket struct {
	Name   string          `json:"name"`
	Ventas decimal.Decimal `json:"ventas"`
	Orden  int             `json:"orden"`
}

// Estadisticas resumen de un conjunto de ventas. Sin ventas todo es cero.
type Estadisticas struct {
	Total    decimal.Decimal `json:"total"`
	Promedio decimal.Decimal `json:"average"`
	Maximo   decimal.Decimal `json:"max"`
	Minimo   decimal.Decimal `json:"min"`
	Cantidad int             `json:"count"`
}

// ResumenMetodoPago ventas agrupadas por método de pago.
type ResumenMetodoPago struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Agregador agrupa ventas normalizadas.
//
// Por defecto solo "ultimosSieteDias" incluye buckets en cero; año, mes y día de semana
// muestran solo lo que tiene ventas. Con RellenarCeros todas las granularidades completan
// su rango (12 meses, 7 días, todos los años entre el primero y el último con datos).
type Agregador struct {
	Campo         Campo
	RellenarCeros bool
	// Ahora reloj para "ultimosSieteDias"; nil usa time.Now.
	Ahora func() time.Time
}

func (a Agregador) monto(v VentaNormalizada) decimal.Decimal {
	if a.Campo == CampoNeto {
		return v.MontoNeto
	}
	return v.MontoBruto
}

func (a Agregador) ahora() time.Time {
	if a.Ahora != nil {
		return a.Ahora()
	}
	return time.Now()
}

// Agregar atajo con monto bruto y sin relleno.
func Agregar(ventas []VentaNormalizada, g Granularidad) []Bucket {
	return Agregador{}.Agregar(ventas, g)
}

// Agregar agrupa según la granularidad. Granularidad desconocida => lista vacía.
func (a Agregador) Agregar(ventas []VentaNormalizada, g Granularidad) []Bucket {
	switch g {
	case PorAnio:
		return a.porAnio(ventas)
	case PorMes:
		return a.porIndice(ventas, periodo.MesesES[:], func(t time.Time) int { return int(t.Month()) - 1 })
	case PorDiaSemana:
		return a.porIndice(ventas, periodo.DiasSemanaES[:], func(t time.Time) int { return int(t.Weekday()) })
	case PorUltimosSieteDias:
		return a.ultimosSieteDias(ventas)
	default:
		return []Bucket{}
	}
}

func diaComoFecha(dia string) (time.Time, bool) {
	if dia == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(periodo.FormatoDia, dia, periodo.Zona)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (a Agregador) porAnio(ventas []VentaNormalizada) []Bucket {
	sumas := map[int]decimal.Decimal{}
	for _, v := range ventas {
		t, ok := diaComoFecha(v.Dia)
		if !ok {
			continue
		}
		sumas[t.Year()] = sumas[t.Year()].Add(a.monto(v))
	}
	anios := make([]int, 0, len(sumas))
	for y := range sumas {
		anios = append(anios, y)
	}
	sort.Ints(anios)
	if a.RellenarCeros && len(anios) > 1 {
		desde, hasta := anios[0], anios[len(anios)-1]
		anios = anios[:0]
		for y := desde; y <= hasta; y++ {
			anios = append(anios, y)
		}
	}
	out := make([]Bucket, 0, len(anios))
	for _, y := range anios {
		out = append(out, Bucket{Name: strconv.Itoa(y), Ventas: sumas[y], Orden: y})
	}
	return out
}

func (a Agregador) porIndice(ventas []VentaNormalizada, etiquetas []string, indice func(time.Time) int) []Bucket {
	sumas := make([]decimal.Decimal, len(etiquetas))
	con := make([]bool, len(etiquetas))
	for _, v := range ventas {
		t, ok := diaComoFecha(v.Dia)
		if !ok {
			continue
		}
		i := indice(t)
		sumas[i] = sumas[i].Add(a.monto(v))
		con[i] = true
	}
	out := make([]Bucket, 0, len(etiquetas))
	for i, nombre := range etiquetas {
		if !con[i] && !a.RellenarCeros {
			continue
		}
		out = append(out, Bucket{Name: nombre, Ventas: sumas[i], Orden: i})
	}
	return out
}

// ultimosSieteDias siempre 7 buckets (hoy y los 6 anteriores) en orden cronológico.
func (a Agregador) ultimosSieteDias(ventas []VentaNormalizada) []Bucket {
	hoy := a.ahora().In(periodo.Zona)
	y, m, d := hoy.Date()
	out := make([]Bucket, 7)
	pos := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		t := time.Date(y, m, d-6+i, 0, 0, 0, 0, periodo.Zona)
		out[i] = Bucket{Name: t.Format("02-01"), Ventas: decimal.Zero, Orden: i}
		pos[periodo.DiaCanonicoDe(t)] = i
	}
	for _, v := range ventas {
		if i, ok := pos[v.Dia]; ok {
			out[i].Ventas = out[i].Ventas.Add(a.monto(v))
		}
	}
	return out
}

// Estadisticas total, promedio, máximo, mínimo y cantidad.
func (a Agregador) Estadisticas(ventas []VentaNormalizada) Estadisticas {
	if len(ventas) == 0 {
		return Estadisticas{Total: decimal.Zero, Promedio: decimal.Zero, Maximo: decimal.Zero, Minimo: decimal.Zero}
	}
	e := Estadisticas{Cantidad: len(ventas)}
	for i, v := range ventas {
		m := a.monto(v)
		e.Total = e.Total.Add(m)
		if i == 0 || m.GreaterThan(e.Maximo) {
			e.Maximo = m
		}
		if i == 0 || m.LessThan(e.Minimo) {
			e.Minimo = m
		}
	}
	e.Promedio = e.Total.Div(decimal.NewFromInt(int64(e.Cantidad))).Round(2)
	return e
}

// PorMetodoPago cantidad y total por método de pago, en orden de primera aparición.
func (a Agregador) PorMetodoPago(ventas []VentaNormalizada) []ResumenMetodoPago {
	out := []ResumenMetodoPago{}
	pos := map[string]int{}
	for _, v := range ventas {
		if v.MetodoPago == "" {
			continue
		}
		i, ok := pos[v.MetodoPago]
		if !ok {
			i = len(out)
			pos[v.MetodoPago] = i
			out = append(out, ResumenMetodoPago{Name: v.MetodoPago})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(a.monto(v))
	}
	return out
}
