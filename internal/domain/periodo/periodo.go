// Package periodo convierte marcas de tiempo al día canónico (GMT-4, Chile) y calcula
// los límites de los períodos con los que se filtran y reportan las ventas.
package periodo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Zona offset fijo GMT-4. Todas las comparaciones de fechas usan este único ajuste.
var Zona = time.FixedZone("GMT-4", -4*60*60)

// FormatoDia formato del día canónico.
const FormatoDia = "2006-01-02"

var (
	// layouts con zona explícita: se convierten a GMT-4.
	layoutsConZona = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05 -0700",
		time.RFC1123Z,
		time.RFC1123,
	}
	// layouts sin zona: se interpretan ya en GMT-4.
	layoutsSinZona = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		FormatoDia,
	}
)

// MesesES nombres de mes (índice 0 = enero).
var MesesES = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DiasSemanaES nombres de día (índice 0 = domingo).
var DiasSemanaES = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// Parsear interpreta una marca de tiempo del backend y la devuelve en la zona canónica.
func Parsear(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsConZona {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(Zona), true
		}
	}
	for _, layout := range layoutsSinZona {
		if t, err := time.ParseInLocation(layout, raw, Zona); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DiaCanonico devuelve "YYYY-MM-DD" en GMT-4. Entrada vacía o inválida => ("", false); nunca entra en pánico.
func DiaCanonico(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	t, ok := Parsear(raw)
	if !ok {
		log.Warn().Str("fecha", raw).Msg("fecha inválida, se ignora")
		return "", false
	}
	return t.Format(FormatoDia), true
}

// DiaCanonicoDe formatea un instante como día canónico.
func DiaCanonicoDe(t time.Time) string {
	return t.In(Zona).Format(FormatoDia)
}

// MismoDia indica si dos marcas de tiempo caen en el mismo día canónico. Cualquiera inválida => false.
func MismoDia(a, b string) bool {
	da, okA := DiaCanonico(a)
	db, okB := DiaCanonico(b)
	return okA && okB && da == db
}

// Hoy día canónico de ahora.
func Hoy(ahora time.Time) string {
	return DiaCanonicoDe(ahora)
}

// Tipo discrimina la variante de Periodo.
type Tipo int

const (
	Nombrado Tipo = iota
	Exacto
)

// Nombre período con nombre.
type Nombre string

const (
	Anual              Nombre = "anual"
	Mensual            Nombre = "mensual"
	Semanal            Nombre = "semanal"
	Trimestral         Nombre = "trimestral"
	Semestral          Nombre = "semestral"
	UltimosSieteDias   Nombre = "ultimosSieteDias"
	UltimosTreintaDias Nombre = "ultimosTreintaDias"
	Todo               Nombre = "todo"
)

var alias = map[string]Nombre{
	"anual":              Anual,
	"annual":             Anual,
	"mensual":            Mensual,
	"monthly":            Mensual,
	"semanal":            Semanal,
	"weekly":             Semanal,
	"trimestral":         Trimestral,
	"quarterly":          Trimestral,
	"semestral":          Semestral,
	"semiannual":         Semestral,
	"ultimossietedias":   UltimosSieteDias,
	"last-7-days":        UltimosSieteDias,
	"ultimostreintadias": UltimosTreintaDias,
	"last-30-days":       UltimosTreintaDias,
	"todo":               Todo,
	"none":               Todo,
	"":                   Todo,
}

// NombreDe resuelve un nombre de período (acepta alias en inglés). Desconocido => (Todo, false).
func NombreDe(s string) (Nombre, bool) {
	n, ok := alias[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Todo, false
	}
	return n, true
}

// Periodo selector de período: un nombre o una fecha exacta, nunca ambos.
type Periodo struct {
	Tipo   Tipo
	Nombre Nombre
	Fecha  string
}

var reFechaExacta = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NombradoDe construye un período con nombre.
func NombradoDe(n Nombre) Periodo {
	return Periodo{Tipo: Nombrado, Nombre: n}
}

// ExactoDe construye un período de un día. La fecha debe ser un día válido "YYYY-MM-DD".
func ExactoDe(fecha string) (Periodo, error) {
	fecha = strings.TrimSpace(fecha)
	if !reFechaExacta.MatchString(fecha) {
		return Periodo{}, fmt.Errorf("fecha %q: se espera YYYY-MM-DD", fecha)
	}
	if _, err := time.ParseInLocation(FormatoDia, fecha, Zona); err != nil {
		return Periodo{}, fmt.Errorf("fecha %q: %w", fecha, err)
	}
	return Periodo{Tipo: Exacto, Fecha: fecha}, nil
}

// ParsePeriodo convierte el texto del selector en Periodo. Es el único lugar donde se
// distingue fecha exacta de nombre. Texto desconocido o fecha imposible => Todo.
func ParsePeriodo(s string) Periodo {
	s = strings.TrimSpace(s)
	if reFechaExacta.MatchString(s) {
		p, err := ExactoDe(s)
		if err != nil {
			log.Warn().Err(err).Msg("período con fecha inválida, se usa todo el historial")
			return NombradoDe(Todo)
		}
		return p
	}
	n, _ := NombreDe(s)
	return NombradoDe(n)
}

// String devuelve la fecha o el nombre.
func (p Periodo) String() string {
	if p.Tipo == Exacto {
		return p.Fecha
	}
	if p.Nombre == "" {
		return string(Todo)
	}
	return string(p.Nombre)
}

// MarshalText implementa encoding.TextMarshaler.
func (p Periodo) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implementa encoding.TextUnmarshaler con la misma tolerancia que ParsePeriodo.
func (p *Periodo) UnmarshalText(b []byte) error {
	*p = ParsePeriodo(string(b))
	return nil
}

// Rango límites inclusivos en días canónicos. Cadena vacía = sin límite.
type Rango struct {
	Inicio string `json:"fecha_inicio,omitempty"`
	Fin    string `json:"fecha_fin,omitempty"`
}

// Acotado indica si el rango tiene al menos un límite.
func (r Rango) Acotado() bool {
	return r.Inicio != "" || r.Fin != ""
}

// Contiene indica si el día canónico cae en el rango.
func (r Rango) Contiene(dia string) bool {
	if dia == "" {
		return false
	}
	if r.Inicio != "" && dia < r.Inicio {
		return false
	}
	if r.Fin != "" && dia > r.Fin {
		return false
	}
	return true
}

func dia(y int, m time.Month, d int) string {
	return DiaCanonicoDe(time.Date(y, m, d, 0, 0, 0, 0, Zona))
}

// Limites calcula el rango del período respecto de ref (normalmente ahora).
func Limites(p Periodo, ref time.Time) Rango {
	if p.Tipo == Exacto {
		return Rango{Inicio: p.Fecha, Fin: p.Fecha}
	}
	r := ref.In(Zona)
	y, m, d := r.Date()
	switch p.Nombre {
	case Anual:
		return Rango{Inicio: dia(y, time.January, 1), Fin: dia(y, time.December, 31)}
	case Mensual:
		return Rango{Inicio: dia(y, m, 1), Fin: dia(y, m+1, 0)}
	case Semanal:
		wd := int(r.Weekday())
		return Rango{Inicio: dia(y, m, d-wd), Fin: dia(y, m, d-wd+6)}
	case Trimestral:
		ini := time.Month((int(m)-1)/3*3 + 1)
		return Rango{Inicio: dia(y, ini, 1), Fin: dia(y, ini+3, 0)}
	case Semestral:
		ini := time.Month((int(m)-1)/6*6 + 1)
		return Rango{Inicio: dia(y, ini, 1), Fin: dia(y, ini+6, 0)}
	case UltimosSieteDias:
		return Rango{Inicio: dia(y, m, d-6), Fin: dia(y, m, d)}
	case UltimosTreintaDias:
		return Rango{Inicio: dia(y, m, d-29), Fin: dia(y, m, d)}
	default:
		return Rango{}
	}
}

// Descripcion texto legible del período, ej. "Mes abril 2025".
func Descripcion(p Periodo, ref time.Time) string {
	rango := Limites(p, ref)
	if !rango.Acotado() {
		return "Todo el historial"
	}
	if rango.Inicio == rango.Fin {
		return "Día " + rango.Inicio
	}
	r := ref.In(Zona)
	switch p.Nombre {
	case Anual:
		return fmt.Sprintf("Año %d", r.Year())
	case Mensual:
		return fmt.Sprintf("Mes %s %d", strings.ToLower(MesesES[r.Month()-1]), r.Year())
	case Semanal:
		return fmt.Sprintf("Semana del %s al %s", rango.Inicio, rango.Fin)
	case Trimestral:
		return fmt.Sprintf("Trimestre actual (%s - %s)", rango.Inicio, rango.Fin)
	case Semestral:
		return fmt.Sprintf("Semestre actual (%s - %s)", rango.Inicio, rango.Fin)
	case UltimosSieteDias:
		return fmt.Sprintf("Últimos 7 días (%s - %s)", rango.Inicio, rango.Fin)
	case UltimosTreintaDias:
		return fmt.Sprintf("Últimos 30 días (%s - %s)", rango.Inicio, rango.Fin)
	default:
		return fmt.Sprintf("Período del %s al %s", rango.Inicio, rango.Fin)
	}
}
