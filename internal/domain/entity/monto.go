package entity

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MontoCrudo conserva un valor monetario tal como llegó del backend (número, string numérico,
// null o basura). La conversión a decimal la hace el normalizador de ventas, que nunca falla.
type MontoCrudo struct {
	Texto    string
	Presente bool
}

// MontoDe construye un MontoCrudo válido a partir de un decimal.
func MontoDe(d decimal.Decimal) MontoCrudo {
	return MontoCrudo{Texto: d.String(), Presente: true}
}

// MontoTexto construye un MontoCrudo con texto arbitrario.
func MontoTexto(s string) MontoCrudo {
	return MontoCrudo{Texto: s, Presente: true}
}

// UnmarshalJSON nunca devuelve error: un valor no numérico queda registrado como texto.
func (m *MontoCrudo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*m = MontoCrudo{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*m = MontoCrudo{Texto: s, Presente: true}
			return nil
		}
	}
	*m = MontoCrudo{Texto: string(b), Presente: true}
	return nil
}

// MarshalJSON devuelve el número original si es numérico; si no, el texto entre comillas.
func (m MontoCrudo) MarshalJSON() ([]byte, error) {
	if !m.Presente {
		return []byte("null"), nil
	}
	if d, err := decimal.NewFromString(m.Texto); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(m.Texto)
}
