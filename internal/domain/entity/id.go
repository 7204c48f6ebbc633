package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID identificador del backend. Llega como número o como string según el endpoint;
// se normaliza a texto para comparar sin depender del tipo JSON.
type ID string

// UnmarshalJSON acepta 7, "7" o null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON devuelve un número si el ID es numérico, así el backend recibe el mismo tipo que envió.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String implementa fmt.Stringer.
func (id ID) String() string { return string(id) }

// Empty indica si el ID no está definido.
func (id ID) Empty() bool { return id == "" }
