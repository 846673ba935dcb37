package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number es un campo numérico raw de la API. Polymarket mezcla números JSON y
// strings numéricos según el endpoint, así que se guarda sin interpretar.
type Number json.RawMessage

// UnmarshalJSON guarda el valor tal cual.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = append((*n)[:0], b...)
	return nil
}

// MarshalJSON devuelve el valor raw (null si está vacío).
func (n Number) MarshalJSON() ([]byte, error) {
	if len(n) == 0 {
		return []byte("null"), nil
	}
	return n, nil
}

// Missing devuelve true si el campo no vino o vino null.
func (n Number) Missing() bool {
	b := bytes.TrimSpace(n)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

// IsJSONNumber devuelve true solo si el valor es un número JSON (no un string).
func (n Number) IsJSONNumber() bool {
	b := bytes.TrimSpace(n)
	if len(b) == 0 {
		return false
	}
	c := b[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// Float interpreta el valor como número JSON o string numérico.
func (n Number) Float() (float64, error) {
	if n.Missing() {
		return 0, fmt.Errorf("%w: missing value", ErrFieldParse)
	}
	b := bytes.TrimSpace(n)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrFieldParse, err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFieldParse, s)
		}
		return f, nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrFieldParse, b)
	}
	return f, nil
}

// FloatOr es Float con default para campos ausentes. Un campo presente pero
// no numérico sigue devolviendo error.
func (n Number) FloatOr(def float64) (float64, error) {
	if n.Missing() {
		return def, nil
	}
	return n.Float()
}

// Literal devuelve el valor como texto para los markers de fallback:
// el contenido si es string, el JSON raw en otro caso.
func (n Number) Literal() string {
	b := bytes.TrimSpace(n)
	if len(b) == 0 {
		return "null"
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return s
		}
	}
	return string(b)
}
