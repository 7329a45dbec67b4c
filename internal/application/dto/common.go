package dto

import (
	"fmt"
	"strings"
	"time"
)

// FormatoFecha formato de fechas de calendario en la API (ISO 8601).
const FormatoFecha = "2006-01-02"

// Fecha fecha de calendario serializada como "YYYY-MM-DD".
type Fecha struct {
	time.Time
}

// NewFecha descarta hora y zona de t.
func NewFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha interpreta "YYYY-MM-DD".
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(FormatoFecha, strings.TrimSpace(s))
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q (formato %s): %w", s, FormatoFecha, err)
	}
	return Fecha{t}, nil
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(FormatoFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(FormatoFecha) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*f = Fecha{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("fecha inválida %s: se espera texto %s", s, FormatoFecha)
	}
	parsed, err := ParseFecha(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status      int               `json:"status"`
	Code        string            `json:"code"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	ErrorID     string            `json:"error_id,omitempty"`
	Path        string            `json:"path"`
	Timestamp   time.Time         `json:"timestamp"`
}
