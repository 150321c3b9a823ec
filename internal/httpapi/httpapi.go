// Package httpapi concentra los helpers HTTP compartidos por los
// handlers de todos los módulos: decode del body a mapa crudo, armado de
// envelopes, paginación y lectura de data normalizada. Antes cada módulo
// duplicaba su writeJSON; con cinco módulos ya conviene el helper común.
package httpapi

import (
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"strconv"
	"time"

	"vetd/internal/apiversion"
)

// maxBodyBytes corta bodies ridículos antes de decodificar.
const maxBodyBytes = 1 << 20

// DecodeBody lee el body JSON como mapa crudo, la única forma de entrada
// que acepta el validador.
func DecodeBody(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()
	var m map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData responde un recurso único en envelope, con los warnings que
// haya dejado la validación con fallback.
func WriteData(w http.ResponseWriter, status int, version string, data any, warnings []string) {
	env := apiversion.NewEnvelope(data, version)
	env.Warnings = warnings
	WriteJSON(w, status, env)
}

// WriteList responde un listado con su paginación.
func WriteList(w http.ResponseWriter, version string, items any, total, page, perPage int) {
	WriteJSON(w, http.StatusOK, apiversion.NewListEnvelope(items, version, total, page, perPage))
}

// WriteValidationErrors responde 422 con todos los errores juntos.
func WriteValidationErrors(w http.ResponseWriter, version string, errs []apiversion.FieldError) {
	WriteJSON(w, http.StatusUnprocessableEntity, apiversion.NewErrorEnvelope(errs, version))
}

// WriteError responde un error no-de-validación (404, 401, etc.) con el
// mismo envelope para que el cliente parsee una sola forma.
func WriteError(w http.ResponseWriter, status int, version, message string) {
	WriteJSON(w, status, apiversion.NewErrorEnvelope(
		[]apiversion.FieldError{{Message: message}}, version))
}

// Pagination trae page y per_page ya saneados.
type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ParsePagination lee page y per_page del query string. Valores ausentes
// o inválidos caen al default; per_page se recorta a 100.
func ParsePagination(r *http.Request) Pagination {
	p := Pagination{Page: 1, PerPage: defaultPerPage}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PerPage = min(n, maxPerPage)
		}
	}
	return p
}

// MergeBase recorta la forma pública de un recurso a los campos que el
// contrato declara; es la base sobre la que un PATCH aplica cambios sin
// que id/timestamps contaminen la validación (clave en contratos strict).
func MergeBase(c *apiversion.Contract, full map[string]any) map[string]any {
	out := make(map[string]any, len(full))
	for _, name := range c.FieldNames() {
		if v, ok := full[name]; ok {
			out[name] = v
		}
	}
	return out
}

// MergePatch superpone el body del PATCH sobre la base: un valor pisa,
// un null borra el campo (y si era required, la validación lo va a
// reclamar).
func MergePatch(base, patch map[string]any) map[string]any {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Lectores de data normalizada: el validador ya garantizó los tipos, acá
// solo se baja de map[string]any a tipos concretos.

func Str(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func Bool(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// Num devuelve el número como puntero; nil si el campo no vino.
func Num(data map[string]any, key string) *float64 {
	switch v := data[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

// IntVal devuelve el entero como puntero; nil si el campo no vino.
func IntVal(data map[string]any, key string) *int {
	switch v := data[key].(type) {
	case int:
		return &v
	case float64:
		n := int(v)
		return &n
	}
	return nil
}

// Date parsea un campo date ya normalizado (YYYY-MM-DD); nil si no vino.
func Date(data map[string]any, key string) *time.Time {
	s, _ := data[key].(string)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
