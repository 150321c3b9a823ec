package apiversion

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate aplica el contrato a un payload crudo y devuelve el desenlace
// completo: junta todos los errores de campo en vez de cortar en el
// primero. Un null JSON cuenta como campo ausente.
//
// Orden de evaluación: campos declarados en orden, después desconocidos
// (solo en modo strict, ordenados por nombre), después reglas cruzadas.
// Una regla cruzada corre solo si sus campos no acumularon errores.
func (c *Contract) Validate(raw map[string]any) Result {
	normalized := make(map[string]any, len(c.fields))
	var errs []FieldError
	bad := make(map[string]bool)

	for _, f := range c.fields {
		v, present := raw[f.Name]
		if v == nil {
			present = false
		}
		if !present {
			if f.Default != nil {
				normalized[f.Name] = f.Default
				continue
			}
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Message: "required field is missing"})
				bad[f.Name] = true
			}
			continue
		}

		norm, fieldErrs := c.checkField(f, v)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			bad[f.Name] = true
			continue
		}
		if norm == nil {
			// String vacío en campo opcional: se trata como ausente.
			if f.Default != nil {
				normalized[f.Name] = f.Default
			}
			continue
		}
		normalized[f.Name] = norm
	}

	if c.strict {
		var unknown []string
		for k := range raw {
			if _, ok := c.byName[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			errs = append(errs, FieldError{Field: k, Message: "unknown field"})
		}
	}

	for _, r := range c.rules {
		clean := true
		for _, fn := range r.Fields {
			if bad[fn] {
				clean = false
				break
			}
		}
		if !clean {
			continue
		}
		if fe := r.Check(normalized); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult(normalized)
}

// Shape aplica los campos computados del contrato sobre un payload de
// respuesta ya armado. No valida nada; es el paso de formateo previo al
// envelope.
func (c *Contract) Shape(data map[string]any) map[string]any {
	if len(c.computed) == 0 {
		return data
	}
	out := maps.Clone(data)
	if out == nil {
		out = make(map[string]any, len(c.computed))
	}
	for _, cf := range c.computed {
		if v := cf.Compute(out); v != nil {
			out[cf.Name] = v
		}
	}
	return out
}

func (c *Contract) checkField(f FieldSpec, v any) (any, []FieldError) {
	switch f.Type {
	case TypeString, TypeDate, TypeTime, TypeUUID, TypeEmail:
		return c.checkString(f, v)
	case TypeInt:
		return checkInt(f, v)
	case TypeNumber:
		return checkNumber(f, v)
	case TypeBool:
		return checkBool(f, v)
	}
	// NewContract valida los tipos; esto no debería pasar.
	return nil, []FieldError{{Field: f.Name, Message: fmt.Sprintf("unsupported field type %q", f.Type)}}
}

// checkString cubre todos los tipos con representación string: trim
// primero, lowercase si aplica, después formato y límites. Devuelve
// (nil, nil) para un string vacío en campo opcional.
func (c *Contract) checkString(f FieldSpec, v any) (any, []FieldError) {
	s, ok := v.(string)
	if !ok {
		return nil, []FieldError{{Field: f.Name, Message: "must be a string"}}
	}
	s = strings.TrimSpace(s)
	if f.Lowercase {
		s = strings.ToLower(s)
	}
	if s == "" {
		if f.Required {
			return nil, []FieldError{{Field: f.Name, Message: "required field is empty"}}
		}
		return nil, nil
	}

	var errs []FieldError
	fail := func(msg string) {
		errs = append(errs, FieldError{Field: f.Name, Message: msg})
	}

	switch f.Type {
	case TypeDate:
		if _, err := time.Parse(dateLayout, s); err != nil {
			fail("must be a valid date (YYYY-MM-DD)")
		}
	case TypeTime:
		if _, err := time.Parse(timeLayout, s); err != nil {
			fail("must be a valid time (HH:MM)")
		}
	case TypeUUID:
		if _, err := uuid.Parse(s); err != nil {
			fail("must be a valid uuid")
		}
	case TypeEmail:
		if !emailRx.MatchString(s) {
			fail("must be a valid email")
		}
	}

	if f.MinLen != nil && utf8.RuneCountInString(s) < *f.MinLen {
		fail(fmt.Sprintf("must be at least %d characters", *f.MinLen))
	}
	if f.MaxLen != nil && utf8.RuneCountInString(s) > *f.MaxLen {
		fail(fmt.Sprintf("must be at most %d characters", *f.MaxLen))
	}
	if rx, ok := c.patterns[f.Name]; ok && !rx.MatchString(s) {
		fail(fmt.Sprintf("does not match pattern %s", f.Pattern))
	}
	if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
		fail(fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", ")))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func checkInt(f FieldSpec, v any) (any, []FieldError) {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case float64:
		// encoding/json decodifica todo número como float64.
		if x != math.Trunc(x) {
			return nil, []FieldError{{Field: f.Name, Message: "must be an integer"}}
		}
		n = x
	default:
		return nil, []FieldError{{Field: f.Name, Message: "must be an integer"}}
	}
	if errs := checkRange(f, n); len(errs) > 0 {
		return nil, errs
	}
	return int(n), nil
}

func checkNumber(f FieldSpec, v any) (any, []FieldError) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return nil, []FieldError{{Field: f.Name, Message: "must be a number"}}
	}
	if errs := checkRange(f, n); len(errs) > 0 {
		return nil, errs
	}
	return n, nil
}

func checkBool(f FieldSpec, v any) (any, []FieldError) {
	b, ok := v.(bool)
	if !ok {
		return nil, []FieldError{{Field: f.Name, Message: "must be a boolean"}}
	}
	return b, nil
}

func checkRange(f FieldSpec, n float64) []FieldError {
	var errs []FieldError
	if f.Min != nil && n < *f.Min {
		errs = append(errs, FieldError{Field: f.Name, Message: "must be at least " + formatNum(*f.Min)})
	}
	if f.Max != nil && n > *f.Max {
		errs = append(errs, FieldError{Field: f.Name, Message: "must be at most " + formatNum(*f.Max)})
	}
	return errs
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
