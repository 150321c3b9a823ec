package apiversion

import "time"

// nowFn existe para que los tests fijen el reloj de las reglas de fecha.
var nowFn = time.Now

// Fábricas de reglas cruzadas para las comparaciones de fecha y hora que
// se repiten entre versiones. Todas toleran campos ausentes o ilegibles:
// el chequeo por campo ya reportó el formato, acá solo va la relación.

// DateNotFuture exige que el campo no caiga después de hoy.
func DateNotFuture(field string) CrossFieldRule {
	return CrossFieldRule{
		Name:   field + "_not_future",
		Fields: []string{field},
		Check: func(data map[string]any) *FieldError {
			d, ok := parseDateField(data, field)
			if !ok {
				return nil
			}
			if d.After(today()) {
				return &FieldError{Field: field, Message: "must not be in the future"}
			}
			return nil
		},
	}
}

// DateNotPast exige que el campo no caiga antes de hoy.
func DateNotPast(field string) CrossFieldRule {
	return CrossFieldRule{
		Name:   field + "_not_past",
		Fields: []string{field},
		Check: func(data map[string]any) *FieldError {
			d, ok := parseDateField(data, field)
			if !ok {
				return nil
			}
			if d.Before(today()) {
				return &FieldError{Field: field, Message: "must not be in the past"}
			}
			return nil
		},
	}
}

// DateNotBefore exige field >= other cuando ambos están presentes.
func DateNotBefore(field, other string) CrossFieldRule {
	return CrossFieldRule{
		Name:   field + "_not_before_" + other,
		Fields: []string{field, other},
		Check: func(data map[string]any) *FieldError {
			d, ok := parseDateField(data, field)
			if !ok {
				return nil
			}
			o, ok := parseDateField(data, other)
			if !ok {
				return nil
			}
			if d.Before(o) {
				return &FieldError{Field: field, Message: "must not be before " + other}
			}
			return nil
		},
	}
}

// DateNotAfter exige field <= other cuando ambos están presentes.
func DateNotAfter(field, other string) CrossFieldRule {
	return CrossFieldRule{
		Name:   field + "_not_after_" + other,
		Fields: []string{field, other},
		Check: func(data map[string]any) *FieldError {
			d, ok := parseDateField(data, field)
			if !ok {
				return nil
			}
			o, ok := parseDateField(data, other)
			if !ok {
				return nil
			}
			if d.After(o) {
				return &FieldError{Field: field, Message: "must not be after " + other}
			}
			return nil
		},
	}
}

// TimeAfter exige que la hora de field sea posterior a la de other.
func TimeAfter(field, other string) CrossFieldRule {
	return CrossFieldRule{
		Name:   field + "_after_" + other,
		Fields: []string{field, other},
		Check: func(data map[string]any) *FieldError {
			ft, ok := parseTimeField(data, field)
			if !ok {
				return nil
			}
			ot, ok := parseTimeField(data, other)
			if !ok {
				return nil
			}
			if !ft.After(ot) {
				return &FieldError{Field: field, Message: "must be after " + other}
			}
			return nil
		},
	}
}

func parseDateField(data map[string]any, field string) (time.Time, bool) {
	s, ok := data[field].(string)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func parseTimeField(data map[string]any, field string) (time.Time, bool) {
	s, ok := data[field].(string)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// today trunca el reloj a fecha para comparar contra campos date.
func today() time.Time {
	t, _ := time.Parse(dateLayout, nowFn().Format(dateLayout))
	return t
}
