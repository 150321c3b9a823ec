package apiversion

import "fmt"

// Outcome indica qué camino terminó aceptando (o rechazando) el payload
// en una validación con fallback. Sirve para métricas y para que el
// handler sepa con qué forma quedó la data.
type Outcome int

const (
	// OutcomePrimary: el contrato primario validó de entrada.
	OutcomePrimary Outcome = iota
	// OutcomeMigrated: validó el fallback y la migración llevó la data a
	// la forma primaria.
	OutcomeMigrated
	// OutcomeFallback: validó el fallback y la data quedó con esa forma
	// (sin migración, o la re-validación post-migración falló).
	OutcomeFallback
	// OutcomeFailed: fallaron las dos versiones.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePrimary:
		return "primary"
	case OutcomeMigrated:
		return "migrated"
	case OutcomeFallback:
		return "fallback_used"
	case OutcomeFailed:
		return "both_failed"
	}
	return "unknown"
}

// Fallback valida contra una versión primaria reintentando con una
// versión de respaldo, con migración opcional de respaldo → primaria.
type Fallback struct {
	registry   *Registry
	migrations *Migrations
}

func NewFallback(reg *Registry, mig *Migrations) *Fallback {
	return &Fallback{registry: reg, migrations: mig}
}

// Validate intenta el contrato primario y, si falla, el de respaldo:
//
//  1. Primario válido: devuelve ese resultado sin warnings.
//  2. Respaldo válido y hay migración (fallback→primary): migra la data
//     normalizada del respaldo y re-valida contra el primario; si pasa,
//     devuelve la forma primaria con un warning de migración.
//  3. Respaldo válido sin migración, o re-validación fallida: devuelve el
//     resultado del respaldo tal cual, con un warning de fallback.
//  4. Fallan los dos: resultado inválido con los errores de ambos, cada
//     mensaje prefijado con la versión que lo produjo.
//
// El único error de retorno es de programación: (versión, recurso) sin
// registrar para cualquiera de las dos versiones.
func (f *Fallback) Validate(raw map[string]any, resource, primary, fallback string) (Result, Outcome, error) {
	pc, ok := f.registry.Lookup(primary, resource)
	if !ok {
		return Result{}, OutcomeFailed, fmt.Errorf("%w: %s/%s", ErrContractNotRegistered, primary, resource)
	}
	fc, ok := f.registry.Lookup(fallback, resource)
	if !ok {
		return Result{}, OutcomeFailed, fmt.Errorf("%w: %s/%s", ErrContractNotRegistered, fallback, resource)
	}

	primaryRes := pc.Validate(raw)
	if primaryRes.Valid {
		return primaryRes, OutcomePrimary, nil
	}

	fallbackRes := fc.Validate(raw)
	if !fallbackRes.Valid {
		combined := make([]FieldError, 0, len(primaryRes.Errors)+len(fallbackRes.Errors))
		for _, e := range primaryRes.Errors {
			combined = append(combined, FieldError{Field: e.Field, Message: primary + ": " + e.Message})
		}
		for _, e := range fallbackRes.Errors {
			combined = append(combined, FieldError{Field: e.Field, Message: fallback + ": " + e.Message})
		}
		return invalidResult(combined), OutcomeFailed, nil
	}

	if fn, registered := f.migrations.Lookup(fallback, primary); registered {
		migrated := pc.Validate(fn(fallbackRes.Data))
		if migrated.Valid {
			migrated.Warnings = append(migrated.Warnings,
				fmt.Sprintf("payload validated against version %s and migrated to %s", fallback, primary))
			return migrated, OutcomeMigrated, nil
		}
	}

	fallbackRes.Warnings = append(fallbackRes.Warnings,
		fmt.Sprintf("payload validated against fallback version %s", fallback))
	return fallbackRes, OutcomeFallback, nil
}
