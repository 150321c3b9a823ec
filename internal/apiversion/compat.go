package apiversion

import "sort"

// Report resume el drift de campos entre dos versiones de un contrato.
// Score es informativo (telemetría), nunca bloquea una validación.
type Report struct {
	Resource string `json:"resource"`
	From     string `json:"from"`
	To       string `json:"to"`

	Common  []string `json:"common"`
	Added   []string `json:"added"`
	Removed []string `json:"removed"`

	// Removed siempre es breaking (pérdida de datos al migrar). Un campo
	// agregado required sin default es warning: un productor con la forma
	// vieja no puede cumplir el contrato nuevo. Agregado opcional o con
	// default es non-breaking.
	Breaking    []string `json:"breaking"`
	Warnings    []string `json:"warnings"`
	NonBreaking []string `json:"non_breaking"`

	// Score = |common| / |common ∪ added ∪ removed|; 1.0 con unión vacía.
	Score float64 `json:"score"`
}

// CompareContracts clasifica las diferencias de campos entre la versión
// vieja (from) y la nueva (to) de un recurso.
func CompareContracts(older, newer *Contract) Report {
	r := Report{
		Resource:    older.resource,
		From:        older.version,
		To:          newer.version,
		Common:      []string{},
		Added:       []string{},
		Removed:     []string{},
		Breaking:    []string{},
		Warnings:    []string{},
		NonBreaking: []string{},
	}

	for _, name := range older.FieldNames() {
		if _, ok := newer.byName[name]; ok {
			r.Common = append(r.Common, name)
		} else {
			r.Removed = append(r.Removed, name)
			r.Breaking = append(r.Breaking, name)
		}
	}
	for _, f := range newer.fields {
		if _, ok := older.byName[f.Name]; ok {
			continue
		}
		r.Added = append(r.Added, f.Name)
		if f.Required && f.Default == nil {
			r.Warnings = append(r.Warnings, f.Name)
		} else {
			r.NonBreaking = append(r.NonBreaking, f.Name)
		}
	}

	sort.Strings(r.Common)
	sort.Strings(r.Added)
	sort.Strings(r.Removed)
	sort.Strings(r.Breaking)
	sort.Strings(r.Warnings)
	sort.Strings(r.NonBreaking)

	union := len(r.Common) + len(r.Added) + len(r.Removed)
	if union == 0 {
		r.Score = 1.0
	} else {
		r.Score = float64(len(r.Common)) / float64(union)
	}
	return r
}
