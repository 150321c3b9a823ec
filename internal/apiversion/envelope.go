package apiversion

// Envelope es la respuesta uniforme del API: flag de éxito, payload y la
// versión que atendió el request. Es un paso de formateo puro, no sabe de
// dónde salió la data.
type Envelope struct {
	Success  bool         `json:"success"`
	Data     any          `json:"data,omitempty"`
	Version  string       `json:"version"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// ListEnvelope extiende el envelope con la metadata de paginación de los
// listados.
type ListEnvelope struct {
	Envelope
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewEnvelope arma el envelope de un recurso único.
func NewEnvelope(data any, version string) Envelope {
	return Envelope{Success: true, Data: data, Version: version}
}

// NewListEnvelope arma el envelope de un listado con su paginación.
// TotalPages se deriva acá; el caller solo trae total, page y per_page.
func NewListEnvelope(items any, version string, total, page, perPage int) ListEnvelope {
	return ListEnvelope{
		Envelope:   Envelope{Success: true, Data: items, Version: version},
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: TotalPages(total, perPage),
	}
}

// NewErrorEnvelope arma el envelope de una validación fallida.
func NewErrorEnvelope(errs []FieldError, version string) Envelope {
	if errs == nil {
		errs = []FieldError{}
	}
	return Envelope{Success: false, Errors: errs, Version: version}
}

// TotalPages calcula ceil(total / perPage); 0 si perPage no es positivo.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
