package apiversion

// FieldError describe un error de validación sobre un campo puntual.
// Field y Message van tal cual al envelope de error del API; los errores
// que no son de un campo (404, 401) viajan solo con Message.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Result es el desenlace de aplicar un contrato a un payload.
// Invariante: Valid es false si y solo si Errors no está vacío.
// Warnings no afectan Valid. Cuando Valid es false, Data queda en nil.
type Result struct {
	Valid    bool
	Data     map[string]any
	Errors   []FieldError
	Warnings []string
}

func validResult(data map[string]any) Result {
	return Result{Valid: true, Data: data}
}

func invalidResult(errs []FieldError) Result {
	return Result{Valid: false, Errors: errs}
}
