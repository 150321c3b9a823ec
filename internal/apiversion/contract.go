// Package apiversion implementa el subsistema de contratos versionados del
// API: registro de contratos por (versión, recurso), validación con
// normalización, validación con fallback y migraciones entre versiones,
// reporte de compatibilidad y el envelope uniforme de respuesta.
//
// Cada versión declara sus contratos como estructuras planas
// (ContractSpec); no hay síntesis de tipos en runtime.
package apiversion

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType enumera los tipos de campo soportados por un contrato.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeNumber FieldType = "number"
	TypeBool   FieldType = "bool"
	TypeDate   FieldType = "date" // YYYY-MM-DD
	TypeTime   FieldType = "time" // HH:MM
	TypeUUID   FieldType = "uuid"
	TypeEmail  FieldType = "email"
)

// FieldSpec declara la regla de un solo campo dentro de un contrato.
// Los límites opcionales van como punteros para distinguir "sin límite".
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool

	// Default se inyecta cuando el campo está ausente del payload.
	// Un default en un campo required hace que nunca falte.
	Default any

	// Enum restringe el valor a la lista dada (solo tipos string).
	Enum []string

	// Lowercase normaliza el valor a minúsculas antes de validar Enum.
	Lowercase bool

	MinLen  *int
	MaxLen  *int
	Min     *float64
	Max     *float64
	Pattern string
}

// CrossFieldRule valida una relación entre campos ya normalizados.
// Check corre solo cuando ninguno de los campos nombrados acumuló errores
// individuales; recibe el mapa normalizado y devuelve nil si la regla pasa.
type CrossFieldRule struct {
	Name   string
	Fields []string
	Check  func(data map[string]any) *FieldError
}

// ComputedField agrega un campo derivado al dar forma a la respuesta.
// No participa de la validación de entrada.
type ComputedField struct {
	Name    string
	Compute func(data map[string]any) any
}

// ContractSpec es la declaración plana y completa de un contrato.
type ContractSpec struct {
	Version  string
	Resource string

	// Strict rechaza campos desconocidos con un error por clave.
	// Sin Strict, los desconocidos se descartan del resultado normalizado.
	Strict bool

	Fields   []FieldSpec
	Rules    []CrossFieldRule
	Computed []ComputedField
}

// Contract es un contrato compilado: patrones precompilados e índice de
// campos por nombre. Se construye una vez y es de solo lectura después.
type Contract struct {
	version  string
	resource string
	strict   bool
	fields   []FieldSpec
	byName   map[string]int
	patterns map[string]*regexp.Regexp
	rules    []CrossFieldRule
	computed []ComputedField
}

var knownTypes = map[FieldType]bool{
	TypeString: true,
	TypeInt:    true,
	TypeNumber: true,
	TypeBool:   true,
	TypeDate:   true,
	TypeTime:   true,
	TypeUUID:   true,
	TypeEmail:  true,
}

// NewContract compila una declaración. Una declaración inconsistente
// (tipo desconocido, campo duplicado, patrón inválido, default que no
// cumple sus propias reglas) es un error de configuración.
func NewContract(spec ContractSpec) (*Contract, error) {
	if strings.TrimSpace(spec.Version) == "" {
		return nil, fmt.Errorf("contract: version is empty")
	}
	if strings.TrimSpace(spec.Resource) == "" {
		return nil, fmt.Errorf("contract: resource is empty")
	}

	c := &Contract{
		version:  spec.Version,
		resource: spec.Resource,
		strict:   spec.Strict,
		fields:   make([]FieldSpec, len(spec.Fields)),
		byName:   make(map[string]int, len(spec.Fields)),
		patterns: make(map[string]*regexp.Regexp),
		rules:    spec.Rules,
		computed: spec.Computed,
	}
	copy(c.fields, spec.Fields)

	for i, f := range c.fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("contract %s/%s: field #%d has empty name", spec.Version, spec.Resource, i)
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("contract %s/%s: duplicate field %q", spec.Version, spec.Resource, f.Name)
		}
		if !knownTypes[f.Type] {
			return nil, fmt.Errorf("contract %s/%s: field %q has unknown type %q", spec.Version, spec.Resource, f.Name, f.Type)
		}
		if len(f.Enum) > 0 && f.Type != TypeString {
			return nil, fmt.Errorf("contract %s/%s: field %q declares enum on non-string type", spec.Version, spec.Resource, f.Name)
		}
		if f.Lowercase {
			for _, e := range f.Enum {
				if e != strings.ToLower(e) {
					return nil, fmt.Errorf("contract %s/%s: field %q enum value %q is not lowercase", spec.Version, spec.Resource, f.Name, e)
				}
			}
		}
		if f.Pattern != "" {
			rx, err := regexp.Compile(f.Pattern)
			if err != nil {
				return nil, fmt.Errorf("contract %s/%s: field %q pattern: %w", spec.Version, spec.Resource, f.Name, err)
			}
			c.patterns[f.Name] = rx
		}
		c.byName[f.Name] = i
	}

	// Un default declarado tiene que pasar las reglas de su propio campo.
	for _, f := range c.fields {
		if f.Default == nil {
			continue
		}
		if _, errs := c.checkField(f, f.Default); len(errs) > 0 {
			return nil, fmt.Errorf("contract %s/%s: field %q default does not satisfy its rules: %s", spec.Version, spec.Resource, f.Name, errs[0].Message)
		}
	}

	for _, r := range c.rules {
		if r.Check == nil {
			return nil, fmt.Errorf("contract %s/%s: rule %q has no check", spec.Version, spec.Resource, r.Name)
		}
		for _, fn := range r.Fields {
			if _, ok := c.byName[fn]; !ok {
				return nil, fmt.Errorf("contract %s/%s: rule %q references undeclared field %q", spec.Version, spec.Resource, r.Name, fn)
			}
		}
	}
	for _, cf := range c.computed {
		if cf.Compute == nil {
			return nil, fmt.Errorf("contract %s/%s: computed field %q has no compute", spec.Version, spec.Resource, cf.Name)
		}
		if _, clash := c.byName[cf.Name]; clash {
			return nil, fmt.Errorf("contract %s/%s: computed field %q collides with a declared field", spec.Version, spec.Resource, cf.Name)
		}
	}

	return c, nil
}

// MustContract es NewContract con panic; para las declaraciones estáticas
// de internal/contracts, donde un spec inválido es un bug de arranque.
func MustContract(spec ContractSpec) *Contract {
	c, err := NewContract(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Contract) Version() string  { return c.version }
func (c *Contract) Resource() string { return c.resource }
func (c *Contract) Strict() bool     { return c.strict }

// Fields devuelve una copia de las reglas de campo en orden de declaración.
func (c *Contract) Fields() []FieldSpec {
	out := make([]FieldSpec, len(c.fields))
	copy(out, c.fields)
	return out
}

// FieldNames devuelve los nombres de campo en orden de declaración.
func (c *Contract) FieldNames() []string {
	out := make([]string, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Name
	}
	return out
}

// Field busca la regla de un campo por nombre.
func (c *Contract) Field(name string) (FieldSpec, bool) {
	i, ok := c.byName[name]
	if !ok {
		return FieldSpec{}, false
	}
	return c.fields[i], true
}

// Int y Float abrevian los punteros de límites en las declaraciones.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }
