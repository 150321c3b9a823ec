package httpapi

import (
	"fmt"

	"vetd/internal/apiversion"
	"vetd/internal/platform/metrics"
)

// Validator ata un recurso a sus contratos para los handlers: la versión
// más nueva valida con fallback hacia la más vieja, el resto valida
// directo contra su propio contrato. También concentra las métricas de
// validación para que los handlers no las repitan.
type Validator struct {
	Registry *apiversion.Registry
	Fallback *apiversion.Fallback
	Resource string

	// Latest y Oldest definen el par primario/fallback de la versión
	// más nueva montada.
	Latest string
	Oldest string

	// Metrics puede ser nil (tests); todos los observes son opcionales.
	Metrics *metrics.Collector
}

// ValidateBody valida un body crudo bajo la versión del endpoint.
// El error de retorno es de configuración (contrato sin registrar);
// una validación fallida viene como Result con Valid=false.
func (v *Validator) ValidateBody(version string, raw map[string]any) (apiversion.Result, error) {
	if v.Fallback != nil && version == v.Latest && v.Latest != v.Oldest {
		res, outcome, err := v.Fallback.Validate(raw, v.Resource, v.Latest, v.Oldest)
		if err != nil {
			return apiversion.Result{}, err
		}
		v.observeValidation(version, res.Valid)
		if outcome != apiversion.OutcomePrimary && v.Metrics != nil {
			v.Metrics.ObserveFallback(v.Resource, outcome.String())
		}
		return res, nil
	}

	c, ok := v.Registry.Lookup(version, v.Resource)
	if !ok {
		return apiversion.Result{}, fmt.Errorf("%w: %s/%s", apiversion.ErrContractNotRegistered, version, v.Resource)
	}
	res := c.Validate(raw)
	v.observeValidation(version, res.Valid)
	return res, nil
}

// ValidateDirect valida contra el contrato exacto de la versión, sin
// fallback; es el camino de los PATCH, donde el body ya se mezcló con el
// estado persistido y una forma vieja a medias no tiene sentido.
func (v *Validator) ValidateDirect(version string, raw map[string]any) (apiversion.Result, error) {
	c, ok := v.Registry.Lookup(version, v.Resource)
	if !ok {
		return apiversion.Result{}, fmt.Errorf("%w: %s/%s", apiversion.ErrContractNotRegistered, version, v.Resource)
	}
	res := c.Validate(raw)
	v.observeValidation(version, res.Valid)
	return res, nil
}

// Contract devuelve el contrato del recurso para una versión montada.
func (v *Validator) Contract(version string) (*apiversion.Contract, bool) {
	return v.Registry.Lookup(version, v.Resource)
}

// Shape aplica los campos computados de la versión sobre la forma
// pública de un recurso.
func (v *Validator) Shape(version string, data map[string]any) map[string]any {
	c, ok := v.Registry.Lookup(version, v.Resource)
	if !ok {
		return data
	}
	return c.Shape(data)
}

func (v *Validator) observeValidation(version string, valid bool) {
	if v.Metrics == nil {
		return
	}
	outcome := "rejected"
	if valid {
		outcome = "accepted"
	}
	v.Metrics.ObserveValidation(version, v.Resource, outcome)
}
