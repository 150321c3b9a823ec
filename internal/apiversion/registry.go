package apiversion

import (
	"errors"
	"sort"
	"sync"
)

// ErrContractNotRegistered lo devuelven los caminos que sí necesitan un
// contrato presente (fallback, endpoints de meta). Lookup nunca lo usa.
var ErrContractNotRegistered = errors.New("contract not registered")

// Registry resuelve (versión, recurso) → contrato. Se arma una vez en el
// wiring y se inyecta; no hay singleton de paquete. El lock existe porque
// una versión puede montarse en runtime mientras los handlers consultan.
type Registry struct {
	mu        sync.RWMutex
	contracts map[string]*Contract
}

func NewRegistry() *Registry {
	return &Registry{contracts: make(map[string]*Contract)}
}

// Register guarda el contrato bajo su (versión, recurso). Registrar dos
// veces la misma clave reemplaza sin aviso: gana la última.
func (r *Registry) Register(c *Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[registryKey(c.version, c.resource)] = c
}

// Lookup devuelve el contrato y un flag de presencia; nunca falla.
func (r *Registry) Lookup(version, resource string) (*Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[registryKey(version, resource)]
	return c, ok
}

// Resources lista los recursos registrados bajo una versión, ordenados.
func (r *Registry) Resources(version string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, c := range r.contracts {
		if c.version == version {
			out = append(out, c.resource)
		}
	}
	sort.Strings(out)
	return out
}

// Versions lista las versiones que registran un recurso, ordenadas.
func (r *Registry) Versions(resource string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, c := range r.contracts {
		if c.resource == resource {
			out = append(out, c.version)
		}
	}
	sort.Strings(out)
	return out
}

func registryKey(version, resource string) string {
	return version + "/" + resource
}
