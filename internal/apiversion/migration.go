package apiversion

import (
	"maps"
	"sync"
)

// MigrationFunc transforma un payload con forma de una versión a la forma
// de otra. Tiene que ser pura: trabaja sobre una copia, nunca muta el
// mapa de entrada.
type MigrationFunc func(data map[string]any) map[string]any

// Migrations guarda migraciones por clave exacta (from, to). No hay
// encadenamiento automático: un salto v1→v3 vía v2 lo compone el caller
// con Compose, explícitamente.
type Migrations struct {
	mu  sync.RWMutex
	fns map[string]MigrationFunc
}

func NewMigrations() *Migrations {
	return &Migrations{fns: make(map[string]MigrationFunc)}
}

// Register guarda la migración bajo (from, to); la última gana.
func (m *Migrations) Register(from, to string, fn MigrationFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fns[migrationKey(from, to)] = fn
}

// Lookup devuelve la migración exacta y un flag de presencia.
func (m *Migrations) Lookup(from, to string) (MigrationFunc, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.fns[migrationKey(from, to)]
	return fn, ok
}

// Apply aplica la migración exacta (from, to). Si no hay ninguna
// registrada devuelve el payload sin cambios: una migración ausente
// degrada a identidad en vez de cortar el camino de fallback.
func (m *Migrations) Apply(data map[string]any, from, to string) map[string]any {
	fn, ok := m.Lookup(from, to)
	if !ok {
		return data
	}
	return fn(data)
}

func migrationKey(from, to string) string {
	return from + "_" + to
}

// RenameField produce una migración que renombra un campo si está
// presente; si falta, deja el payload igual.
func RenameField(from, to string) MigrationFunc {
	return RenameFieldWith(from, to, nil)
}

// RenameFieldWith renombra un campo aplicando una transformación al valor.
// Con transform en nil el valor pasa tal cual.
func RenameFieldWith(from, to string, transform func(any) any) MigrationFunc {
	return func(data map[string]any) map[string]any {
		out := cloneData(data)
		v, ok := out[from]
		if !ok {
			return out
		}
		delete(out, from)
		if transform != nil {
			v = transform(v)
		}
		out[to] = v
		return out
	}
}

// SetDefault inyecta un valor cuando el campo está ausente o en null;
// pensado para campos que una versión nueva vuelve obligatorios.
func SetDefault(field string, value any) MigrationFunc {
	return func(data map[string]any) map[string]any {
		out := cloneData(data)
		if v, ok := out[field]; !ok || v == nil {
			out[field] = value
		}
		return out
	}
}

// DropField elimina un campo del payload.
func DropField(field string) MigrationFunc {
	return func(data map[string]any) map[string]any {
		out := cloneData(data)
		delete(out, field)
		return out
	}
}

// Compose encadena migraciones de izquierda a derecha.
func Compose(fns ...MigrationFunc) MigrationFunc {
	return func(data map[string]any) map[string]any {
		out := cloneData(data)
		for _, fn := range fns {
			out = fn(out)
		}
		return out
	}
}

func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return make(map[string]any)
	}
	return maps.Clone(data)
}
