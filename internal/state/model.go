package state

import "github.com/weblarek/storefront/internal/events"

// model is the shared base for domain models: one private state value plus a
// bound emit. Mutation goes through setData, always as whole-value
// replacement, and only the owning model's public methods call it. Change
// events carry computed snapshots derived by those methods, never the raw
// state, so subscribers cannot grow dependencies on internal field names.
type model[T any] struct {
	data T
	bus  *events.Bus
}

func newModel[T any](bus *events.Bus, initial T) model[T] {
	return model[T]{data: initial, bus: bus}
}

func (m *model[T]) setData(data T) {
	m.data = data
}

func (m *model[T]) emit(name string, payload any) {
	m.bus.Emit(name, payload)
}
