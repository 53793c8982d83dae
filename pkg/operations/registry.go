package operations

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownOperation is returned by Lookup for ids that were never registered.
var ErrUnknownOperation = errors.New("unknown operation")

// Registry resolves operations by id and groups them per entity.
type Registry interface {
	Lookup(id string) (Operation, error)
	ForEntity(e Entity) []Operation
	Entities() []Entity
}

// registry implements Registry.
type registry struct {
	byID     map[string]Operation
	byEntity map[Entity][]Operation
	entities []Entity
	mu       sync.RWMutex
}

// NewRegistry builds a registry keeping the given registration order.
func NewRegistry(ops ...Operation) Registry {
	reg := &registry{
		byID:     make(map[string]Operation),
		byEntity: make(map[Entity][]Operation),
	}
	for _, op := range ops {
		reg.register(op)
	}
	return reg
}

func (r *registry) register(op Operation) {
	key := strings.ToLower(strings.TrimSpace(op.ID))
	if key == "" || op.Build == nil || op.Present == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[key]; exists {
		return
	}
	if _, seen := r.byEntity[op.Entity]; !seen {
		r.entities = append(r.entities, op.Entity)
	}
	r.byID[key] = op
	r.byEntity[op.Entity] = append(r.byEntity[op.Entity], op)
}

// Lookup finds an operation by id, case-insensitively.
func (r *registry) Lookup(id string) (Operation, error) {
	if r == nil {
		return Operation{}, fmt.Errorf("operation registry is nil")
	}
	key := strings.ToLower(strings.TrimSpace(id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.byID[key]
	if !ok {
		return Operation{}, fmt.Errorf("%w %q", ErrUnknownOperation, id)
	}
	return op, nil
}

// ForEntity lists the entity's operations in registration order.
func (r *registry) ForEntity(e Entity) []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := r.byEntity[e]
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}

// Entities lists entities in the order their first operation was registered.
func (r *registry) Entities() []Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Default wires every product, order, category and user operation.
func Default() Registry {
	var ops []Operation
	ops = append(ops, ProductOperations()...)
	ops = append(ops, OrderOperations()...)
	ops = append(ops, CategoryOperations()...)
	ops = append(ops, UserOperations()...)
	return NewRegistry(ops...)
}
