package health

import (
	"fmt"
	"sync"
)

// TriggerRegistry holds the Tier 2 triggers in registration order.
// The order is the order in which a document's findings appear in the queue.
type TriggerRegistry struct {
	mu       sync.RWMutex
	triggers map[string]Trigger
	order    []string
}

// NewTriggerRegistry creates an empty registry.
func NewTriggerRegistry() *TriggerRegistry {
	return &TriggerRegistry{
		triggers: make(map[string]Trigger),
	}
}

// Register adds a trigger to the registry.
func (r *TriggerRegistry) Register(trigger Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := trigger.Name()
	if _, exists := r.triggers[name]; exists {
		return fmt.Errorf("trigger %q already registered", name)
	}

	r.triggers[name] = trigger
	r.order = append(r.order, name)
	return nil
}

// Get returns a registered trigger by name.
func (r *TriggerRegistry) Get(name string) (Trigger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trigger, exists := r.triggers[name]
	return trigger, exists
}

// List returns the registered trigger names in registration order.
func (r *TriggerRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Triggers returns the registered triggers in registration order.
func (r *TriggerRegistry) Triggers() []Trigger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	triggers := make([]Trigger, 0, len(r.order))
	for _, name := range r.order {
		triggers = append(triggers, r.triggers[name])
	}
	return triggers
}

// Applicable returns the triggers that run for a document of the given depth.
func (r *TriggerRegistry) Applicable(depth string) []Trigger {
	var applicable []Trigger
	for _, trigger := range r.Triggers() {
		if trigger.AppliesTo(depth) {
			applicable = append(applicable, trigger)
		}
	}
	return applicable
}

// RunTrigger checks one document with a specific registered trigger.
func (r *TriggerRegistry) RunTrigger(name, path string) ([]Finding, error) {
	trigger, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("trigger %q not registered", name)
	}
	return trigger.Check(path)
}
