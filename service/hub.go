package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

// Hub is the runtime container for service instances
// Manages lifecycle order and provides typed access
type Hub struct {
	mu          sync.RWMutex
	services    map[string]Service
	sorted      []string // Topological order, computed on InitAll
	initialized []string // Services whose Init succeeded, in order
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	h.services[name] = svc
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts to type T
// Panics if service not found or type mismatch
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}

	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// Order returns the resolved initialization order
func (h *Hub) Order() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.resolve(); err != nil {
		return nil, err
	}
	return slices.Clone(h.sorted), nil
}

func (h *Hub) resolve() error {
	if h.sorted != nil {
		return nil
	}
	order, err := h.topologicalSort()
	if err != nil {
		return err
	}
	h.sorted = order
	return nil
}

// InitAll resolves dependencies and calls Init on all services
// On failure, already-initialized services are stopped in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resolve(); err != nil {
		return err
	}

	h.initialized = h.initialized[:0]
	for _, name := range h.sorted {
		if err := h.services[name].Init(); err != nil {
			h.stopInitialized()
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		h.initialized = append(h.initialized, name)
	}

	return nil
}

// StartAll calls Start on all services in topological order
// On failure, every initialized service is stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range h.initialized {
		if err := h.services[name].Start(); err != nil {
			h.stopInitialized()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
	}

	return nil
}

// StopAll calls Stop on all initialized services in reverse topological order
// Every service gets Stop called; failures are logged and joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopInitialized()
}

// stopInitialized requires h.mu held
func (h *Hub) stopInitialized() error {
	var errs []error
	for i := len(h.initialized) - 1; i >= 0; i-- {
		name := h.initialized[i]
		if err := h.services[name].Stop(); err != nil {
			log.Printf("service %s stop: %v", name, err)
			errs = append(errs, fmt.Errorf("service %s stop: %w", name, err))
		}
	}
	h.initialized = h.initialized[:0]
	return errors.Join(errs...)
}

// topologicalSort computes initialization order using Kahn's algorithm
// Ties break by name so the order is deterministic
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for name := range h.services {
		inDegree[name] = 0
	}

	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	result := make([]string, 0, len(h.services))
	for len(ready) > 0 {
		slices.Sort(ready)
		name := ready[0]
		ready = ready[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}

	return result, nil
}
