// Package catalog is the (broker, operation) endpoint registry: which
// broker endpoint serves a logical operation, over which HTTP method, and
// which fields the broker requires. Entries are registered once at startup
// and read-only afterward.
package catalog

import (
	"sort"

	"broker-bridge/internal/params"
)

// Endpoint describes one broker REST endpoint. Path segments wrapped in
// braces ({instrument_key}) are substituted from the payload at dispatch.
type Endpoint struct {
	Name         string
	Path         string
	Method       string
	RequiresAuth bool
	RateGroup    string
	CacheTTL     int // seconds; 0 disables caching
}

// Mapping binds a logical operation to a broker endpoint together with the
// broker's own field requirements.
type Mapping struct {
	Operation params.Operation
	Endpoint  Endpoint
	Required  []string
	Optional  []string
}

// Registry holds the mappings for every registered broker. Add is not safe
// for concurrent use; registration happens at startup only.
type Registry struct {
	brokers map[string]map[params.Operation]Mapping
}

func NewRegistry() *Registry {
	return &Registry{brokers: make(map[string]map[params.Operation]Mapping)}
}

func (r *Registry) Add(broker string, m Mapping) {
	ops, ok := r.brokers[broker]
	if !ok {
		ops = make(map[params.Operation]Mapping)
		r.brokers[broker] = ops
	}
	ops[m.Operation] = m
}

// Lookup returns the mapping for a (broker, operation) pair.
func (r *Registry) Lookup(broker string, op params.Operation) (Mapping, bool) {
	m, ok := r.brokers[broker][op]
	return m, ok
}

// Operations lists the operations a broker supports, sorted.
func (r *Registry) Operations(broker string) []params.Operation {
	ops := make([]params.Operation, 0, len(r.brokers[broker]))
	for op := range r.brokers[broker] {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Brokers lists every registered broker, sorted.
func (r *Registry) Brokers() []string {
	names := make([]string, 0, len(r.brokers))
	for name := range r.brokers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builder accumulates one broker's mappings fluently before registering
// them in one shot.
type Builder struct {
	broker   string
	mappings []Mapping
}

func NewBuilder(broker string) *Builder {
	return &Builder{broker: broker}
}

func (b *Builder) Operation(op params.Operation, ep Endpoint, required []string, optional ...string) *Builder {
	if ep.RateGroup == "" {
		ep.RateGroup = "default"
	}
	b.mappings = append(b.mappings, Mapping{
		Operation: op,
		Endpoint:  ep,
		Required:  required,
		Optional:  optional,
	})
	return b
}

func (b *Builder) Build(r *Registry) {
	for _, m := range b.mappings {
		r.Add(b.broker, m)
	}
}
