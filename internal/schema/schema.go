// Package schema validates standard parameter maps against per-operation
// required/optional field lists and simple cross-field rules before any
// network call is attempted.
package schema

import (
	"fmt"

	"broker-bridge/internal/params"
)

// Rule inspects a parameter map and returns human-readable field-level
// problems. Rules never panic on missing or oddly typed fields; absence is
// the required-field check's job.
type Rule func(fields map[string]any) []string

// Schema declares what an operation structurally needs.
type Schema struct {
	Operation params.Operation
	Category  params.Category
	Required  []string
	Optional  []string
	Rules     []Rule
}

// Validate checks required-field presence and then runs the rules.
func (s Schema) Validate(fields map[string]any) []string {
	var errs []string
	for _, name := range s.Required {
		if _, ok := fields[name]; !ok {
			errs = append(errs, fmt.Sprintf("missing required field: %s", name))
		}
	}
	for _, rule := range s.Rules {
		errs = append(errs, rule(fields)...)
	}
	return errs
}

// Registry maps operations to schemas. It is built once at startup and
// treated as read-only afterward; Register is not safe for concurrent use.
type Registry struct {
	schemas map[params.Operation]Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[params.Operation]Schema)}
}

func (r *Registry) Register(s Schema) {
	r.schemas[s.Operation] = s
}

// Get returns the schema for an operation, if one is registered.
func (r *Registry) Get(op params.Operation) (Schema, bool) {
	s, ok := r.schemas[op]
	return s, ok
}

// Operations lists every operation with a registered schema.
func (r *Registry) Operations() []params.Operation {
	ops := make([]params.Operation, 0, len(r.schemas))
	for op := range r.schemas {
		ops = append(ops, op)
	}
	return ops
}

// Validate returns field-level error messages for the operation. An
// operation without a registered schema has no structural requirements and
// validates clean; parameter-free operations like get_profile fall out of
// this naturally.
func (r *Registry) Validate(op params.Operation, fields map[string]any) []string {
	s, ok := r.schemas[op]
	if !ok {
		return nil
	}
	return s.Validate(fields)
}
