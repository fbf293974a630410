package model

import (
	"fmt"
	"time"
)

// IDPolicy sets the minimum id length. MinLength applies when a node is
// constructed, MinReassignLength when its id is reassigned afterwards.
type IDPolicy struct {
	MinLength         int `json:"min_length" yaml:"min_length"`
	MinReassignLength int `json:"min_reassign_length" yaml:"min_reassign_length"`
}

// DefaultIDPolicy requires a non-empty id in both cases.
func DefaultIDPolicy() IDPolicy {
	return IDPolicy{MinLength: 1, MinReassignLength: 1}
}

func (p IDPolicy) validate(id string, minLength int) error {
	if minLength < 1 {
		minLength = 1
	}
	if err := fieldValidate.Var(id, fmt.Sprintf("required,min=%d", minLength)); err != nil {
		return fmt.Errorf("%w: id %q must have at least %d characters", ErrInvalidValue, id, minLength)
	}
	return nil
}

// Option configures node construction.
type Option func(*options)

type options struct {
	graph    *Graph
	taxonomy *Taxonomy
	policy   IDPolicy
	now      func() time.Time
}

// WithGraph binds the node to g instead of the default graph.
func WithGraph(g *Graph) Option {
	return func(o *options) {
		if g != nil {
			o.graph = g
		}
	}
}

// WithTaxonomy gates the node on t instead of the default taxonomy.
func WithTaxonomy(t *Taxonomy) Option {
	return func(o *options) {
		if t != nil {
			o.taxonomy = t
		}
	}
}

// WithIDPolicy overrides the id length policy.
func WithIDPolicy(p IDPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithClock sets the clock used for the default created time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func resolveOptions(opts []Option) options {
	o := options{
		policy: DefaultIDPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.graph == nil {
		o.graph = DefaultGraph()
	}
	if o.taxonomy == nil {
		o.taxonomy = DefaultTaxonomy()
	}
	return o
}
