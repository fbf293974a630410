package model

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identity field names.
const (
	FieldID         = "id"
	FieldCreated    = "created"
	FieldModified   = "modified"
	FieldMembership = "membership"
	// FieldInProject is accepted as an alias of FieldMembership.
	FieldInProject = "in_project"
)

// Fields is the field bag passed to node constructors and keyed by field name.
type Fields map[string]any

// Node is implemented by every type that embeds an Identity.
type Node interface {
	ID() string
	Kind() Kind
	Created() time.Time
	Modified() *time.Time
	Membership() []Container
	Set(field string, value any) error

	node() *Identity
	setField(field string, value any) error
}

// Container is a node that owns other nodes through the graph.
type Container interface {
	Node
	AddElement(e Node) error
	RemoveElement(e Node) error
	Elements() []Node
}

// Identity carries the id, timestamps and graph binding shared by all nodes.
// It is embedded by value in every node type and initialised by Init.
// Identity fields are safe for concurrent use; fields of embedding types are not.
type Identity struct {
	mu       sync.RWMutex
	id       string
	created  time.Time
	modified *time.Time

	kind     Kind
	self     Node
	graph    *Graph
	taxonomy *Taxonomy
	policy   IDPolicy
	now      func() time.Time
}

// Init runs the construction gate for self and applies fields. A node can
// only be initialised once.
//
// The taxonomy check runs before any field is looked at. Identity fields are
// validated together so that modified is compared with the final created
// value; the remaining fields are handed to self in name order.
func Init(self Node, kind Kind, fields Fields, opts ...Option) error {
	if isNilNode(self) {
		return fmt.Errorf("%w: nil node", ErrInvalidType)
	}
	return self.node().init(self, kind, fields, opts)
}

func (i *Identity) init(self Node, kind Kind, fields Fields, opts []Option) error {
	if i.self != nil {
		return fmt.Errorf("%w: %s %q already constructed", ErrInvalidType, i.kind, i.ID())
	}
	o := resolveOptions(opts)

	if err := o.taxonomy.Check(kind); err != nil {
		return err
	}

	for field := range fields {
		if isMembershipField(field) {
			return &FieldError{Kind: kind, Field: field, Err: ErrReadOnlyField}
		}
		if !o.taxonomy.Declares(kind, field) {
			return &FieldError{Kind: kind, Field: field, Err: ErrUnknownField}
		}
	}

	id := uuid.NewString()
	if v, ok := fields[FieldID]; ok {
		s, err := asString(v)
		if err == nil {
			err = o.policy.validate(s, o.policy.MinLength)
		}
		if err != nil {
			return fieldError(kind, FieldID, err)
		}
		id = s
	}

	created := o.now()
	if v, ok := fields[FieldCreated]; ok {
		t, err := asTime(v)
		if err != nil {
			return fieldError(kind, FieldCreated, err)
		}
		created = t
	}

	var modified *time.Time
	if v, ok := fields[FieldModified]; ok {
		t, err := asOptionalTime(v)
		if err != nil {
			return fieldError(kind, FieldModified, err)
		}
		modified = t
	}
	if err := checkOrder(created, modified); err != nil {
		return fieldError(kind, FieldModified, err)
	}

	i.id = id
	i.created = created
	i.modified = modified
	i.kind = kind
	i.graph = o.graph
	i.taxonomy = o.taxonomy
	i.policy = o.policy
	i.now = o.now

	for _, field := range slices.Sorted(maps.Keys(fields)) {
		switch field {
		case FieldID, FieldCreated, FieldModified:
			continue
		}
		if err := self.setField(field, fields[field]); err != nil {
			return fieldError(kind, field, err)
		}
	}

	i.self = self
	return nil
}

func (i *Identity) node() *Identity {
	return i
}

// ID returns the node id.
func (i *Identity) ID() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.id
}

// Kind returns the node kind.
func (i *Identity) Kind() Kind {
	return i.kind
}

// Created returns the creation time.
func (i *Identity) Created() time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.created
}

// Modified returns the modification time, nil if unset.
func (i *Identity) Modified() *time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.modified == nil {
		return nil
	}
	m := *i.modified
	return &m
}

// Graph returns the graph the node is bound to.
func (i *Identity) Graph() *Graph {
	return i.graph
}

// Membership returns the containers owning this node in the order they
// added it. The slice is a copy.
func (i *Identity) Membership() []Container {
	if i.graph == nil {
		return nil
	}
	return i.graph.membershipOf(i)
}

// SameID reports whether two nodes carry the same id.
func SameID(a, b Node) bool {
	if isNilNode(a) || isNilNode(b) {
		return false
	}
	return a.ID() == b.ID()
}

// SetID reassigns the id using the reassignment length policy.
func (i *Identity) SetID(id string) error {
	return i.Set(FieldID, id)
}

// SetCreated sets the creation time. It fails if the current modified time
// would precede it.
func (i *Identity) SetCreated(t time.Time) error {
	return i.Set(FieldCreated, t)
}

// SetModified sets the modification time; nil clears it.
func (i *Identity) SetModified(t *time.Time) error {
	return i.Set(FieldModified, t)
}

// Touch sets modified to the current time.
func (i *Identity) Touch() error {
	if i.now == nil {
		return fmt.Errorf("%w: node was not constructed", ErrInvalidType)
	}
	return i.Set(FieldModified, i.now())
}

// Set writes a single field of the node after validating it.
// Membership fields are read-only and undeclared fields are rejected.
func (i *Identity) Set(field string, value any) error {
	if i.self == nil {
		return fmt.Errorf("%w: node was not constructed", ErrInvalidType)
	}
	if isMembershipField(field) {
		return &FieldError{Kind: i.kind, Field: field, Err: ErrReadOnlyField}
	}
	if !i.taxonomy.Declares(i.kind, field) {
		return &FieldError{Kind: i.kind, Field: field, Err: ErrUnknownField}
	}
	return fieldError(i.kind, field, i.self.setField(field, value))
}

// setField handles the identity fields. Embedding types handle their own
// fields first and fall through to this one.
func (i *Identity) setField(field string, value any) error {
	switch field {
	case FieldID:
		s, err := asString(value)
		if err != nil {
			return err
		}
		if err := i.policy.validate(s, i.policy.MinReassignLength); err != nil {
			return err
		}
		i.mu.Lock()
		i.id = s
		i.mu.Unlock()
		return nil

	case FieldCreated:
		t, err := asTime(value)
		if err != nil {
			return err
		}
		i.mu.Lock()
		defer i.mu.Unlock()
		if err := checkOrder(t, i.modified); err != nil {
			return err
		}
		i.created = t
		return nil

	case FieldModified:
		t, err := asOptionalTime(value)
		if err != nil {
			return err
		}
		i.mu.Lock()
		defer i.mu.Unlock()
		if err := checkOrder(i.created, t); err != nil {
			return err
		}
		i.modified = t
		return nil
	}
	return ErrUnknownField
}

// options returns the options this node was built with, so nodes created on
// its behalf share the same graph, taxonomy and policy.
func (i *Identity) options() []Option {
	return []Option{
		WithGraph(i.graph),
		WithTaxonomy(i.taxonomy),
		WithIDPolicy(i.policy),
		WithClock(i.now),
	}
}

func checkOrder(created time.Time, modified *time.Time) error {
	if modified != nil && modified.Before(created) {
		return ErrTimestampOrder
	}
	return nil
}

func isMembershipField(field string) bool {
	return field == FieldMembership || field == FieldInProject
}
