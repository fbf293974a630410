package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for node construction, field writes and graph edges.
var (
	// ErrDisallowedTaxonomy is returned when a kind does not descend from a
	// permitted shape.
	ErrDisallowedTaxonomy = errors.New("disallowed taxonomy")

	// ErrTimestampOrder is returned when modified precedes created.
	ErrTimestampOrder = errors.New("the 'modified' datetime must be later than the 'created' datetime")

	// ErrReadOnlyField is returned when writing the graph-maintained membership field.
	ErrReadOnlyField = errors.New("field is read-only; membership is changed through the container")

	// ErrUnknownField is returned when writing a field the kind does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidType is returned when a value has the wrong type for a field
	// or a graph operation.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a value has the right type but breaks
	// a field constraint.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownKind is returned when a kind or parent is not registered.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrKindExists is returned when registering a kind twice.
	ErrKindExists = errors.New("kind already registered")
)

// TaxonomyError reports a kind rejected by the taxonomy gate.
type TaxonomyError struct {
	Kind      Kind
	Permitted []Kind
}

func (e *TaxonomyError) Error() string {
	names := make([]string, len(e.Permitted))
	for i, k := range e.Permitted {
		names[i] = string(k)
	}
	return fmt.Sprintf("%q is not an allowed subclass; only these subclasses are permitted: %s",
		e.Kind, strings.Join(names, ", "))
}

// Is makes errors.Is(err, ErrDisallowedTaxonomy) match.
func (e *TaxonomyError) Is(target error) bool {
	return target == ErrDisallowedTaxonomy
}

// FieldError reports a failed write to a single field of a node.
type FieldError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Kind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldError wraps err for kind.field unless it already is a FieldError.
func fieldError(kind Kind, field string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Kind: kind, Field: field, Err: err}
}
