// Package nonempty provides a set type that can never hold zero members.
//
// A Set is constructed from at least one value and every mutation that would
// leave it empty fails with an error instead. Owners that need a "one or more"
// attribute (the permitted roots of a taxonomy, the natures a class is
// restricted to) hold a *Set and never have to re-check cardinality.
//
// A Set is not safe for concurrent mutation; callers lock around it.
package nonempty

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors returned by Set operations.
var (
	// ErrEmptyInput is returned when constructing a Set from no values.
	ErrEmptyInput = errors.New("nonempty: set requires at least one element")

	// ErrLastElement is returned when a removal would empty the set.
	ErrLastElement = errors.New("nonempty: cannot remove the last element")

	// ErrNotFound is returned by Remove when the value is not a member.
	ErrNotFound = errors.New("nonempty: element not found")

	// ErrCannotClear is returned by every call to Clear.
	ErrCannotClear = errors.New("nonempty: cannot clear a non-empty set")
)

// Set is an unordered collection of unique values with at least one member.
// The zero value is not usable; construct with New, FromSlice, FromMap or FromSeq.
type Set[T comparable] struct {
	members map[T]struct{}
}

// New creates a Set holding the given values.
// Returns ErrEmptyInput if no values are given.
func New[T comparable](initial ...T) (*Set[T], error) {
	return FromSlice(initial)
}

// FromSlice creates a Set from the values of a slice. Duplicates collapse.
func FromSlice[T comparable](values []T) (*Set[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	s := &Set[T]{members: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.members[v] = struct{}{}
	}
	return s, nil
}

// FromMap creates a Set from the keys of a map.
func FromMap[K comparable, V any](m map[K]V) (*Set[K], error) {
	if len(m) == 0 {
		return nil, ErrEmptyInput
	}
	s := &Set[K]{members: make(map[K]struct{}, len(m))}
	for k := range m {
		s.members[k] = struct{}{}
	}
	return s, nil
}

// FromSeq creates a Set from an iterator.
func FromSeq[T comparable](seq iter.Seq[T]) (*Set[T], error) {
	return FromSlice(slices.Collect(seq))
}

// MustNew is like New but panics on error. Intended for package-level defaults.
func MustNew[T comparable](initial ...T) *Set[T] {
	s, err := New(initial...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add inserts v. Adding an existing member is a no-op.
func (s *Set[T]) Add(v T) {
	s.members[v] = struct{}{}
}

// Update inserts every value of every given slice.
func (s *Set[T]) Update(others ...[]T) {
	for _, other := range others {
		for _, v := range other {
			s.members[v] = struct{}{}
		}
	}
}

// Remove deletes v.
//
// The cardinality check runs first: a single-member set returns
// ErrLastElement even when v is not that member. Otherwise a missing v
// returns ErrNotFound.
func (s *Set[T]) Remove(v T) error {
	if len(s.members) == 1 {
		return ErrLastElement
	}
	if _, ok := s.members[v]; !ok {
		return fmt.Errorf("remove %v: %w", v, ErrNotFound)
	}
	delete(s.members, v)
	return nil
}

// Discard deletes v if present. It fails only when v is the sole member.
func (s *Set[T]) Discard(v T) error {
	if _, ok := s.members[v]; !ok {
		return nil
	}
	if len(s.members) == 1 {
		return ErrLastElement
	}
	delete(s.members, v)
	return nil
}

// Pop removes and returns an arbitrary member.
func (s *Set[T]) Pop() (T, error) {
	var zero T
	if len(s.members) == 1 {
		return zero, ErrLastElement
	}
	for v := range s.members {
		delete(s.members, v)
		return v, nil
	}
	return zero, ErrLastElement
}

// Clear always fails; a Set can never be emptied.
func (s *Set[T]) Clear() error {
	return ErrCannotClear
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of members. It is always at least 1.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// All iterates the members in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.members)
}

// Values returns a copy of the members in unspecified order.
func (s *Set[T]) Values() []T {
	return slices.Collect(maps.Keys(s.members))
}

// Clone returns an independent copy.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{members: maps.Clone(s.members)}
}

// Equal reports whether both sets hold the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil || len(s.members) != len(other.members) {
		return false
	}
	for v := range s.members {
		if _, ok := other.members[v]; !ok {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string {
	parts := make([]string, 0, len(s.members))
	for v := range s.members {
		parts = append(parts, fmt.Sprint(v))
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Sorted returns the members in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}

// Hash returns a digest of the set's members that does not depend on
// insertion order. Only ordered member types can be hashed, because the
// digest is taken over the sorted members.
func Hash[T cmp.Ordered](s *Set[T]) uint64 {
	d := xxhash.New()
	for _, v := range Sorted(s) {
		_, _ = d.WriteString(fmt.Sprint(v))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
