package tuple

import (
	"fmt"
	"strings"
)

// Sequence is satisfied by every container a Parser can build.
// Len is what the arity check measures.
type Sequence interface {
	Len() int
	String() string
}

// Builder assembles converted items into a container.
type Builder[T any, C Sequence] func([]T) C

// Tuple is an immutable, fixed-size sequence. It is the default container.
type Tuple[T any] struct {
	items []T
}

// NewTuple copies items into a new Tuple.
func NewTuple[T any](items []T) Tuple[T] {
	return Tuple[T]{items: append([]T(nil), items...)}
}

func (t Tuple[T]) Len() int {
	return len(t.items)
}

// At returns the i-th item. It panics if i is out of range.
func (t Tuple[T]) At(i int) T {
	return t.items[i]
}

// Items returns a copy of the tuple's items.
func (t Tuple[T]) Items() []T {
	return append([]T(nil), t.items...)
}

func (t Tuple[T]) String() string {
	return "(" + join(t.items) + ")"
}

// List is a mutable sequence backed by a plain slice.
type List[T any] []T

// NewList wraps items as a List without copying.
func NewList[T any](items []T) List[T] {
	return List[T](items)
}

func (l List[T]) Len() int {
	return len(l)
}

func (l List[T]) String() string {
	return "[" + join(l) + "]"
}

// Set keeps the first occurrence of each item, in input order.
type Set[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewSet builds a Set from items, dropping duplicates.
func NewSet[T comparable](items []T) Set[T] {
	s := Set[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
	}
	return s
}

func (s Set[T]) Len() int {
	return len(s.items)
}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Items returns a copy of the set's items in insertion order.
func (s Set[T]) Items() []T {
	return append([]T(nil), s.items...)
}

func (s Set[T]) String() string {
	return "{" + join(s.items) + "}"
}

func join[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ", ")
}
