// Package seqmap applies functions over slices and collects the results,
// keeping track of each output's source position when asked to.
package seqmap

import "fmt"

// Indexed pairs a mapped value with the position of its source element.
type Indexed[R any] struct {
	ID    int
	Value R
}

// Map applies fn to every element of in and returns the collected results.
func Map[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// TryMap applies fn to every element of in and returns the collected
// results. The first failing element aborts the whole mapping; the returned
// error carries the element's position.
func TryMap[T, R any](in []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	for i, v := range in {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("seqmap: element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// MapIndexed is TryMap with each result tagged by its source position, so
// callers can assemble outputs into tabular form without losing the link
// back to the input.
func MapIndexed[T, R any](in []T, fn func(T) (R, error)) ([]Indexed[R], error) {
	out := make([]Indexed[R], len(in))
	for i, v := range in {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("seqmap: element %d: %w", i, err)
		}
		out[i] = Indexed[R]{ID: i, Value: r}
	}
	return out, nil
}

// Keys collects the keys of a map in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
