// Package predicate selects and tests slice elements with caller supplied
// predicates. Every function keeps the relative order of the input, never
// modifies it and lets a panicking predicate propagate to the caller.
package predicate

import (
	"github.com/samber/lo"
)

type Predicate[T any] func(T) bool

// Not negates p.
func Not[T any](p func(T) bool) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Keep returns the elements of s for which p holds.
func Keep[S ~[]T, T any](s S, p func(T) bool) S {
	return lo.Filter(s, func(v T, _ int) bool {
		return p(v)
	})
}

// Discard returns the elements of s for which p does not hold.
func Discard[S ~[]T, T any](s S, p func(T) bool) S {
	return lo.Reject(s, func(v T, _ int) bool {
		return p(v)
	})
}

// TakeWhile returns the longest prefix of s whose elements all satisfy p.
func TakeWhile[S ~[]T, T any](s S, p func(T) bool) S {
	n := 0
	for n < len(s) && p(s[n]) {
		n++
	}

	return clone(s[:n])
}

// TakeWhileFromEnd returns the longest suffix of s whose elements all
// satisfy p, scanning from the last element backwards.
func TakeWhileFromEnd[S ~[]T, T any](s S, p func(T) bool) S {
	n := len(s)
	for n > 0 && p(s[n-1]) {
		n--
	}

	return clone(s[n:])
}

func Any[T any](s []T, p func(T) bool) bool {
	return lo.SomeBy(s, p)
}

func All[T any](s []T, p func(T) bool) bool {
	return lo.EveryBy(s, p)
}

func None[T any](s []T, p func(T) bool) bool {
	return lo.NoneBy(s, p)
}

// Find returns the first element satisfying p.
func Find[T any](s []T, p func(T) bool) (T, bool) {
	return lo.Find(s, p)
}

// FindIndex returns the position of the first element satisfying p.
func FindIndex[T any](s []T, p func(T) bool) (int, bool) {
	_, i, ok := lo.FindIndexOf(s, p)
	return i, ok
}

// FindLast returns the last element satisfying p.
func FindLast[T any](s []T, p func(T) bool) (T, bool) {
	v, _, ok := lo.FindLastIndexOf(s, p)
	return v, ok
}

// FindLastIndex returns the position of the last element satisfying p.
func FindLastIndex[T any](s []T, p func(T) bool) (int, bool) {
	_, i, ok := lo.FindLastIndexOf(s, p)
	return i, ok
}

func clone[S ~[]T, T any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}
