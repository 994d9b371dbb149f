// Package lazy defers producing a value until it is first read.
package lazy

import (
	"errors"
	"sync"
)

// ErrNoProducer is returned by Get on a Value that has neither a result nor a producer.
var ErrNoProducer = errors.New("lazy value has no producer")

// Value holds a producer that runs on the first Get. A successful result is
// memoized; a failed one is not, so the next Get retries the producer.
// Concurrent Gets are serialized.
type Value[T any] struct {
	mu       sync.Mutex
	producer func() (T, error)
	resolved bool
	value    T
}

// New wraps producer without invoking it.
func New[T any](producer func() (T, error)) *Value[T] {
	return &Value[T]{producer: producer}
}

// Of returns an already resolved value.
func Of[T any](v T) *Value[T] {
	return &Value[T]{resolved: true, value: v}
}

// Get returns the memoized value, invoking the producer if no earlier call succeeded.
func (v *Value[T]) Get() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.resolved {
		return v.value, nil
	}
	if v.producer == nil {
		var zero T
		return zero, ErrNoProducer
	}

	val, err := v.producer()
	if err != nil {
		var zero T
		return zero, err
	}

	v.value = val
	v.resolved = true
	v.producer = nil
	return val, nil
}

// Resolved reports whether a Get has succeeded.
func (v *Value[T]) Resolved() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.resolved
}

// Map returns a lazy value applying fn to the result of v. Neither v nor fn
// runs until the returned value is read.
func Map[T, U any](v *Value[T], fn func(T) (U, error)) *Value[U] {
	return New(func() (U, error) {
		in, err := v.Get()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(in)
	})
}
