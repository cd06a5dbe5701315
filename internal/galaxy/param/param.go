// Package param provides the tagged explicit-or-randomize variant used for
// fields a system definition may leave to the procedural generator.
package param

// Randomizable holds either an explicitly supplied value or the marker that
// the value must be derived from the owning seed downstream. The zero value
// means randomize, which matches the default state of every such field.
type Randomizable[T any] struct {
	value    T
	explicit bool
}

// Explicit wraps an explicitly supplied value.
func Explicit[T any](v T) Randomizable[T] {
	return Randomizable[T]{value: v, explicit: true}
}

// Randomize marks the field as left to the generator.
func Randomize[T any]() Randomizable[T] {
	return Randomizable[T]{}
}

// Set replaces the field with an explicit value.
func (r *Randomizable[T]) Set(v T) {
	r.value = v
	r.explicit = true
}

// IsRandom reports whether no explicit value was supplied.
func (r Randomizable[T]) IsRandom() bool {
	return !r.explicit
}

// Value returns the explicit value and whether one was set.
func (r Randomizable[T]) Value() (T, bool) {
	return r.value, r.explicit
}

// Or returns the explicit value, or fallback when the field is random.
func (r Randomizable[T]) Or(fallback T) T {
	if r.explicit {
		return r.value
	}
	return fallback
}
