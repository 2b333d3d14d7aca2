package config

// Settable wraps a configuration value together with the knowledge of
// whether it was set explicitly or still carries its default.
type Settable[T any] struct {
	value T
	set   bool
}

// NewSettable returns a value in its default, unset state.
func NewSettable[T any](def T) Settable[T] {
	return Settable[T]{value: def}
}

// Set stores an explicit value.
func (s *Settable[T]) Set(v T) {
	s.value = v
	s.set = true
}

// Get returns the current value, explicit or default.
func (s *Settable[T]) Get() T {
	return s.value
}

// IsSet reports whether the value was set explicitly.
func (s *Settable[T]) IsSet() bool {
	return s.set
}
