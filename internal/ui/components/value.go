package components

// Value holds a widget's state in one of two modes fixed at construction.
// An uncontrolled value owns its state: Set stores and notifies. A
// controlled value mirrors its owner: Set only notifies and the owner pushes
// the accepted value back with Sync.
type Value[T comparable] struct {
	current    T
	controlled bool
	onChange   func(T)
}

// Controlled creates a value whose state belongs to the caller.
func Controlled[T comparable](v T) Value[T] {
	return Value[T]{current: v, controlled: true}
}

// Uncontrolled creates a value that starts at def and manages itself.
func Uncontrolled[T comparable](def T) Value[T] {
	return Value[T]{current: def}
}

// Get returns the current state.
func (v *Value[T]) Get() T {
	return v.current
}

// IsControlled reports the mode chosen at construction.
func (v *Value[T]) IsControlled() bool {
	return v.controlled
}

// OnChange registers the change handler.
func (v *Value[T]) OnChange(fn func(T)) {
	v.onChange = fn
}

// Set requests a transition to next and reports whether the stored state
// changed. The handler runs for every request whose value differs from the
// current one.
func (v *Value[T]) Set(next T) bool {
	if next == v.current {
		return false
	}
	if v.onChange != nil {
		v.onChange(next)
	}
	if v.controlled {
		return false
	}
	v.current = next
	return true
}

// Request notifies the handler with next even when it equals the current
// state, then stores it like Set. Use it for explicit activations such as a
// button press, which fire once per press.
func (v *Value[T]) Request(next T) bool {
	if v.onChange != nil {
		v.onChange(next)
	}
	if v.controlled || next == v.current {
		return false
	}
	v.current = next
	return true
}

// Sync overwrites a controlled value with the owner's state. It is ignored
// for uncontrolled values.
func (v *Value[T]) Sync(next T) {
	if v.controlled {
		v.current = next
	}
}
