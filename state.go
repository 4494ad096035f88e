package autoprompt

// StateKind is the lifecycle state reported after every key event.
type StateKind int

const (
	// StateActive means the prompt keeps reading keys.
	StateActive StateKind = iota
	// StateCancel means the prompt ends without a value.
	StateCancel
	// StateError means the last key produced a recoverable error. The message
	// is shown for one render pass and the prompt keeps reading keys.
	StateError
	// StateSubmit means the prompt ends with a parsed value.
	StateSubmit
)

// String returns a lower-case name for the kind.
func (k StateKind) String() string {
	switch k {
	case StateActive:
		return "active"
	case StateCancel:
		return "cancel"
	case StateError:
		return "error"
	case StateSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Status is the part of a State a Theme needs: the kind and, for
// StateError, the message.
type Status struct {
	Kind    StateKind
	Message string
}

// State is the result of handling one key event.
type State[T any] struct {
	Kind    StateKind
	Message string // set for StateError
	Value   T      // set for StateSubmit

	// transient marks the StateCancel returned when Escape switches a
	// multiline prompt from editing to preview. Hosts must keep reading.
	transient bool
}

// Active returns a StateActive state.
func Active[T any]() State[T] {
	return State[T]{Kind: StateActive}
}

// Cancel returns a StateCancel state.
func Cancel[T any]() State[T] {
	return State[T]{Kind: StateCancel}
}

// Error returns a StateError state carrying message.
func Error[T any](message string) State[T] {
	return State[T]{Kind: StateError, Message: message}
}

// Submit returns a StateSubmit state carrying value.
func Submit[T any](value T) State[T] {
	return State[T]{Kind: StateSubmit, Value: value}
}

// previewCancel is the StateCancel reported when Escape enters the multiline
// preview. It is not a cancellation.
func previewCancel[T any]() State[T] {
	return State[T]{Kind: StateCancel, transient: true}
}

// Done reports whether the prompt has ended, either submitted or cancelled.
func (s State[T]) Done() bool {
	return s.Kind == StateSubmit || s.Cancelled()
}

// Cancelled reports whether the state is a real cancellation.
//
// Escape in multiline editing reports StateCancel for that single event while
// switching to the preview. Cancelled returns false for it, and hosts must
// treat it as StateActive.
func (s State[T]) Cancelled() bool {
	return s.Kind == StateCancel && !s.transient
}

// IsPreviewSwitch reports whether the state is the StateCancel produced by
// Escape switching a multiline prompt into the preview.
func (s State[T]) IsPreviewSwitch() bool {
	return s.Kind == StateCancel && s.transient
}

// Status returns the kind and message for theming. The preview switch is
// reported as StateActive.
func (s State[T]) Status() Status {
	if s.IsPreviewSwitch() {
		return Status{Kind: StateActive}
	}
	return Status{Kind: s.Kind, Message: s.Message}
}
