package model

// Phase represents the lifecycle phase of an asynchronous fetch
type Phase int

const (
	// PhaseLoading means the fetch is in flight and no payload exists yet
	PhaseLoading Phase = iota

	// PhaseSuccess means the fetch finished and a payload is available
	PhaseSuccess

	// PhaseError means the fetch failed; the cause is kept but opaque
	PhaseError
)

// String returns the string representation of Phase
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseSuccess:
		return "Success"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Resource is a tagged union over the result of one asynchronous fetch.
// Exactly one of the three variants holds at any instant. Values are
// constructed through Loading, Success and Failed; the zero value is Loading.
type Resource[T any] struct {
	phase Phase
	value T
	err   error
}

// Loading returns a Resource in the loading phase with no payload
func Loading[T any]() Resource[T] {
	return Resource[T]{phase: PhaseLoading}
}

// Success returns a Resource holding the fetched payload
func Success[T any](value T) Resource[T] {
	return Resource[T]{phase: PhaseSuccess, value: value}
}

// Failed returns a Resource holding an opaque failure cause
func Failed[T any](err error) Resource[T] {
	return Resource[T]{phase: PhaseError, err: err}
}

// Phase returns the current lifecycle phase
func (r Resource[T]) Phase() Phase {
	return r.phase
}

// IsLoading returns true while the fetch is in flight
func (r Resource[T]) IsLoading() bool {
	return r.phase == PhaseLoading
}

// IsSuccess returns true when a payload is available
func (r Resource[T]) IsSuccess() bool {
	return r.phase == PhaseSuccess
}

// IsError returns true when the fetch failed
func (r Resource[T]) IsError() bool {
	return r.phase == PhaseError
}

// Value returns the payload and whether one is present
func (r Resource[T]) Value() (T, bool) {
	return r.value, r.phase == PhaseSuccess
}

// Err returns the failure cause, or nil outside the error phase
func (r Resource[T]) Err() error {
	if r.phase != PhaseError {
		return nil
	}
	return r.err
}

// Match dispatches to exactly one handler for the current variant.
// Nil handlers are skipped, so callers can observe a subset of phases.
func (r Resource[T]) Match(onLoading func(), onSuccess func(T), onError func(error)) {
	switch r.phase {
	case PhaseLoading:
		if onLoading != nil {
			onLoading()
		}
	case PhaseSuccess:
		if onSuccess != nil {
			onSuccess(r.value)
		}
	case PhaseError:
		if onError != nil {
			onError(r.err)
		}
	}
}
