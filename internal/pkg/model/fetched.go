package model

// Fetched records the outcome of one remote lookup so views can tell a section
// that was never requested apart from one whose fetch failed.
type Fetched[T any] struct {
	Value     T
	Err       error
	Attempted bool
}

func Succeeded[T any](value T) Fetched[T] {
	return Fetched[T]{Value: value, Attempted: true}
}

func Failed[T any](err error) Fetched[T] {
	return Fetched[T]{Err: err, Attempted: true}
}

func NotAttempted[T any]() Fetched[T] {
	return Fetched[T]{}
}

func (f Fetched[T]) Ok() bool {
	return f.Attempted && f.Err == nil
}
