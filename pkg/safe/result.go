package safe

import (
	"github.com/zeebo/errs"
)

var (
	// ErrPanic classifies failures produced by a recovered panic.
	ErrPanic = errs.Class("panic")

	// Warning classifies errors that should be reported with TagWarning.
	Warning = errs.Class("warning")
)

type Tag string

const (
	TagError   Tag = "error"
	TagWarning Tag = "warning"
)

// Failure describes why a wrapped call did not produce a value.
type Failure struct {
	message string
	tag     Tag
	cause   error
}

// newFailure inspects err, which may be a typed nil or have an Error method
// that panics. Any panic while reading it yields a failure of class ErrPanic.
func newFailure(err error) (f *Failure) {
	defer func() {
		if r := recover(); r != nil {
			cause := ErrPanic.New("%v", r)
			f = &Failure{
				message: cause.Error(),
				tag:     TagError,
				cause:   cause,
			}
		}
	}()

	tag := TagError
	if Warning.Has(err) && !ErrPanic.Has(err) {
		tag = TagWarning
	}

	return &Failure{
		message: err.Error(),
		tag:     tag,
		cause:   err,
	}
}

func (f *Failure) Message() string {
	return f.message
}

func (f *Failure) Tag() Tag {
	return f.tag
}

func (f *Failure) Error() string {
	return f.message
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Result holds the outcome of a single wrapped call. A Result with no
// failure is a success, so the zero value is a success holding the zero T.
type Result[T any] struct {
	value   T
	failure *Failure
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail builds a failed Result. A nil failure is replaced by a generic one so
// that the result still reports failure.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = newFailure(errs.New("unknown failure"))
	}

	return Result[T]{failure: f}
}

func (r Result[T]) Ok() bool {
	return r.failure == nil
}

func (r Result[T]) Value() (T, bool) {
	if r.failure != nil {
		var zero T
		return zero, false
	}

	return r.value, true
}

func (r Result[T]) Failure() (*Failure, bool) {
	return r.failure, r.failure != nil
}

func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}

	return r.failure
}

func (r Result[T]) Get() (T, error) {
	v, _ := r.Value()
	return v, r.Err()
}

// QuietResult is a Result plus the notices logged while producing it.
type QuietResult[T any] struct {
	Result[T]
	Notices []string
}
