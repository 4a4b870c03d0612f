package safe

// Lift adapts a function without an error return so it can be wrapped.
// Such a function can only fail by panicking.
func Lift[A, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (B, error) {
		return f(a), nil
	}
}

// Safely wraps f so that calling it never panics. A returned error or a
// panic both become a failed Result.
func Safely[A, B any](f func(A) (B, error)) func(A) Result[B] {
	return func(a A) Result[B] {
		return call(f, a)
	}
}

// Possibly wraps f so that any failure yields otherwise instead.
func Possibly[A, B any](f func(A) (B, error), otherwise B) func(A) B {
	wrapped := Safely(f)

	return func(a A) B {
		if v, ok := wrapped(a).Value(); ok {
			return v
		}

		return otherwise
	}
}

// call builds the whole Result inside the recover boundary, so reading the
// returned error cannot escape either.
func call[A, B any](f func(A) (B, error), a A) (res Result[B]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[B](panicked(r))
		}
	}()

	v, err := f(a)
	if err != nil {
		return Fail[B](newFailure(err))
	}

	return Success(v)
}

func panicked(r any) (f *Failure) {
	defer func() {
		if again := recover(); again != nil {
			f = newFailure(ErrPanic.New("%v", again))
		}
	}()

	if err, ok := r.(error); ok {
		return newFailure(ErrPanic.Wrap(err))
	}

	return newFailure(ErrPanic.New("%v", r))
}
