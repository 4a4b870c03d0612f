package pipe

import (
	"runtime"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
)

// Map applies f to every element of in.
func Map[A, B any](in []A, f func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = f(v)
	}

	return out
}

type parallelOptions struct {
	goroutines int
}

type Option func(*parallelOptions)

// WithGoroutines bounds the number of workers used by ParallelMap. Values
// lower than one are ignored.
func WithGoroutines(n int) Option {
	return func(o *parallelOptions) {
		if n > 0 {
			o.goroutines = n
		}
	}
}

// ParallelMap is Map with the elements evaluated concurrently. The output is
// in input order. If f panics, the first panic value is raised again in the
// caller once every worker has returned; wrap f with safe.Safely or
// safe.Possibly to contain failures instead.
func ParallelMap[A, B any](in []A, f func(A) B, opts ...Option) []B {
	defer unwrapPanic()

	o := parallelOptions{
		goroutines: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	mapper := iter.Mapper[A, B]{
		MaxGoroutines: min(o.goroutines, max(len(in), 1)),
	}

	return mapper.Map(in, func(v *A) B {
		return f(*v)
	})
}

// unwrapPanic replaces conc's panics.Recovered with the value f panicked with.
func unwrapPanic() {
	r := recover()
	switch rec := r.(type) {
	case nil:
		return
	case *panics.Recovered:
		panic(rec.Value)
	default:
		panic(r)
	}
}

// Walk calls f on every element for its side effects and returns in.
func Walk[T any](in []T, f func(T)) []T {
	for _, v := range in {
		f(v)
	}

	return in
}

// Invoke calls every function with the same argument.
func Invoke[A, B any](fns []func(A) B, arg A) []B {
	out := make([]B, len(fns))
	for i, f := range fns {
		out[i] = f(arg)
	}

	return out
}
