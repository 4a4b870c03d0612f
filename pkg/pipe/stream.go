package pipe

import (
	"sync"

	"github.com/Philanthropists/adverbs/pkg/safe"
)

// From streams the elements of in and closes the channel afterwards
func From[T any](done <-chan struct{}, in []T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, v := range in {
			select {
			case <-done:
				return
			case out <- v:
			}
		}
	}()

	return out
}

// Ensures that the goroutine is finished on done being closed
func OrDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}

// FanIn merges several streams into one. Order across streams is not kept.
func FanIn[T any](done <-chan struct{}, channels ...<-chan T) <-chan T {
	var wg sync.WaitGroup
	merged := make(chan T)

	forward := func(c <-chan T) {
		defer wg.Done()

		for v := range OrDone(done, c) {
			select {
			case <-done:
				return
			case merged <- v:
			}
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		go forward(c)
	}

	go func() {
		defer close(merged)
		wg.Wait()
	}()

	return merged
}

// Tee copies every element of in to both outputs. Both outputs must be
// drained, or done closed, for the stream to advance.
func Tee[T any](done <-chan struct{}, in <-chan T) (_, _ <-chan T) {
	left := make(chan T)
	right := make(chan T)

	go func() {
		defer close(left)
		defer close(right)

		for v := range OrDone(done, in) {
			// nil out each side once it has received v
			l, r := left, right
			for i := 0; i < 2; i++ {
				select {
				case <-done:
					return
				case l <- v:
					l = nil
				case r <- v:
					r = nil
				}
			}
		}
	}()

	return left, right
}

// Split separates a result stream into its successes and its failures.
// Like Tee, both outputs must be drained.
func Split[T any](done <-chan struct{}, in <-chan safe.Result[T]) (<-chan T, <-chan *safe.Failure) {
	successes := make(chan T)
	failures := make(chan *safe.Failure)

	go func() {
		defer close(successes)
		defer close(failures)

		for res := range OrDone(done, in) {
			if failure, failed := res.Failure(); failed {
				select {
				case <-done:
					return
				case failures <- failure:
				}
				continue
			}

			v, _ := res.Value()
			select {
			case <-done:
				return
			case successes <- v:
			}
		}
	}()

	return successes, failures
}

// MapStream applies mapper to every element in order. Failures of mapper,
// panics included, are delivered as failed results.
func MapStream[A, B any](done <-chan struct{}, in <-chan A, mapper func(A) (B, error)) <-chan safe.Result[B] {
	out := make(chan safe.Result[B])
	wrapped := safe.Safely(mapper)

	go func() {
		defer close(out)

		for val := range OrDone(done, in) {
			select {
			case <-done:
				return
			case out <- wrapped(val):
			}
		}
	}()

	return out
}

// Maps from channel of type A to a channel of type B concurrently. Output
// order is not preserved.
func ConcurrentMap[A, B any](done <-chan struct{}, coroutines int, in <-chan A, mapper func(A) (B, error)) <-chan safe.Result[B] {
	if coroutines <= 0 {
		coroutines = 1
	}

	out := make(chan safe.Result[B], coroutines)
	wrapped := safe.Safely(mapper)

	var wg sync.WaitGroup
	wg.Add(coroutines)
	for i := 0; i < coroutines; i++ {
		go func() {
			defer wg.Done()

			for val := range OrDone(done, in) {
				select {
				case <-done:
					return
				case out <- wrapped(val):
				}
			}
		}()
	}

	go func() {
		defer close(out)
		wg.Wait()
	}()

	return out
}

// OnFailure streams the successful values and hands every failure to
// handler, in arrival order, on the forwarding goroutine.
func OnFailure[T any](done <-chan struct{}, in <-chan safe.Result[T], handler func(*safe.Failure)) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for res := range OrDone(done, in) {
			if failure, failed := res.Failure(); failed {
				handler(failure)
				continue
			}

			v, _ := res.Value()
			select {
			case <-done:
				return
			case out <- v:
			}
		}
	}()

	return out
}

// Only output results that are not failures
func Successes[T any](done <-chan struct{}, in <-chan safe.Result[T]) <-chan T {
	return OnFailure(done, in, func(*safe.Failure) {
		// nop operation
	})
}

// Collect drains in until it is closed or done is closed
func Collect[T any](done <-chan struct{}, in <-chan T) []T {
	out := []T{}
	if in == nil {
		return out
	}

	for v := range OrDone(done, in) {
		out = append(out, v)
	}

	return out
}

// WaitClosed consumes in, discarding the values, until it is closed or done
// is closed. Use it for streams that are only read for their side effects.
func WaitClosed[T any](done <-chan struct{}, in <-chan T) {
	if in == nil {
		return
	}

	for range OrDone(done, in) {
	}
}
