package safe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func parse(s string) (int, error) {
	return strconv.Atoi(s)
}

func exactlyOne[T any](t *testing.T, r Result[T]) {
	t.Helper()

	_, hasValue := r.Value()
	_, hasFailure := r.Failure()
	assert.True(t, hasValue != hasFailure, "value=%v failure=%v", hasValue, hasFailure)
	assert.Equal(t, hasValue, r.Ok())
}

func Test_SafelyHoldsExactlyOneOutcome(t *testing.T) {
	f := Safely(func(n int) (int, error) {
		switch {
		case n < 0:
			return 0, errBoom
		case n == 0:
			panic("zero")
		default:
			return n * 2, nil
		}
	})

	for _, n := range []int{-1, 0, 1, 42} {
		exactlyOne(t, f(n))
	}
}

func Test_SafelyReturnsValueOnSuccess(t *testing.T) {
	res := Safely(parse)("12")

	v, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 12, v)
	assert.NoError(t, res.Err())
}

func Test_SafelyConvertsReturnedError(t *testing.T) {
	res := Safely(func(int) (string, error) {
		return "ignored", errBoom
	})(1)

	v, ok := res.Value()
	assert.False(t, ok)
	assert.Empty(t, v)

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "boom", failure.Message())
	assert.Equal(t, TagError, failure.Tag())
	assert.ErrorIs(t, res.Err(), errBoom)
}

func Test_SafelyConvertsPanicIntoFailure(t *testing.T) {
	f := Safely(Lift(func(xs []int) int {
		return xs[3]
	}))

	var res Result[int]
	assert.NotPanics(t, func() {
		res = f([]int{1})
	})

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, TagError, failure.Tag())
	assert.True(t, ErrPanic.Has(failure))
	assert.Contains(t, failure.Message(), "index out of range")
}

func Test_SafelyKeepsPanickedErrorInChain(t *testing.T) {
	res := Safely(Lift(func(struct{}) int {
		panic(errBoom)
	}))(struct{}{})

	assert.ErrorIs(t, res.Err(), errBoom)
	assert.True(t, ErrPanic.Has(res.Err()))
}

func Test_SafelyTreatsNilValueAsSuccess(t *testing.T) {
	res := Safely(func(string) (*int, error) {
		return nil, nil
	})("x")

	v, ok := res.Value()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func Test_WarningClassIsTaggedAsWarning(t *testing.T) {
	res := Safely(func(float64) (float64, error) {
		return 0, Warning.New("precision lost")
	})(1)

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, TagWarning, failure.Tag())
	assert.Contains(t, failure.Message(), "precision lost")
}

func Test_GetReturnsBothHalves(t *testing.T) {
	v, err := Safely(parse)("7").Get()
	assert.Equal(t, 7, v)
	assert.NoError(t, err)

	v, err = Safely(parse)("seven").Get()
	assert.Zero(t, v)
	assert.Error(t, err)
}

func Test_FailWithNilStillFails(t *testing.T) {
	res := Fail[int](nil)

	exactlyOne(t, res)
	assert.False(t, res.Ok())
}

func Test_ZeroResultIsSuccess(t *testing.T) {
	var res Result[string]

	exactlyOne(t, res)
	assert.True(t, res.Ok())
}

func Test_PossiblyReturnsDefaultOnFailure(t *testing.T) {
	f := Possibly(parse, -1)

	assert.Equal(t, 3, f("3"))
	assert.Equal(t, -1, f("three"))
}

func Test_PossiblyReturnsDefaultOnPanic(t *testing.T) {
	f := Possibly(Lift(func(d float64) float64 {
		if d == 0 {
			panic("division by zero")
		}
		return 1 / d
	}), math.Inf(1))

	assert.Equal(t, 0.5, f(2))
	assert.True(t, math.IsInf(f(0), 1))
}

func Test_PossiblyMatchesSafelyOnSuccess(t *testing.T) {
	for _, s := range []string{"0", "1", "-5", "123456"} {
		t.Run(fmt.Sprintf("input %s", s), func(t *testing.T) {
			v, ok := Safely(parse)(s).Value()
			require.True(t, ok)

			n, _ := parse(s)
			assert.Equal(t, n, v)
			assert.Equal(t, n, Possibly(parse, 99)(s))
		})
	}
}

type codeErr struct {
	code int
}

func (e *codeErr) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

type explodingErr struct{}

func (explodingErr) Error() string {
	panic("Error() blew up")
}

func Test_SafelyContainsTypedNilError(t *testing.T) {
	f := Safely(func(int) (int, error) {
		var e *codeErr
		return 1, e
	})

	var res Result[int]
	require.NotPanics(t, func() {
		res = f(0)
	})

	exactlyOne(t, res)
	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, TagError, failure.Tag())
	assert.True(t, ErrPanic.Has(failure))
	assert.Contains(t, failure.Message(), "nil pointer dereference")
}

func Test_SafelyContainsPanickingErrorMethod(t *testing.T) {
	f := Safely(func(int) (int, error) {
		return 0, explodingErr{}
	})

	var res Result[int]
	require.NotPanics(t, func() {
		res = f(0)
	})

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.True(t, ErrPanic.Has(failure))
	assert.Contains(t, failure.Message(), "Error() blew up")
}

func Test_SafelyContainsPanicWithExplodingError(t *testing.T) {
	f := Safely(Lift(func(int) int {
		panic(explodingErr{})
	}))

	var res Result[int]
	require.NotPanics(t, func() {
		res = f(0)
	})
	assert.False(t, res.Ok())
}

func Test_PossiblyAndQuietlyContainBrokenErrors(t *testing.T) {
	broken := func(int) (int, error) {
		var e *codeErr
		return 0, e
	}

	assert.NotPanics(t, func() {
		assert.Equal(t, -1, Possibly(broken, -1)(0))
	})

	assert.NotPanics(t, func() {
		res := Quietly(func(_ context.Context, n int) (int, error) {
			return broken(n)
		})(context.Background(), 0)
		assert.False(t, res.Ok())
	})
}

func Test_FailureIsReadOnly(t *testing.T) {
	res := Safely(parse)("nope")

	failure, ok := res.Failure()
	require.True(t, ok)
	msg := failure.Message()

	again, _ := res.Failure()
	assert.Equal(t, msg, again.Message())
	assert.Equal(t, msg, res.Err().Error())
}
