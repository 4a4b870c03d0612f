package safe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Philanthropists/adverbs/internal/logging"
)

func Test_QuietlyCapturesNoticesInOrder(t *testing.T) {
	f := Quietly(func(ctx context.Context, n int) (int, error) {
		Notice(ctx, "first")
		logging.FromContext(ctx).Info("second")
		return n + 1, nil
	})

	res := f(context.Background(), 1)

	v, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"first", "second"}, res.Notices)
}

func Test_QuietlyNoticesDefaultToEmpty(t *testing.T) {
	res := Quietly(func(_ context.Context, s string) (string, error) {
		return s, nil
	})(context.Background(), "x")

	assert.NotNil(t, res.Notices)
	assert.Empty(t, res.Notices)
}

func Test_QuietlyKeepsNoticesWhenFailing(t *testing.T) {
	res := Quietly(func(ctx context.Context, _ int) (int, error) {
		Notice(ctx, "about to fail")
		return 0, errBoom
	})(context.Background(), 0)

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "boom", failure.Message())
	assert.Equal(t, []string{"about to fail"}, res.Notices)
}

func Test_QuietlyKeepsNoticesWhenPanicking(t *testing.T) {
	res := Quietly(func(ctx context.Context, _ int) (int, error) {
		Notice(ctx, "before panic")
		panic("kaboom")
	})(context.Background(), 0)

	assert.False(t, res.Ok())
	assert.True(t, ErrPanic.Has(res.Err()))
	assert.Equal(t, []string{"before panic"}, res.Notices)
}

func Test_QuietlyLeavesCallerLoggerUntouched(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logging.FromCore(core).GetContext(context.Background())

	f := Quietly(func(ctx context.Context, _ int) (int, error) {
		Notice(ctx, "captured")
		panic("kaboom")
	})

	res := f(ctx, 0)
	logging.FromContext(ctx).Info("after")

	assert.Equal(t, []string{"captured"}, res.Notices)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "after", logs.All()[0].Message)
}

func Test_QuietlyCallsAreIndependent(t *testing.T) {
	f := Quietly(func(ctx context.Context, n int) (int, error) {
		for i := 0; i < n; i++ {
			Notice(ctx, "tick")
		}
		return n, nil
	})

	assert.Len(t, f(context.Background(), 3).Notices, 3)
	assert.Len(t, f(context.Background(), 1).Notices, 1)
}
