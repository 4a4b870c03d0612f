package safe

import (
	"context"

	"go.uber.org/zap"

	"github.com/Philanthropists/adverbs/internal/logging"
)

// Quietly wraps f like Safely and captures everything f logs through the
// context logger. Captured entries are not emitted; their messages are
// returned as notices in the order they were logged, whether or not f
// succeeded.
func Quietly[A, B any](f func(context.Context, A) (B, error)) func(context.Context, A) QuietResult[B] {
	return func(ctx context.Context, a A) QuietResult[B] {
		captured, notices := logging.Capture(ctx)

		res := Safely(func(a A) (B, error) {
			return f(captured, a)
		})(a)

		return QuietResult[B]{
			Result:  res,
			Notices: notices(),
		}
	}
}

// Notice logs msg as a warning on the context logger. Inside a Quietly call
// it becomes a notice of the result.
func Notice(ctx context.Context, msg string, fields ...zap.Field) {
	logging.FromContext(ctx).Warn(msg, fields...)
}
