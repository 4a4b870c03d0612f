package scenario

import (
	"context"
	"encoding/json"
	"math"
	"reflect"

	"github.com/Philanthropists/adverbs/pkg/safe"
)

// Log10 computes the base-10 logarithm of a numeric value. Anything that is
// not a number fails.
func Log10(v any) (float64, error) {
	x, ok := number(v)
	if !ok {
		return 0, Error.New("non-numeric argument to mathematical function")
	}

	return math.Log10(x), nil
}

// QuietLog10 is Log10 reporting a notice on the context logger when the
// result is not a number.
func QuietLog10(ctx context.Context, v any) (float64, error) {
	res, err := Log10(v)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(res) {
		safe.Notice(ctx, "NaNs produced")
	}

	return res, nil
}

func number(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
