package scenario

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Philanthropists/adverbs/internal/logging"
	"github.com/Philanthropists/adverbs/pkg/pipe"
	"github.com/Philanthropists/adverbs/pkg/predicate"
	"github.com/Philanthropists/adverbs/pkg/safe"
)

type Line struct {
	Input    any
	Possibly float64
	Safely   safe.Result[float64]
	Notices  []string
}

type Report struct {
	Lines []Line

	Threshold    float64
	Finite       []float64
	LeadingBelow []float64
	AnyFinite    bool
	AllFinite    bool
	FirstFailure int
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Run evaluates log10 over the configured inputs with each of the safe
// wrappers and summarises the outcome with the predicate helpers.
func Run(ctx context.Context, cfg Config) Report {
	log := logging.FromContext(ctx)

	var opts []pipe.Option
	if cfg.Parallel > 0 {
		opts = append(opts, pipe.WithGoroutines(cfg.Parallel))
	}

	log.Debug("running log10 scenario",
		logging.Int("inputs", len(cfg.Inputs)),
		logging.Int("parallel", cfg.Parallel),
	)

	possibly := pipe.ParallelMap(cfg.Inputs, safe.Possibly(Log10, cfg.otherwise()), opts...)
	safely := pipe.Map(cfg.Inputs, safe.Safely(Log10))

	quietly := safe.Quietly(QuietLog10)
	notices := pipe.Map(cfg.Inputs, func(v any) []string {
		return quietly(ctx, v).Notices
	})

	lines := make([]Line, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		lines[i] = Line{
			Input:    in,
			Possibly: possibly[i],
			Safely:   safely[i],
			Notices:  notices[i],
		}
	}

	pipe.Walk(lines, func(l Line) {
		if failure, failed := l.Safely.Failure(); failed {
			log.Debug("input failed",
				logging.Any("input", l.Input),
				logging.String("tag", failure.Tag()),
				logging.Error(failure),
			)
		}
	})

	threshold := cfg.threshold()
	firstFailure, ok := predicate.FindIndex(safely, func(r safe.Result[float64]) bool {
		return !r.Ok()
	})
	if !ok {
		firstFailure = -1
	}

	report := Report{
		Lines:        lines,
		Threshold:    threshold,
		Finite:       predicate.Keep(possibly, finite),
		LeadingBelow: predicate.TakeWhile(possibly, func(v float64) bool { return v < threshold }),
		AnyFinite:    predicate.Any(possibly, finite),
		AllFinite:    predicate.All(possibly, finite),
		FirstFailure: firstFailure,
	}

	log.Info("log10 scenario finished",
		logging.Int("finite", len(report.Finite)),
		logging.Int("first_failure", report.FirstFailure),
	)

	return report
}

func (r Report) Write(w io.Writer) error {
	var b strings.Builder

	for _, l := range r.Lines {
		outcome := "ok"
		if failure, failed := l.Safely.Failure(); failed {
			outcome = fmt.Sprintf("%s: %s", failure.Tag(), failure.Message())
		}

		fmt.Fprintf(&b, "%-12v possibly=%-8g safely=%s", l.Input, l.Possibly, outcome)
		if len(l.Notices) > 0 {
			fmt.Fprintf(&b, " notices=[%s]", strings.Join(l.Notices, "; "))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "finite: %v\n", r.Finite)
	fmt.Fprintf(&b, "leading below %g: %v\n", r.Threshold, r.LeadingBelow)
	fmt.Fprintf(&b, "any finite: %t, all finite: %t, first failure: %d\n", r.AnyFinite, r.AllFinite, r.FirstFailure)

	_, err := io.WriteString(w, b.String())
	return err
}
