package piecewise

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/pkallberg/pwlin/pointset"
)

// Report summarizes the absolute error of the surrogate against the true
// function over a sample cloud. Samples outside the approximated domain
// are counted, not silently dropped.
type Report struct {
	Samples   int
	Outside   int
	MaxAbs    float64
	MeanAbs   float64
	MedianAbs float64
	P95Abs    float64
}

// ErrorReport evaluates both the surrogate and fn at every sample and
// aggregates the absolute differences. At least one sample must fall
// inside the domain; otherwise the report is meaningless and the call
// fails with ErrOutsideDomain.
func (f *Func) ErrorReport(fn Fn, samples []pointset.Point) (Report, error) {
	if !f.built {
		return Report{}, fmt.Errorf("ErrorReport: function not built: %w", ErrConfiguration)
	}
	if fn == nil || len(samples) == 0 {
		return Report{}, fmt.Errorf("ErrorReport: need a function and at least one sample: %w",
			ErrConfiguration)
	}

	r := Report{Samples: len(samples)}
	absErrs := make([]float64, 0, len(samples))
	for i, p := range samples {
		y, err := f.Evaluate(p...)
		if errors.Is(err, ErrOutsideDomain) {
			r.Outside++
			continue
		}
		if err != nil {
			return Report{}, fmt.Errorf("ErrorReport: sample %d: %w", i, err)
		}
		absErrs = append(absErrs, math.Abs(y-fn(p...)))
	}
	if len(absErrs) == 0 {
		return Report{}, fmt.Errorf("ErrorReport: every sample outside the domain: %w",
			ErrOutsideDomain)
	}

	var err error
	if r.MaxAbs, err = stats.Max(absErrs); err != nil {
		return Report{}, fmt.Errorf("ErrorReport: %w", err)
	}
	if r.MeanAbs, err = stats.Mean(absErrs); err != nil {
		return Report{}, fmt.Errorf("ErrorReport: %w", err)
	}
	if r.MedianAbs, err = stats.Median(absErrs); err != nil {
		return Report{}, fmt.Errorf("ErrorReport: %w", err)
	}
	if r.P95Abs, err = stats.Percentile(absErrs, 95); err != nil {
		return Report{}, fmt.Errorf("ErrorReport: %w", err)
	}
	return r, nil
}
