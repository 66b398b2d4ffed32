package cv

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Curve is a mean and standard-error curve over the regularization path.
type Curve struct {
	Mean []float64
	SD   []float64
}

// Curves holds the training-pass and validation-pass curves of one measure.
type Curves struct {
	Training   Curve
	Validation Curve
}

// Result is the outcome of one cross-validation evaluation.
type Result struct {
	Name    string  // human-readable label of the measure actually used
	Measure Measure // after any fallback

	Lambda []float64

	// Validation (held-out) and training curves of Measure.
	CVM     []float64
	CVSD    []float64
	TrnCVM  []float64
	TrnCVSD []float64

	// Curves of every scored measure: Measure plus class, mse and rsquared.
	Curves map[Measure]*Curves

	// FitPreval is the N×L held-out prediction matrix, NaN where a fold's
	// path stopped early. nil unless WithKeep(true).
	FitPreval *mat.Dense

	// Warnings lists non-fatal configuration adjustments.
	Warnings []error

	LambdaMin float64
	Lambda1SE float64
	IndexMin  int
	Index1SE  int
}

// Get looks up a curve by key: "cvm", "cvsd", "trn_cvm" or "trn_cvsd",
// optionally followed by "_" and a measure name ("cvm_mse").
// The unsuffixed keys refer to Measure.
func (r *Result) Get(key string) ([]float64, bool) {
	kind, suffix := key, ""
	for _, prefix := range []string{"trn_cvsd", "trn_cvm", "cvsd", "cvm"} {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			kind = prefix
			suffix = rest
			break
		}
	}

	m := r.Measure
	if suffix != "" {
		name, ok := strings.CutPrefix(suffix, "_")
		if !ok {
			return nil, false
		}
		if m, ok = lookupMeasure(name); !ok {
			return nil, false
		}
	}
	c, ok := r.Curves[m]
	if !ok {
		return nil, false
	}

	switch kind {
	case "cvm":
		return c.Validation.Mean, true
	case "cvsd":
		return c.Validation.SD, true
	case "trn_cvm":
		return c.Training.Mean, true
	case "trn_cvsd":
		return c.Training.SD, true
	}
	return nil, false
}

func lookupMeasure(name string) (Measure, bool) {
	for m, n := range measureNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// scoredMeasures returns the requested measure followed by class, mse and rsquared.
func scoredMeasures(requested Measure) []Measure {
	out := []Measure{requested}
	for _, m := range []Measure{Class, MSE, RSquared} {
		if m != requested {
			out = append(out, m)
		}
	}
	return out
}
