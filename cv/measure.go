package cv

import (
	"math"
	"strings"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
)

// Measure is a loss measure for binomial cross-validation.
type Measure int

const (
	Deviance Measure = iota
	Class
	MSE
	RSquared
	MAE
	AUC
)

// DefaultMeasure is used for "default" and as the fallback for unsupported names.
const DefaultMeasure = Deviance

var measureNames = map[Measure]string{
	Deviance: "deviance",
	Class:    "class",
	MSE:      "mse",
	RSquared: "rsquared",
	MAE:      "mae",
	AUC:      "auc",
}

var measureLabels = map[Measure]string{
	Deviance: "Binomial Deviance",
	Class:    "Misclassification Error",
	MSE:      "Mean-Squared Error",
	RSquared: "R-squared",
	MAE:      "Mean Absolute Error",
	AUC:      "AUC",
}

// String returns the short name used in result keys ("deviance", "auc", ...).
func (m Measure) String() string {
	if name, ok := measureNames[m]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human-readable name.
func (m Measure) Label() string {
	if label, ok := measureLabels[m]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether m is one of the supported measures.
func (m Measure) Valid() bool {
	_, ok := measureNames[m]
	return ok
}

// Maximize reports whether larger values are better.
func (m Measure) Maximize() bool {
	return m == AUC || m == RSquared
}

// SupportedMeasures lists the measure names available for binomial models.
func SupportedMeasures() []string {
	return []string{"mse", "mae", "deviance", "auc", "class", "rsquared"}
}

// ParseMeasure converts a measure name. "default" and "" map to
// DefaultMeasure. Unknown names also return DefaultMeasure together with
// an *errors.UnsupportedMeasureWarning; the warning is not fatal.
func ParseMeasure(name string) (Measure, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "default" {
		return DefaultMeasure, nil
	}
	for m, n := range measureNames {
		if n == key {
			return m, nil
		}
	}
	return DefaultMeasure, errors.NewUnsupportedMeasureWarning(name, SupportedMeasures(), DefaultMeasure.String())
}

const (
	probMin = 1e-5
	probMax = 1 - probMin
)

// observationLoss holds the per-observation loss of every measure that
// reduces to a weighted mean. y1 and y2 are the normalized class-0 and
// class-1 label mass, p the predicted class-1 probability.
var observationLoss = map[Measure]func(y1, y2, p float64) float64{
	MSE: func(_, y2, p float64) float64 {
		d := y2 - p
		return d * d
	},
	Deviance: func(y1, y2, p float64) float64 {
		p = errors.ClipValue(p, probMin, probMax)
		lp := y1*math.Log(1-p) + y2*math.Log(p)
		ly := errors.XLogX(y1) + errors.XLogX(y2)
		return 2 * (ly - lp)
	},
	MAE: func(y1, y2, p float64) float64 {
		return math.Abs(y1-(1-p)) + math.Abs(y2-(1-p))
	},
	Class: func(y1, y2, p float64) float64 {
		var loss float64
		if p > 0.5 {
			loss += y1
		}
		if p <= 0.5 {
			loss += y2
		}
		return loss
	},
}
