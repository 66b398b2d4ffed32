// Package glmnetcv scores k-fold cross-validation of a binomial (logistic)
// elastic-net regularization path.
//
// The path itself is fitted by an external solver. glmnetcv takes one
// fitted path per fold, re-runs each on its held-in and held-out rows, and
// reduces per-fold losses into mean and standard-error curves along the
// path, from which the usual lambda.min and lambda.1se are chosen.
//
// # Features
//
//   - Measures: binomial deviance, misclassification, MSE, R², MAE and AUC
//   - Weighted and unweighted AUC (Mann-Whitney with seeded tie jitter)
//   - Heterogeneous fold paths (a fold whose path stopped early is
//     excluded from the later points)
//   - Fold-level parallelism with first-error propagation
//   - Structured warnings for configuration fallbacks, kept apart from errors
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/glmnetcv/cv"
//	)
//
//	func main() {
//	    // solver implements model.PathFitter
//	    fit, err := cv.CrossValidate(solver, X, y, nil, nil,
//	        cv.WithMeasure(cv.AUC),
//	        cv.WithNFolds(10),
//	        cv.WithRandomState(42),
//	        cv.WithNJobs(-1), // Use all CPU cores
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, w := range fit.Result.Warnings {
//	        fmt.Println("warning:", w)
//	    }
//	    fmt.Println(fit.Result.Name, fit.Result.LambdaMin, fit.Result.Lambda1SE)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - cv: Cross-validation aggregator, fold assignment, lambda selection, YAML config
//   - metrics: AUC estimator and weighted means
//   - core/model: Path model interfaces and the LogisticPath predictor
//   - core/parallel: Bounded parallel fan-out
//   - pkg/errors: Error and warning types
//   - pkg/log: Structured logging (zerolog)
package glmnetcv
