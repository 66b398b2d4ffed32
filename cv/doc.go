// Package cv scores k-fold cross-validation of a binomial (logistic)
// regularization path.
//
// Each fold's path model is re-run on its held-in ("training") and held-out
// ("validation") rows, a loss measure is applied per path point, and the
// per-fold scores are reduced to a weighted mean curve (CVM) and a
// standard-error curve (CVSD) over the path.
//
// Basic usage with fold models fitted elsewhere:
//
//	res, err := cv.Evaluate(fits, lambda, X, y, nil, nil, foldID,
//	    cv.WithMeasure(cv.AUC),
//	    cv.WithKeep(true),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Name, res.LambdaMin, res.Lambda1SE)
//
// Or with an external path solver doing the fitting:
//
//	fit, err := cv.CrossValidate(solver, X, y, nil, nil,
//	    cv.WithNFolds(10),
//	    cv.WithRandomState(42),
//	)
//
// Configuration problems that have a safe substitute (an unsupported
// measure, too few observations per fold for AUC or for grouping) are
// reported as warnings in Result.Warnings and through the logger.
// Precondition violations are returned as errors.
package cv
