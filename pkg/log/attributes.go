// Package log defines standard attribute keys for cross-validation runs.
//
// Keys follow a hierarchical naming convention ("data.samples",
// "cv.folds") so records can be filtered by prefix.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model being evaluated.
	// Examples: "LogisticPath"
	ModelNameKey = "model.name"

	// EstimatorIDKey identifies one evaluation run (a UUID string).
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	ComponentKey = "ml.component"

	// PhaseKey indicates which cross-validation pass is running.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of observations (rows).
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of input columns.
	FeaturesKey = "data.features"
)

// Cross-validation
const (
	// FoldsKey records the number of folds.
	FoldsKey = "cv.folds"

	// FoldKey records the fold index being processed.
	FoldKey = "cv.fold"

	// PathLengthKey records the number of regularization path points.
	PathLengthKey = "cv.path_length"

	// MeasureKey records the loss measure name.
	MeasureKey = "cv.measure"

	// GroupedKey records whether grouped cross-validation is in effect.
	GroupedKey = "cv.grouped"

	// LambdaMinKey and Lambda1SEKey record the selected regularization strengths.
	LambdaMinKey = "cv.lambda_min"
	Lambda1SEKey = "cv.lambda_1se"

	// NJobsKey records the fold-level parallelism.
	NJobsKey = "cv.n_jobs"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the type of error or warning encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationEvaluate      = "evaluate"
	OperationCrossValidate = "cross_validate"
	OperationPredict       = "predict"
	OperationFitPath       = "fit_path"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
)
