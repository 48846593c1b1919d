// Package log defines standard attribute keys for numerical operations.
//
// The keys follow a hierarchical naming convention (e.g., "num.method",
// "matrix.rows") to enable structured log analysis and filtering.

package log

// Operation Context
// These attributes identify the component, method and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "linalg", "roots", "quadrature", "interpolation"
	ComponentKey = "num.component"

	// OperationKey specifies the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "num.operation"

	// MethodKey names the numerical method.
	// Examples: "newton", "secant", "chord", "rectangle", "trapezoid"
	MethodKey = "num.method"

	// StateKey records the terminal state of an iterative method.
	// Examples: "converged", "canceled", "diverged"
	StateKey = "num.state"
)

// Iteration and Tolerance
const (
	// IterationKey records the iteration number at which a loop stopped.
	IterationKey = "num.iteration"

	// EpsilonKey records the convergence tolerance.
	EpsilonKey = "num.eps"

	// SeedKey records the initial approximation of a root-finder.
	SeedKey = "num.seed"

	// ValueKey records the computed scalar (root, integral, determinant).
	ValueKey = "num.value"
)

// Quadrature
const (
	// ModeKey records the signed-area accumulation policy.
	ModeKey = "quad.mode"

	// StepKey records the partition width h.
	StepKey = "quad.step"

	// SegmentsKey records how many segments were accumulated.
	SegmentsKey = "quad.segments"

	// IntervalKey records the integration interval as [a, b].
	IntervalKey = "quad.interval"
)

// Matrix Shape and Elimination
const (
	// RowsKey indicates the number of matrix rows.
	RowsKey = "matrix.rows"

	// ColsKey indicates the number of matrix columns.
	ColsKey = "matrix.cols"

	// DeterminantKey records a determinant value.
	DeterminantKey = "matrix.determinant"

	// StrategyKey names the determinant strategy.
	// Examples: "cofactor", "lu"
	StrategyKey = "matrix.strategy"

	// SwapsKey records the number of row swaps done by elimination.
	SwapsKey = "gauss.swaps"

	// ResidualKey records the RMSE of A·x − b after solving.
	ResidualKey = "gauss.residual_rmse"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Standard values are the Error* constants below.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "CanceledError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
const (
	OperationTranspose     = "transpose"
	OperationSubtract      = "subtract"
	OperationMulVec        = "mul_vec"
	OperationDivide        = "divide"
	OperationDeterminant   = "determinant"
	OperationInverse       = "inverse"
	OperationSolve         = "solve"
	OperationFindRoot      = "find_root"
	OperationIntegrate     = "integrate"
	OperationInterpolation = "interpolate"

	// Standard error codes
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorNotSquare         = "NOT_SQUARE"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorCanceled          = "CANCELED"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
	ErrorInstability       = "NUMERICAL_INSTABILITY"
)
