package analysis

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidAnalysis wraps structural validation failures.
	ErrInvalidAnalysis = constError("invalid analysis")

	// ErrUnknownCategory indicates an addition category outside the six fixed ones.
	ErrUnknownCategory = constError("unknown addition category")
)
