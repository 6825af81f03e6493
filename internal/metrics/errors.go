package metrics

import (
	"errors"
	"fmt"
)

// ContractError reports a precondition violation: a caller or data
// pipeline bug, not a recoverable runtime condition. The analysis pass
// must be aborted when one surfaces; continuing would produce wrong
// numbers silently.
type ContractError struct {
	// Code identifies the violated precondition.
	Code ContractErrorCode

	// Message is a human-readable description.
	Message string
}

// ContractErrorCode categorizes precondition violations.
type ContractErrorCode string

const (
	// ErrCodeZeroBins indicates a histogram was requested with no buckets.
	ErrCodeZeroBins ContractErrorCode = "ZERO_BINS"

	// ErrCodeBucketUnresolved indicates a slack value fell outside every
	// histogram bucket. The buckets partition [min, max] of the scanned
	// values, so this can only happen if the tag stream changed between
	// the sizing scan and the counting scan.
	ErrCodeBucketUnresolved ContractErrorCode = "BUCKET_UNRESOLVED"

	// ErrCodeMissingNormalization indicates a domain pair present in the
	// input tags has no entry in the criticality normalization maps.
	ErrCodeMissingNormalization ContractErrorCode = "MISSING_NORMALIZATION"

	// ErrCodeCriticalityRange indicates a computed criticality fell
	// outside [0, 1] by more than the round-off tolerance.
	ErrCodeCriticalityRange ContractErrorCode = "CRITICALITY_RANGE"

	// ErrCodeMissingFanout indicates a clock domain contributing an
	// intra-domain critical path has no fanout count. Any domain with a
	// critical path must have at least one source or sink tag.
	ErrCodeMissingFanout ContractErrorCode = "MISSING_FANOUT"
)

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewContractError creates a ContractError with a formatted message.
func NewContractError(code ContractErrorCode, format string, args ...any) *ContractError {
	return &ContractError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsContractError reports whether err is (or wraps) a ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
