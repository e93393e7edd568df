package errors

import "errors"

// Domain errors
var (
	// Input errors
	ErrMalformedJSON  = errors.New("malformed JSON")
	ErrInputShape     = errors.New("unexpected report shape")
	ErrMissingField   = errors.New("missing required field")
	ErrInputTooLarge  = errors.New("input exceeds size limit")

	// Validation errors
	ErrPolicyViolation    = errors.New("policy violation")
	ErrSuiteGroupNotFound = errors.New("no cipher suite group for protocol")

	// CLI errors
	ErrUsage = errors.New("usage error")
)
