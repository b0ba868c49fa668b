package ppe

import "errors"

// Sentinel errors returned by this package. Construction errors wrap one
// of these with fmt.Errorf so callers can errors.Is against the cause.
var (
	// ErrShapeMismatch is returned when equation or commitment dimensions
	// do not agree (|A| != cols(Gamma), |B| != rows(Gamma), |c| != m, ...).
	ErrShapeMismatch = errors.New("ppe: shape mismatch")

	// ErrDifferentKeys is returned when composing two proof systems whose
	// commitment keys are not byte-identical. The library does not check
	// this cryptographically beyond the equality test: using the same
	// keys under two different variables is the caller's responsibility.
	ErrDifferentKeys = errors.New("ppe: proof systems use different commitment keys")

	// ErrInvalidEncoding is returned when Unmarshal fails to parse a byte
	// string produced by a mismatched or corrupted Marshal call.
	ErrInvalidEncoding = errors.New("ppe: invalid encoding")

	// ErrVerificationFailed is returned when a proof does not satisfy an
	// equation's verification identity.
	ErrVerificationFailed = errors.New("ppe: proof verification failed")
)
