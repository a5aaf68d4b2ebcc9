package twoparty

import "errors"

// The five fatal error classes of spec.md §7, plus ErrOutOfOrder for a round
// method called in the wrong state. Aborts in this package wrap one of these
// with fmt.Errorf("...: %w", ...) so callers can still match with errors.Is.
var (
	// ErrProofInvalid fires when a Schnorr, EC-DDH, or Pedersen proof fails
	// its verification equation.
	ErrProofInvalid = errors.New("twoparty: proof invalid")

	// ErrCommitmentMismatch fires when a revealed opening does not
	// reproduce the earlier hash commitment.
	ErrCommitmentMismatch = errors.New("twoparty: commitment mismatch")

	// ErrRangeViolation fires when Party 1's DKG secret does not satisfy
	// ask_1 < q/3.
	ErrRangeViolation = errors.New("twoparty: range violation")

	// ErrAggregateSignatureInvalid fires when the self-check of the final
	// combined signature against vk fails. It indicates a bug or a
	// malicious peer and must abort without emitting the signature.
	ErrAggregateSignatureInvalid = errors.New("twoparty: aggregate signature invalid")

	// ErrBadEncoding is the class for a received scalar or point that fails
	// canonical decoding. No function in this module returns it: decoding
	// happens in pkg/curve (ScalarFromBytes, PointFromBytes and the
	// binary/CBOR unmarshalers), whose errors do not wrap it.
	ErrBadEncoding = errors.New("twoparty: bad encoding")

	// ErrOutOfOrder fires when a round method is invoked before the state
	// machine has reached the state it requires (spec.md §5).
	ErrOutOfOrder = errors.New("twoparty: message received out of order")
)
