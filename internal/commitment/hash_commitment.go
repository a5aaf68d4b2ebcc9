// Package commitment implements the hash-based commitment scheme of
// spec.md §4.1: C = H(m ‖ r), with r a 256-bit uniform blinding factor.
package commitment

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/hashing"
)

// BlindingBits is the bit length of the uniform blinding factor (spec.md §6).
const BlindingBits = 256

// Commitment is the output of Create/CreateWithRandomness: H(m ‖ r).
type Commitment struct {
	Value *big.Int
}

// SampleBlindingFactor draws a uniform 256-bit blinding factor.
func SampleBlindingFactor() (*big.Int, error) {
	max := new(big.Int).Lsh(big.NewInt(1), BlindingBits)
	r, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("commitment: sample blinding factor: %w", err)
	}
	return r, nil
}

// Create commits to message with a freshly sampled blinding factor,
// returning the commitment and the blinding factor the caller must retain
// to later decommit.
func Create(message *big.Int) (Commitment, *big.Int, error) {
	r, err := SampleBlindingFactor()
	if err != nil {
		return Commitment{}, nil, err
	}
	return CreateWithRandomness(message, r), r, nil
}

// CreateWithRandomness commits to message using a caller-supplied blinding
// factor. Used when the blinding factor must be generated together with
// other protocol state (e.g. alongside a DLog proof's own randomness).
func CreateWithRandomness(message, blindingFactor *big.Int) Commitment {
	return Commitment{Value: hashing.HashToBigInt(message, blindingFactor)}
}

// Verify recomputes the commitment from (message, blindingFactor) and
// reports whether it reproduces c bytewise. The verifier must never accept
// a decommitment whose declared content fails to reproduce the committed
// digest (spec.md §4.1 contract).
func (c Commitment) Verify(message, blindingFactor *big.Int) bool {
	recomputed := CreateWithRandomness(message, blindingFactor)
	return c.Value.Cmp(recomputed.Value) == 0
}

// Equal compares two commitments for bytewise equality after canonical
// big-integer normalization (spec.md §4.1).
func (c Commitment) Equal(other Commitment) bool {
	return c.Value.Cmp(other.Value) == 0
}
