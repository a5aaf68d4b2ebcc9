package hashing

import (
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// HashToScalar reduces the personalized Blake2b-512 digest of parts into a
// scalar in F_q. This is the one hash-to-scalar entry point every Fiat-Shamir
// challenge and nonce derivation in this module uses (spec.md §2, §9).
func HashToScalar(parts ...*big.Int) curve.Scalar {
	return curve.ScalarFromBigInt(HashToBigInt(parts...))
}

// HashToScalarReversed is HashToScalar over the byte-reversed digest, used
// only by the signing challenge (spec.md §6).
func HashToScalarReversed(parts ...*big.Int) curve.Scalar {
	return curve.ScalarFromBigInt(HashToBigIntReversed(parts...))
}
