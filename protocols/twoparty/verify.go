package twoparty

import (
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/hashing"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// ComputeJointAk combines two parties' DKG public shares into the
// aggregated long-term public key (spec.md §3 Invariant 5).
func ComputeJointAk(ak1, ak2 curve.Point) curve.Point {
	return ak1.Add(ak2)
}

// ComputeVK re-randomizes the joint key ak with the coin-flipped scalar
// alpha: vk = ak + alpha*G.
func ComputeVK(ak curve.Point, alpha curve.Scalar) curve.Point {
	return ak.Add(curve.ScalarBaseMult(alpha))
}

// ComputeJointNonce combines two parties' ephemeral public shares into the
// per-signature aggregate nonce (spec.md §3 Invariant 5).
func ComputeJointNonce(r1, r2 curve.Point) curve.Point {
	return r1.Add(r2)
}

// signingChallenge computes c = HashToScalar(R ‖ vk ‖ m) over the reversed
// encoding of R and the reversed 512-bit digest, the byte-order convention
// spec.md §6 requires for compatibility with a RedJubjub on-chain verifier.
// Both parties' partial-signature computations and the aggregate verifier
// use this single path (see SPEC_FULL.md §4.8 for why the source's
// non-reversing P1 path is treated as a bug and not reproduced here).
func signingChallenge(R, vk curve.Point, message *big.Int) curve.Scalar {
	reversedR := new(big.Int).SetBytes(reverseBytes(R.Bytes()))
	return hashing.HashToScalarReversed(reversedR, vk.CompressedBigInt(), message)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// VerifyAggregate accepts iff s*G == R + c*vk (spec.md §4.8). A failure here
// is an AggregateSignatureInvalid abort: it indicates a bug or a malicious
// peer, and the caller must not release the signature.
func VerifyAggregate(vk curve.Point, message *big.Int, sig Signature) error {
	c := signingChallenge(sig.R, vk, message)

	sG := curve.ScalarBaseMult(sig.S)
	rPlusCvk := sig.R.Add(vk.ScalarMult(c))
	if !sG.Equal(rPlusCvk) {
		return fmt.Errorf("%w", ErrAggregateSignatureInvalid)
	}
	return nil
}
