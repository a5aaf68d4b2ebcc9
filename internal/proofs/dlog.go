// Package proofs implements the three Fiat-Shamir sigma protocols this
// system's two-party rounds depend on: a Schnorr proof of discrete-log
// knowledge (spec.md §4.2), an EC-DDH proof (§4.3), and a Pedersen blinding
// proof (§4.4).
package proofs

import (
	"crypto/rand"
	"errors"

	"github.com/jubjub-mpc/two-party-schnorr/internal/hashing"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// ErrInvalidProof is returned by every Verify method in this package when
// the proof's verification equation fails to hold.
var ErrInvalidProof = errors.New("proofs: verification failed")

// DLogProof proves knowledge of x such that P = xG, without revealing x.
type DLogProof struct {
	T curve.Point  // commitment T = tG
	Z curve.Scalar // response z = t + e*x
}

// ProveDLog proves knowledge of x for P = xG.
func ProveDLog(x curve.Scalar) (DLogProof, error) {
	P := curve.ScalarBaseMult(x)
	t, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return DLogProof{}, err
	}
	T := curve.ScalarBaseMult(t)

	e := dlogChallenge(P, T)
	z := t.Add(e.Mul(x))
	return DLogProof{T: T, Z: z}, nil
}

// VerifyDLog checks proof against the public statement P = xG.
func VerifyDLog(P curve.Point, proof DLogProof) error {
	e := dlogChallenge(P, proof.T)

	lhs := curve.ScalarBaseMult(proof.Z)
	rhs := proof.T.Add(P.ScalarMult(e))
	if !lhs.Equal(rhs) {
		return ErrInvalidProof
	}
	return nil
}

func dlogChallenge(P, T curve.Point) curve.Scalar {
	G := curve.Generator()
	return hashing.HashToScalar(G.CompressedBigInt(), P.CompressedBigInt(), T.CompressedBigInt())
}
