package proofs

import (
	"crypto/rand"

	"github.com/jubjub-mpc/two-party-schnorr/internal/hashing"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// ECDDHStatement is the public tuple (G, H, R, C) an ECDDHProof certifies as
// a DDH tuple: a shared witness x with R = xG and C = xH (spec.md §4.3).
type ECDDHStatement struct {
	R curve.Point
	C curve.Point
}

// ECDDHProof proves knowledge of x such that R = xG and C = xH, without
// revealing x.
type ECDDHProof struct {
	A1 curve.Point  // A1 = tG
	A2 curve.Point  // A2 = tH
	Z  curve.Scalar // z = t + e*x
}

// ProveECDDH proves the statement (G, H(), R, C) with witness x, where the
// caller asserts R = xG and C = x·H().
func ProveECDDH(x curve.Scalar, statement ECDDHStatement) (ECDDHProof, error) {
	t, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return ECDDHProof{}, err
	}
	A1 := curve.ScalarBaseMult(t)
	A2 := curve.H().ScalarMult(t)

	e := ecddhChallenge(statement, A1, A2)
	z := t.Add(e.Mul(x))
	return ECDDHProof{A1: A1, A2: A2, Z: z}, nil
}

// VerifyECDDH checks proof against statement, accepting iff both
// zG = A1 + eR and zH = A2 + eC hold (spec.md §4.3).
func VerifyECDDH(statement ECDDHStatement, proof ECDDHProof) error {
	e := ecddhChallenge(statement, proof.A1, proof.A2)

	lhsG := curve.ScalarBaseMult(proof.Z)
	rhsG := proof.A1.Add(statement.R.ScalarMult(e))
	if !lhsG.Equal(rhsG) {
		return ErrInvalidProof
	}

	lhsH := curve.H().ScalarMult(proof.Z)
	rhsH := proof.A2.Add(statement.C.ScalarMult(e))
	if !lhsH.Equal(rhsH) {
		return ErrInvalidProof
	}
	return nil
}

func ecddhChallenge(statement ECDDHStatement, A1, A2 curve.Point) curve.Scalar {
	G := curve.Generator()
	H := curve.H()
	return hashing.HashToScalar(
		G.CompressedBigInt(),
		H.CompressedBigInt(),
		statement.R.CompressedBigInt(),
		statement.C.CompressedBigInt(),
		A1.CompressedBigInt(),
		A2.CompressedBigInt(),
	)
}
