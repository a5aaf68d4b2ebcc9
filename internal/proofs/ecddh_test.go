package proofs_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

func TestECDDHProveVerifyRoundTrip(t *testing.T) {
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	statement := proofs.ECDDHStatement{R: curve.ScalarBaseMult(x), C: curve.H().ScalarMult(x)}

	proof, err := proofs.ProveECDDH(x, statement)
	require.NoError(t, err)
	assert.NoError(t, proofs.VerifyECDDH(statement, proof))
}

func TestECDDHRejectsNonDDHTuple(t *testing.T) {
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	y, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	require.False(t, x.Equal(y))

	// Not a real DDH tuple: C uses a different exponent than R.
	statement := proofs.ECDDHStatement{R: curve.ScalarBaseMult(x), C: curve.H().ScalarMult(y)}
	proof, err := proofs.ProveECDDH(x, statement)
	require.NoError(t, err)

	assert.ErrorIs(t, proofs.VerifyECDDH(statement, proof), proofs.ErrInvalidProof)
}

func TestECDDHRejectsTamperedProof(t *testing.T) {
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	statement := proofs.ECDDHStatement{R: curve.ScalarBaseMult(x), C: curve.H().ScalarMult(x)}

	proof, err := proofs.ProveECDDH(x, statement)
	require.NoError(t, err)
	proof.Z = proof.Z.Add(curve.ScalarFromUint64(1))

	assert.ErrorIs(t, proofs.VerifyECDDH(statement, proof), proofs.ErrInvalidProof)
}
