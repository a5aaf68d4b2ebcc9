package coinflip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jubjub-mpc/two-party-schnorr/internal/coinflip"
)

func TestCoinFlipHappyPath(t *testing.T) {
	p1First, seed1, _, err := coinflip.Party1Commit()
	require.NoError(t, err)

	p2First, err := coinflip.Party2Share(p1First)
	require.NoError(t, err)

	p1Second, alpha1 := coinflip.Party1Reveal(p1First, seed1, p2First)

	alpha2, err := coinflip.Finalize(p1First, p1Second, p2First)
	require.NoError(t, err)

	assert.True(t, alpha1.Equal(alpha2))
}

func TestCoinFlipRejectsInvalidCommitProof(t *testing.T) {
	p1First, _, _, err := coinflip.Party1Commit()
	require.NoError(t, err)
	p1First.Proof.Z = p1First.Proof.Z.Add(p1First.Proof.Z)

	_, err = coinflip.Party2Share(p1First)
	assert.Error(t, err)
}

func TestCoinFlipFinalizeRejectsMismatchedCommitment(t *testing.T) {
	p1First, seed1, _, err := coinflip.Party1Commit()
	require.NoError(t, err)
	p2First, err := coinflip.Party2Share(p1First)
	require.NoError(t, err)
	p1Second, _ := coinflip.Party1Reveal(p1First, seed1, p2First)

	otherFirst, _, _, err := coinflip.Party1Commit()
	require.NoError(t, err)

	_, err = coinflip.Finalize(otherFirst, p1Second, p2First)
	assert.ErrorIs(t, err, coinflip.ErrCommitmentMismatch)
}

func TestCoinFlipFinalizeRejectsInvalidReveal(t *testing.T) {
	p1First, seed1, _, err := coinflip.Party1Commit()
	require.NoError(t, err)
	p2First, err := coinflip.Party2Share(p1First)
	require.NoError(t, err)
	p1Second, _ := coinflip.Party1Reveal(p1First, seed1, p2First)

	// The commitment (C) is unchanged so the equality check against p1First
	// passes, but a tampered response must still fail the Pedersen equation.
	tampered := p1Second
	tampered.Proof.Z = tampered.Proof.Z.Add(tampered.Proof.Z)

	_, err = coinflip.Finalize(p1First, tampered, p2First)
	assert.Error(t, err)
}
