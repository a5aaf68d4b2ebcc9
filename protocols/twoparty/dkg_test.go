package twoparty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
	"github.com/jubjub-mpc/two-party-schnorr/protocols/twoparty"
)

func runFullDKG(t *testing.T) (share1, share2 twoparty.KeyShare, ak1, ak2 curve.Point) {
	t.Helper()
	p1 := twoparty.NewDKGParty1()
	p2 := twoparty.NewDKGParty2()

	p1First, err := p1.Round1()
	require.NoError(t, err)

	p2First, err := p2.Round1()
	require.NoError(t, err)

	p1Second, s1, a1, err := p1.Round2(p2First)
	require.NoError(t, err)

	s2, a2, err := p2.Round2(p1First, p1Second)
	require.NoError(t, err)

	return s1, s2, a1, a2
}

func TestDKGHappyPathAgreesOnJointKey(t *testing.T) {
	share1, share2, ak1, ak2 := runFullDKG(t)
	assert.True(t, ak1.Equal(ak2))
	assert.True(t, ak1.Equal(share1.Ak.Add(share2.Ak)))
}

func TestDKGRound1CannotRunTwice(t *testing.T) {
	p1 := twoparty.NewDKGParty1()
	_, err := p1.Round1()
	require.NoError(t, err)

	_, err = p1.Round1()
	assert.ErrorIs(t, err, twoparty.ErrOutOfOrder)
}

func TestDKGRound2BeforeRound1IsRejected(t *testing.T) {
	p1 := twoparty.NewDKGParty1()
	_, _, _, err := p1.Round2(twoparty.KeyGenFirstMsgP2{})
	assert.ErrorIs(t, err, twoparty.ErrOutOfOrder)

	p2 := twoparty.NewDKGParty2()
	_, _, err = p2.Round2(twoparty.KeyGenFirstMsg{}, twoparty.KeyGenSecondMsg{})
	assert.ErrorIs(t, err, twoparty.ErrOutOfOrder)
}

func TestDKGParty2RejectsBadDLogProof(t *testing.T) {
	p1 := twoparty.NewDKGParty1()
	p2 := twoparty.NewDKGParty2()

	p1First, err := p1.Round1()
	require.NoError(t, err)

	p2First, err := p2.Round1()
	require.NoError(t, err)

	p1Second, _, _, err := p1.Round2(p2First)
	require.NoError(t, err)

	p1Second.Opening.DlogProof.Z = p1Second.Opening.DlogProof.Z.Add(p1Second.Opening.DlogProof.Z)

	_, _, err = p2.Round2(p1First, p1Second)
	assert.ErrorIs(t, err, twoparty.ErrProofInvalid)
}

func TestDKGParty2RejectsMismatchedCommitment(t *testing.T) {
	p1 := twoparty.NewDKGParty1()
	p2 := twoparty.NewDKGParty2()

	p1First, err := p1.Round1()
	require.NoError(t, err)
	p2First, err := p2.Round1()
	require.NoError(t, err)
	p1Second, _, _, err := p1.Round2(p2First)
	require.NoError(t, err)

	// Swap in a commitment from an unrelated session so the decommit opening
	// no longer reproduces it.
	other := twoparty.NewDKGParty1()
	otherFirst, err := other.Round1()
	require.NoError(t, err)

	_, _, err = p2.Round2(otherFirst, p1Second)
	assert.ErrorIs(t, err, twoparty.ErrCommitmentMismatch)
}
