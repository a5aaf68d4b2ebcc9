package twoparty_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
	"github.com/jubjub-mpc/two-party-schnorr/protocols/twoparty"
)

// TestRangeEnforcementKeepsPartyOneSecretBelowThird checks property 4 of
// spec.md §8: Party 1's DKG secret always satisfies ask_1 < q/3, across many
// independently sampled sessions.
func TestRangeEnforcementKeepsPartyOneSecretBelowThird(t *testing.T) {
	bound := new(big.Int).Div(curve.Order, big.NewInt(3))

	for i := 0; i < 50; i++ {
		p1 := twoparty.NewDKGParty1()
		p2 := twoparty.NewDKGParty2()

		_, err := p1.Round1()
		require.NoError(t, err)
		p2First, err := p2.Round1()
		require.NoError(t, err)
		_, share1, _, err := p1.Round2(p2First)
		require.NoError(t, err)

		assert.True(t, share1.Secret().LessThan(bound))
		share1.Zeroize()
	}
}

// TestSignatureVerifiesOnlyForItsOwnMessage checks that the message is bound
// into the signing challenge: a signature over a verifies under vk for a and
// fails for b.
func TestSignatureVerifiesOnlyForItsOwnMessage(t *testing.T) {
	a := big.NewInt(1)
	b := big.NewInt(2)

	share1, share2, ak, _ := runFullDKG(t)
	defer share1.Zeroize()
	defer share2.Zeroize()

	p1 := twoparty.NewSigningParty1(share1, ak)
	p2 := twoparty.NewSigningParty2(share2, ak)

	cf1First, err := p1.StartCoinFlip()
	require.NoError(t, err)
	cf2First, err := p2.ShareCoinFlip(cf1First)
	require.NoError(t, err)
	cf1Second, vk, err := p1.RevealCoinFlip(cf2First)
	require.NoError(t, err)
	_, err = p2.FinalizeCoinFlip(cf1First, cf1Second)
	require.NoError(t, err)

	sigForA := signMessage(t, p1, p2, a)
	assert.NoError(t, twoparty.VerifyAggregate(vk, a, sigForA))
	assert.Error(t, twoparty.VerifyAggregate(vk, b, sigForA))
}

// TestNoNonceReuseAcrossTwoSigningSessions checks property 7: signing the
// same message twice, in two independent sessions, produces two different
// aggregate nonces R. Each session runs over its own DKG key, because a
// completed session zeroizes the KeyShare it signed with.
func TestNoNonceReuseAcrossTwoSigningSessions(t *testing.T) {
	share1, share2, ak, _ := runFullDKG(t)
	message := big.NewInt(99)

	sig1 := signFreshSession(t, share1, share2, ak, message)
	share1b, share2b, akb, _ := runFullDKG(t)
	sig2 := signFreshSession(t, share1b, share2b, akb, message)

	assert.False(t, sig1.R.Equal(sig2.R))
}

// TestZeroizeClearsKeyShareAfterSigningCompletes checks property 8: once a
// signing session has run to completion, the KeyShare it consumed no longer
// exposes a usable secret.
func TestZeroizeClearsKeyShareAfterSigningCompletes(t *testing.T) {
	share1, share2, ak, _ := runFullDKG(t)
	message := big.NewInt(5)

	p1 := twoparty.NewSigningParty1(share1, ak)
	p2 := twoparty.NewSigningParty2(share2, ak)

	cf1First, err := p1.StartCoinFlip()
	require.NoError(t, err)
	cf2First, err := p2.ShareCoinFlip(cf1First)
	require.NoError(t, err)
	cf1Second, _, err := p1.RevealCoinFlip(cf2First)
	require.NoError(t, err)
	_, err = p2.FinalizeCoinFlip(cf1First, cf1Second)
	require.NoError(t, err)

	eph1First, err := p1.CommitEphemeral(message)
	require.NoError(t, err)
	eph2First, err := p2.SendEphemeral(message)
	require.NoError(t, err)
	eph1Second, err := p1.DecommitEphemeral(eph2First)
	require.NoError(t, err)
	require.NoError(t, p2.ReceiveEphemeral(eph1First, eph1Second))

	_, err = p1.ComputePartial()
	require.NoError(t, err)
	_, err = p2.ComputePartial()
	require.NoError(t, err)

	assert.True(t, share1.Secret().IsZero())
	assert.True(t, share2.Secret().IsZero())
}

func signMessage(t *testing.T, p1 *twoparty.SigningParty1, p2 *twoparty.SigningParty2, message *big.Int) twoparty.Signature {
	t.Helper()
	eph1First, err := p1.CommitEphemeral(message)
	require.NoError(t, err)
	eph2First, err := p2.SendEphemeral(message)
	require.NoError(t, err)
	eph1Second, err := p1.DecommitEphemeral(eph2First)
	require.NoError(t, err)
	require.NoError(t, p2.ReceiveEphemeral(eph1First, eph1Second))

	partial1, err := p1.ComputePartial()
	require.NoError(t, err)
	partial2, err := p2.ComputePartial()
	require.NoError(t, err)

	sig, err := p1.CombineAndVerify(partial2)
	require.NoError(t, err)
	_, err = p2.CombineAndVerify(partial1)
	require.NoError(t, err)
	return sig
}

func signFreshSession(t *testing.T, share1, share2 twoparty.KeyShare, ak curve.Point, message *big.Int) twoparty.Signature {
	t.Helper()
	p1 := twoparty.NewSigningParty1(share1, ak)
	p2 := twoparty.NewSigningParty2(share2, ak)

	cf1First, err := p1.StartCoinFlip()
	require.NoError(t, err)
	cf2First, err := p2.ShareCoinFlip(cf1First)
	require.NoError(t, err)
	cf1Second, _, err := p1.RevealCoinFlip(cf2First)
	require.NoError(t, err)
	_, err = p2.FinalizeCoinFlip(cf1First, cf1Second)
	require.NoError(t, err)

	return signMessage(t, p1, p2, message)
}
