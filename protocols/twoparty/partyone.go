package twoparty

import (
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/coinflip"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// signerState enumerates the per-signature state machine of spec.md §4.8:
//
//	S0 KeyGen-done ──▶ S1 CoinFlip-started ──▶ S2 alpha known ──▶
//	S3 Eph-committed ──▶ S4 R known ──▶ S5 partial emitted ──▶ S6 Signature
//
// Both SigningParty1 and SigningParty2 share this enum; each method on
// either type guards against being called out of order.
type signerState int

const (
	signerS0KeyGenDone signerState = iota
	signerS1CoinFlipStarted
	signerS2AlphaKnown
	signerS3EphCommitted
	signerS4NonceKnown
	signerS5PartialEmitted
	signerS6Signed
)

// SigningParty1 drives Party 1's side of one signing session, built from an
// already-completed DKG KeyShare and joint key (spec.md §4.8).
type SigningParty1 struct {
	state signerState

	share KeyShare
	ak    curve.Point

	cfFirstMsg coinflip.Party1FirstMessage
	cfSeed     curve.Scalar
	cfBlinding curve.Scalar
	alpha      curve.Scalar
	vk         curve.Point

	message *big.Int
	eph     *EphParty1
	ephare  EphemeralShare
	R       curve.Point

	partial LocalSignatureMsg
}

// NewSigningParty1 starts a new signing session for Party 1 over an
// existing KeyShare and joint public key.
func NewSigningParty1(share KeyShare, ak curve.Point) *SigningParty1 {
	return &SigningParty1{state: signerS0KeyGenDone, share: share, ak: ak}
}

// StartCoinFlip samples Party 1's coin-flip seed and commits to it.
func (p *SigningParty1) StartCoinFlip() (CoinFlipFirstMsgP1, error) {
	if p.state != signerS0KeyGenDone {
		return CoinFlipFirstMsgP1{}, fmt.Errorf("%w: signing session not at S0", ErrOutOfOrder)
	}
	msg, seed, blinding, err := coinflip.Party1Commit()
	if err != nil {
		return CoinFlipFirstMsgP1{}, err
	}
	p.cfFirstMsg = msg
	p.cfSeed = seed
	p.cfBlinding = blinding
	p.state = signerS1CoinFlipStarted
	return msg, nil
}

// RevealCoinFlip reveals Party 1's seed, derives the agreed alpha, and
// computes the re-randomized verification key vk = ak + alpha*G.
func (p *SigningParty1) RevealCoinFlip(p2Msg CoinFlipFirstMsgP2) (CoinFlipSecondMsg, curve.Point, error) {
	if p.state != signerS1CoinFlipStarted {
		return CoinFlipSecondMsg{}, curve.Point{}, fmt.Errorf("%w: signing session not at S1", ErrOutOfOrder)
	}
	secondMsg, alpha := coinflip.Party1Reveal(p.cfFirstMsg, p.cfSeed, p2Msg)
	p.alpha = alpha
	p.vk = ComputeVK(p.ak, alpha)
	p.state = signerS2AlphaKnown
	return secondMsg, p.vk, nil
}

// CommitEphemeral derives Party 1's ephemeral nonce share for message and
// commits to it.
func (p *SigningParty1) CommitEphemeral(message *big.Int) (EphKeyGenFirstMsg, error) {
	if p.state != signerS2AlphaKnown {
		return EphKeyGenFirstMsg{}, fmt.Errorf("%w: signing session not at S2", ErrOutOfOrder)
	}
	eph, err := NewEphParty1(p.vk, message)
	if err != nil {
		return EphKeyGenFirstMsg{}, err
	}
	msg, err := eph.Round1()
	if err != nil {
		return EphKeyGenFirstMsg{}, err
	}
	p.message = message
	p.eph = eph
	p.state = signerS3EphCommitted
	return msg, nil
}

// DecommitEphemeral verifies Party 2's ephemeral proof, reveals Party 1's
// opening, and derives the joint nonce R.
func (p *SigningParty1) DecommitEphemeral(p2Msg EphKeyGenFirstMsgP2) (EphKeyGenSecondMsg, error) {
	if p.state != signerS3EphCommitted {
		return EphKeyGenSecondMsg{}, fmt.Errorf("%w: signing session not at S3", ErrOutOfOrder)
	}
	msg, share, R, err := p.eph.Round2(p2Msg)
	if err != nil {
		return EphKeyGenSecondMsg{}, err
	}
	p.ephare = share
	p.R = R
	p.state = signerS4NonceKnown
	return msg, nil
}

// ComputePartial computes Party 1's partial signature share
// s_1 = r_{1,i} + c*(ask_1 + alpha).
func (p *SigningParty1) ComputePartial() (LocalSignatureMsg, error) {
	if p.state != signerS4NonceKnown {
		return LocalSignatureMsg{}, fmt.Errorf("%w: signing session not at S4", ErrOutOfOrder)
	}
	c := signingChallenge(p.R, p.vk, p.message)
	x := p.share.Secret().Add(p.alpha)
	s1 := p.ephare.Secret().Add(c.Mul(x))

	p.share.Zeroize()
	p.ephare.Zeroize()

	p.partial = LocalSignatureMsg{S: s1}
	p.state = signerS5PartialEmitted
	return p.partial, nil
}

// CombineAndVerify combines Party 1's and Party 2's partial shares into the
// aggregate signature and verifies it before returning it, per spec.md §4.8
// ("never release an unverified aggregate").
func (p *SigningParty1) CombineAndVerify(p2Partial LocalSignatureMsg) (Signature, error) {
	if p.state != signerS5PartialEmitted {
		return Signature{}, fmt.Errorf("%w: signing session not at S5", ErrOutOfOrder)
	}
	sig := Signature{S: p.partial.S.Add(p2Partial.S), R: p.R}
	if err := VerifyAggregate(p.vk, p.message, sig); err != nil {
		return Signature{}, err
	}
	p.state = signerS6Signed
	return sig, nil
}

// VK returns the re-randomized verification key, available from S2 onward.
func (p *SigningParty1) VK() curve.Point {
	return p.vk
}
