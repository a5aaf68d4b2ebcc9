package twoparty

import (
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/coinflip"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// SigningParty2 drives Party 2's side of one signing session, built from an
// already-completed DKG KeyShare and joint key (spec.md §4.8). Its state
// machine mirrors SigningParty1's S0-S6 progression.
type SigningParty2 struct {
	state signerState

	share KeyShare
	ak    curve.Point

	cfSeed curve.Scalar
	alpha  curve.Scalar
	vk     curve.Point

	message *big.Int
	eph     *EphParty2
	ephare  EphemeralShare
	R       curve.Point

	partial LocalSignatureMsg
}

// NewSigningParty2 starts a new signing session for Party 2 over an
// existing KeyShare and joint public key.
func NewSigningParty2(share KeyShare, ak curve.Point) *SigningParty2 {
	return &SigningParty2{state: signerS0KeyGenDone, share: share, ak: ak}
}

// ShareCoinFlip verifies Party 1's round-1 commitment and shares Party 2's
// own seed.
func (p *SigningParty2) ShareCoinFlip(p1Msg CoinFlipFirstMsgP1) (CoinFlipFirstMsgP2, error) {
	if p.state != signerS0KeyGenDone {
		return CoinFlipFirstMsgP2{}, fmt.Errorf("%w: signing session not at S0", ErrOutOfOrder)
	}
	msg, err := coinflip.Party2Share(p1Msg)
	if err != nil {
		return CoinFlipFirstMsgP2{}, fmt.Errorf("%w: %v", ErrProofInvalid, err)
	}
	p.cfSeed = msg.Seed
	p.state = signerS1CoinFlipStarted
	return msg, nil
}

// FinalizeCoinFlip checks Party 1's revealed opening against its round-1
// commitment, derives the agreed alpha, and computes vk = ak + alpha*G.
func (p *SigningParty2) FinalizeCoinFlip(p1FirstMsg CoinFlipFirstMsgP1, p1SecondMsg CoinFlipSecondMsg) (curve.Point, error) {
	if p.state != signerS1CoinFlipStarted {
		return curve.Point{}, fmt.Errorf("%w: signing session not at S1", ErrOutOfOrder)
	}
	alpha, err := coinflip.Finalize(p1FirstMsg, p1SecondMsg, coinflip.Party2FirstMessage{Seed: p.cfSeed})
	if err != nil {
		if err == coinflip.ErrCommitmentMismatch {
			return curve.Point{}, fmt.Errorf("%w: %v", ErrCommitmentMismatch, err)
		}
		return curve.Point{}, fmt.Errorf("%w: %v", ErrProofInvalid, err)
	}
	p.alpha = alpha
	p.vk = ComputeVK(p.ak, alpha)
	p.state = signerS2AlphaKnown
	return p.vk, nil
}

// SendEphemeral derives Party 2's ephemeral nonce share for message and
// sends it in the clear — Party 2 never commits in the ephemeral
// sub-protocol, mirroring the DKG asymmetry.
func (p *SigningParty2) SendEphemeral(message *big.Int) (EphKeyGenFirstMsgP2, error) {
	if p.state != signerS2AlphaKnown {
		return EphKeyGenFirstMsgP2{}, fmt.Errorf("%w: signing session not at S2", ErrOutOfOrder)
	}
	eph, err := NewEphParty2(p.vk, message)
	if err != nil {
		return EphKeyGenFirstMsgP2{}, err
	}
	msg, err := eph.Round1()
	if err != nil {
		return EphKeyGenFirstMsgP2{}, err
	}
	p.message = message
	p.eph = eph
	p.state = signerS3EphCommitted
	return msg, nil
}

// ReceiveEphemeral verifies Party 1's revealed ephemeral commitments and
// derives the joint nonce R.
func (p *SigningParty2) ReceiveEphemeral(p1First EphKeyGenFirstMsg, p1Second EphKeyGenSecondMsg) error {
	if p.state != signerS3EphCommitted {
		return fmt.Errorf("%w: signing session not at S3", ErrOutOfOrder)
	}
	share, R, err := p.eph.Round2(p1First, p1Second)
	if err != nil {
		return err
	}
	p.ephare = share
	p.R = R
	p.state = signerS4NonceKnown
	return nil
}

// ComputePartial computes Party 2's partial signature share
// s_2 = r_{2,i} + c*ask_2.
func (p *SigningParty2) ComputePartial() (LocalSignatureMsg, error) {
	if p.state != signerS4NonceKnown {
		return LocalSignatureMsg{}, fmt.Errorf("%w: signing session not at S4", ErrOutOfOrder)
	}
	c := signingChallenge(p.R, p.vk, p.message)
	s2 := p.ephare.Secret().Add(c.Mul(p.share.Secret()))

	p.share.Zeroize()
	p.ephare.Zeroize()

	p.partial = LocalSignatureMsg{S: s2}
	p.state = signerS5PartialEmitted
	return p.partial, nil
}

// CombineAndVerify combines Party 2's and Party 1's partial shares into the
// aggregate signature and verifies it before returning it.
func (p *SigningParty2) CombineAndVerify(p1Partial LocalSignatureMsg) (Signature, error) {
	if p.state != signerS5PartialEmitted {
		return Signature{}, fmt.Errorf("%w: signing session not at S5", ErrOutOfOrder)
	}
	sig := Signature{S: p.partial.S.Add(p1Partial.S), R: p.R}
	if err := VerifyAggregate(p.vk, p.message, sig); err != nil {
		return Signature{}, err
	}
	p.state = signerS6Signed
	return sig, nil
}

// VK returns the re-randomized verification key, available from S2 onward.
func (p *SigningParty2) VK() curve.Point {
	return p.vk
}
