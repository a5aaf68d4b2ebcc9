package twoparty

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/commitment"
	"github.com/jubjub-mpc/two-party-schnorr/internal/hashing"
	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// ephemeralDomainTag domain-separates the ephemeral nonce derivation from
// DKG's hash-commitment inputs (spec.md §9 Open Question 3, resolved "yes,
// separated" in DESIGN.md): the two sub-protocols never hash over the same
// tagged input space, so a transcript collision between them is impossible
// by construction rather than by accident of unrelated inputs.
var ephemeralDomainTag = big.NewInt(0x45504832) // ASCII "EPH2"

// deriveEphemeralSecret computes r_i = HashToScalar(tag ‖ vk ‖ message ‖
// fresh_randomness). Mixing in fresh randomness on every call, in addition
// to binding to vk and the message, is what defends against catastrophic
// nonce reuse across re-signings of the same message (spec.md §3 Invariant
// 6 and §8 Property 7).
func deriveEphemeralSecret(vk curve.Point, message *big.Int) (curve.Scalar, error) {
	freshness, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return curve.Scalar{}, err
	}
	return hashing.HashToScalar(ephemeralDomainTag, vk.CompressedBigInt(), message, freshness.BigInt()), nil
}

// ephState enumerates the ephemeral-key sub-protocol's two rounds. It has
// the same shape as dkgState: spec.md §4.7 is structurally the same
// commit-then-reveal asymmetry as §4.6, now over an EC-DDH statement
// instead of a DLog one, since the nonce must additionally be proven
// consistent with c = r_i·H.
type ephState int

const (
	ephStateInit ephState = iota
	ephStateCommitted
	ephStateDone
)

// EphParty1 drives Party 1's side of the per-signature ephemeral-key
// sub-protocol (spec.md §4.7).
type EphParty1 struct {
	state ephState

	ri       curve.Scalar
	Ri       curve.Point
	c        curve.Point
	ddhProof proofs.ECDDHProof
	pkBlind  *big.Int
	zkBlind  *big.Int
	pkComm   commitment.Commitment
	zkComm   commitment.Commitment
}

// NewEphParty1 starts a new ephemeral-key session for Party 1, deriving its
// nonce share for the given joint verification key and message.
func NewEphParty1(vk curve.Point, message *big.Int) (*EphParty1, error) {
	ri, err := deriveEphemeralSecret(vk, message)
	if err != nil {
		return nil, err
	}
	return &EphParty1{state: ephStateInit, ri: ri}, nil
}

// Round1 computes Party 1's ephemeral public share R_i, its c = r_i·H term,
// and an EC-DDH proof binding the two together, and sends hash commitments
// to R_i and to the proof's A1 point. c, A2 and z are not covered by the
// commitments; they are revealed in the round-2 opening.
func (p *EphParty1) Round1() (EphKeyGenFirstMsg, error) {
	if p.state != ephStateInit {
		return EphKeyGenFirstMsg{}, fmt.Errorf("%w: ephemeral round 1 already run", ErrOutOfOrder)
	}

	Ri := curve.ScalarBaseMult(p.ri)
	c := curve.H().ScalarMult(p.ri)
	statement := proofs.ECDDHStatement{R: Ri, C: c}
	ddhProof, err := proofs.ProveECDDH(p.ri, statement)
	if err != nil {
		return EphKeyGenFirstMsg{}, err
	}

	pkBlind, err := commitment.SampleBlindingFactor()
	if err != nil {
		return EphKeyGenFirstMsg{}, err
	}
	pkComm := commitment.CreateWithRandomness(Ri.CompressedBigInt(), pkBlind)

	zkBlind, err := commitment.SampleBlindingFactor()
	if err != nil {
		return EphKeyGenFirstMsg{}, err
	}
	zkComm := commitment.CreateWithRandomness(ddhProof.A1.CompressedBigInt(), zkBlind)

	p.Ri = Ri
	p.c = c
	p.ddhProof = ddhProof
	p.pkBlind = pkBlind
	p.zkBlind = zkBlind
	p.pkComm = pkComm
	p.zkComm = zkComm
	p.state = ephStateCommitted

	return EphKeyGenFirstMsg{PkComm: pkComm.Value, ZkComm: zkComm.Value}, nil
}

// Round2 verifies Party 2's ephemeral EC-DDH proof and, if it holds, reveals
// Party 1's commitment opening, returning the final EphemeralShare and the
// joint nonce R.
func (p *EphParty1) Round2(p2Msg EphKeyGenFirstMsgP2) (EphKeyGenSecondMsg, EphemeralShare, curve.Point, error) {
	if p.state != ephStateCommitted {
		return EphKeyGenSecondMsg{}, EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: ephemeral round 1 not yet run", ErrOutOfOrder)
	}

	statement := proofs.ECDDHStatement{R: p2Msg.PublicShare, C: p2Msg.C}
	if err := proofs.VerifyECDDH(statement, p2Msg.DdhProof); err != nil {
		return EphKeyGenSecondMsg{}, EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: party 2 ec-ddh proof: %v", ErrProofInvalid, err)
	}

	opening := EphOpening{
		PkBlindFactor: p.pkBlind,
		ZkBlindFactor: p.zkBlind,
		PublicShare:   p.Ri,
		DdhProof:      p.ddhProof,
		C:             p.c,
	}
	share := NewEphemeralShare(p.ri)
	R := ComputeJointNonce(p.Ri, p2Msg.PublicShare)
	p.state = ephStateDone

	return EphKeyGenSecondMsg{Opening: opening}, share, R, nil
}

// EphParty2 drives Party 2's side of the per-signature ephemeral-key
// sub-protocol (spec.md §4.7).
type EphParty2 struct {
	state ephState

	ri curve.Scalar
	Ri curve.Point
	c  curve.Point
}

// NewEphParty2 starts a new ephemeral-key session for Party 2.
func NewEphParty2(vk curve.Point, message *big.Int) (*EphParty2, error) {
	ri, err := deriveEphemeralSecret(vk, message)
	if err != nil {
		return nil, err
	}
	return &EphParty2{state: ephStateInit, ri: ri}, nil
}

// Round1 sends Party 2's ephemeral public share, c = r_i·H, and EC-DDH proof
// in the clear — Party 2 never commits, mirroring the DKG asymmetry.
func (p *EphParty2) Round1() (EphKeyGenFirstMsgP2, error) {
	if p.state != ephStateInit {
		return EphKeyGenFirstMsgP2{}, fmt.Errorf("%w: ephemeral round 1 already run", ErrOutOfOrder)
	}

	Ri := curve.ScalarBaseMult(p.ri)
	c := curve.H().ScalarMult(p.ri)
	statement := proofs.ECDDHStatement{R: Ri, C: c}
	ddhProof, err := proofs.ProveECDDH(p.ri, statement)
	if err != nil {
		return EphKeyGenFirstMsgP2{}, err
	}

	p.Ri = Ri
	p.c = c
	p.state = ephStateCommitted

	return EphKeyGenFirstMsgP2{PublicShare: Ri, C: c, DdhProof: ddhProof}, nil
}

// Round2 recomputes Party 1's two commitments, asserts equality with what it
// received in round 1, verifies Party 1's EC-DDH proof, and derives the
// final EphemeralShare and joint nonce.
func (p *EphParty2) Round2(p1First EphKeyGenFirstMsg, p1Second EphKeyGenSecondMsg) (EphemeralShare, curve.Point, error) {
	if p.state != ephStateCommitted {
		return EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: ephemeral round 1 not yet run", ErrOutOfOrder)
	}

	opening := p1Second.Opening
	pkComm := commitment.Commitment{Value: p1First.PkComm}
	if !pkComm.Verify(opening.PublicShare.CompressedBigInt(), opening.PkBlindFactor) {
		return EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: pk commitment", ErrCommitmentMismatch)
	}
	zkComm := commitment.Commitment{Value: p1First.ZkComm}
	if !zkComm.Verify(opening.DdhProof.A1.CompressedBigInt(), opening.ZkBlindFactor) {
		return EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: zk commitment", ErrCommitmentMismatch)
	}

	statement := proofs.ECDDHStatement{R: opening.PublicShare, C: opening.C}
	if err := proofs.VerifyECDDH(statement, opening.DdhProof); err != nil {
		return EphemeralShare{}, curve.Point{}, fmt.Errorf("%w: party 1 ec-ddh proof: %v", ErrProofInvalid, err)
	}

	share := NewEphemeralShare(p.ri)
	R := ComputeJointNonce(opening.PublicShare, p.Ri)
	p.state = ephStateDone

	return share, R, nil
}
