package twoparty

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/commitment"
	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// rangeBound is q/3, the bound spec.md §3 Invariant 4 requires Party 1's
// DKG secret to satisfy.
func rangeBound() *big.Int {
	return new(big.Int).Div(curve.Order, big.NewInt(3))
}

// dkgState enumerates the two-round DKG sub-protocol's states. P1 commits
// first (the Lindell-style asymmetry of spec.md §4.6); P2 never commits.
type dkgState int

const (
	dkgStateInit dkgState = iota
	dkgStateCommitted
	dkgStateDone
)

// DKGParty1 drives Party 1's side of the DKG sub-protocol (spec.md §4.6).
type DKGParty1 struct {
	state dkgState

	ask         curve.Scalar
	ak1         curve.Point
	dlogProof   proofs.DLogProof
	pkBlind     *big.Int
	zkBlind     *big.Int
	pkComm      commitment.Commitment
	zkComm      commitment.Commitment
}

// NewDKGParty1 starts a new DKG session for Party 1.
func NewDKGParty1() *DKGParty1 {
	return &DKGParty1{state: dkgStateInit}
}

// Round1 samples Party 1's secret share, reduces it into the q/3 range
// required by the security proof, and commits to its public share and DLog
// proof without revealing either.
func (p *DKGParty1) Round1() (KeyGenFirstMsg, error) {
	if p.state != dkgStateInit {
		return KeyGenFirstMsg{}, fmt.Errorf("%w: DKG round 1 already run", ErrOutOfOrder)
	}

	ask, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return KeyGenFirstMsg{}, err
	}
	// In Lindell's protocol, the range proof only holds for ask_1 < q/3
	// (spec.md §3 Invariant 4); dividing by 3 enforces this the same way
	// original_source's party_one.rs does.
	ask = ask.DivFloor(3)
	if !ask.LessThan(rangeBound()) {
		return KeyGenFirstMsg{}, fmt.Errorf("%w: ask_1 >= q/3 after reduction", ErrRangeViolation)
	}

	ak1 := curve.ScalarBaseMult(ask)
	dlogProof, err := proofs.ProveDLog(ask)
	if err != nil {
		return KeyGenFirstMsg{}, err
	}

	pkBlind, err := commitment.SampleBlindingFactor()
	if err != nil {
		return KeyGenFirstMsg{}, err
	}
	pkComm := commitment.CreateWithRandomness(ak1.CompressedBigInt(), pkBlind)

	zkBlind, err := commitment.SampleBlindingFactor()
	if err != nil {
		return KeyGenFirstMsg{}, err
	}
	zkComm := commitment.CreateWithRandomness(dlogProof.T.CompressedBigInt(), zkBlind)

	p.ask = ask
	p.ak1 = ak1
	p.dlogProof = dlogProof
	p.pkBlind = pkBlind
	p.zkBlind = zkBlind
	p.pkComm = pkComm
	p.zkComm = zkComm
	p.state = dkgStateCommitted

	return KeyGenFirstMsg{PkComm: pkComm.Value, ZkComm: zkComm.Value}, nil
}

// Round2 verifies Party 2's DLog proof and, if it holds, reveals Party 1's
// commitment opening, returning the final KeyShare and the joint public key.
func (p *DKGParty1) Round2(p2Msg KeyGenFirstMsgP2) (KeyGenSecondMsg, KeyShare, curve.Point, error) {
	if p.state != dkgStateCommitted {
		return KeyGenSecondMsg{}, KeyShare{}, curve.Point{}, fmt.Errorf("%w: DKG round 1 not yet run", ErrOutOfOrder)
	}

	if err := proofs.VerifyDLog(p2Msg.PublicShare, p2Msg.DlogProof); err != nil {
		return KeyGenSecondMsg{}, KeyShare{}, curve.Point{}, fmt.Errorf("%w: party 2 dlog proof: %v", ErrProofInvalid, err)
	}

	opening := DKGOpening{
		PkBlindFactor: p.pkBlind,
		ZkBlindFactor: p.zkBlind,
		PublicShare:   p.ak1,
		DlogProof:     p.dlogProof,
	}
	share := NewKeyShare(p.ask)
	ak := ComputeJointAk(p.ak1, p2Msg.PublicShare)
	p.state = dkgStateDone

	return KeyGenSecondMsg{Opening: opening}, share, ak, nil
}

// DKGParty2 drives Party 2's side of the DKG sub-protocol (spec.md §4.6).
type DKGParty2 struct {
	state dkgState

	ask curve.Scalar
	ak2 curve.Point
}

// NewDKGParty2 starts a new DKG session for Party 2.
func NewDKGParty2() *DKGParty2 {
	return &DKGParty2{state: dkgStateInit}
}

// Round1 samples Party 2's secret share and sends its public share and DLog
// proof in the clear — Party 2 never commits.
func (p *DKGParty2) Round1() (KeyGenFirstMsgP2, error) {
	if p.state != dkgStateInit {
		return KeyGenFirstMsgP2{}, fmt.Errorf("%w: DKG round 1 already run", ErrOutOfOrder)
	}

	ask, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return KeyGenFirstMsgP2{}, err
	}
	ak2 := curve.ScalarBaseMult(ask)
	dlogProof, err := proofs.ProveDLog(ask)
	if err != nil {
		return KeyGenFirstMsgP2{}, err
	}

	p.ask = ask
	p.ak2 = ak2
	p.state = dkgStateCommitted

	return KeyGenFirstMsgP2{PublicShare: ak2, DlogProof: dlogProof}, nil
}

// Round2 recomputes both of Party 1's commitments, asserts equality with
// what it received in round 1, verifies Party 1's DLog proof, and derives
// the final KeyShare and joint public key.
func (p *DKGParty2) Round2(p1First KeyGenFirstMsg, p1Second KeyGenSecondMsg) (KeyShare, curve.Point, error) {
	if p.state != dkgStateCommitted {
		return KeyShare{}, curve.Point{}, fmt.Errorf("%w: DKG round 1 not yet run", ErrOutOfOrder)
	}

	opening := p1Second.Opening
	pkComm := commitment.Commitment{Value: p1First.PkComm}
	if !pkComm.Verify(opening.PublicShare.CompressedBigInt(), opening.PkBlindFactor) {
		return KeyShare{}, curve.Point{}, fmt.Errorf("%w: pk commitment", ErrCommitmentMismatch)
	}
	zkComm := commitment.Commitment{Value: p1First.ZkComm}
	if !zkComm.Verify(opening.DlogProof.T.CompressedBigInt(), opening.ZkBlindFactor) {
		return KeyShare{}, curve.Point{}, fmt.Errorf("%w: zk commitment", ErrCommitmentMismatch)
	}

	if err := proofs.VerifyDLog(opening.PublicShare, opening.DlogProof); err != nil {
		return KeyShare{}, curve.Point{}, fmt.Errorf("%w: party 1 dlog proof: %v", ErrProofInvalid, err)
	}

	share := NewKeyShare(p.ask)
	ak := ComputeJointAk(opening.PublicShare, p.ak2)
	p.state = dkgStateDone

	return share, ak, nil
}
