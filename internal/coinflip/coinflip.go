// Package coinflip implements the optimal-rounds, simulation-secure
// string-coin-flip of spec.md §4.5: two rounds producing a uniformly random
// scalar alpha both parties agree on, used to re-randomize the signing key.
package coinflip

import (
	"crypto/rand"
	"errors"

	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// ErrCommitmentMismatch is returned by Finalize when the revealed opening
// does not match the commitment P2 received in round 1.
var ErrCommitmentMismatch = errors.New("coinflip: revealed commitment does not match round-1 commitment")

// Party1FirstMessage is P1's round-1 output: a Pedersen commitment to a
// freshly sampled seed, with a proof that the commitment is well formed.
type Party1FirstMessage struct {
	Proof proofs.PedersenBlindingProof
}

// Party1Commit samples P1's seed and blinding factor and commits to them.
// The caller must retain seed to later call Party1Reveal; blinding is
// returned as well, though Party1Reveal does not take it.
func Party1Commit() (Party1FirstMessage, curve.Scalar, curve.Scalar, error) {
	seed, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return Party1FirstMessage{}, curve.Scalar{}, curve.Scalar{}, err
	}
	blinding, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return Party1FirstMessage{}, curve.Scalar{}, curve.Scalar{}, err
	}
	proof, err := proofs.ProvePedersenBlinding(seed, blinding)
	if err != nil {
		return Party1FirstMessage{}, curve.Scalar{}, curve.Scalar{}, err
	}
	return Party1FirstMessage{Proof: proof}, seed, blinding, nil
}

// Party2FirstMessage is P2's round-1 output: a seed shared in the clear,
// after verifying P1's commitment proof.
type Party2FirstMessage struct {
	Seed curve.Scalar
}

// Party2Share verifies P1's round-1 message and shares P2's own seed.
func Party2Share(p1Msg Party1FirstMessage) (Party2FirstMessage, error) {
	if err := proofs.VerifyPedersenBlinding(p1Msg.Proof); err != nil {
		return Party2FirstMessage{}, err
	}
	seed, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return Party2FirstMessage{}, err
	}
	return Party2FirstMessage{Seed: seed}, nil
}

// Party1SecondMessage is P1's round-2 output: the opening of its round-1
// commitment (the same Pedersen proof object, which already carries m and
// the commitment — see DESIGN.md Open Question 2).
type Party1SecondMessage struct {
	Proof proofs.PedersenBlindingProof
}

// Party1Reveal reveals P1's seed and computes the agreed coin.
func Party1Reveal(firstMsg Party1FirstMessage, seed curve.Scalar, p2Msg Party2FirstMessage) (Party1SecondMessage, curve.Scalar) {
	alpha := seed.Add(p2Msg.Seed)
	return Party1SecondMessage{Proof: firstMsg.Proof}, alpha
}

// Finalize is P2's finishing step: it checks that the revealed opening
// matches the commitment received in round 1 and that the Pedersen proof
// still verifies, then computes the same alpha P1 derived.
func Finalize(p1FirstMsg Party1FirstMessage, p1SecondMsg Party1SecondMessage, p2FirstMsg Party2FirstMessage) (curve.Scalar, error) {
	if !p1FirstMsg.Proof.C.Equal(p1SecondMsg.Proof.C) {
		return curve.Scalar{}, ErrCommitmentMismatch
	}
	if err := proofs.VerifyPedersenBlinding(p1SecondMsg.Proof); err != nil {
		return curve.Scalar{}, err
	}
	alpha := p1SecondMsg.Proof.M.Add(p2FirstMsg.Seed)
	return alpha, nil
}
