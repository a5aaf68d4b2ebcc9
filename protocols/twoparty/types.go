package twoparty

import (
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/internal/secret"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// KeyShare is a party's long-term DKG share (spec.md §3). Ask is zeroized
// when a signing session computes its partial signature (ComputePartial) or
// when Zeroize is called; a signing session that aborts before
// ComputePartial does not zeroize it. KeyShare itself should not be cloned
// once ask has been consumed.
type KeyShare struct {
	Ak  curve.Point
	ask *secret.Scalar
}

// NewKeyShare builds a KeyShare from a freshly generated secret scalar.
func NewKeyShare(ask curve.Scalar) KeyShare {
	return KeyShare{
		Ak:  curve.ScalarBaseMult(ask),
		ask: secret.NewScalar(ask),
	}
}

// Secret exposes the underlying secret scalar for use in a single
// computation (partial-signature or joint-key derivation). See
// internal/secret.Scalar.Expose for the retention discipline this requires.
func (k KeyShare) Secret() curve.Scalar {
	return k.ask.Expose()
}

// Zeroize erases the share's secret scalar.
func (k KeyShare) Zeroize() {
	k.ask.Zeroize()
}

// EphemeralShare is a party's per-signature nonce share (spec.md §3). The
// secret ri is zeroized the same way KeyShare's ask is; the public point Ri
// is kept.
type EphemeralShare struct {
	Ri curve.Point
	ri *secret.Scalar
}

// NewEphemeralShare builds an EphemeralShare from a freshly derived nonce
// scalar.
func NewEphemeralShare(ri curve.Scalar) EphemeralShare {
	return EphemeralShare{
		Ri: curve.ScalarBaseMult(ri),
		ri: secret.NewScalar(ri),
	}
}

// Secret exposes the underlying nonce scalar for use in a single
// computation.
func (e EphemeralShare) Secret() curve.Scalar {
	return e.ri.Expose()
}

// Zeroize erases the share's secret scalar.
func (e EphemeralShare) Zeroize() {
	e.ri.Zeroize()
}

// DKGOpening is the decommit bundle of spec.md §3 for the DKG
// sub-protocol: the full witness a party reveals after its counterparty has
// verified the commitment it sent in round 1.
type DKGOpening struct {
	PkBlindFactor *big.Int
	ZkBlindFactor *big.Int
	PublicShare   curve.Point
	DlogProof     proofs.DLogProof
}

// EphOpening is the decommit bundle for the ephemeral-key sub-protocol: the
// same shape as DKGOpening, but with an EC-DDH proof and the
// c = r_i·H term (spec.md §3).
type EphOpening struct {
	PkBlindFactor *big.Int
	ZkBlindFactor *big.Int
	PublicShare   curve.Point
	DdhProof      proofs.ECDDHProof
	C             curve.Point
}

// Signature is the output artifact of a signing session (spec.md §3).
type Signature struct {
	S curve.Scalar
	R curve.Point
}
