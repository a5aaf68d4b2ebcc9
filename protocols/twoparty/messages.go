package twoparty

import (
	"math/big"

	"github.com/jubjub-mpc/two-party-schnorr/internal/coinflip"
	"github.com/jubjub-mpc/two-party-schnorr/internal/proofs"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// The canonical wire message types of spec.md §6. Each is CBOR-encodable
// via github.com/fxamacker/cbor/v2 so a transport (out of scope for this
// module) can serialize them directly.

// KeyGenFirstMsg is P1's round-1 DKG message: two hash commitments.
type KeyGenFirstMsg struct {
	PkComm *big.Int
	ZkComm *big.Int
}

// KeyGenSecondMsg is P1's round-2 DKG message: the decommit opening.
type KeyGenSecondMsg struct {
	Opening DKGOpening
}

// KeyGenFirstMsgP2 is P2's round-1 DKG message: its public share and DLog
// proof, sent in the clear (P2 never commits; only P1 does, per the
// Lindell-style asymmetry of spec.md §4.6).
type KeyGenFirstMsgP2 struct {
	PublicShare curve.Point
	DlogProof   proofs.DLogProof
}

// CoinFlipFirstMsgP1 is P1's round-1 coin-flip message.
type CoinFlipFirstMsgP1 = coinflip.Party1FirstMessage

// CoinFlipFirstMsgP2 is P2's round-1 coin-flip message.
type CoinFlipFirstMsgP2 = coinflip.Party2FirstMessage

// CoinFlipSecondMsg is P1's round-2 coin-flip message (the reveal).
type CoinFlipSecondMsg = coinflip.Party1SecondMessage

// EphKeyGenFirstMsg is P1's round-1 ephemeral-key message: two hash
// commitments, structurally identical to KeyGenFirstMsg but over the
// ephemeral EC-DDH commitment bundle instead of the DLog one.
type EphKeyGenFirstMsg struct {
	PkComm *big.Int
	ZkComm *big.Int
}

// EphKeyGenSecondMsg is P1's round-2 ephemeral-key message: the decommit
// opening, including the EC-DDH proof and c = r_i·H.
type EphKeyGenSecondMsg struct {
	Opening EphOpening
}

// EphKeyGenFirstMsgP2 is P2's round-1 ephemeral-key message: its public
// share, c = r_i·H, and EC-DDH proof, sent in the clear.
type EphKeyGenFirstMsgP2 struct {
	PublicShare curve.Point
	C           curve.Point
	DdhProof    proofs.ECDDHProof
}

// LocalSignatureMsg carries one party's partial signature share.
type LocalSignatureMsg struct {
	S curve.Scalar
}
