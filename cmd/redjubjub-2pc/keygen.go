package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/jubjub-mpc/two-party-schnorr/internal/obslog"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
	"github.com/jubjub-mpc/two-party-schnorr/protocols/twoparty"
)

var keygenOutputFile string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Run the two-party DKG locally and write a demo key file",
	RunE:  runKeygen,
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenOutputFile, "output", "o", "demo-key.cbor", "output key file")
}

// demoConfig bundles both parties' shares into a single file purely so this
// single-process demo harness has something to hand to the sign
// subcommand; a real deployment never lets one process hold both ask
// scalars (spec.md §2, "two distinct parties, neither of which ever learns
// the other's secret share").
type demoConfig struct {
	Ak   curve.Point
	Ask1 curve.Scalar
	Ask2 curve.Scalar
}

func runKeygen(cmd *cobra.Command, args []string) error {
	p1 := twoparty.NewDKGParty1()
	p2 := twoparty.NewDKGParty2()

	p1First, err := p1.Round1()
	if err != nil {
		return fmt.Errorf("party 1 round 1: %w", err)
	}
	obslog.Debugw("dkg: party 1 committed", "pkComm", p1First.PkComm.String())

	p2First, err := p2.Round1()
	if err != nil {
		return fmt.Errorf("party 2 round 1: %w", err)
	}
	obslog.Debugw("dkg: party 2 shared public share")

	p1Second, share1, ak1, err := p1.Round2(p2First)
	if err != nil {
		return fmt.Errorf("party 1 round 2: %w", err)
	}

	share2, ak2, err := p2.Round2(p1First, p1Second)
	if err != nil {
		return fmt.Errorf("party 2 round 2: %w", err)
	}
	if !ak1.Equal(ak2) {
		return fmt.Errorf("party 1 and party 2 disagree on the joint public key")
	}

	cfg := demoConfig{
		Ak:   ak1,
		Ask1: share1.Secret(),
		Ask2: share2.Secret(),
	}
	share1.Zeroize()
	share2.Zeroize()

	data, err := cbor.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode demo config: %w", err)
	}
	if err := os.WriteFile(keygenOutputFile, data, 0o600); err != nil {
		return fmt.Errorf("write demo config: %w", err)
	}

	obslog.Infow("keygen complete", "output", keygenOutputFile, "ak", new(big.Int).Set(ak1.CompressedBigInt()).String())
	fmt.Printf("joint public key: %x\n", ak1.Bytes())
	fmt.Printf("demo key file written to %s\n", keygenOutputFile)
	return nil
}
