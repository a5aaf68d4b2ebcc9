package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/jubjub-mpc/two-party-schnorr/internal/obslog"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
	"github.com/jubjub-mpc/two-party-schnorr/protocols/twoparty"
)

var (
	signInputFile  string
	signOutputFile string
	signMessageHex string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Run a two-party signing session locally over a demo key file",
	RunE:  runSign,
}

func init() {
	signCmd.Flags().StringVarP(&signInputFile, "input", "i", "demo-key.cbor", "demo key file from keygen")
	signCmd.Flags().StringVarP(&signOutputFile, "output", "o", "demo-signature.cbor", "output signature file")
	signCmd.Flags().StringVarP(&signMessageHex, "message", "m", "", "message to sign (hex encoded, required)")
	signCmd.MarkFlagRequired("message")
}

// signOutput bundles the aggregate signature with the re-randomized
// verification key it was produced under, since vk changes every session
// (spec.md §4.5/§4.8: the coin flip re-randomizes ak into vk = ak + alpha*G
// fresh each time).
type signOutput struct {
	Signature twoparty.Signature
	VK        curve.Point
}

func runSign(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(signInputFile)
	if err != nil {
		return fmt.Errorf("read demo key file: %w", err)
	}
	var cfg demoConfig
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("decode demo key file: %w", err)
	}

	msgBytes, err := hex.DecodeString(signMessageHex)
	if err != nil {
		return fmt.Errorf("decode --message: %w", err)
	}
	message := new(big.Int).SetBytes(msgBytes)

	share1 := twoparty.NewKeyShare(cfg.Ask1)
	share2 := twoparty.NewKeyShare(cfg.Ask2)

	p1 := twoparty.NewSigningParty1(share1, cfg.Ak)
	p2 := twoparty.NewSigningParty2(share2, cfg.Ak)

	cf1Msg, err := p1.StartCoinFlip()
	if err != nil {
		return fmt.Errorf("party 1 start coin flip: %w", err)
	}
	cf2Msg, err := p2.ShareCoinFlip(cf1Msg)
	if err != nil {
		return fmt.Errorf("party 2 share coin flip: %w", err)
	}
	cf1SecondMsg, vk, err := p1.RevealCoinFlip(cf2Msg)
	if err != nil {
		return fmt.Errorf("party 1 reveal coin flip: %w", err)
	}
	vk2, err := p2.FinalizeCoinFlip(cf1Msg, cf1SecondMsg)
	if err != nil {
		return fmt.Errorf("party 2 finalize coin flip: %w", err)
	}
	if !vk.Equal(vk2) {
		return fmt.Errorf("party 1 and party 2 disagree on the re-randomized verification key")
	}
	obslog.Debugw("sign: coin flip complete", "vk", vk.CompressedBigInt().String())

	eph1Msg, err := p1.CommitEphemeral(message)
	if err != nil {
		return fmt.Errorf("party 1 commit ephemeral: %w", err)
	}
	eph2Msg, err := p2.SendEphemeral(message)
	if err != nil {
		return fmt.Errorf("party 2 send ephemeral: %w", err)
	}
	eph1SecondMsg, err := p1.DecommitEphemeral(eph2Msg)
	if err != nil {
		return fmt.Errorf("party 1 decommit ephemeral: %w", err)
	}
	if err := p2.ReceiveEphemeral(eph1Msg, eph1SecondMsg); err != nil {
		return fmt.Errorf("party 2 receive ephemeral: %w", err)
	}

	partial1, err := p1.ComputePartial()
	if err != nil {
		return fmt.Errorf("party 1 compute partial: %w", err)
	}
	partial2, err := p2.ComputePartial()
	if err != nil {
		return fmt.Errorf("party 2 compute partial: %w", err)
	}

	sig, err := p1.CombineAndVerify(partial2)
	if err != nil {
		return fmt.Errorf("party 1 combine and verify: %w", err)
	}
	sig2, err := p2.CombineAndVerify(partial1)
	if err != nil {
		return fmt.Errorf("party 2 combine and verify: %w", err)
	}
	if !sig.S.Equal(sig2.S) || !sig.R.Equal(sig2.R) {
		return fmt.Errorf("party 1 and party 2 disagree on the final signature")
	}

	out := signOutput{Signature: sig, VK: vk}
	outData, err := cbor.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode signature: %w", err)
	}
	if err := os.WriteFile(signOutputFile, outData, 0o644); err != nil {
		return fmt.Errorf("write signature: %w", err)
	}

	obslog.Infow("signing complete", "output", signOutputFile)
	fmt.Printf("signature written to %s\n", signOutputFile)
	return nil
}
