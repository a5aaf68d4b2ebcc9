package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/jubjub-mpc/two-party-schnorr/protocols/twoparty"
)

var (
	verifyInputFile  string
	verifyMessageHex string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signature produced by the sign subcommand",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyInputFile, "input", "i", "demo-signature.cbor", "signature file from sign")
	verifyCmd.Flags().StringVarP(&verifyMessageHex, "message", "m", "", "message that was signed (hex encoded, required)")
	verifyCmd.MarkFlagRequired("message")
}

func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(verifyInputFile)
	if err != nil {
		return fmt.Errorf("read signature file: %w", err)
	}
	var out signOutput
	if err := cbor.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode signature file: %w", err)
	}

	msgBytes, err := hex.DecodeString(verifyMessageHex)
	if err != nil {
		return fmt.Errorf("decode --message: %w", err)
	}
	message := new(big.Int).SetBytes(msgBytes)

	if err := twoparty.VerifyAggregate(out.VK, message, out.Signature); err != nil {
		fmt.Println("signature is INVALID")
		return err
	}

	fmt.Println("signature is VALID")
	return nil
}
