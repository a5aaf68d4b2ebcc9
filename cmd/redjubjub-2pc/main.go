// Command redjubjub-2pc is a local demonstration harness for the two-party
// RedJubjub signing protocol: it drives both parties in one process to
// exercise keygen, sign, and verify end to end, with no real network
// transport (spec.md "External Interfaces" names a wire transport as out
// of scope).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jubjub-mpc/two-party-schnorr/internal/obslog"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "redjubjub-2pc",
		Short: "Local demo harness for the two-party RedJubjub signing protocol",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			obslog.Init(logLevel)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", obslog.LevelInfo, "log level: debug, info, warn, error")
	rootCmd.AddCommand(keygenCmd, signCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
