package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "lockbox",
	Short: "Lockbox is a passkey-protected storage service",
	Long: `A storage service where every value is sealed with its own passkey.
The server never sees plaintext at rest; values are held as encrypted
envelopes and opened only on request with the right passkey.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
