package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// Diagnostics go to stderr so stdout stays machine readable.
	logger = log.New(os.Stderr, "", 0)
)

// logf writes a diagnostic line when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devmap",
	Short: "Xilinx JTAG and configuration register map validator",
	Long: `Validate and inspect device map descriptions of Xilinx 32-bit FPGA
families (7-series, UltraScale, UltraScale+, Zynq UltraScale+).

A description lists, per family, the JTAG codes of the package and of every
die (SLR) and the configuration register words of every die.

Examples:
  devmap check board.yaml                      # Validate a description
  devmap check --part 0x14B31093 vu9p.yaml     # Also check it against XCVU9P
  devmap lookup vu9p.yaml up.jtag.slrs[1].fuse_dna
  devmap show --json vu9p.yaml                 # Print the validated model
  devmap families                              # Print the family shapes
  devmap parts --family UP                     # Print known parts`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
