package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/idcode"
	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/xilinx/parts"
	"github.com/spf13/cobra"
)

var (
	checkAlign bool
	checkPart  string
)

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Validate device map descriptions",
	Long: `Load and validate one or more description files (YAML or JSON).

Every family present is checked against its shape. By default jtag.slrs and
registers.slrs must also describe the same number of dies. With --part the
description of the part's family is checked against the part's SLR count.

Examples:
  devmap check s7.yaml us.json
  devmap check --align=false descriptions/
  devmap check --part 0x14B31093 vu9p.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkAlign, "align", true,
		"require jtag.slrs and registers.slrs to have equal length")
	checkCmd.Flags().StringVar(&checkPart, "part", "",
		"IDCODE of the target part, e.g. 0x0362D093")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(args, checkAlign)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if cat.Len() == 0 {
		return fmt.Errorf("no family descriptions found in %s", strings.Join(args, ", "))
	}

	printBanner("Device Map Validation")
	for _, f := range cat.Families() {
		d, _ := cat.Descriptor(f)
		fmt.Printf("  ✓ %-3s %-18s %d SLR(s)  %s\n", f, f.Name(), d.RegistersSLRCount(), cat.Source(f))
	}

	if checkPart != "" {
		id, err := parseIDCode(checkPart)
		if err != nil {
			return err
		}
		part, ok := parts.Lookup(id)
		if !ok {
			return fmt.Errorf("unknown part IDCODE 0x%08X", id)
		}
		f, ok := part.DescriptorFamily()
		if !ok {
			return fmt.Errorf("%s (%s) has no device map shape", part.Name, part.Family)
		}
		d, ok := cat.Descriptor(f)
		if !ok {
			return fmt.Errorf("no %s description loaded for %s", f, part.Name)
		}
		if err := parts.CheckDescriptor(part, d); err != nil {
			return fmt.Errorf("part check failed: %w", err)
		}
		fmt.Printf("  ✓ matches %s (0x%08X, %d SLR(s))\n", part.Name, part.IDCode, part.SLRs)
	}

	fmt.Printf("\nAll %d families valid\n", cat.Len())
	return nil
}

// parseIDCode accepts hexadecimal with or without 0x prefix.
func parseIDCode(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid IDCODE %q: %w", s, err)
	}
	id := uint32(v)
	logf("Target: %s", idcode.ParseIDCode(id))
	return id, nil
}
