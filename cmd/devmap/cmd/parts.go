package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/xilinx/parts"
	"github.com/spf13/cobra"
)

var (
	partsFamily string
	partsJSON   bool
)

// PartInfo is the JSON form of a part entry.
type PartInfo struct {
	IDCode        string `json:"idcode"`
	Name          string `json:"name"`
	Family        string `json:"family"`
	DeviceMap     string `json:"device_map,omitempty"`
	SLRs          int    `json:"slrs"`
	IRLength      int    `json:"ir_length"`
	ReadbackWords int    `json:"readback_words"`
}

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List known Xilinx 32-bit parts",
	Long: `List the built-in part database: IDCODE (revision masked), name, family,
die count, total IR length and readback size in 32-bit words.

Examples:
  devmap parts
  devmap parts --family ZP
  devmap parts --json`,
	Args: cobra.NoArgs,
	RunE: runParts,
}

func init() {
	rootCmd.AddCommand(partsCmd)

	partsCmd.Flags().StringVarP(&partsFamily, "family", "f", "",
		"only list one family (S7, Z7, US, UP, ZP, Versal)")
	partsCmd.Flags().BoolVar(&partsJSON, "json", false,
		"output as JSON")
}

func runParts(cmd *cobra.Command, args []string) error {
	list := parts.All()
	if partsFamily != "" {
		f, err := parts.ParseFamily(partsFamily)
		if err != nil {
			return err
		}
		list = parts.ByFamily(f)
	}

	infos := make([]PartInfo, len(list))
	for i, p := range list {
		infos[i] = PartInfo{
			IDCode:        fmt.Sprintf("0x%08X", p.IDCode),
			Name:          p.Name,
			Family:        string(p.Family),
			SLRs:          p.SLRs,
			IRLength:      p.IRLength,
			ReadbackWords: p.ReadbackWords,
		}
		if f, ok := p.DescriptorFamily(); ok {
			infos[i].DeviceMap = string(f)
		}
	}

	if partsJSON {
		return writeJSON(infos)
	}

	fmt.Printf("%-12s %-10s %-7s %-4s %-4s %s\n", "IDCODE", "NAME", "FAMILY", "SLR", "IR", "READBACK")
	for _, p := range infos {
		fmt.Printf("%-12s %-10s %-7s %-4d %-4d %d\n", p.IDCode, p.Name, p.Family, p.SLRs, p.IRLength, p.ReadbackWords)
	}
	if verbose {
		fmt.Printf("\n%d parts\n", len(infos))
	}
	return nil
}
