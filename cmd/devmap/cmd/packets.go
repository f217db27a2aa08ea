package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/xilinx/configreg"
	"github.com/spf13/cobra"
)

var (
	packetsFields []string
	packetsWire   bool
	packetsJSON   bool
)

// PacketInfo is the JSON form of one register read.
type PacketInfo struct {
	Field   string   `json:"field"`
	Address uint16   `json:"address"`
	Words   []string `json:"words"`
	Wire    string   `json:"wire,omitempty"`
}

var packetsCmd = &cobra.Command{
	Use:   "packets",
	Short: "Show the CFG_IN packets that read each register",
	Long: `Print the configuration packets shifted into CFG_IN to read the
registers of a per-die register block, one packet per register.

Examples:
  devmap packets
  devmap packets --field bootsts --field stat --wire`,
	Args: cobra.NoArgs,
	RunE: runPackets,
}

func init() {
	rootCmd.AddCommand(packetsCmd)

	packetsCmd.Flags().StringSliceVar(&packetsFields, "field", nil,
		"only show these registers (default: the whole block)")
	packetsCmd.Flags().BoolVar(&packetsWire, "wire", false,
		"also print the bytes in TAP shift order")
	packetsCmd.Flags().BoolVar(&packetsJSON, "json", false,
		"output as JSON")
}

func runPackets(cmd *cobra.Command, args []string) error {
	fields := packetsFields
	if len(fields) == 0 {
		fields = devmap.RegisterFields()
	}
	reads, err := configreg.RegisterReads(fields)
	if err != nil {
		return err
	}

	infos := make([]PacketInfo, len(reads))
	for i, r := range reads {
		infos[i] = PacketInfo{Field: r.Field, Address: uint16(r.Addr)}
		for _, w := range r.Packet {
			infos[i].Words = append(infos[i].Words, fmt.Sprintf("0x%08X", w))
		}
		if packetsWire {
			infos[i].Wire = fmt.Sprintf("% X", configreg.WireOrder(r.Packet))
		}
	}

	if packetsJSON {
		return writeJSON(infos)
	}

	logf("IR CFG_IN 0b%06b, CFG_OUT 0b%06b", configreg.InstrCfgIn, configreg.InstrCfgOut)
	for i, info := range infos {
		fmt.Printf("%-8s %-8s %v\n", info.Field, reads[i].Addr, info.Words)
		if info.Wire != "" {
			fmt.Printf("         wire: %s\n", info.Wire)
		}
	}
	return nil
}
