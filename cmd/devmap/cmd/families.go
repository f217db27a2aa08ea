package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/xilinx/configreg"
	"github.com/spf13/cobra"
)

var (
	familiesJSON bool
)

// FamilyInfo describes the shape of one family.
type FamilyInfo struct {
	Tag       string      `json:"tag"`
	Name      string      `json:"name"`
	Device    []FieldInfo `json:"device"`
	SLR       []FieldInfo `json:"slr"`
	Registers []FieldInfo `json:"registers"`
}

// FieldInfo names a field and how it is read from the part.
type FieldInfo struct {
	Name    string  `json:"name"`
	Instr   *uint8  `json:"instruction,omitempty"`
	Address *uint16 `json:"address,omitempty"`
}

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "Show the field sets of every family",
	Long: `Print the package, per-die JTAG and per-die register fields of every
supported family, together with the JTAG instruction or configuration
register address each field is read through.

Examples:
  devmap families
  devmap families --json`,
	Args: cobra.NoArgs,
	RunE: runFamilies,
}

func init() {
	rootCmd.AddCommand(familiesCmd)

	familiesCmd.Flags().BoolVar(&familiesJSON, "json", false,
		"output as JSON")
}

func runFamilies(cmd *cobra.Command, args []string) error {
	var infos []FamilyInfo
	for _, f := range devmap.Families() {
		infos = append(infos, FamilyInfo{
			Tag:       string(f),
			Name:      f.Name(),
			Device:    jtagFields(devmap.DeviceFields()),
			SLR:       jtagFields(devmap.JTAGSLRFields(f)),
			Registers: registerFields(devmap.RegisterFields()),
		})
	}

	if familiesJSON {
		return writeJSON(infos)
	}

	printBanner("Device Map Families")
	for _, info := range infos {
		fmt.Printf("%s (%s)\n", info.Tag, info.Name)
		fmt.Printf("  jtag.device:\n")
		printFields(info.Device)
		fmt.Printf("  jtag.slrs[]: %d fields\n", len(info.SLR))
		printFields(info.SLR)
		fmt.Printf("  registers.slrs[]: %d fields\n", len(info.Registers))
		if verbose {
			printFields(info.Registers)
		}
		fmt.Println()
	}
	return nil
}

func jtagFields(names []string) []FieldInfo {
	out := make([]FieldInfo, len(names))
	for i, name := range names {
		out[i].Name = name
		if ir, ok := configreg.JTAGInstr(name); ok {
			out[i].Instr = &ir
		}
	}
	return out
}

func registerFields(names []string) []FieldInfo {
	out := make([]FieldInfo, len(names))
	for i, name := range names {
		out[i].Name = name
		if a, ok := configreg.AddrOf(name); ok {
			addr := uint16(a)
			out[i].Address = &addr
		}
	}
	return out
}

func printFields(fields []FieldInfo) {
	for _, f := range fields {
		switch {
		case f.Instr != nil:
			fmt.Printf("    - %-14s IR 0b%06b\n", f.Name, *f.Instr)
		case f.Address != nil:
			fmt.Printf("    - %-14s %s (0x%02X)\n", f.Name, configreg.Addr(*f.Address), *f.Address)
		default:
			fmt.Printf("    - %s\n", f.Name)
		}
	}
}
