package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	showJSON bool
	showYAML bool
	showDump bool
)

var showCmd = &cobra.Command{
	Use:   "show <file|dir>...",
	Short: "Print the validated device map",
	Long: `Validate descriptions and print the resulting model. The JSON and YAML
forms can be fed back to check.

Examples:
  devmap show vu9p.yaml
  devmap show --yaml a35t.json
  devmap show --dump descriptions/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "output as YAML")
	showCmd.Flags().BoolVar(&showDump, "dump", false, "dump the in-memory model")
}

func runShow(cmd *cobra.Command, args []string) error {
	formats := 0
	for _, set := range []bool{showJSON, showYAML, showDump} {
		if set {
			formats++
		}
	}
	if formats > 1 {
		return fmt.Errorf("--json, --yaml and --dump are mutually exclusive")
	}

	cat, err := loadCatalog(args, false)
	if err != nil {
		return err
	}
	root, err := cat.Root()
	if err != nil {
		return err
	}

	switch {
	case showJSON:
		return writeJSON(root)
	case showYAML:
		out, err := yaml.Marshal(root.Encode())
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	case showDump:
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cfg.Fdump(os.Stdout, root)
		return nil
	}

	for _, f := range root.Families() {
		d, _ := root.Descriptor(f)
		printDescriptor(d)
	}
	return nil
}

func printDescriptor(d *devmap.Descriptor) {
	printBanner(fmt.Sprintf("%s (%s)", d.Family(), d.Family().Name()))

	fmt.Printf("jtag.device.cntl: %s\n\n", hexInts(d.Cntl()))

	for i := 0; i < d.JTAGSLRCount(); i++ {
		slr, ok := d.JTAGSLR(i)
		if !ok {
			fmt.Printf("jtag.slrs[%d]: absent\n\n", i)
			continue
		}
		fmt.Printf("jtag.slrs[%d]:\n", i)
		for _, name := range slr.Fields() {
			v, _ := slr.Field(name)
			fmt.Printf("  %-14s %s\n", name, hexInts(v))
		}
		fmt.Println()
	}

	for i := 0; i < d.RegistersSLRCount(); i++ {
		regs, _ := d.RegistersSLR(i)
		fmt.Printf("registers.slrs[%d]:\n", i)
		for _, name := range devmap.RegisterFields() {
			n, _ := regs.Field(name)
			fmt.Printf("  %-14s 0x%08X\n", name, n)
		}
		fmt.Println()
	}

	if err := devmap.ValidateSLRAlignment(d); err != nil {
		fmt.Printf("warning: %v\n\n", err)
	}
}

func hexInts(v []uint64) string {
	s := ""
	for i, n := range v {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", n)
	}
	return s
}
