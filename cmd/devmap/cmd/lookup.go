package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
	"github.com/spf13/cobra"
)

var (
	lookupJSON bool
)

// LookupResult is the JSON form of a lookup.
type LookupResult struct {
	Path   string   `json:"path"`
	Kind   string   `json:"kind"`
	Value  *uint64  `json:"value,omitempty"`
	Values []uint64 `json:"values,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Length int      `json:"length"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <file> <path>",
	Short: "Resolve a field path in a description",
	Long: `Resolve a dotted field path against a validated description. The first
segment names the family; sequence elements take a bracketed index.

Examples:
  devmap lookup vu9p.yaml up.jtag.slrs[1].fuse_dna
  devmap lookup a35t.yaml s7.registers.slrs[0].bootsts
  devmap lookup --json ku085.json us.jtag.device.cntl`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false,
		"output as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	path, err := devmap.ParsePath(args[1])
	if err != nil {
		return err
	}

	cat, err := loadCatalog(args[:1], false)
	if err != nil {
		return err
	}
	root, err := cat.Root()
	if err != nil {
		return err
	}

	v, ok := root.Lookup(path)
	if !ok {
		return fmt.Errorf("%s: not found", path)
	}

	if lookupJSON {
		res := LookupResult{Path: path.String(), Kind: v.Kind().String(), Length: v.Len()}
		switch v.Kind() {
		case devmap.KindInt:
			n := v.Int()
			res.Value = &n
		case devmap.KindInts:
			res.Values = v.Ints()
		case devmap.KindBlock:
			res.Fields = v.Fields()
		}
		return writeJSON(res)
	}

	logf("%s (%s, %d)", path, v.Kind(), v.Len())
	fmt.Println(v)
	return nil
}
