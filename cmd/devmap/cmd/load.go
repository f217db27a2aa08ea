package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap/catalog"
)

// loadCatalog reads description files or directories into a catalog.
func loadCatalog(paths []string, align bool) (*catalog.Catalog, error) {
	cfg := catalog.DefaultConfig()
	cfg.RequireAlignment = align
	cat, err := catalog.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		logf("Loading %s", path)
		st, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if st.IsDir() {
			err = cat.LoadDir(path)
		} else {
			err = cat.LoadFile(path)
		}
		if err != nil {
			return nil, err
		}
	}
	logf("Loaded %d families", cat.Len())
	return cat, nil
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printBanner(title string) {
	fmt.Printf("╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ %-62s ║\n", title)
	fmt.Printf("╚════════════════════════════════════════════════════════════════╝\n\n")
}
