package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/winprep/winprep/internal/catalog"
)

// Catalog prints the application catalog in the requested format.
func Catalog(output string) error {
	entries := catalog.Entries()

	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(entries)
	case "text", "":
		for _, e := range entries {
			fmt.Printf("%-12s %-36s %s\n", e.Key, e.PackageID, e.DisplayName)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", output)
	}
}
