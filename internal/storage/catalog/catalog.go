// Package catalog embeds the seed hotel list. Records are kept as raw
// JSON objects because the dataset predates the canonical Hotel shape
// and mixes two layouts; the app mapping layer unifies them.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// Seed decodes the embedded catalog into generic records.
func Seed() ([]map[string]any, error) {
	var out []map[string]any
	if err := json.Unmarshal(seedJSON, &out); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return out, nil
}
