//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var petsKeys = []string{
	"intelligent_driving", "intelligent_cockpit", "safety", "exterior_design", "interior_design",
	"driving_experience", "riding_experience", "space", "cabin_comfort", "range_charging",
}

// Usage: go run scripts/verify_matrix.go [dir]
// Checks every <vehicle>.json in dir for missing fields and PETS keys.
func main() {
	dir := "data/uva-matrix"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== MATRIX CHECK: %s ===\n", dir)
	fmt.Printf("Documents: %d\n\n", len(files))

	issues := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}

		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			fmt.Printf("❌ %s: %v\n", filepath.Base(path), err)
			issues++
			continue
		}

		for i, e := range entries {
			for _, field := range []string{"l1_name", "l1_category", "l1_weight", "l2_name", "l2_weight", "pets_scores"} {
				if _, ok := e[field]; !ok {
					fmt.Printf("⚠️  %s [%d]: missing %s\n", filepath.Base(path), i, field)
					issues++
				}
			}
			if string(e["l2_name"]) == `""` {
				fmt.Printf("⚠️  %s [%d]: empty l2_name\n", filepath.Base(path), i)
				issues++
			}

			var scores map[string]float64
			if err := json.Unmarshal(e["pets_scores"], &scores); err != nil {
				fmt.Printf("⚠️  %s [%d]: bad pets_scores: %v\n", filepath.Base(path), i, err)
				issues++
				continue
			}
			var missing []string
			for _, k := range petsKeys {
				if _, ok := scores[k]; !ok {
					missing = append(missing, k)
				}
			}
			if len(missing) > 0 || len(scores) != len(petsKeys) {
				fmt.Printf("⚠️  %s [%d]: PETS keys missing %s (have %d)\n",
					filepath.Base(path), i, strings.Join(missing, ","), len(scores))
				issues++
			}
		}

		fmt.Printf("%-20s %d entries\n", filepath.Base(path), len(entries))
	}

	fmt.Println()
	if issues > 0 {
		fmt.Printf("❌ %d issue(s) found\n", issues)
		os.Exit(1)
	}
	fmt.Println("✅ All documents look complete")
}
