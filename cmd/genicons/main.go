// genicons writes the full set of placeholder app icons into the
// LocationTracker asset catalog. The catalog directory must already exist.
// Usage: go run ./cmd/genicons
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/appicons/internal/appiconset"
)

func main() {
	if err := appiconset.Generate(appiconset.Dir, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
