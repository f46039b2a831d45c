// Package appiconset writes the full AppIcon.appiconset PNG set for the
// LocationTracker Xcode project.
package appiconset

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/Mavwarf/appicons/internal/icon"
)

// Dir is the asset-catalog directory the icons are written into. It must
// already exist; Generate does not create it.
const Dir = "LocationTracker/Assets.xcassets/AppIcon.appiconset"

// Spec names one icon file and its required pixel size.
type Spec struct {
	Size int
	Name string
}

// Specs is the full set of icons Xcode expects, in generation order. A few
// sizes repeat under the same name for the iPhone and iPad idioms; the
// second render overwrites the first with identical bytes.
var Specs = []Spec{
	{40, "Icon-App-20x20@2x.png"},      // iPhone 20x20@2x
	{60, "Icon-App-20x20@3x.png"},      // iPhone 20x20@3x
	{58, "Icon-App-29x29@2x.png"},      // iPhone 29x29@2x
	{87, "Icon-App-29x29@3x.png"},      // iPhone 29x29@3x
	{80, "Icon-App-40x40@2x.png"},      // iPhone 40x40@2x
	{120, "Icon-App-40x40@3x.png"},     // iPhone 40x40@3x
	{120, "Icon-App-60x60@2x.png"},     // iPhone 60x60@2x (the critical 120x120)
	{180, "Icon-App-60x60@3x.png"},     // iPhone 60x60@3x
	{20, "Icon-App-20x20@1x.png"},      // iPad 20x20@1x
	{40, "Icon-App-20x20@2x.png"},      // iPad 20x20@2x
	{29, "Icon-App-29x29@1x.png"},      // iPad 29x29@1x
	{58, "Icon-App-29x29@2x.png"},      // iPad 29x29@2x
	{40, "Icon-App-40x40@1x.png"},      // iPad 40x40@1x
	{80, "Icon-App-40x40@2x.png"},      // iPad 40x40@2x
	{152, "Icon-App-76x76@2x.png"},     // iPad 76x76@2x
	{167, "Icon-App-83.5x83.5@2x.png"}, // iPad 83.5x83.5@2x
	{1024, "Icon-App-1024x1024@1x.png"}, // App Store 1024x1024
}

// Generate renders every entry in Specs into dir, one PNG per entry, and
// prints a progress line per file to out. The first failed write aborts
// the rest of the batch.
func Generate(dir string, out io.Writer) error {
	for _, spec := range Specs {
		path := filepath.Join(dir, spec.Name)
		if err := writeIcon(path, spec.Size); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s (%dx%d)\n", path, spec.Size, spec.Size)
	}

	fmt.Fprintf(out, "\nAll app icons generated successfully!\n")
	fmt.Fprintf(out, "The critical 120x120 icon (Icon-App-60x60@2x.png) has been created!\n")
	return nil
}

// writeIcon renders one icon and saves it as a PNG, overwriting any
// existing file at path.
func writeIcon(path string, size int) (err error) {
	img, err := icon.Draw(size)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
