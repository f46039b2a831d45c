// Package icon renders the placeholder app icon: a white circle on a
// system-blue background with a location-pin silhouette in the middle.
package icon

import (
	"fmt"
	"image"
	"image/color"
)

// Accent is the background and glyph color (#007AFF, iOS system blue).
var Accent = color.RGBA{R: 0, G: 122, B: 255, A: 255}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Draw renders one size×size app icon: an Accent background, a white
// circle inset by size/8 on every edge, and an Accent location-pin glyph
// centered on the circle. All geometry uses integer division, so the
// output is deterministic for a given size. Draw performs no I/O.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, Accent)
		}
	}

	// White circle inscribed with a size/8 margin per edge.
	margin := size / 8
	fillEllipse(img, margin, margin, size-margin, size-margin, white)

	// Location pin: an upward triangle plus a small circle rounding its
	// bottom, drawn in the background color so it reads as a cutout.
	pinSize := size / 4
	pinX := size / 2
	pinY := size/2 + pinSize/4

	fillTriangle(img,
		pinX, pinY-pinSize/2, // apex
		pinX-pinSize/3, pinY+pinSize/4, // bottom left
		pinX+pinSize/3, pinY+pinSize/4, // bottom right
		Accent)

	circleSize := pinSize / 3
	fillEllipse(img,
		pinX-circleSize/2, pinY+pinSize/4-circleSize/2,
		pinX+circleSize/2, pinY+pinSize/4+circleSize/2,
		Accent)

	return img, nil
}

// fillEllipse fills the ellipse inscribed in the bounding box
// (x0,y0)-(x1,y1), both corners inclusive. Pixels outside the image are
// silently dropped.
func fillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x1,y1)-(x2,y2)-(x3,y3) using an
// integer edge sign test over its bounding box: a pixel is inside when
// all three edge functions agree in sign (zero counts as inside, so
// vertices and edges are filled).
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 int, c color.RGBA) {
	minX, maxX := min(x1, x2, x3), max(x1, x2, x3)
	minY, maxY := min(y1, y2, y3), max(y1, y2, y3)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d1 := edge(x, y, x1, y1, x2, y2)
			d2 := edge(x, y, x2, y2, x3, y3)
			d3 := edge(x, y, x3, y3, x1, y1)

			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// edge returns the cross product of (b-a) and (p-a); its sign tells which
// side of the directed edge a→b the point p lies on.
func edge(px, py, ax, ay, bx, by int) int {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}
