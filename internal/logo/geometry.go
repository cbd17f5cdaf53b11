package logo

import "image"

// CenteredSquare returns the largest square centred in bounds.
// Offsets use truncating division, so odd slack leaves the extra pixel
// on the right or bottom edge.
func CenteredSquare(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	side := min(w, h)
	left := bounds.Min.X + (w-side)/2
	top := bounds.Min.Y + (h-side)/2
	return image.Rect(left, top, left+side, top+side)
}

// CircleMask returns a side×side alpha mask that is 255 inside the circle
// inscribed in (0,0)-(side,side) and 0 elsewhere. A pixel is inside when its
// centre lies on or within the circle.
func CircleMask(side int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, side, side))
	// Doubled coordinates keep the test in integers:
	// (x+0.5-side/2)^2 + (y+0.5-side/2)^2 <= (side/2)^2.
	r2 := side * side
	for y := 0; y < side; y++ {
		dy := 2*y + 1 - side
		row := mask.Pix[y*mask.Stride : y*mask.Stride+side]
		for x := 0; x < side; x++ {
			dx := 2*x + 1 - side
			if dx*dx+dy*dy <= r2 {
				row[x] = 0xff
			}
		}
	}
	return mask
}
