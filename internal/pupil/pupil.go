// Package pupil converts physical pupil-plane diameters to pixel counts.
package pupil

import "math"

// PixelsForDiameter converts a physical diameter (meters) to the pixel
// count it covers on a grid whose scale is fixed by a reference pupil:
// refDiameter meters over refPixels pixels. The result is rounded down to
// a whole pixel and then up to the nearest even count so that later
// truncation or padding stays symmetric.
func PixelsForDiameter(refPixels int, refDiameter, diameter float64) int {
	scale := refDiameter / float64(refPixels)
	pix := diameter / scale
	return int(math.Ceil(math.Floor(pix)/2) * 2)
}
