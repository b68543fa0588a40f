// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"errors"
	"slices"

	"github.com/anas-shakeel/imglib/internal/img"
	"golang.org/x/image/draw"
)

// Crops a region of the image (0,0 is at the top-left of the image)
func Crop(m *img.Image, x, y, width, height int) (*img.Image, error) {
	// Validate bounds
	if x < 0 || y < 0 || width < 0 || height < 0 {
		return nil, errors.New("invalid bounds: negative offset or size")
	} else if x > m.Width() || width > m.Width()-x {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if y > m.Height() || height > m.Height()-y {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	cropped := img.New(width, height, img.Black)
	for row := range height {
		copy(cropped.Line(row), m.Line(row + y)[x:x+width])
	}

	return cropped, nil
}

// Scales the image to width x height using Catmull-Rom resampling
func Resize(m *img.Image, width, height int) (*img.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid size: width and height must be greater than 0")
	}

	resized := img.New(width, height, img.Black)
	if m.Width() == 0 || m.Height() == 0 {
		return resized, nil
	}

	draw.CatmullRom.Scale(resized, resized.Bounds(), m, m.Bounds(), draw.Src, nil)
	return resized, nil
}

// Mirrors the image left-to-right, in place
func FlipHorizontal(m *img.Image) {
	for y := range m.Height() {
		slices.Reverse(m.Line(y))
	}
}

// Mirrors the image top-to-bottom, in place
func FlipVertical(m *img.Image) {
	for top, bottom := 0, m.Height()-1; top < bottom; top, bottom = top+1, bottom-1 {
		upper := m.Line(top)
		lower := m.Line(bottom)
		for x := range upper {
			upper[x], lower[x] = lower[x], upper[x]
		}
	}
}
