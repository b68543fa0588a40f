// Filters perform color manipulation and per-pixel operations
package filters

import (
	"errors"

	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/anas-shakeel/imglib/internal/utils"
)

// Inverts (negates) the image
func Invert(m *img.Image) {
	for y := range m.Height() {
		line := m.Line(y)
		for x := range line {
			line[x].R = 255 - line[x].R
			line[x].G = 255 - line[x].G
			line[x].B = 255 - line[x].B
		}
	}
}

// Converts an image to Black-and-White (channel average)
func Grayscale(m *img.Image) {
	for y := range m.Height() {
		line := m.Line(y)
		for x, p := range line {
			avg := byte(utils.Average(int(p.R), int(p.G), int(p.B)))
			line[x] = img.Pixel{R: avg, G: avg, B: avg}
		}
	}
}

// Converts an image to Black-and-White (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(m *img.Image) {
	for y := range m.Height() {
		line := m.Line(y)
		for x, p := range line {
			L := byte(int(p.R)*299/1000 + int(p.G)*587/1000 + int(p.B)*114/1000)
			line[x] = img.Pixel{R: L, G: L, B: L}
		}
	}
}

// Adjusts the Brightness of an image in-place.
//
// method can be "add" (adds value to each channel) or "multiply" (multiplies each channel by value).
// Pixel values are clipped to [0, 255].
func Brightness(m *img.Image, factor float64, method string) error {
	var operation func(x float64) float64

	switch method {
	case "add":
		operation = func(x float64) float64 { return x + factor }
	case "multiply":
		operation = func(x float64) float64 { return x * factor }
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	mapChannels(m, operation)
	return nil
}

// Adjusts the Contrast of an image in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(m *img.Image, factor float64) {
	totalPixels := m.Width() * m.Height()
	if totalPixels == 0 {
		return
	}

	// Compute mean for each channel
	var sumR, sumG, sumB int
	for y := range m.Height() {
		for _, p := range m.Line(y) {
			sumR += int(p.R)
			sumG += int(p.G)
			sumB += int(p.B)
		}
	}
	meanR := float64(sumR) / float64(totalPixels)
	meanG := float64(sumG) / float64(totalPixels)
	meanB := float64(sumB) / float64(totalPixels)

	for y := range m.Height() {
		line := m.Line(y)
		for x, p := range line {
			line[x].R = utils.ClampByte(float64(p.R)*factor + (1-factor)*meanR)
			line[x].G = utils.ClampByte(float64(p.G)*factor + (1-factor)*meanG)
			line[x].B = utils.ClampByte(float64(p.B)*factor + (1-factor)*meanB)
		}
	}
}

// Returns a copy of the image containing a single channel of the source.
// channel can be one of (`red`, `green`, and `blue`)
func Channel(m *img.Image, channel string) (*img.Image, error) {
	var keep func(p img.Pixel) img.Pixel

	switch channel {
	case "red":
		keep = func(p img.Pixel) img.Pixel { return img.Pixel{R: p.R} }
	case "green":
		keep = func(p img.Pixel) img.Pixel { return img.Pixel{G: p.G} }
	case "blue":
		keep = func(p img.Pixel) img.Pixel { return img.Pixel{B: p.B} }
	default:
		return nil, errors.New("invalid color channel: only red, green, and blue are supported")
	}

	dup := m.Copy()
	for y := range dup.Height() {
		line := dup.Line(y)
		for x, p := range line {
			line[x] = keep(p)
		}
	}

	return dup, nil
}

// Applies fn to every channel of every pixel, clipping the result
func mapChannels(m *img.Image, fn func(float64) float64) {
	for y := range m.Height() {
		line := m.Line(y)
		for x, p := range line {
			line[x].R = utils.ClampByte(fn(float64(p.R)))
			line[x].G = utils.ClampByte(fn(float64(p.G)))
			line[x].B = utils.ClampByte(fn(float64(p.B)))
		}
	}
}
