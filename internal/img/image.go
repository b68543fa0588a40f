// img package holds the in-memory pixel grid shared by the codec and the filters
package img

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/anas-shakeel/imglib/internal/utils"
)

// Pixel is a single RGB sample (no alpha)
type Pixel struct {
	R, G, B byte
}

var (
	Black = Pixel{0, 0, 0}
	White = Pixel{255, 255, 255}
)

// Image is a rectangular grid of pixels, stored row by row.
// Row 0 is the top of the image.
type Image struct {
	width  int
	height int
	pixels [][]Pixel
}

// Creates an image of the given size with every pixel set to fill.
// Negative sizes are treated as 0.
func New(width, height int, fill Pixel) *Image {
	width = max(width, 0)
	height = max(height, 0)

	pixels := make([][]Pixel, height)
	for y := range height {
		row := make([]Pixel, width)
		if fill != Black {
			for x := range row {
				row[x] = fill
			}
		}
		pixels[y] = row
	}

	return &Image{width: width, height: height, pixels: pixels}
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// Line returns row y. The slice aliases the image storage, so writes
// through it change the image.
func (m *Image) Line(y int) []Pixel {
	return m.pixels[y]
}

// Returns the pixel at (x, y); out of range coordinates give Black
func (m *Image) PixelAt(x, y int) Pixel {
	if !m.inBounds(x, y) {
		return Black
	}
	return m.pixels[y][x]
}

// Sets the pixel at (x, y); out of range coordinates are ignored
func (m *Image) SetPixel(x, y int, p Pixel) {
	if !m.inBounds(x, y) {
		return
	}
	m.pixels[y][x] = p
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Returns a deep copy of the image
func (m *Image) Copy() *Image {
	dup := &Image{width: m.width, height: m.height}

	dup.pixels = make([][]Pixel, m.height)
	for y := range m.height {
		dup.pixels[y] = make([]Pixel, m.width)
		copy(dup.pixels[y], m.pixels[y])
	}

	return dup
}

// ColorModel, Bounds, At and Set make *Image a draw.Image, so it can be
// handed to image/draw and golang.org/x/image/draw directly.
var _ draw.Image = (*Image)(nil)

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

func (m *Image) At(x, y int) color.Color {
	p := m.PixelAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

func (m *Image) Set(x, y int, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	m.SetPixel(x, y, Pixel{R: rgba.R, G: rgba.G, B: rgba.B})
}

// FromImage copies any image.Image into a new Image. The alpha channel is
// dropped; translucent colours keep their premultiplied values.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := New(b.Dx(), b.Dy(), Black)

	for y := range m.height {
		row := m.pixels[y]
		for x := range row {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = Pixel{R: byte(r >> 8), G: byte(g >> 8), B: byte(bl >> 8)}
		}
	}

	return m
}

// Print draws the image as coloured blocks on a true-colour terminal.
// Use for small images only.
func (m *Image) Print(w io.Writer) error {
	for _, row := range m.pixels {
		for _, p := range row {
			if _, err := fmt.Fprint(w, utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
