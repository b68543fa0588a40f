package adjustments

import (
	"math"
	"testing"

	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/google/go-cmp/cmp"
)

// Builds a width x height image whose pixel (x, y) is {x, y, 0}
func grid(width, height int) *img.Image {
	m := img.New(width, height, img.Black)
	for y := range height {
		for x := range width {
			m.SetPixel(x, y, img.Pixel{R: byte(x), G: byte(y)})
		}
	}
	return m
}

func rows(m *img.Image) [][]img.Pixel {
	out := make([][]img.Pixel, m.Height())
	for y := range out {
		out[y] = m.Line(y)
	}
	return out
}

func TestCrop(t *testing.T) {
	m := grid(4, 3)

	c, err := Crop(m, 1, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]img.Pixel{
		{{R: 1, G: 1}, {R: 2, G: 1}},
		{{R: 1, G: 2}, {R: 2, G: 2}},
	}
	if d := cmp.Diff(want, rows(c)); d != "" {
		t.Errorf("Crop mismatch (-want +got):\n%s", d)
	}

	// The crop owns its pixels
	c.SetPixel(0, 0, img.White)
	if m.PixelAt(1, 1) == img.White {
		t.Error("modifying the crop changed the source")
	}
}

func TestCropBounds(t *testing.T) {
	m := grid(4, 3)

	for _, r := range [][4]int{
		{0, 0, 5, 1},
		{0, 0, 1, 4},
		{3, 0, 2, 1},
		{-1, 0, 1, 1},
		{0, 0, -1, 1},
		{1, 0, math.MaxInt, 1},
		{0, 1, 1, math.MaxInt},
		{math.MaxInt, 0, 1, 1},
		{0, math.MaxInt, 1, 1},
	} {
		if _, err := Crop(m, r[0], r[1], r[2], r[3]); err == nil {
			t.Errorf("Crop(%v) succeeded", r)
		}
	}

	if c, err := Crop(m, 4, 3, 0, 0); err != nil || c.Width() != 0 || c.Height() != 0 {
		t.Errorf("empty Crop at the corner = %v, %v", c, err)
	}
}

func TestResize(t *testing.T) {
	fill := img.Pixel{R: 12, G: 34, B: 56}
	m := img.New(4, 4, fill)

	r, err := Resize(m, 9, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != 9 || r.Height() != 2 {
		t.Fatalf("size = %dx%d, want 9x2", r.Width(), r.Height())
	}
	for y := range r.Height() {
		for x := range r.Width() {
			if got := r.PixelAt(x, y); got != fill {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, fill)
			}
		}
	}

	if _, err := Resize(m, 0, 3); err == nil {
		t.Error("Resize to width 0 succeeded")
	}
	if r, err := Resize(img.New(0, 0, img.Black), 2, 2); err != nil || r.Width() != 2 {
		t.Errorf("Resize of an empty image = %v, %v", r, err)
	}
}

func TestFlip(t *testing.T) {
	m := grid(3, 3)
	FlipHorizontal(m)
	if got, want := m.PixelAt(0, 1), (img.Pixel{R: 2, G: 1}); got != want {
		t.Errorf("after FlipHorizontal, (0,1) = %+v, want %+v", got, want)
	}

	m = grid(2, 3)
	FlipVertical(m)
	want := [][]img.Pixel{
		{{R: 0, G: 2}, {R: 1, G: 2}},
		{{R: 0, G: 1}, {R: 1, G: 1}},
		{{R: 0, G: 0}, {R: 1, G: 0}},
	}
	if d := cmp.Diff(want, rows(m)); d != "" {
		t.Errorf("FlipVertical mismatch (-want +got):\n%s", d)
	}
}
