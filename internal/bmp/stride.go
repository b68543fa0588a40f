package bmp

const (
	BytesPerPixel = 3 // 24-bit BGR
	Alignment     = 4 // rows are padded to a multiple of this many bytes

	roundingPadding = Alignment - 1
)

// Stride returns the on-disk byte width of one pixel row of the given
// width, including the padding that aligns it to 4 bytes.
func Stride(width int) int {
	return Alignment * ((width*BytesPerPixel + roundingPadding) / Alignment)
}
