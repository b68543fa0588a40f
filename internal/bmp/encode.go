package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/anas-shakeel/imglib/internal/img"
)

// Encode writes m to w as an uncompressed 24-bit bitmap.
//
// Output is buffered; a failing writer is reported once, when the buffer is
// flushed. Bytes that already reached w are not rolled back.
func Encode(w io.Writer, m *img.Image) error {
	if m == nil {
		return errors.New("invalid image: nil")
	}

	width := m.Width()
	height := m.Height()
	if err := checkEncodable(width, height); err != nil {
		return err
	}

	var header [HeaderSize]byte
	fh := NewFileHeader(width, height)
	ih := NewInfoHeader(width, height)
	fh.put(header[:FileHeaderSize])
	ih.put(header[FileHeaderSize:])

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)
	bw.Write(header[:])

	// Write the pixels (BottomUp: last row first). Padding bytes at the end
	// of row stay zero since they are never written.
	row := make([]byte, Stride(width))
	for y := height - 1; y >= 0; y-- {
		for x, p := range m.Line(y) {
			row[x*3+0] = p.B
			row[x*3+1] = p.G
			row[x*3+2] = p.R
		}
		bw.Write(row)
	}

	return bw.Flush()
}

// Largest pixel array whose file size still fits the 32-bit size field
const maxPixelArraySize = math.MaxUint32 - HeaderSize

// Reports an error when a width x height bitmap cannot be described by the
// headers: dimensions beyond int32 or a file larger than 4 GiB.
func checkEncodable(width, height int) error {
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	if stride := int64(Stride(width)); stride > 0 && int64(height) > maxPixelArraySize/stride {
		return fmt.Errorf("%w: %dx%d needs more than %d bytes of pixel data", ErrTooLarge, width, height, maxPixelArraySize)
	}
	return nil
}

// Save writes m to the file at path, replacing it. It reports whether every
// byte was written and the file closed cleanly.
func Save(path string, m *img.Image) bool {
	if err := saveFile(path, m); err != nil {
		Logger().Debug("bmp: save failed", "path", path, "err", err)
		return false
	}
	return true
}

func saveFile(path string, m *img.Image) error {
	if m == nil {
		return errors.New("invalid image: nil")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
