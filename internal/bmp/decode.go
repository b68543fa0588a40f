package bmp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/imglib/internal/img"
)

var (
	ErrNotBitmap         = errors.New("invalid file: provided file is not a bitmap")
	ErrInvalidDimensions = errors.New("invalid bitmap: negative width or height")
	ErrTooLarge          = errors.New("invalid bitmap: dimensions exceed the pixel limit")
	ErrUnsupported       = errors.New("unsupported BMP format: only 24-bit uncompressed is supported")
	ErrTruncated         = errors.New("invalid bitmap: pixel data is truncated")
)

// DefaultMaxPixels bounds the allocation a header can request.
const DefaultMaxPixels = 1 << 28

// Config holds the two headers of a bitmap, as read from the stream.
type Config struct {
	File FileHeader
	Info InfoHeader
}

func (c Config) Width() int  { return int(c.Info.Width) }
func (c Config) Height() int { return int(c.Info.Height) }

// Decoder reads 24-bit bitmaps.
//
// The zero value is lenient: only the signature and the sign of the
// dimensions are checked, the remaining header fields are trusted, and a
// short pixel array leaves the rows that were not read black.
//
// A Strict decoder also requires a 40-byte info header, 24 bits per pixel,
// no compression and a pixel offset of at least 54, skips to that offset,
// and fails with ErrTruncated on a short pixel array.
type Decoder struct {
	Strict    bool
	MaxPixels int // 0 means DefaultMaxPixels
}

// Decode reads a bitmap from r with a lenient Decoder.
func Decode(r io.Reader) (*img.Image, error) {
	var d Decoder
	return d.Decode(r)
}

// DecodeConfig reads and validates only the headers.
func DecodeConfig(r io.Reader) (Config, error) {
	var d Decoder
	return d.readHeaders(r)
}

func (d *Decoder) Decode(r io.Reader) (*img.Image, error) {
	cfg, err := d.readHeaders(r)
	if err != nil {
		return nil, err
	}

	if d.Strict {
		// Seek to Pixel Array (OffBits), without assuming r can seek
		gap := int64(cfg.File.PixelOffset) - HeaderSize
		if n, err := io.CopyN(io.Discard, r, gap); err != nil {
			return nil, fmt.Errorf("%w: skipped %d of %d bytes before the pixel array", ErrTruncated, n, gap)
		}
	}

	width := cfg.Width()
	height := cfg.Height()
	result := img.New(width, height, img.Black)
	if height == 0 {
		return result, nil
	}

	// Populate the image bottom row first
	buf := make([]byte, Stride(width))
	for y := height - 1; y >= 0; y-- {
		n, err := io.ReadFull(r, buf)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, err
			}
			if d.Strict {
				return nil, fmt.Errorf("%w: row %d", ErrTruncated, y)
			}
			Logger().Debug("bmp: pixel data truncated", "row", y, "read", n, "stride", len(buf))

			// Keep the pixels that arrived whole, the rest stays black
			clear(buf[n-n%BytesPerPixel:])
			readRow(result.Line(y), buf)
			break
		}
		readRow(result.Line(y), buf)
	}

	return result, nil
}

// Converts one on-disk BGR row into line
func readRow(line []img.Pixel, buf []byte) {
	for x := range line {
		line[x].B = buf[x*3+0]
		line[x].G = buf[x*3+1]
		line[x].R = buf[x*3+2]
	}
}

func (d *Decoder) readHeaders(r io.Reader) (Config, error) {
	var cfg Config
	var buf [HeaderSize]byte

	// Read File Header
	if _, err := io.ReadFull(r, buf[:FileHeaderSize]); err != nil {
		return cfg, fmt.Errorf("reading file header: %w", err)
	}
	cfg.File.get(buf[:FileHeaderSize])
	if !cfg.File.Valid() {
		return cfg, ErrNotBitmap
	}

	// Read Info Header
	if _, err := io.ReadFull(r, buf[FileHeaderSize:]); err != nil {
		return cfg, fmt.Errorf("reading info header: %w", err)
	}
	cfg.Info.get(buf[FileHeaderSize:])
	if cfg.Info.Width < 0 || cfg.Info.Height < 0 {
		return cfg, ErrInvalidDimensions
	}

	maxPixels := d.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	// An empty dimension still costs a row header or a row buffer per unit
	// of the other one, so it counts as 1
	w := max(int64(cfg.Info.Width), 1)
	h := max(int64(cfg.Info.Height), 1)
	if w*h > int64(maxPixels) {
		return cfg, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Info.Width, cfg.Info.Height)
	}

	if d.Strict {
		switch {
		case cfg.Info.Size != InfoHeaderSize:
			return cfg, fmt.Errorf("%w: info header size %d", ErrUnsupported, cfg.Info.Size)
		case cfg.Info.BitCount != bitCount:
			return cfg, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, cfg.Info.BitCount)
		case cfg.Info.Compression != compressionBIRGB:
			return cfg, fmt.Errorf("%w: compression %d", ErrUnsupported, cfg.Info.Compression)
		case cfg.File.PixelOffset < HeaderSize:
			return cfg, fmt.Errorf("%w: pixel offset %d overlaps the headers", ErrUnsupported, cfg.File.PixelOffset)
		}
	}

	return cfg, nil
}

// Load reads the bitmap at path. It returns nil if the file cannot be
// opened or is not a valid bitmap; a 0x0 bitmap yields an empty, non-nil
// image.
func Load(path string) *img.Image {
	m, err := loadFile(path)
	if err != nil {
		Logger().Debug("bmp: load failed", "path", path, "err", err)
		return nil
	}
	return m
}

func loadFile(path string) (*img.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}
