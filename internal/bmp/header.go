// BMP-specific structs and their on-disk layout
package bmp

import (
	"encoding/binary"
	"fmt"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize // offset of the pixel array

	bitCount         = 24
	pixelsPerMeter   = 11811
	importantColors  = 0x1000000
	compressionBIRGB = 0
	signatureB       = 'B'
	signatureM       = 'M'
)

// The FileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Signature   [2]byte // The file type: must be "BM".
	FileSize    uint32  // The size, in bytes, of the bitmap file.
	Reserved    uint32  // Reserved; must be zero.
	PixelOffset uint32  // Offset (in bytes) from the start of the file to the pixel array.
}

// The InfoHeader structure (BITMAPINFOHEADER) contains information about
// the dimensions and color format of a DIB.
type InfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels.
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression.
	ImageSize       uint32 // The size of the pixel array (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Builds the file header of a 24-bit bitmap with the given dimensions
func NewFileHeader(width, height int) FileHeader {
	return FileHeader{
		Signature:   [2]byte{signatureB, signatureM},
		FileSize:    uint32(HeaderSize + height*Stride(width)),
		PixelOffset: HeaderSize,
	}
}

// Builds the info header of a 24-bit bitmap with the given dimensions.
// ColorsImportant is always 0x1000000; readers ignore it for 24-bit images.
func NewInfoHeader(width, height int) InfoHeader {
	return InfoHeader{
		Size:            InfoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitCount:        bitCount,
		Compression:     compressionBIRGB,
		ImageSize:       uint32(height * Stride(width)),
		XPixelsPerM:     pixelsPerMeter,
		YPixelsPerM:     pixelsPerMeter,
		ColorsUsed:      0,
		ColorsImportant: importantColors,
	}
}

// Reports whether the signature reads "BM"
func (h *FileHeader) Valid() bool {
	return h.Signature[0] == signatureB && h.Signature[1] == signatureM
}

// Writes the header into b[0:14], field by field at fixed offsets
func (h *FileHeader) put(b []byte) {
	b[0] = h.Signature[0]
	b[1] = h.Signature[1]
	binary.LittleEndian.PutUint32(b[2:6], h.FileSize)
	binary.LittleEndian.PutUint32(b[6:10], h.Reserved)
	binary.LittleEndian.PutUint32(b[10:14], h.PixelOffset)
}

func (h *FileHeader) get(b []byte) {
	h.Signature = [2]byte{b[0], b[1]}
	h.FileSize = binary.LittleEndian.Uint32(b[2:6])
	h.Reserved = binary.LittleEndian.Uint32(b[6:10])
	h.PixelOffset = binary.LittleEndian.Uint32(b[10:14])
}

func (h FileHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, FileHeaderSize)
	h.put(b)
	return b, nil
}

func (h *FileHeader) UnmarshalBinary(data []byte) error {
	if len(data) < FileHeaderSize {
		return fmt.Errorf("invalid file header: need %d bytes, got %d", FileHeaderSize, len(data))
	}
	h.get(data)
	return nil
}

// Writes the header into b[0:40], field by field at fixed offsets
func (h *InfoHeader) put(b []byte) {
	le := binary.LittleEndian
	le.PutUint32(b[0:4], h.Size)
	le.PutUint32(b[4:8], uint32(h.Width))
	le.PutUint32(b[8:12], uint32(h.Height))
	le.PutUint16(b[12:14], h.Planes)
	le.PutUint16(b[14:16], h.BitCount)
	le.PutUint32(b[16:20], h.Compression)
	le.PutUint32(b[20:24], h.ImageSize)
	le.PutUint32(b[24:28], uint32(h.XPixelsPerM))
	le.PutUint32(b[28:32], uint32(h.YPixelsPerM))
	le.PutUint32(b[32:36], h.ColorsUsed)
	le.PutUint32(b[36:40], h.ColorsImportant)
}

func (h *InfoHeader) get(b []byte) {
	le := binary.LittleEndian
	h.Size = le.Uint32(b[0:4])
	h.Width = int32(le.Uint32(b[4:8]))
	h.Height = int32(le.Uint32(b[8:12]))
	h.Planes = le.Uint16(b[12:14])
	h.BitCount = le.Uint16(b[14:16])
	h.Compression = le.Uint32(b[16:20])
	h.ImageSize = le.Uint32(b[20:24])
	h.XPixelsPerM = int32(le.Uint32(b[24:28]))
	h.YPixelsPerM = int32(le.Uint32(b[28:32]))
	h.ColorsUsed = le.Uint32(b[32:36])
	h.ColorsImportant = le.Uint32(b[36:40])
}

func (h InfoHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, InfoHeaderSize)
	h.put(b)
	return b, nil
}

func (h *InfoHeader) UnmarshalBinary(data []byte) error {
	if len(data) < InfoHeaderSize {
		return fmt.Errorf("invalid info header: need %d bytes, got %d", InfoHeaderSize, len(data))
	}
	h.get(data)
	return nil
}
