package bmp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewHeaders(t *testing.T) {
	fh := NewFileHeader(3, 2)
	wantFH := FileHeader{
		Signature:   [2]byte{'B', 'M'},
		FileSize:    54 + 2*12,
		PixelOffset: 54,
	}
	if d := cmp.Diff(wantFH, fh); d != "" {
		t.Errorf("NewFileHeader(3, 2) mismatch (-want +got):\n%s", d)
	}

	ih := NewInfoHeader(3, 2)
	wantIH := InfoHeader{
		Size:            40,
		Width:           3,
		Height:          2,
		Planes:          1,
		BitCount:        24,
		ImageSize:       24,
		XPixelsPerM:     11811,
		YPixelsPerM:     11811,
		ColorsImportant: 0x1000000,
	}
	if d := cmp.Diff(wantIH, ih); d != "" {
		t.Errorf("NewInfoHeader(3, 2) mismatch (-want +got):\n%s", d)
	}
}

// Checks every field against its documented offset in the 54 byte header
func TestHeaderLayout(t *testing.T) {
	fh, _ := NewFileHeader(5, 7).MarshalBinary()
	ih, _ := NewInfoHeader(5, 7).MarshalBinary()
	if len(fh) != 14 || len(ih) != 40 {
		t.Fatalf("header sizes = %d, %d, want 14, 40", len(fh), len(ih))
	}
	b := append(fh, ih...)

	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
	u16 := func(off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }

	stride := uint32(Stride(5))
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"file size", u32(2), 54 + 7*stride},
		{"reserved", u32(6), 0},
		{"pixel offset", u32(10), 54},
		{"info size", u32(14), 40},
		{"width", u32(18), 5},
		{"height", u32(22), 7},
		{"planes", uint32(u16(26)), 1},
		{"bit depth", uint32(u16(28)), 24},
		{"compression", u32(30), 0},
		{"image size", u32(34), 7 * stride},
		{"x resolution", u32(38), 11811},
		{"y resolution", u32(42), 11811},
		{"colors used", u32(46), 0},
		{"important colors", u32(50), 0x1000000},
	}

	if !bytes.Equal(b[0:2], []byte("BM")) {
		t.Errorf("signature = %q, want \"BM\"", b[0:2])
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestHeaderUnmarshal(t *testing.T) {
	want := NewInfoHeader(12, 34)
	want.Height = -34
	data, _ := want.MarshalBinary()

	var got InfoHeader
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("InfoHeader mismatch (-want +got):\n%s", d)
	}

	if err := got.UnmarshalBinary(data[:39]); err == nil {
		t.Error("UnmarshalBinary accepted a 39 byte info header")
	}

	var fh FileHeader
	if err := fh.UnmarshalBinary([]byte("BM")); err == nil {
		t.Error("UnmarshalBinary accepted a 2 byte file header")
	}
}
