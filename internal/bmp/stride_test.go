package bmp

import "testing"

func TestStride(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1, 4},
		{2, 8},
		{3, 12},
		{4, 12},
		{5, 16},
		{100, 300},
		{101, 304},
	}

	for _, tt := range tests {
		if got := Stride(tt.width); got != tt.want {
			t.Errorf("Stride(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestStrideLaw(t *testing.T) {
	for w := 0; w <= 1024; w++ {
		s := Stride(w)
		if s%4 != 0 {
			t.Errorf("Stride(%d) = %d is not a multiple of 4", w, s)
		}
		if s < w*3 || s >= w*3+4 {
			t.Errorf("Stride(%d) = %d, want in [%d, %d)", w, s, w*3, w*3+4)
		}
	}
}
