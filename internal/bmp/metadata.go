package bmp

import (
	"fmt"
	"io"
)

// Print the headers of a bitmap in human-readable form
func PrintMetadata(w io.Writer, filename string, cfg Config) error {
	stride := Stride(cfg.Width())
	padding := stride - cfg.Width()*BytesPerPixel

	_, err := fmt.Fprintf(w,
		"Filename: \t%v\n"+
			"Signature: \t%s\n"+
			"Filesize: \t%v bytes\n"+
			"Width: \t\t%v px\n"+
			"Height: \t%v px\n"+
			"BitCount: \t%vbits\n"+
			"Compression: \t%v\n"+
			"PixelOffset: \t%v bytes\n"+
			"PixelCount: \t%v pixels\n"+
			"Resolution: \t%vx%v px/m\n"+
			"Stride: \t%v bytes\n"+
			"Padding: \t%v bytes\n",
		filename,
		cfg.File.Signature[:],
		cfg.File.FileSize,
		cfg.Info.Width,
		cfg.Info.Height,
		cfg.Info.BitCount,
		cfg.Info.Compression,
		cfg.File.PixelOffset,
		int64(cfg.Info.Width)*int64(cfg.Info.Height),
		cfg.Info.XPixelsPerM, cfg.Info.YPixelsPerM,
		stride,
		padding,
	)
	return err
}
