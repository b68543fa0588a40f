// imglib reads, transforms and writes 24-bit uncompressed bitmaps
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/anas-shakeel/imglib/internal/bmp"
	"github.com/anas-shakeel/imglib/internal/config"
	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/anas-shakeel/imglib/internal/pipeline"
	xbmp "golang.org/x/image/bmp"
	"golang.org/x/term"
)

const usage = `usage: imglib [-v] <command> [arguments]

commands:
  info FILE              print the bitmap headers
  print FILE             draw the bitmap in the terminal (small images only)
  convert IN OUT         re-encode any BMP as 24-bit uncompressed
  apply -config FILE     run a YAML pipeline

pipeline ops: %v
`

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, pipeline.Ops())
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	bmp.SetLogger(logger)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "info":
		err = runInfo(rest)
	case "print":
		err = runPrint(rest)
	case "convert":
		err = runConvert(rest)
	case "apply":
		err = runApply(rest)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return errors.New("info: expected one FILE argument")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	cfg, err := bmp.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return bmp.PrintMetadata(os.Stdout, args[0], cfg)
}

func runPrint(args []string) error {
	if len(args) != 1 {
		return errors.New("print: expected one FILE argument")
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("print: stdout is not a terminal")
	}

	m, err := decodeFile(args[0], false)
	if err != nil {
		return err
	}

	// Every pixel takes two columns
	if cols, _, err := term.GetSize(fd); err == nil && m.Width()*2 > cols {
		return fmt.Errorf("print: image is %d px wide, the terminal fits %d", m.Width(), cols/2)
	}
	return m.Print(os.Stdout)
}

func runConvert(args []string) error {
	if len(args) != 2 {
		return errors.New("convert: expected IN and OUT arguments")
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := xbmp.Decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	m := img.FromImage(src)
	slog.Debug("converted", "in", args[0], "width", m.Width(), "height", m.Height())
	return encodeFile(args[1], m)
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	configPath := fs.String("config", "pipeline.yml", "YAML pipeline definition")
	fs.Parse(args)

	p, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	m, err := decodeFile(p.Input, p.Strict)
	if err != nil {
		return err
	}

	m, err = pipeline.Run(m, p.Steps)
	if err != nil {
		return err
	}

	if err := encodeFile(p.Output, m); err != nil {
		return err
	}
	slog.Info("pipeline applied", "input", p.Input, "output", p.Output, "steps", len(p.Steps))
	return nil
}

func decodeFile(path string, strict bool) (*img.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := bmp.Decoder{Strict: strict}
	m, err := d.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func encodeFile(path string, m *img.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := bmp.Encode(file, m); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}
