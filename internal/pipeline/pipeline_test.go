package pipeline

import (
	"strings"
	"testing"

	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	m := img.New(4, 2, img.Pixel{R: 10, G: 20, B: 30})

	steps := []Step{
		{Op: "brightness", Params: map[string]interface{}{"factor": 5}},
		{Op: "brightness", Params: map[string]interface{}{"factor": "2", "method": "multiply"}},
		{Op: "crop", Params: map[string]interface{}{"x": 1, "y": 0, "width": 2, "height": 1}},
		{Op: "expression", Params: map[string]interface{}{"r": "r + x"}},
		{Op: "flip"},
	}

	got, err := Run(m, steps)
	if err != nil {
		t.Fatal(err)
	}

	// (10+5)*2 = 30, (20+5)*2 = 50, (30+5)*2 = 70; then r += x and mirror
	want := []img.Pixel{{R: 31, G: 50, B: 70}, {R: 30, G: 50, B: 70}}
	if got.Width() != 2 || got.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", got.Width(), got.Height())
	}
	if d := cmp.Diff(want, got.Line(0)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestRunEveryOp(t *testing.T) {
	params := map[string]map[string]interface{}{
		"brightness": {"factor": 1},
		"contrast":   {"factor": 1.5},
		"channel":    {"channel": "green"},
		"expression": {"b": "0"},
		"crop":       {"width": 1, "height": 1},
		"resize":     {"width": 3, "height": 3},
		"flip":       {"direction": "vertical"},
	}

	for _, op := range Ops() {
		m := img.New(2, 2, img.White)
		if _, err := Run(m, []Step{{Op: op, Params: params[op]}}); err != nil {
			t.Errorf("op %s: %v", op, err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Op: "sharpen"}, `unknown op "sharpen"`},
		{Step{Op: "invert", Params: map[string]interface{}{"factor": 2}}, "step 1 (invert)"},
		{Step{Op: "brightness", Params: map[string]interface{}{"factor": 1, "amount": 2}}, "amount"},
		{Step{Op: "brightness", Params: map[string]interface{}{"factor": "bright"}}, "factor"},
		{Step{Op: "brightness", Params: map[string]interface{}{"method": "divide"}}, "invalid method"},
		{Step{Op: "crop", Params: map[string]interface{}{"width": 10, "height": 1}}, "out of bounds"},
		{Step{Op: "flip", Params: map[string]interface{}{"direction": "diagonal"}}, "invalid direction"},
	}

	for _, tt := range tests {
		_, err := Run(img.New(2, 2, img.Black), []Step{tt.step})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Run(%+v) error = %v, want it to mention %q", tt.step, err, tt.want)
		}
	}
}

func TestOps(t *testing.T) {
	want := []string{
		"brightness", "channel", "contrast", "crop", "expression",
		"flip", "grayscale", "grayscale-luma", "invert", "resize",
	}
	if d := cmp.Diff(want, Ops()); d != "" {
		t.Errorf("Ops() mismatch (-want +got):\n%s", d)
	}
}
