// pipeline package applies a sequence of named filters and adjustments
package pipeline

import (
	"fmt"
	"sort"

	"github.com/anas-shakeel/imglib/internal/adjustments"
	"github.com/anas-shakeel/imglib/internal/filters"
	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/mitchellh/mapstructure"
)

// Step is one operation of a pipeline. Every key other than "op" is a
// parameter of the operation.
type Step struct {
	Op     string                 `yaml:"op"`
	Params map[string]interface{} `yaml:",inline"`
}

// An operation returns the image to hand to the next step. It may modify
// and return its input.
type operation func(m *img.Image, params map[string]interface{}) (*img.Image, error)

type brightnessParams struct {
	Factor float64 `mapstructure:"factor"`
	Method string  `mapstructure:"method"`
}

type contrastParams struct {
	Factor float64 `mapstructure:"factor"`
}

type channelParams struct {
	Channel string `mapstructure:"channel"`
}

type cropParams struct {
	X      int `mapstructure:"x"`
	Y      int `mapstructure:"y"`
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type resizeParams struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type flipParams struct {
	Direction string `mapstructure:"direction"`
}

var operations = map[string]operation{
	"invert": noParams(filters.Invert),

	"grayscale": noParams(filters.Grayscale),

	"grayscale-luma": noParams(filters.GrayscaleLuma),

	"brightness": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		p := brightnessParams{Method: "add"}
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return m, filters.Brightness(m, p.Factor, p.Method)
	},

	"contrast": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		p := contrastParams{Factor: 1}
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		filters.Contrast(m, p.Factor)
		return m, nil
	},

	"channel": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		var p channelParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return filters.Channel(m, p.Channel)
	},

	"expression": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		var p filters.Expressions
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return m, filters.Expression(m, p)
	},

	"crop": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		var p cropParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return adjustments.Crop(m, p.X, p.Y, p.Width, p.Height)
	},

	"resize": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		var p resizeParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return adjustments.Resize(m, p.Width, p.Height)
	},

	"flip": func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		p := flipParams{Direction: "horizontal"}
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		switch p.Direction {
		case "horizontal":
			adjustments.FlipHorizontal(m)
		case "vertical":
			adjustments.FlipVertical(m)
		default:
			return nil, fmt.Errorf("invalid direction %q: must be horizontal or vertical", p.Direction)
		}
		return m, nil
	},
}

func noParams(fn func(*img.Image)) operation {
	return func(m *img.Image, params map[string]interface{}) (*img.Image, error) {
		if err := decodeParams(params, &struct{}{}); err != nil {
			return nil, err
		}
		fn(m)
		return m, nil
	}
}

// Decodes step parameters into out. Numbers written as strings are
// accepted; keys out does not know about are an error.
func decodeParams(params map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

// Ops lists the names of the known operations, sorted
func Ops() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every step names a known operation
func Validate(steps []Step) error {
	for i, step := range steps {
		if _, ok := operations[step.Op]; !ok {
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
	}
	return nil
}

// Run applies steps to m in order and returns the result. m itself may be
// modified.
func Run(m *img.Image, steps []Step) (*img.Image, error) {
	if err := Validate(steps); err != nil {
		return nil, err
	}

	for i, step := range steps {
		out, err := operations[step.Op](m, step.Params)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		m = out
	}
	return m, nil
}
