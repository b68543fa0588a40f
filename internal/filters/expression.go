package filters

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"github.com/anas-shakeel/imglib/internal/img"
	"github.com/anas-shakeel/imglib/internal/utils"
)

// Expressions holds one arithmetic expression per output channel.
// An empty expression leaves that channel unchanged.
//
// Expressions may use the variables r, g, b (the source pixel), x, y,
// width and height, and the functions min, max and abs. Results are
// rounded and clipped to [0, 255].
//
//	Expressions{R: "255 - r", G: "(r + g + b) / 3", B: "x < width / 2 ? b : 0"}
type Expressions struct {
	R string `mapstructure:"r"`
	G string `mapstructure:"g"`
	B string `mapstructure:"b"`
}

// Functions available inside channel expressions
func expressionFunctions() map[string]govaluate.ExpressionFunction {
	pair := func(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
			}
			a, ok1 := args[0].(float64)
			b, ok2 := args[1].(float64)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%s expects numeric arguments", name)
			}
			return fn(a, b), nil
		}
	}

	return map[string]govaluate.ExpressionFunction{
		"min": pair("min", math.Min),
		"max": pair("max", math.Max),
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("abs expects 1 argument, got %d", len(args))
			}
			v, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("abs expects a numeric argument")
			}
			return math.Abs(v), nil
		},
	}
}

func compile(expr string) (*govaluate.EvaluableExpression, error) {
	if expr == "" {
		return nil, nil
	}
	e, err := govaluate.NewEvaluableExpressionWithFunctions(expr, expressionFunctions())
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	return e, nil
}

// Expression rewrites every pixel of m from the channel expressions.
// All expressions see the original pixel values. m is left untouched when
// an expression fails to compile or evaluate.
func Expression(m *img.Image, exprs Expressions) error {
	var compiled [3]*govaluate.EvaluableExpression
	for i, src := range []string{exprs.R, exprs.G, exprs.B} {
		e, err := compile(src)
		if err != nil {
			return err
		}
		compiled[i] = e
	}

	params := map[string]interface{}{
		"width":  float64(m.Width()),
		"height": float64(m.Height()),
	}

	out := m.Copy()
	for y := range m.Height() {
		src := m.Line(y)
		dst := out.Line(y)
		for x, p := range src {
			params["x"] = float64(x)
			params["y"] = float64(y)
			params["r"] = float64(p.R)
			params["g"] = float64(p.G)
			params["b"] = float64(p.B)

			channels := [3]*byte{&dst[x].R, &dst[x].G, &dst[x].B}
			for i, e := range compiled {
				if e == nil {
					continue
				}
				v, err := evaluate(e, params)
				if err != nil {
					return err
				}
				*channels[i] = utils.ClampByte(v)
			}
		}
	}

	for y := range m.Height() {
		copy(m.Line(y), out.Line(y))
	}
	return nil
}

func evaluate(e *govaluate.EvaluableExpression, params map[string]interface{}) (float64, error) {
	result, err := e.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", e.String(), err)
	}

	switch v := result.(type) {
	case float64:
		return v, nil
	case bool:
		if v {
			return 255, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("expression %q produced %T, want a number", e.String(), result)
	}
}
