package uix

import (
	"github.com/casbin/govaluate"
	"github.com/pkg/errors"
)

type Parameters map[string]any

var functions = map[string]govaluate.ExpressionFunction{
	"len": func(arguments ...interface{}) (interface{}, error) {
		if len(arguments) != 1 {
			return nil, errors.New("len expects one argument")
		}
		s, ok := arguments[0].(string)
		if !ok {
			return nil, errors.Errorf("len expects a string, got %T", arguments[0])
		}
		return float64(len([]rune(s))), nil
	},
}

// NodeParameters exposes node properties to selection expressions. Numbers
// are float64 and dimension values use the attribute grammar, e.g. "10px".
func NodeParameters(depth int, node *Node) Parameters {
	params := Parameters{
		"kind":       node.Display.String(),
		"direction":  node.FlexDirection.String(),
		"wrap":       node.FlexWrap.String(),
		"grow":       float64(node.FlexGrow),
		"shrink":     float64(node.FlexShrink),
		"basis":      node.FlexBasis.String(),
		"width":      node.Width.String(),
		"height":     node.Height.String(),
		"min_width":  node.MinWidth.String(),
		"min_height": node.MinHeight.String(),
		"max_width":  node.MaxWidth.String(),
		"max_height": node.MaxHeight.String(),
		"depth":      float64(depth),
		"children":   float64(len(node.Children)),
		"has_text":   false,
		"text":       "",
		"background": "",
	}
	if text := node.Text(); text != nil {
		params["has_text"] = true
		params["text"] = text.String()
	}
	if node.BackgroundColor != nil {
		params["background"] = node.BackgroundColor.Hex()
	}
	return params
}

// Select returns the nodes of the tree, in document order, for which expr
// evaluates to true.
func (node *Node) Select(expr string) ([]*Node, error) {
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(expr, functions)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var (
		selected []*Node
		walkErr  error
	)
	node.Walk(func(depth int, current *Node) bool {
		if walkErr != nil {
			return false
		}
		response, err := compiled.Evaluate(NodeParameters(depth, current))
		if err != nil {
			walkErr = errors.WithStack(err)
			return false
		}
		matched, ok := response.(bool)
		if !ok {
			walkErr = errors.Errorf("expression %q yields %T, expected bool", expr, response)
			return false
		}
		if matched {
			selected = append(selected, current)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return selected, nil
}
