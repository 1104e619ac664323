package uix

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// layoutFunc applies the kind-specific attributes of a layout element.
type layoutFunc func(el *etree.Element, node *Node) error

var layouts = map[string]layoutFunc{
	"flex": parseFlex,
}

// Parse builds the node tree of a complete UIX document.
func Parse(markup string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, xmlError(err)
	}
	return ParseDocument(doc)
}

// ParseDocument builds the node tree of an already decoded XML document.
func ParseDocument(doc *etree.Document) (*Node, error) {
	if err := checkDocument(doc); err != nil {
		return nil, xmlError(err)
	}
	root := doc.Root()
	if root.Tag != "uix" {
		return nil, formatError("Missing <uix> root element")
	}
	body := firstChildElement(root)
	if body == nil || body.Tag != "body" {
		return nil, formatError("Missing <body> element")
	}
	return parseBody(body)
}

// checkDocument requires exactly one root element and no text outside it.
func checkDocument(doc *etree.Document) error {
	roots := 0
	for _, token := range doc.Child {
		switch token := token.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if !token.IsWhitespace() {
				return errors.Errorf("text outside the root element: %q", token.Data)
			}
		}
	}
	switch {
	case roots == 0:
		return errors.New("no root element")
	case roots > 1:
		return errors.New("more than one root element")
	}
	return nil
}

func parseBody(body *etree.Element) (*Node, error) {
	elements := body.ChildElements()
	if len(elements) != 1 {
		return nil, formatError("<body> must have exactly one root element")
	}
	return parseNode(elements[0])
}

func parseNode(el *etree.Element) (*Node, error) {
	node := NewNode()
	layout, ok := layouts[el.Tag]
	if !ok {
		return nil, formatError("Invalid root element: %s", el.Tag)
	}
	if err := layout(el, node); err != nil {
		return nil, err
	}
	if err := parseCommonAttrs(el, node); err != nil {
		return nil, err
	}

	if isTextContent(el) {
		var spans []TextSpan
		if err := parseText(el.Child, DefaultTextSpan(), &spans); err != nil {
			return nil, err
		}
		node.Content = &Text{Spans: spans}
		return node, nil
	}

	for _, child := range el.ChildElements() {
		childNode, err := parseNode(child)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

func parseFlex(el *etree.Element, node *Node) error {
	node.Display = DisplayFlex
	if err := parseAttr(el, "direction", &node.FlexDirection, ParseFlexDirection); err != nil {
		return err
	}
	if err := parseAttr(el, "wrap", &node.FlexWrap, ParseFlexWrap); err != nil {
		return err
	}
	if err := parseAttr(el, "grow", &node.FlexGrow, ParseFloat); err != nil {
		return err
	}
	if err := parseAttr(el, "shrink", &node.FlexShrink, ParseFloat); err != nil {
		return err
	}
	return parseAttr(el, "basis", &node.FlexBasis, ParseVal)
}

func parseCommonAttrs(el *etree.Element, node *Node) error {
	vals := []struct {
		name  string
		field *Val
	}{
		{"width", &node.Width},
		{"height", &node.Height},
		{"min-width", &node.MinWidth},
		{"min-height", &node.MinHeight},
		{"max-width", &node.MaxWidth},
		{"max-height", &node.MaxHeight},
		{"top", &node.Top},
		{"bottom", &node.Bottom},
		{"left", &node.Left},
		{"right", &node.Right},
		{"margin-top", &node.Margin.Top},
		{"margin-bottom", &node.Margin.Bottom},
		{"margin-left", &node.Margin.Left},
		{"margin-right", &node.Margin.Right},
		{"padding-top", &node.Padding.Top},
		{"padding-bottom", &node.Padding.Bottom},
		{"padding-left", &node.Padding.Left},
		{"padding-right", &node.Padding.Right},
	}
	for _, item := range vals {
		if err := parseAttr(el, item.name, item.field, ParseVal); err != nil {
			return err
		}
	}
	return parseAttr(el, "background-color", &node.BackgroundColor, Optional(ParseColor))
}

// isTextContent reports whether the first child token of el, of any kind,
// is text or a <t> element.
func isTextContent(el *etree.Element) bool {
	if len(el.Child) == 0 {
		return false
	}
	switch token := el.Child[0].(type) {
	case *etree.CharData:
		return true
	case *etree.Element:
		return token.Tag == "t"
	default:
		return false
	}
}

func firstChildElement(el *etree.Element) *etree.Element {
	for _, token := range el.Child {
		if child, ok := token.(*etree.Element); ok {
			return child
		}
	}
	return nil
}
