package uix

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var layoutTags = map[Display]string{
	DisplayFlex: "flex",
}

// Renderer writes node trees back as UIX markup. Only attributes that differ
// from the node defaults are written.
type Renderer struct {
	Encoder  *xml.Encoder
	defaults *Node
}

// NewRenderer writes unindented markup: indentation before the first child
// of a node would turn it into text content when read back.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Encoder: xml.NewEncoder(w), defaults: NewNode()}
}

func (r *Renderer) Write(name string, attrs []xml.Attr, bodyCB func() error) error {
	startElement := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: attrs,
	}
	if err := r.Encoder.EncodeToken(startElement); err != nil {
		return errors.WithStack(err)
	}
	if err := bodyCB(); err != nil {
		return err
	}
	if err := r.Encoder.EncodeToken(startElement.End()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// RenderDocument writes root wrapped in <uix><body>.
func (r *Renderer) RenderDocument(root *Node) error {
	return r.Write("uix", nil, func() error {
		return r.Write("body", nil, func() error {
			return r.RenderNode(root)
		})
	})
}

func (r *Renderer) RenderNode(node *Node) error {
	tag, ok := layoutTags[node.Display]
	if !ok {
		return errors.Errorf("no element for display %v", node.Display)
	}
	return r.Write(tag, r.nodeAttrs(node), func() error {
		if text := node.Text(); text != nil {
			return r.WriteText(text)
		}
		for _, child := range node.Children {
			if err := r.RenderNode(child); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteText writes every span as its own <t> element. A text without spans
// is written as an empty <t> so that it is read back as text content.
func (r *Renderer) WriteText(text *Text) error {
	if len(text.Spans) == 0 {
		return r.Write("t", nil, func() error { return nil })
	}
	for _, span := range text.Spans {
		err := r.Write("t", spanAttrs(span), func() error {
			return errors.WithStack(r.Encoder.EncodeToken(xml.CharData(span.Text)))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Close() error {
	return errors.WithStack(r.Encoder.Close())
}

func (r *Renderer) nodeAttrs(node *Node) []xml.Attr {
	attrs := make([]xml.Attr, 0)
	add := func(name, value string) {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	}
	defaults := r.defaults
	if node.FlexDirection != defaults.FlexDirection {
		add("direction", node.FlexDirection.String())
	}
	if node.FlexWrap != defaults.FlexWrap {
		add("wrap", node.FlexWrap.String())
	}
	if node.FlexGrow != defaults.FlexGrow {
		add("grow", formatFloat(node.FlexGrow))
	}
	if node.FlexShrink != defaults.FlexShrink {
		add("shrink", formatFloat(node.FlexShrink))
	}
	vals := []struct {
		name        string
		value, dflt Val
	}{
		{"basis", node.FlexBasis, defaults.FlexBasis},
		{"width", node.Width, defaults.Width},
		{"height", node.Height, defaults.Height},
		{"min-width", node.MinWidth, defaults.MinWidth},
		{"min-height", node.MinHeight, defaults.MinHeight},
		{"max-width", node.MaxWidth, defaults.MaxWidth},
		{"max-height", node.MaxHeight, defaults.MaxHeight},
		{"top", node.Top, defaults.Top},
		{"bottom", node.Bottom, defaults.Bottom},
		{"left", node.Left, defaults.Left},
		{"right", node.Right, defaults.Right},
		{"margin-top", node.Margin.Top, defaults.Margin.Top},
		{"margin-bottom", node.Margin.Bottom, defaults.Margin.Bottom},
		{"margin-left", node.Margin.Left, defaults.Margin.Left},
		{"margin-right", node.Margin.Right, defaults.Margin.Right},
		{"padding-top", node.Padding.Top, defaults.Padding.Top},
		{"padding-bottom", node.Padding.Bottom, defaults.Padding.Bottom},
		{"padding-left", node.Padding.Left, defaults.Padding.Left},
		{"padding-right", node.Padding.Right, defaults.Padding.Right},
	}
	for _, item := range vals {
		if item.value != item.dflt {
			add(item.name, item.value.String())
		}
	}
	if node.BackgroundColor != nil {
		add("background-color", node.BackgroundColor.Hex())
	}
	return attrs
}

func spanAttrs(span TextSpan) []xml.Attr {
	attrs := make([]xml.Attr, 0)
	flags := []struct {
		name  string
		value bool
	}{
		{"bold", span.Bold},
		{"italic", span.Italic},
		{"underline", span.Underline},
		{"strikethrough", span.Strikethrough},
	}
	for _, flag := range flags {
		if flag.value {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: flag.name}, Value: strconv.FormatBool(flag.value)})
		}
	}
	if span.Color != Black {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "color"}, Value: span.Color.Hex()})
	}
	return attrs
}

func Render(w io.Writer, root *Node) error {
	renderer := NewRenderer(w)
	defer func() {
		if err := renderer.Close(); err != nil {
			zap.L().Error("close renderer", zap.Error(err))
		}
	}()
	return renderer.RenderDocument(root)
}

func RenderString(root *Node) (string, error) {
	w := &bytes.Buffer{}
	if err := Render(w, root); err != nil {
		return "", err
	}
	return w.String(), nil
}
