package uix

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var UndefinedNodeError = errors.New("node is undefined")

type Display int

const (
	DisplayFlex Display = iota
)

func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	default:
		return "unknown"
	}
}

func (d Display) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type FlexDirection int

const (
	Row FlexDirection = iota
	Column
	RowReverse
	ColumnReverse
)

func (fd FlexDirection) String() string {
	switch fd {
	case Row:
		return "row"
	case Column:
		return "column"
	case RowReverse:
		return "row-reverse"
	case ColumnReverse:
		return "column-reverse"
	default:
		return "unknown"
	}
}

func (fd FlexDirection) MarshalText() ([]byte, error) {
	return []byte(fd.String()), nil
}

type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

func (fw FlexWrap) String() string {
	switch fw {
	case NoWrap:
		return "nowrap"
	case Wrap:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	default:
		return "unknown"
	}
}

func (fw FlexWrap) MarshalText() ([]byte, error) {
	return []byte(fw.String()), nil
}

// Rect holds one dimension value per box side.
type Rect struct {
	Top    Val
	Bottom Val
	Left   Val
	Right  Val
}

// Content is the textual payload of a node. *Text is the only kind.
type Content interface {
	isContent()
}

type Text struct {
	Spans []TextSpan
}

func (*Text) isContent() {}

// String joins the span texts with single spaces.
func (t *Text) String() string {
	parts := make([]string, 0, len(t.Spans))
	for _, span := range t.Spans {
		parts = append(parts, span.Text)
	}
	return strings.Join(parts, " ")
}

// TextSpan is a run of text sharing one formatting.
type TextSpan struct {
	Text          string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Color         Color
}

// DefaultTextSpan returns an empty span with default formatting: no flags, black.
func DefaultTextSpan() TextSpan {
	return TextSpan{Color: Black}
}

type Node struct {
	Display Display

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float32
	FlexShrink    float32
	FlexBasis     Val

	Width     Val
	Height    Val
	MinWidth  Val
	MinHeight Val
	MaxWidth  Val
	MaxHeight Val
	Top       Val
	Bottom    Val
	Left      Val
	Right     Val
	Margin    Rect
	Padding   Rect

	BackgroundColor *Color

	Content Content

	Children []*Node
}

// NewNode returns a node with the flex-box defaults of the layout engine:
// row direction, no wrap, shrink 1, auto sizes and insets, zero margin and padding.
func NewNode() *Node {
	zero := Rect{Top: Px(0), Bottom: Px(0), Left: Px(0), Right: Px(0)}
	return &Node{
		Display:       DisplayFlex,
		FlexDirection: Row,
		FlexWrap:      NoWrap,
		FlexGrow:      0,
		FlexShrink:    1,
		FlexBasis:     Auto,
		Width:         Auto,
		Height:        Auto,
		MinWidth:      Auto,
		MinHeight:     Auto,
		MaxWidth:      Auto,
		MaxHeight:     Auto,
		Top:           Auto,
		Bottom:        Auto,
		Left:          Auto,
		Right:         Auto,
		Margin:        zero,
		Padding:       zero,
	}
}

// Text returns the node text content, or nil when the node has children instead.
func (node *Node) Text() *Text {
	text, _ := node.Content.(*Text)
	return text
}

func (node *Node) Copy(target *Node) {
	if target == nil {
		panic(UndefinedNodeError)
	}
	*target = *node
	if node.BackgroundColor != nil {
		bg := *node.BackgroundColor
		target.BackgroundColor = &bg
	}
	if text := node.Text(); text != nil {
		target.Content = &Text{Spans: slices.Clone(text.Spans)}
	}
	target.Children = nil
	if node.Children != nil {
		target.Children = make([]*Node, len(node.Children))
		for idx, current := range node.Children {
			target.Children[idx] = current.Clone()
		}
	}
}

func (node *Node) Clone() *Node {
	copyNode := new(Node)
	node.Copy(copyNode)
	return copyNode
}

// Walk visits the tree depth-first in document order. Children of a node
// are skipped when fn returns false for it.
func (node *Node) Walk(fn func(depth int, node *Node) bool) {
	walk(0, node, fn)
}

func walk(depth int, node *Node, fn func(int, *Node) bool) {
	if !fn(depth, node) {
		return
	}
	for _, child := range node.Children {
		walk(depth+1, child, fn)
	}
}
