package uix

import (
	"strings"

	"github.com/beevik/etree"
)

// parseText appends the styled runs of tokens to spans. current is the
// style inherited from the enclosing <t>, copied into every nested call.
func parseText(tokens []etree.Token, current TextSpan, spans *[]TextSpan) error {
	for _, token := range tokens {
		switch token := token.(type) {
		case *etree.CharData:
			text := collapseWhitespace(token.Data)
			// whitespace between elements yields no span.
			if text == "" {
				continue
			}
			span := current
			span.Text = text
			*spans = append(*spans, span)
		case *etree.Element:
			if token.Tag != "t" {
				return formatError("Invalid text element: %s", token.Tag)
			}
			style, err := parseTextStyle(token, current)
			if err != nil {
				return err
			}
			if err := parseText(token.Child, style, spans); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseTextStyle(el *etree.Element, inherited TextSpan) (TextSpan, error) {
	style := inherited
	style.Text = ""
	flags := []struct {
		name  string
		field *bool
	}{
		{"bold", &style.Bold},
		{"italic", &style.Italic},
		{"underline", &style.Underline},
		{"strikethrough", &style.Strikethrough},
	}
	for _, item := range flags {
		if err := parseAttr(el, item.name, item.field, ParseBool); err != nil {
			return style, err
		}
	}
	if err := parseAttr(el, "color", &style.Color, ParseColor); err != nil {
		return style, err
	}
	return style, nil
}

// collapseWhitespace trims s and folds every inner whitespace run into one space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
