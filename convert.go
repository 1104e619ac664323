package uix

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Converter turns an attribute string into a typed value.
type Converter[T any] func(s string) (T, error)

func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, formatError("Invalid boolean value: %s", s)
	}
}

// decimal is the plain decimal grammar: no digit separators, no hex floats.
var decimal = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$|^[+-]?(?i:inf|infinity|nan)$`)

// parseNumber parses a decimal number. Out of range values become infinities.
func parseNumber(s string) (float32, bool) {
	if !decimal.MatchString(s) {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return float32(value), true
}

func ParseFloat(s string) (float32, error) {
	value, ok := parseNumber(s)
	if !ok {
		return 0, formatError("Invalid float value: %s", s)
	}
	return value, nil
}

func ParseFlexDirection(s string) (FlexDirection, error) {
	switch s {
	case "row":
		return Row, nil
	case "column":
		return Column, nil
	case "row-reverse":
		return RowReverse, nil
	case "column-reverse":
		return ColumnReverse, nil
	default:
		return 0, formatError("Invalid flex direction: %s", s)
	}
}

func ParseFlexWrap(s string) (FlexWrap, error) {
	switch s {
	case "nowrap":
		return NoWrap, nil
	case "wrap":
		return Wrap, nil
	case "wrap-reverse":
		return WrapReverse, nil
	default:
		return 0, formatError("Invalid flex wrap: %s", s)
	}
}

// valSuffixes is checked in order, the first matching suffix wins.
var valSuffixes = []struct {
	suffix string
	unit   Unit
	family string
}{
	{"%", UnitPercent, "percentage"},
	{"px", UnitPx, "pixel"},
	{"vmin", UnitVMin, "percentage"},
	{"vmax", UnitVMax, "percentage"},
	{"vh", UnitVh, "percentage"},
	{"vw", UnitVw, "percentage"},
}

// ParseVal parses a dimension value: <number>, <number>%, <number>px,
// <number>vmin|vmax|vh|vw or auto.
func ParseVal(s string) (Val, error) {
	for _, item := range valSuffixes {
		number, ok := strings.CutSuffix(s, item.suffix)
		if !ok {
			continue
		}
		value, ok := parseNumber(number)
		if !ok {
			return Val{}, formatError("Invalid %s value: %s", item.family, s)
		}
		return Val{Unit: item.unit, Value: value}, nil
	}
	if s == "auto" {
		return Auto, nil
	}
	value, ok := parseNumber(s)
	if !ok {
		return Val{}, formatError("Invalid pixel value: %s", s)
	}
	return Px(value), nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA, normalizing each byte to [0, 1].
func ParseColor(s string) (Color, error) {
	stripped, ok := strings.CutPrefix(s, "#")
	if !ok || (len(stripped) != 6 && len(stripped) != 8) {
		return Color{}, formatError("Invalid color format: %s", s)
	}
	channels, err := hex.DecodeString(stripped)
	if err != nil {
		return Color{}, formatError("Invalid color: %s", s)
	}
	color := Color{A: 1}
	color.R = float32(channels[0]) / 255
	color.G = float32(channels[1]) / 255
	color.B = float32(channels[2]) / 255
	if len(channels) == 4 {
		color.A = float32(channels[3]) / 255
	}
	return color, nil
}

// Optional lifts a converter so a present attribute always yields a non-nil value.
func Optional[T any](convert func(string) (T, error)) Converter[*T] {
	return func(s string) (*T, error) {
		value, err := convert(s)
		if err != nil {
			return nil, err
		}
		return &value, nil
	}
}

// attrValue looks up an attribute without namespace prefix.
func attrValue(el *etree.Element, name string) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Space == "" && attr.Key == name {
			return attr.Value, true
		}
	}
	return "", false
}

// parseAttr overwrites field with the converted attribute value. An absent
// attribute leaves field untouched.
func parseAttr[T any](el *etree.Element, name string, field *T, convert func(string) (T, error)) error {
	raw, ok := attrValue(el, name)
	if !ok {
		return nil
	}
	value, err := convert(raw)
	if err != nil {
		return err
	}
	*field = value
	return nil
}
