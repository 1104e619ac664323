package uix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseSpans(t *testing.T, inner string) []TextSpan {
	t.Helper()
	root, err := Parse(document("<flex>" + inner + "</flex>"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	text := root.Text()
	if text == nil {
		t.Fatalf("expected text content, got %+v", root)
	}
	return text.Spans
}

func TestParseText(t *testing.T) {
	red := RGB(1, 0, 0)
	blue := RGB(0, 0, 1)

	tt := []struct {
		name   string
		input  string
		output []TextSpan
	}{
		{
			name:   "whitespace collapsing",
			input:  "<t>  a   b\n c </t>",
			output: []TextSpan{{Text: "a b c", Color: Black}},
		},
		{
			name:  "style carried from root",
			input: `Hi <t bold="true">there</t>`,
			output: []TextSpan{
				{Text: "Hi", Color: Black},
				{Text: "there", Bold: true, Color: Black},
			},
		},
		{
			name:  "style restored after span",
			input: `a <t italic="true" underline="1">b</t> c`,
			output: []TextSpan{
				{Text: "a", Color: Black},
				{Text: "b", Italic: true, Underline: true, Color: Black},
				{Text: "c", Color: Black},
			},
		},
		{
			name:  "nested overrides",
			input: `<t bold="true" color="#ff0000">x<t bold="false" strikethrough="true">y</t><t color="#0000ff">z</t></t>`,
			output: []TextSpan{
				{Text: "x", Bold: true, Color: red},
				{Text: "y", Strikethrough: true, Color: red},
				{Text: "z", Bold: true, Color: blue},
			},
		},
		{
			name:   "empty runs are dropped",
			input:  "<t> </t>\n  <t>a</t>  <t></t>",
			output: []TextSpan{{Text: "a", Color: Black}},
		},
		{
			name:   "comments are skipped",
			input:  "a<!-- b -->c",
			output: []TextSpan{{Text: "a", Color: Black}, {Text: "c", Color: Black}},
		},
		{
			name:   "entities",
			input:  "<t>a &amp; b</t>",
			output: []TextSpan{{Text: "a & b", Color: Black}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.output, parseSpans(t, tc.input)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	t.Run("only empty runs", func(t *testing.T) {
		if spans := parseSpans(t, "<t></t>"); len(spans) != 0 {
			t.Errorf("expected no spans, got %+v", spans)
		}
	})
}

func TestParseTextErrors(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unknown element", input: "<t><b>x</b></t>", message: "Invalid text element: b"},
		{name: "invalid bool", input: `<t bold="yes">x</t>`, message: "Invalid boolean value: yes"},
		{name: "invalid color", input: `<t><t color="#12">x</t></t>`, message: "Invalid color format: #12"},
		{name: "error after spans", input: `ok <t italic="no">x</t>`, message: "Invalid boolean value: no"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(document("<flex>" + tc.input + "</flex>"))
			if msg := formatMessage(t, err); msg != tc.message {
				t.Errorf("Message does not match: want %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	for input, want := range map[string]string{
		"":             "",
		"   ":          "",
		"a":            "a",
		"  a   b\n c ": "a b c",
		"\ta\t\tb\r\n": "a b",
		"a\u00a0 b":    "a b",
	} {
		if got := collapseWhitespace(input); got != want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", input, got, want)
		}
	}
}
