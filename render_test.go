package uix

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type Asset struct {
	Markup string
	Output string
}

func readTestAsset(name string) *Asset {
	markup, err := os.ReadFile(fmt.Sprintf("./assets/test/%s/in.ui.xml", name))
	if err != nil {
		panic(err)
	}
	out, err := os.ReadFile(fmt.Sprintf("./assets/test/%s/out.ui.xml", name))
	if err != nil {
		panic(err)
	}
	return &Asset{
		Markup: string(markup),
		Output: strings.TrimSpace(string(out)),
	}
}

func render(t *testing.T, name string) {
	t.Helper()
	asset := readTestAsset(name)
	root, err := Parse(asset.Markup)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	out, err := RenderString(root)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if out != asset.Output {
		t.Errorf("Output is:\n%s\nExpected:\n%s", out, asset.Output)
		return
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if diff := cmp.Diff(root, reparsed); diff != "" {
		t.Errorf("round trip mismatch (-parsed +reparsed):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	t.Run("flex", func(t *testing.T) {
		render(t, "flex")
	})
	t.Run("nested-text", func(t *testing.T) {
		render(t, "nested-text")
	})
	t.Run("defaults", func(t *testing.T) {
		out, err := RenderString(NewNode())
		if err != nil {
			t.Fatalf("%+v", err)
		}
		expected := "<uix><body><flex></flex></body></uix>"
		if out != expected {
			t.Errorf("Output is:\n%s\nExpected:\n%s", out, expected)
		}
	})
	t.Run("empty text", func(t *testing.T) {
		node := NewNode()
		node.Content = &Text{}
		out, err := RenderString(node)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		reparsed, err := Parse(out)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if diff := cmp.Diff(node, reparsed); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}
