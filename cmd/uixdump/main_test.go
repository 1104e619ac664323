package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"uix"
)

const flexAsset = "../../assets/test/flex/in.ui.xml"

func TestRun(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("json", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(out, log, flexAsset, "json", ""); err != nil {
			t.Fatalf("%+v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
			t.Fatalf("%+v", err)
		}
		if decoded["FlexDirection"] != "column" || decoded["Width"] != "50%" {
			t.Errorf("unexpected dump %s", out.String())
		}
	})
	t.Run("xml", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(out, log, flexAsset, "xml", ""); err != nil {
			t.Fatalf("%+v", err)
		}
		if _, err := uix.Parse(out.String()); err != nil {
			t.Errorf("dump is not valid markup: %+v\n%s", err, out.String())
		}
	})
	t.Run("where", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(out, log, flexAsset, "xml", "has_text"); err != nil {
			t.Fatalf("%+v", err)
		}
		if !strings.Contains(out.String(), "red bold") || strings.Contains(out.String(), `direction="column"`) {
			t.Errorf("unexpected dump %s", out.String())
		}
	})
	t.Run("unknown format", func(t *testing.T) {
		if err := run(&bytes.Buffer{}, log, flexAsset, "yaml", ""); err == nil {
			t.Error("expected an error")
		}
	})
}
