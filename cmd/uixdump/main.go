package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"uix"
	"uix/loader"
)

func main() {
	format := flag.String("format", "json", "output format: json or xml")
	where := flag.String("where", "", "print only nodes matching the expression, e.g. `grow > 0`")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.ui.xml\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error create logger: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(os.Stdout, log, flag.Arg(0), *format, *where); err != nil {
		log.Error("Dump failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(w io.Writer, log *zap.Logger, path, format, where string) error {
	asset, err := loader.New(log).LoadFile(path)
	if err != nil {
		return err
	}
	nodes := []*uix.Node{asset.Root}
	if where != "" {
		nodes, err = asset.Root.Select(where)
		if err != nil {
			return err
		}
		log.Debug("Selected nodes", zap.String("where", where), zap.Int("count", len(nodes)))
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, node := range nodes {
			if err := enc.Encode(node); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	case "xml":
		for _, node := range nodes {
			if err := uix.Render(w, node); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
