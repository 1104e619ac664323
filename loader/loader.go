// Package loader reads *.ui.xml assets and parses them into node trees.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"uix"
)

const Extension = "ui.xml"

var ErrUnsupportedExtension = errors.New("unsupported asset extension")

type ErrorKind int

const (
	ParseFailure ErrorKind = iota + 1
	IOFailure
)

type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Kind == IOFailure {
		return fmt.Sprintf("IO error: %v", e.Err)
	}
	return fmt.Sprintf("Parse UIX error: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Asset struct {
	Path string
	Root *uix.Node
}

type Loader struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

func (l *Loader) Extensions() []string {
	return []string{Extension}
}

// Supports reports whether path carries one of the loader extensions.
func (l *Loader) Supports(path string) bool {
	for _, ext := range l.Extensions() {
		if strings.HasSuffix(path, "."+ext) {
			return true
		}
	}
	return false
}

// Load reads the whole markup from r and parses it. A UTF-8 BOM is dropped
// and BOM-marked UTF-16 input is transcoded to UTF-8.
func (l *Loader) Load(r io.Reader) (*uix.Node, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, errors.WithStack(&LoadError{Kind: IOFailure, Err: err})
	}
	root, err := uix.Parse(string(data))
	if err != nil {
		return nil, errors.WithStack(&LoadError{Kind: ParseFailure, Err: err})
	}
	return root, nil
}

func (l *Loader) LoadFile(path string) (*Asset, error) {
	if !l.Supports(path) {
		return nil, errors.Wrapf(ErrUnsupportedExtension, "load %s", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(&LoadError{Kind: IOFailure, Path: path, Err: err})
	}
	defer func() {
		_ = file.Close()
	}()
	root, err := l.Load(file)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		l.log.Warn("Failed to load UIX asset", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	nodes := 0
	root.Walk(func(int, *uix.Node) bool {
		nodes++
		return true
	})
	l.log.Debug("Loaded UIX asset", zap.String("path", path), zap.Int("nodes", nodes))
	return &Asset{Path: path, Root: root}, nil
}
