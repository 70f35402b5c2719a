package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wippyai/bitspec/codegen"
	"github.com/wippyai/bitspec/compiler"
	bserrors "github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/layout"
	"github.com/wippyai/bitspec/spec"
)

type formatInfo struct {
	name  string
	label string
}

var formats = []formatInfo{
	{"rust", "Rust field list"},
	{"c", "C field table"},
	{"struct", "C struct of decoded values"},
	{"csrc", "C runtime source"},
	{"wit", "WIT record"},
	{"json", "JSON layout"},
}

// compileSpec loads <dir>/<name>.yaml and compiles it. An overflowing spec
// still yields its truncated layout, with the overflow returned as warn.
func compileSpec(c *compiler.Compiler, dir, name string) (l *layout.Layout, warn, err error) {
	doc, err := spec.LoadFile(spec.Path(dir, name))
	if err != nil {
		return nil, nil, err
	}
	l, err = doc.Compile(c)
	if err != nil {
		overflow := &bserrors.Error{Phase: bserrors.PhaseCompile, Kind: bserrors.KindLayoutOverflow}
		if l != nil && errors.Is(err, overflow) {
			return l, err, nil
		}
		return nil, nil, err
	}
	return l, nil, nil
}

func render(l *layout.Layout, format string) (string, error) {
	switch format {
	case "rust":
		return codegen.Rust(l), nil
	case "c":
		return codegen.C(l), nil
	case "struct":
		return codegen.CStruct(l), nil
	case "csrc":
		header, source := codegen.CRuntime()
		return "/* bitspec.h */\n" + header + "\n/* bitspec.c */\n" + source, nil
	case "wit":
		return codegen.WIT(l), nil
	case "json":
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return "", bserrors.Wrap(bserrors.PhaseExport, bserrors.KindInvalidData, err, "marshal layout")
		}
		return string(data), nil
	default:
		return "", bserrors.Unsupported(bserrors.PhaseExport, fmt.Sprintf("format %q", format))
	}
}
