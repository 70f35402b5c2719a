package codegen

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/bitspec/codegen/internal/abi"
	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
)

// WITType returns the record a decoded line unpacks into.
func WITType(l *layout.Layout) *wit.TypeDef {
	names, ids := exportNames(l)
	idents := uniqueNames(names, ids, kebab, "-")

	fields := make([]wit.Field, len(l.Fields))
	for i, f := range l.Fields {
		fields[i] = wit.Field{Name: idents[i], Type: witType(f.Field.Kind())}
	}

	name := kebab(l.Name)
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Record{Fields: fields},
	}
}

func witType(k field.Kind) wit.Type {
	switch k {
	case field.KindBool:
		return wit.Bool{}
	case field.KindF64:
		return wit.F64{}
	default:
		return wit.F32{}
	}
}

func witName(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.F64:
		return "f64"
	default:
		return "f32"
	}
}

// WIT renders the record from WITType as WIT source.
func WIT(l *layout.Layout) string {
	td := WITType(l)
	rec := td.Kind.(*wit.Record)

	var b strings.Builder
	if l.Description != "" {
		for _, line := range strings.Split(l.Description, "\n") {
			fmt.Fprintf(&b, "/// %s\n", strings.TrimSpace(line))
		}
	}
	fmt.Fprintf(&b, "record %s {\n", witIdent(*td.Name))
	for _, f := range rec.Fields {
		fmt.Fprintf(&b, "    %s: %s,\n", witIdent(f.Name), witName(f.Type))
	}
	b.WriteString("}\n")
	return b.String()
}

// RecordInfo is the Canonical ABI layout of the decoded record. Offsets are
// keyed by WIT field name.
type RecordInfo struct {
	Offsets map[string]uint32
	Size    uint32
	Align   uint32
}

// Size computes the Canonical ABI layout of the record from WITType.
func Size(l *layout.Layout) RecordInfo {
	info := abi.NewCalculator().Calculate(WITType(l))
	return RecordInfo{Offsets: info.FieldOffs, Size: info.Size, Align: info.Align}
}
