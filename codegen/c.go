package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
)

// C renders the layout as a `const union Field <name>[]` initialiser for the
// runtime returned by CRuntime.
func C(l *layout.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const union Field %s[] = {\n", cIdent(l.Name))
	for _, e := range l.Export() {
		switch e.Kind {
		case field.KindBool:
			fmt.Fprintf(&b, "\t{.Bool = { // %s\n", e.Name)
			fmt.Fprintf(&b, "\t\t.offset = %d,\n", e.Offset)
		case field.KindF32:
			fmt.Fprintf(&b, "\t{.F32 = { // %s\n", e.Name)
			fmt.Fprintf(&b, "\t\t.offset = %d,\n", e.Offset)
			fmt.Fprintf(&b, "\t\t.length = %d,\n", e.Length)
			fmt.Fprintf(&b, "\t\t.decode_scale = %sf,\n", floatLit(e.Scale, 32))
			fmt.Fprintf(&b, "\t\t.decode_add = %sf,\n", floatLit(e.Add, 32))
		case field.KindF64:
			fmt.Fprintf(&b, "\t{.F64 = { // %s\n", e.Name)
			fmt.Fprintf(&b, "\t\t.offset = %d,\n", e.Offset)
			fmt.Fprintf(&b, "\t\t.length = %d,\n", e.Length)
			fmt.Fprintf(&b, "\t\t.decode_scale = %s,\n", floatLit(e.Scale, 64))
			fmt.Fprintf(&b, "\t\t.decode_add = %s,\n", floatLit(e.Add, 64))
		}
		b.WriteString("\t}},\n")
	}
	b.WriteString("};\n")
	if len(l.Fields) > 0 {
		fmt.Fprintf(&b, "#define %s_BYTES %d\n", strings.ToUpper(cIdent(l.Name)), l.TotalBytes())
	}
	return b.String()
}

// CStruct renders the struct a decoded line unpacks into, with a static
// assertion on its Canonical ABI size.
func CStruct(l *layout.Layout) string {
	info := Size(l)
	name := cIdent(l.Name)

	names, ids := exportNames(l)
	idents := uniqueNames(names, ids, cIdent, "_")

	var b strings.Builder
	b.WriteString("#include <stdbool.h>\n\n")
	fmt.Fprintf(&b, "struct %s_values {\n", name)
	for i, e := range l.Export() {
		fmt.Fprintf(&b, "\t%s %s;\n", cType(e.Kind), idents[i])
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "_Static_assert(sizeof(struct %s_values) == %d, \"%s_values layout\");\n", name, info.Size, name)
	return b.String()
}

// floatLit renders the shortest C or Rust literal that reads back as v at
// bitSize. It always has a '.' or an exponent, so an 'f' suffix stays valid.
func floatLit(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func cType(k field.Kind) string {
	switch k {
	case field.KindBool:
		return "bool"
	case field.KindF64:
		return "double"
	default:
		return "float"
	}
}

func exportNames(l *layout.Layout) ([]string, []uint8) {
	names := make([]string, len(l.Fields))
	ids := make([]uint8, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
		ids[i] = f.ID
	}
	return names, ids
}
