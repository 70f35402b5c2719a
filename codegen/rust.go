package codegen

import (
	"fmt"
	"strings"

	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
)

// Rust renders the layout as a `fields: &[...]` literal list.
func Rust(l *layout.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fields: &[ // %s\n", cIdent(l.Name))
	for _, e := range l.Export() {
		switch e.Kind {
		case field.KindBool:
			fmt.Fprintf(&b, "\tBool { // %s\n", e.Name)
			fmt.Fprintf(&b, "\t\toffset: %d,\n", e.Offset)
		default:
			fmt.Fprintf(&b, "\tField::<%s> { // %s\n", e.Kind, e.Name)
			bitSize := 32
			if e.Kind == field.KindF64 {
				bitSize = 64
			}
			fmt.Fprintf(&b, "\t\tdecode_add: %s,\n", floatLit(e.Add, bitSize))
			fmt.Fprintf(&b, "\t\tdecode_scale: %s,\n", floatLit(e.Scale, bitSize))
			fmt.Fprintf(&b, "\t\tlength: %d,\n", e.Length)
			fmt.Fprintf(&b, "\t\toffset: %d,\n", e.Offset)
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("];")
	return b.String()
}
