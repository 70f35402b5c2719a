package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // spec -> layout
	PhaseEncode   Phase = "encode"   // value -> line
	PhaseDecode   Phase = "decode"   // line -> value
	PhaseValidate Phase = "validate" // layout invariants
	PhaseLoad     Phase = "load"     // spec document loading
	PhaseExport   Phase = "export"   // code generation and memory export
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch      Kind = "type_mismatch"
	KindLayoutOverflow    Kind = "layout_overflow"
	KindInvalidResolution Kind = "invalid_resolution"
	KindEmptyLayout       Kind = "empty_layout"
	KindInvalidWidth      Kind = "invalid_width"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindInvalidInput      Kind = "invalid_input"
	KindInvalidData       Kind = "invalid_data"
	KindNotFound          Kind = "not_found"
	KindUnsupported       Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	ValueKind string
	FieldKind string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.ValueKind != "" || e.FieldKind != "" {
		b.WriteString(": ")
		if e.ValueKind != "" && e.FieldKind != "" {
			b.WriteString("value ")
			b.WriteString(e.ValueKind)
			b.WriteString(", field ")
			b.WriteString(e.FieldKind)
		} else if e.ValueKind != "" {
			b.WriteString("value ")
			b.WriteString(e.ValueKind)
		} else {
			b.WriteString("field ")
			b.WriteString(e.FieldKind)
		}
	}

	if e.Detail != "" {
		if e.ValueKind != "" || e.FieldKind != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// ValueKind sets the kind of the supplied value
func (b *Builder) ValueKind(k string) *Builder {
	b.err.ValueKind = k
	return b
}

// FieldKind sets the kind of the target field
func (b *Builder) FieldKind(k string) *Builder {
	b.err.FieldKind = k
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, valueKind, fieldKind string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		Path:      path,
		ValueKind: valueKind,
		FieldKind: fieldKind,
	}
}

// LayoutOverflow creates an error for a specification list with more fields
// than a layout can identify.
func LayoutOverflow(layout string, fields, limit int) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindLayoutOverflow,
		Path:   []string{layout},
		Detail: fmt.Sprintf("%d fields exceed the limit of %d, %d dropped", fields, limit, fields-limit),
		Value:  fields,
	}
}

// InvalidResolution creates an error for a resolution spec that cannot yield a bit count
func InvalidResolution(path []string, rangeWidth, resolution float64) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindInvalidResolution,
		Path:   path,
		Detail: fmt.Sprintf("range %v with resolution %v yields no valid bit count", rangeWidth, resolution),
		Value:  resolution,
	}
}

// InvalidWidth creates an error for a bit width outside [1, max]
func InvalidWidth(phase Phase, path []string, width, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidWidth,
		Path:   path,
		Detail: fmt.Sprintf("bit width %d outside [1, %d]", width, max),
		Value:  width,
	}
}

// EmptyLayout creates an error for an operation that needs at least one field
func EmptyLayout(phase Phase, layout string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyLayout,
		Path:   []string{layout},
		Detail: "layout has no fields",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// ShortBuffer creates an out of bounds error for a line smaller than its layout
func ShortBuffer(phase Phase, path []string, have, need int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("buffer of %d bytes, layout needs %d", have, need),
		Value:  have,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a spec loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
