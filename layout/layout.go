package layout

import (
	"strconv"

	"github.com/wippyai/bitspec/bits"
	"github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/field"
)

// MaxFields is the number of distinct field identifiers.
const MaxFields = 256

// NamedField is one identified field of a layout.
type NamedField struct {
	Field field.Variant
	Name  string
	ID    uint8
}

// Layout is a compiled record type.
type Layout struct {
	Name        string
	Description string
	Fields      []NamedField
	Key         uint64
}

// New builds a layout and checks its invariants.
func New(name, description string, key uint64, fields []NamedField) (*Layout, error) {
	l := &Layout{
		Name:        name,
		Description: description,
		Key:         key,
		Fields:      fields,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks that the layout is non-empty, identifiers are dense from 0,
// and bit ranges ascend without overlapping.
func (l *Layout) Validate() error {
	if len(l.Fields) == 0 {
		return errors.EmptyLayout(errors.PhaseValidate, l.Name)
	}
	if len(l.Fields) > MaxFields {
		return errors.LayoutOverflow(l.Name, len(l.Fields), MaxFields)
	}

	var end uint16
	for i, f := range l.Fields {
		path := []string{l.Name, f.Name}
		if f.Field == nil {
			return errors.InvalidData(errors.PhaseValidate, path, "field has no variant")
		}
		if int(f.ID) != i {
			return errors.New(errors.PhaseValidate, errors.KindInvalidData).
				Path(path...).
				Value(f.ID).
				Detail("identifier %d at position %d", f.ID, i).
				Build()
		}
		length := f.Field.BitLength()
		if length == 0 || length > bits.MaxLength {
			return errors.InvalidWidth(errors.PhaseValidate, path, int(length), bits.MaxLength)
		}
		offset := uint16(f.Field.BitOffset())
		if offset < end {
			return errors.New(errors.PhaseValidate, errors.KindInvalidData).
				Path(path...).
				Value(offset).
				Detail("bit %d overlaps previous field ending at %d", offset, end).
				Build()
		}
		end = offset + uint16(length)
	}
	return nil
}

// Len returns the number of fields.
func (l *Layout) Len() int {
	return len(l.Fields)
}

// At returns the field at position i.
func (l *Layout) At(i int) NamedField {
	return l.Fields[i]
}

// Field returns the field with identifier id.
func (l *Layout) Field(id uint8) (NamedField, error) {
	if int(id) >= len(l.Fields) {
		return NamedField{}, errors.OutOfBounds(errors.PhaseValidate, []string{l.Name}, int(id), len(l.Fields))
	}
	return l.Fields[id], nil
}

// Lookup returns the field called name. It is a linear scan meant for
// tooling, not for encode/decode loops.
func (l *Layout) Lookup(name string) (NamedField, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return NamedField{}, false
}

// TotalBits returns the end of the last field. It panics on an empty layout.
func (l *Layout) TotalBits() uint16 {
	if len(l.Fields) == 0 {
		panic(errors.EmptyLayout(errors.PhaseValidate, l.Name))
	}
	return field.Position(l.Fields[len(l.Fields)-1].Field).End()
}

// TotalBytes returns the line size every caller must allocate.
// It panics on an empty layout.
func (l *Layout) TotalBytes() uint16 {
	return bits.BytesFor(l.TotalBits())
}

// NewLine returns a zeroed line sized for the layout.
func (l *Layout) NewLine() []byte {
	return make([]byte, l.TotalBytes())
}

// Encode writes v into the field with identifier id.
func (l *Layout) Encode(id uint8, v field.Value, line []byte) error {
	f, err := l.checked(errors.PhaseEncode, id, line)
	if err != nil {
		return err
	}
	if err := f.Field.Encode(v, line); err != nil {
		return withPath(err, l.Name, f.Name)
	}
	return nil
}

// Decode reads the field with identifier id.
func (l *Layout) Decode(id uint8, line []byte) (field.Value, error) {
	f, err := l.checked(errors.PhaseDecode, id, line)
	if err != nil {
		return field.Value{}, err
	}
	return f.Field.Decode(line), nil
}

// EncodeAll writes one value per field in identifier order. Kinds are checked
// before anything is written, so a mismatch leaves line unmodified.
func (l *Layout) EncodeAll(values []field.Value, line []byte) error {
	if len(values) != len(l.Fields) {
		return errors.InvalidInput(errors.PhaseEncode, []string{l.Name},
			"got "+strconv.Itoa(len(values))+" values for "+strconv.Itoa(len(l.Fields))+" fields")
	}
	if need := int(l.TotalBytes()); len(line) < need {
		return errors.ShortBuffer(errors.PhaseEncode, []string{l.Name}, len(line), need)
	}
	for i, f := range l.Fields {
		if values[i].Kind() != f.Field.Kind() {
			return errors.TypeMismatch(errors.PhaseEncode, []string{l.Name, f.Name},
				values[i].Kind().String(), f.Field.Kind().String())
		}
	}
	for i, f := range l.Fields {
		if err := f.Field.Encode(values[i], line); err != nil {
			return withPath(err, l.Name, f.Name)
		}
	}
	return nil
}

// DecodeAll reads every field in identifier order.
func (l *Layout) DecodeAll(line []byte) ([]field.Value, error) {
	if need := int(l.TotalBytes()); len(line) < need {
		return nil, errors.ShortBuffer(errors.PhaseDecode, []string{l.Name}, len(line), need)
	}
	values := make([]field.Value, len(l.Fields))
	for i, f := range l.Fields {
		values[i] = f.Field.Decode(line)
	}
	return values, nil
}

func (l *Layout) checked(phase errors.Phase, id uint8, line []byte) (NamedField, error) {
	if int(id) >= len(l.Fields) {
		return NamedField{}, errors.OutOfBounds(phase, []string{l.Name}, int(id), len(l.Fields))
	}
	f := l.Fields[id]
	if end := int(bits.BytesFor(field.Position(f.Field).End())); len(line) < end {
		return NamedField{}, errors.ShortBuffer(phase, []string{l.Name, f.Name}, len(line), end)
	}
	return f, nil
}

func withPath(err error, path ...string) error {
	if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
		e.Path = path
	}
	return err
}
