package layout

import (
	"encoding/json"

	"github.com/wippyai/bitspec/field"
)

// Export is the flattened description of one field handed to code generators.
// Quantized fields carry Length, Scale and Add; bool fields only Offset.
type Export struct {
	Name   string
	Kind   field.Kind
	ID     uint8
	Offset uint8
	Length uint8
	Scale  float64
	Add    float64
}

// Quantized reports whether the export carries scale and add.
func (e Export) Quantized() bool {
	return e.Kind.IsReal()
}

// Export returns one entry per field in identifier order.
func (l *Layout) Export() []Export {
	out := make([]Export, len(l.Fields))
	for i, f := range l.Fields {
		e := Export{
			Name:   f.Name,
			Kind:   f.Field.Kind(),
			ID:     f.ID,
			Offset: f.Field.BitOffset(),
			Length: f.Field.BitLength(),
		}
		if scale, add, ok := field.Params(f.Field); ok {
			e.Scale, e.Add = scale, add
		}
		out[i] = e
	}
	return out
}

// exportJSON carries decode_scale and decode_add for every quantized field,
// zero included, and leaves them out for bool fields.
type exportJSON struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	ID     uint8    `json:"id"`
	Offset uint8    `json:"offset"`
	Length uint8    `json:"length"`
	Scale  *float64 `json:"decode_scale,omitempty"`
	Add    *float64 `json:"decode_add,omitempty"`
}

func newExportJSON(e Export) exportJSON {
	out := exportJSON{
		Kind:   e.Kind.String(),
		Name:   e.Name,
		ID:     e.ID,
		Offset: e.Offset,
		Length: e.Length,
	}
	if e.Quantized() {
		scale, add := e.Scale, e.Add
		out.Scale, out.Add = &scale, &add
	}
	return out
}

type layoutJSON struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Key         uint64       `json:"key"`
	Bytes       uint16       `json:"bytes"`
	Fields      []exportJSON `json:"fields"`
}

// MarshalJSON renders the layout with its exported fields.
func (l *Layout) MarshalJSON() ([]byte, error) {
	doc := layoutJSON{
		Name:        l.Name,
		Description: l.Description,
		Key:         l.Key,
	}
	if len(l.Fields) > 0 {
		doc.Bytes = l.TotalBytes()
	}
	for _, e := range l.Export() {
		doc.Fields = append(doc.Fields, newExportJSON(e))
	}
	return json.Marshal(doc)
}
