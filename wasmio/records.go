package wasmio

import (
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
)

// Records is an array of packed lines in linear memory.
type Records struct {
	mem    api.Memory
	layout *layout.Layout
	base   uint32
	stride uint32
}

// New returns a view over mem starting at base. The stride is the layout's
// byte length.
func New(mem api.Memory, l *layout.Layout, base uint32) (*Records, error) {
	if mem == nil {
		return nil, errors.InvalidInput(errors.PhaseExport, nil, "nil memory")
	}
	if l == nil || l.Len() == 0 {
		name := ""
		if l != nil {
			name = l.Name
		}
		return nil, errors.EmptyLayout(errors.PhaseExport, name)
	}
	return &Records{
		mem:    mem,
		layout: l,
		base:   base,
		stride: uint32(l.TotalBytes()),
	}, nil
}

// Exported looks up the memory exported by mod under name.
func Exported(mod api.Module, name string, l *layout.Layout, base uint32) (*Records, error) {
	mem := mod.ExportedMemory(name)
	if mem == nil {
		return nil, errors.NotFound(errors.PhaseExport, "memory", name)
	}
	return New(mem, l, base)
}

// Layout returns the layout every record follows.
func (r *Records) Layout() *layout.Layout {
	return r.layout
}

// Base returns the address of record 0.
func (r *Records) Base() uint32 {
	return r.base
}

// Stride returns the distance in bytes between consecutive records.
func (r *Records) Stride() uint32 {
	return r.stride
}

// Capacity returns how many records fit in the current memory size.
func (r *Records) Capacity() uint32 {
	size := r.mem.Size()
	if size <= r.base {
		return 0
	}
	return (size - r.base) / r.stride
}

// Line returns a writable view of record i.
func (r *Records) Line(i uint32) ([]byte, error) {
	addr := uint64(r.base) + uint64(i)*uint64(r.stride)
	if addr+uint64(r.stride) > uint64(r.mem.Size()) {
		return nil, errors.OutOfBounds(errors.PhaseExport, r.path(i), int(i), int(r.Capacity()))
	}
	data, ok := r.mem.Read(uint32(addr), r.stride)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseExport, r.path(i), int(i), int(r.Capacity()))
	}
	return data, nil
}

// Encode writes v into field id of record i.
func (r *Records) Encode(i uint32, id uint8, v field.Value) error {
	line, err := r.Line(i)
	if err != nil {
		return err
	}
	return r.layout.Encode(id, v, line)
}

// Decode reads field id of record i.
func (r *Records) Decode(i uint32, id uint8) (field.Value, error) {
	line, err := r.Line(i)
	if err != nil {
		return field.Value{}, err
	}
	return r.layout.Decode(id, line)
}

// Store writes every field of record i.
func (r *Records) Store(i uint32, values []field.Value) error {
	line, err := r.Line(i)
	if err != nil {
		return err
	}
	return r.layout.EncodeAll(values, line)
}

// Load reads every field of record i.
func (r *Records) Load(i uint32) ([]field.Value, error) {
	line, err := r.Line(i)
	if err != nil {
		return nil, err
	}
	return r.layout.DecodeAll(line)
}

func (r *Records) path(i uint32) []string {
	return []string{r.layout.Name, "record[" + strconv.FormatUint(uint64(i), 10) + "]"}
}
