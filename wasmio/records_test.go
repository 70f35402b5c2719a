package wasmio

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bitspec/bits"
	bserrors "github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/field"
	"github.com/wippyai/bitspec/layout"
)

// memoryModule declares one page of memory exported as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

func instantiate(t *testing.T) api.Module {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	mod, err := r.Instantiate(ctx, memoryModule)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}
	return mod
}

func testLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.New("ble test", "", 1, []layout.NamedField{
		{Name: "sine", ID: 0, Field: field.NewReal32(bits.Position{Offset: 0, Length: 14}, 1, -5000)},
		{Name: "triangle", ID: 1, Field: field.NewReal32(bits.Position{Offset: 14, Length: 10}, 0.05, -10)},
		{Name: "armed", ID: 2, Field: field.NewBool(24)},
	})
	if err != nil {
		t.Fatalf("layout.New failed: %v", err)
	}
	return l
}

func TestRecordsRoundTrip(t *testing.T) {
	mod := instantiate(t)
	recs, err := Exported(mod, "memory", testLayout(t), 16)
	if err != nil {
		t.Fatalf("Exported failed: %v", err)
	}

	if recs.Stride() != 4 {
		t.Fatalf("stride: got %d, want 4", recs.Stride())
	}
	if got, want := recs.Capacity(), uint32((65536-16)/4); got != want {
		t.Errorf("capacity: got %d, want %d", got, want)
	}

	for i := uint32(0); i < 10; i++ {
		values := []field.Value{
			field.F32Value(-5000 + float32(i)*100),
			field.F32Value(20 - float32(i)),
			field.BoolValue(i%2 == 0),
		}
		if err := recs.Store(i, values); err != nil {
			t.Fatalf("Store(%d) failed: %v", i, err)
		}
	}

	for i := uint32(0); i < 10; i++ {
		got, err := recs.Load(i)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", i, err)
		}
		if got[0].F32() != -5000+float32(i)*100 {
			t.Errorf("record %d sine: got %v", i, got[0].F32())
		}
		if d := got[1].F32() - (20 - float32(i)); d > 0.026 || d < -0.026 {
			t.Errorf("record %d triangle: got %v", i, got[1].F32())
		}
		if got[2].Bool() != (i%2 == 0) {
			t.Errorf("record %d armed: got %v", i, got[2].Bool())
		}
	}
}

func TestRecordsShareMemory(t *testing.T) {
	mod := instantiate(t)
	l := testLayout(t)
	recs, err := Exported(mod, "memory", l, 0)
	if err != nil {
		t.Fatalf("Exported failed: %v", err)
	}

	if err := recs.Encode(1, 2, field.BoolValue(true)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// bit 24 of record 1 is byte 7, bit 0
	raw, ok := mod.ExportedMemory("memory").ReadByte(7)
	if !ok || raw != 0x01 {
		t.Errorf("memory byte 7: got %#x, ok=%v", raw, ok)
	}

	v, err := recs.Decode(1, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Bool() {
		t.Error("armed should read back true")
	}
	if v, _ := recs.Decode(0, 2); v.Bool() {
		t.Error("record 0 should be untouched")
	}
}

func TestRecordsErrors(t *testing.T) {
	mod := instantiate(t)
	l := testLayout(t)

	t.Run("missing_export", func(t *testing.T) {
		_, err := Exported(mod, "mem", l, 0)
		if !errors.Is(err, bserrors.NotFound(bserrors.PhaseExport, "memory", "mem")) {
			t.Errorf("expected not_found, got %v", err)
		}
	})

	t.Run("nil_memory", func(t *testing.T) {
		_, err := New(nil, l, 0)
		if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseExport, Kind: bserrors.KindInvalidInput}) {
			t.Errorf("expected invalid_input, got %v", err)
		}
	})

	recs, err := Exported(mod, "memory", l, 0)
	if err != nil {
		t.Fatalf("Exported failed: %v", err)
	}

	t.Run("past_end", func(t *testing.T) {
		_, err := recs.Line(recs.Capacity())
		if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseExport, Kind: bserrors.KindOutOfBounds}) {
			t.Errorf("expected out_of_bounds, got %v", err)
		}
	})

	t.Run("last_fits", func(t *testing.T) {
		if _, err := recs.Line(recs.Capacity() - 1); err != nil {
			t.Errorf("last record should fit: %v", err)
		}
	})

	t.Run("type_mismatch", func(t *testing.T) {
		err := recs.Encode(0, 0, field.BoolValue(true))
		if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseEncode, Kind: bserrors.KindTypeMismatch}) {
			t.Errorf("expected type_mismatch, got %v", err)
		}
	})
}
