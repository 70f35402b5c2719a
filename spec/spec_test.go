package spec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/bitspec/compiler"
	bserrors "github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/random"
)

const bleSpec = `name: ble reliability
description: sine and triangle channels
fields:
  - kind: BitWidth
    name: sine
    min_value: -5000
    max_value: 5000
    numb_of_bits: 14
  - kind: Resolution
    name: triangle
    min_value: -10
    max_value: 20
    resolution: 0.05
  - kind: Manual
    name: counter
    length: 10
    decode_scale: 1
    decode_add: 0
  - kind: Bool
    name: armed
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(bleSpec))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "ble reliability" || len(doc.Fields) != 4 {
		t.Fatalf("doc = %+v", doc)
	}

	specs, err := doc.Specs()
	if err != nil {
		t.Fatal(err)
	}
	want := []compiler.Spec{
		compiler.BitWidth{Name: "sine", Min: -5000, Max: 5000, Bits: 14},
		compiler.Resolution{Name: "triangle", Min: -10, Max: 20, Resolution: 0.05},
		compiler.Manual{Name: "counter", Bits: 10, Scale: 1, Add: 0},
		compiler.Flag{Name: "armed"},
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("spec %d = %#v, want %#v", i, specs[i], want[i])
		}
	}
}

func TestCompileDocument(t *testing.T) {
	doc, err := Load(strings.NewReader(bleSpec))
	if err != nil {
		t.Fatal(err)
	}
	l, err := doc.Compile(compiler.New(compiler.WithKeySource(random.NewSeeded(1))))
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "ble reliability" || l.Len() != 4 {
		t.Fatalf("layout = %+v", l)
	}
	// 14 + 10 + 10 + 1
	if l.TotalBits() != 35 {
		t.Errorf("TotalBits = %d, want 35", l.TotalBits())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  bserrors.Kind
	}{
		{"empty", "", bserrors.KindInvalidData},
		{"no_name", "fields: []\n", bserrors.KindInvalidData},
		{"unknown_key", "name: x\nfields:\n  - kind: Bool\n    name: a\n    colour: red\n", bserrors.KindInvalidData},
		{"bad_yaml", "name: [x\n", bserrors.KindInvalidData},
		{"bits_overflow", "name: x\nfields:\n  - kind: BitWidth\n    name: a\n    numb_of_bits: 300\n", bserrors.KindInvalidData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.input))
			if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseLoad, Kind: tc.kind}) {
				t.Errorf("got %v, want %s", err, tc.kind)
			}
		})
	}
}

func TestSpecsErrors(t *testing.T) {
	t.Run("missing_parameters", func(t *testing.T) {
		doc, err := Load(strings.NewReader("name: x\nfields:\n  - kind: Resolution\n    name: r\n    min_value: 0\n"))
		if err != nil {
			t.Fatal(err)
		}
		_, err = doc.Specs()
		var e *bserrors.Error
		if !errors.As(err, &e) || e.Kind != bserrors.KindInvalidInput {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(e.Detail, "max_value, resolution") {
			t.Errorf("Detail = %q", e.Detail)
		}
		if strings.Join(e.Path, ".") != "x.fields.0.r" {
			t.Errorf("Path = %v", e.Path)
		}
	})

	t.Run("unknown_kind", func(t *testing.T) {
		doc := &Document{Name: "x", Fields: []Entry{{Kind: "Enum", Name: "e"}}}
		_, err := doc.Specs()
		if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseLoad, Kind: bserrors.KindUnsupported}) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := Entry{Kind: KindBool}.Spec()
		if !errors.Is(err, &bserrors.Error{Phase: bserrors.PhaseLoad, Kind: bserrors.KindInvalidInput}) {
			t.Errorf("got %v", err)
		}
	})
}

func TestTemplateRoundTrip(t *testing.T) {
	data, err := TemplateYAML()
	if err != nil {
		t.Fatal(err)
	}
	for _, kind := range []Kind{KindBitWidth, KindResolution, KindManual, KindBool} {
		if !bytes.Contains(data, []byte("kind: "+string(kind))) {
			t.Errorf("template missing %s:\n%s", kind, data)
		}
	}
	if !bytes.Contains(data, []byte("decode_add: 0")) {
		t.Errorf("zero parameters must be written:\n%s", data)
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	specs, err := doc.Specs()
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 4 {
		t.Errorf("template has %d specs, want 4", len(specs))
	}
}

func TestWriteTemplate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "specs")

	path, err := WriteTemplate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "template.yaml") {
		t.Errorf("path = %q", path)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "template" {
		t.Errorf("Name = %q", doc.Name)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist cause", err)
	}
}

func TestPath(t *testing.T) {
	tests := []struct{ dir, name, want string }{
		{"specs", "ble", filepath.Join("specs", "ble.yaml")},
		{"specs", " ble\n", filepath.Join("specs", "ble.yaml")},
		{"specs", "ble.yml", filepath.Join("specs", "ble.yaml")},
		{"", "ble.yaml", "ble.yaml"},
	}
	for _, tc := range tests {
		if got := Path(tc.dir, tc.name); got != tc.want {
			t.Errorf("Path(%q, %q) = %q, want %q", tc.dir, tc.name, got, tc.want)
		}
	}
}
