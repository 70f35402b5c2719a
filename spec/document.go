package spec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/bitspec/compiler"
	"github.com/wippyai/bitspec/errors"
	"github.com/wippyai/bitspec/layout"
)

// Kind tags an entry.
type Kind string

const (
	KindBitWidth   Kind = "BitWidth"
	KindResolution Kind = "Resolution"
	KindManual     Kind = "Manual"
	KindBool       Kind = "Bool"
)

// Extension is the file extension of spec documents.
const Extension = ".yaml"

// Entry is one field declaration. Only the parameters of its Kind are set.
type Entry struct {
	Kind        Kind     `yaml:"kind"`
	Name        string   `yaml:"name"`
	MinValue    *float64 `yaml:"min_value,omitempty"`
	MaxValue    *float64 `yaml:"max_value,omitempty"`
	NumbOfBits  *uint8   `yaml:"numb_of_bits,omitempty"`
	Resolution  *float64 `yaml:"resolution,omitempty"`
	Length      *uint8   `yaml:"length,omitempty"`
	DecodeScale *float64 `yaml:"decode_scale,omitempty"`
	DecodeAdd   *float64 `yaml:"decode_add,omitempty"`
}

// Document is a whole record declaration.
type Document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Fields      []Entry `yaml:"fields"`
}

// Load decodes a document. Unknown keys are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidData(errors.PhaseLoad, nil, "empty document")
		}
		return nil, errors.ParseFailed("spec", err)
	}
	if doc.Name == "" {
		return nil, errors.InvalidData(errors.PhaseLoad, nil, "document has no name")
	}
	Logger().Debug("loaded spec", zap.String("name", doc.Name), zap.Int("fields", len(doc.Fields)))
	return &doc, nil
}

// LoadFile opens and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Load(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()
	return Load(f)
}

// Path returns the file for the spec called name inside dir, replacing any
// extension on name with Extension.
func Path(dir, name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, name+Extension)
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.PhaseExport, errors.KindInvalidData, err, "encode spec")
	}
	return enc.Close()
}

// Specs converts the entries to compiler specifications, checking that each
// entry carries the parameters its kind requires.
func (d *Document) Specs() ([]compiler.Spec, error) {
	specs := make([]compiler.Spec, 0, len(d.Fields))
	for i, e := range d.Fields {
		s, err := e.Spec()
		if err != nil {
			if be, ok := err.(*errors.Error); ok {
				be.Path = append([]string{d.Name, "fields", strconv.Itoa(i)}, be.Path...)
			}
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Compile converts and compiles the document with c.
// A LayoutOverflow error comes with the truncated layout, as from compiler.Compile.
func (d *Document) Compile(c *compiler.Compiler) (*layout.Layout, error) {
	specs, err := d.Specs()
	if err != nil {
		return nil, err
	}
	return c.Compile(d.Name, d.Description, specs)
}

// Spec converts a single entry.
func (e Entry) Spec() (compiler.Spec, error) {
	var missing []string
	f := func(key string, p *float64) float64 {
		if p == nil {
			missing = append(missing, key)
			return 0
		}
		return *p
	}
	u := func(key string, p *uint8) uint8 {
		if p == nil {
			missing = append(missing, key)
			return 0
		}
		return *p
	}

	var s compiler.Spec
	switch e.Kind {
	case KindBitWidth:
		s = compiler.BitWidth{
			Name: e.Name,
			Min:  f("min_value", e.MinValue),
			Max:  f("max_value", e.MaxValue),
			Bits: u("numb_of_bits", e.NumbOfBits),
		}
	case KindResolution:
		s = compiler.Resolution{
			Name:       e.Name,
			Min:        f("min_value", e.MinValue),
			Max:        f("max_value", e.MaxValue),
			Resolution: f("resolution", e.Resolution),
		}
	case KindManual:
		s = compiler.Manual{
			Name:  e.Name,
			Bits:  u("length", e.Length),
			Scale: f("decode_scale", e.DecodeScale),
			Add:   f("decode_add", e.DecodeAdd),
		}
	case KindBool:
		s = compiler.Flag{Name: e.Name}
	default:
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(e.Name).
			Value(string(e.Kind)).
			Detail("unknown kind %q", e.Kind).
			Build()
	}

	if e.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, errors.InvalidInput(errors.PhaseLoad, []string{e.Name},
			fmt.Sprintf("%s entry missing %s", e.Kind, strings.Join(missing, ", ")))
	}
	return s, nil
}

// FromSpecs builds a document from compiler specifications.
func FromSpecs(name, description string, specs []compiler.Spec) *Document {
	d := &Document{Name: name, Description: description}
	for _, s := range specs {
		var e Entry
		switch s := s.(type) {
		case compiler.BitWidth:
			e = Entry{Kind: KindBitWidth, Name: s.Name, MinValue: ptr(s.Min), MaxValue: ptr(s.Max), NumbOfBits: ptr(s.Bits)}
		case compiler.Resolution:
			e = Entry{Kind: KindResolution, Name: s.Name, MinValue: ptr(s.Min), MaxValue: ptr(s.Max), Resolution: ptr(s.Resolution)}
		case compiler.Manual:
			e = Entry{Kind: KindManual, Name: s.Name, Length: ptr(s.Bits), DecodeScale: ptr(s.Scale), DecodeAdd: ptr(s.Add)}
		case compiler.Flag:
			e = Entry{Kind: KindBool, Name: s.Name}
		default:
			continue
		}
		d.Fields = append(d.Fields, e)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}
