package spec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/bitspec/compiler"
	"github.com/wippyai/bitspec/errors"
)

// TemplateName is the base name WriteTemplate uses.
const TemplateName = "template"

// Template returns a document with one entry of each kind.
func Template() *Document {
	return FromSpecs("template", "copy this file and edit it to describe a record", []compiler.Spec{
		compiler.BitWidth{Name: "sine", Min: -5000, Max: 5000, Bits: 14},
		compiler.Resolution{Name: "triangle", Min: -10, Max: 20, Resolution: 0.05},
		compiler.Manual{Name: "counter", Bits: 10, Scale: 1, Add: 0},
		compiler.Flag{Name: "armed"},
	})
}

// TemplateYAML renders Template.
func TemplateYAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := Template().Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTemplate writes the template into dir, creating dir if needed, and
// returns the file path.
func WriteTemplate(dir string) (string, error) {
	data, err := TemplateYAML()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.PhaseExport, errors.KindInvalidInput, err, fmt.Sprintf("create %s", dir))
	}
	path := Path(dir, TemplateName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.PhaseExport, errors.KindInvalidInput, err, fmt.Sprintf("write %s", path))
	}
	Logger().Debug("wrote template", zap.String("path", filepath.Clean(path)))
	return path, nil
}
