package field

type Kind uint8

const (
	KindBool Kind = iota
	KindF32
	KindF64
)

var kindNames = [...]string{
	KindBool: "bool",
	KindF32:  "f32",
	KindF64:  "f64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsReal reports whether the kind is quantized.
func (k Kind) IsReal() bool {
	return k == KindF32 || k == KindF64
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}
