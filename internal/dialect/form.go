package dialect

import "fmt"

// Form is the const syntax a source file is written in.
type Form uint8

const (
	FormUnknown Form = iota
	// FormPortable uses c0nst markers and needs rewriting.
	FormPortable
	// FormModern already uses native nightly const syntax.
	FormModern
	// FormLegacy uses plain stable syntax only.
	FormLegacy

	formCount
)

func (f Form) String() string {
	switch f {
	case FormPortable:
		return "portable"
	case FormModern:
		return "modern"
	case FormLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

func (f Form) GoString() string {
	return fmt.Sprintf("Form(%s)", f.String())
}
