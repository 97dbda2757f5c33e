package diag

// Severity orders diagnostics; any SevError withholds the file's output.
type Severity uint8

const (
	SevInfo    Severity = iota // справка, на вывод не влияет
	SevWarning                 // файл переписан, но стоит посмотреть
	SevError                   // лексическая ошибка или запрещённый маркер
)

// String is the upper-case name used by the pretty and JSON formats.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the rustc-style lower-case name used by the short format.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	}
	return "info"
}

// Blocking reports whether a diagnostic of this severity stops the rewrite.
func (s Severity) Blocking() bool { return s >= SevError }
