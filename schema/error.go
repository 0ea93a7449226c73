package schema

import (
	"fmt"

	"github.com/tombi-toml/tombi/text"
)

// Level is a diagnostic's severity. A diagnostic set is "clean" iff it
// contains no LevelError entries, even when LevelWarn entries remain.
type Level int

const (
	LevelError Level = iota
	LevelWarn
)

func (l Level) String() string {
	if l == LevelWarn {
		return "warning"
	}

	return "error"
}

// DiagnosticKind enumerates the validator's error taxonomy.
type DiagnosticKind int

const (
	DiagTypeMismatch DiagnosticKind = iota
	DiagEnumerate
	DiagMinimum
	DiagMaximum
	DiagExclusiveMinimum
	DiagExclusiveMaximum
	DiagMultipleOf
	DiagMinLength
	DiagMaxLength
	DiagPattern
	DiagMinItems
	DiagMaxItems
	DiagUniqueItems
	DiagMinKeys
	DiagMaxKeys
	DiagRequired
	DiagAdditionalProperties
	DiagKeysOutOfOrder
	DiagValuesOutOfOrder
	DiagOneOfNoMatch
	DiagOneOfAmbiguous
	DiagAnyOfNoMatch
)

var diagnosticKindNames = [...]string{
	"TypeMismatch",
	"Enumerate",
	"Minimum",
	"Maximum",
	"ExclusiveMinimum",
	"ExclusiveMaximum",
	"MultipleOf",
	"MinimumLength",
	"MaximumLength",
	"Pattern",
	"MinItems",
	"MaxItems",
	"UniqueItems",
	"MinKeys",
	"MaxKeys",
	"Required",
	"AdditionalProperties",
	"KeysOutOfOrder",
	"ValuesOutOfOrder",
	"OneOfNoMatch",
	"OneOfAmbiguous",
	"AnyOfNoMatch",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticKindNames) {
		return diagnosticKindNames[k]
	}

	return "Unknown"
}

// Diagnostic is a single validator finding, always carrying a range
// regardless of severity.
type Diagnostic struct {
	Kind    DiagnosticKind
	Level   Level
	Span    text.Span
	Message string
}

func (d Diagnostic) Error() string {
	return d.Message
}

// Range returns the diagnostic's byte span, like document.Error's Range;
// lexer and parser errors carry only a Span field.
func (d Diagnostic) Range() text.Span {
	return d.Span
}

func diag(kind DiagnosticKind, level Level, span text.Span, format string, args ...any) Diagnostic {
	msg := kind.String()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}

	return Diagnostic{Kind: kind, Level: level, Span: span, Message: msg}
}

// HasErrors reports whether any diagnostic in diags is LevelError.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Level == LevelError {
			return true
		}
	}

	return false
}
