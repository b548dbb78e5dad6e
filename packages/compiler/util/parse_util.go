package util

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SourceLocation represents a location in a source document. Descriptors
// discovered from a property inventory have no document, so most diagnostics
// carry SourceLocationUndefined.
type SourceLocation struct {
	FilePath       string
	AbsoluteIndex  int
	LineIndex      int
	CharacterIndex int
}

// SourceLocationUndefined is the location used when no source position is known.
var SourceLocationUndefined = SourceLocation{AbsoluteIndex: -1, LineIndex: -1, CharacterIndex: -1}

// NewSourceLocation creates a new SourceLocation
func NewSourceLocation(filePath string, absoluteIndex, lineIndex, characterIndex int) SourceLocation {
	return SourceLocation{
		FilePath:       filePath,
		AbsoluteIndex:  absoluteIndex,
		LineIndex:      lineIndex,
		CharacterIndex: characterIndex,
	}
}

// IsUndefined reports whether the location carries no position.
func (l SourceLocation) IsUndefined() bool {
	return l.AbsoluteIndex < 0
}

// String returns a string representation of the location
func (l SourceLocation) String() string {
	if l.IsUndefined() {
		return l.FilePath
	}
	return fmt.Sprintf("%s@%d:%d", l.FilePath, l.LineIndex, l.CharacterIndex)
}

// SourceSpan represents a span of source text
type SourceSpan struct {
	Location SourceLocation
	Length   int
}

// NewSourceSpan creates a new SourceSpan
func NewSourceSpan(location SourceLocation, length int) SourceSpan {
	return SourceSpan{Location: location, Length: length}
}

// SourceSpanUndefined is the span attached to diagnostics without a position.
var SourceSpanUndefined = NewSourceSpan(SourceLocationUndefined, 0)

// DiagnosticSeverity represents the level of a diagnostic
type DiagnosticSeverity int

const (
	DiagnosticSeverityWarning DiagnosticSeverity = iota
	DiagnosticSeverityError
)

func (s DiagnosticSeverity) String() string {
	if s == DiagnosticSeverityWarning {
		return "warning"
	}
	return "error"
}

func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DiagnosticDescriptor identifies a kind of diagnostic and its message format.
type DiagnosticDescriptor struct {
	ID       string
	Format   string
	Severity DiagnosticSeverity
}

// NewDiagnosticDescriptor creates a new DiagnosticDescriptor
func NewDiagnosticDescriptor(id, format string, severity DiagnosticSeverity) *DiagnosticDescriptor {
	return &DiagnosticDescriptor{ID: id, Format: format, Severity: severity}
}

// Diagnostic is a structured validation or parse problem attached to a
// descriptor. Diagnostics are values: two diagnostics are equal when all
// their fields are equal.
type Diagnostic struct {
	ID       string
	Severity DiagnosticSeverity
	Message  string
	Span     SourceSpan
}

// NewDiagnostic creates a Diagnostic from a descriptor and format arguments
func NewDiagnostic(descriptor *DiagnosticDescriptor, span SourceSpan, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		ID:       descriptor.ID,
		Severity: descriptor.Severity,
		Message:  fmt.Sprintf(descriptor.Format, args...),
		Span:     span,
	}
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return d.String()
}

// String returns a string representation of the diagnostic
func (d *Diagnostic) String() string {
	if d.Span.Location.IsUndefined() && d.Span.Location.FilePath == "" {
		return fmt.Sprintf("%s %s: %s", d.ID, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s %s: %s: %s", d.ID, d.Severity, d.Message, d.Span.Location)
}

// Equal reports whether two diagnostics carry the same data.
func (d *Diagnostic) Equal(other *Diagnostic) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return *d == *other
}

// DiagnosticsEqual compares two diagnostic sequences in order.
func DiagnosticsEqual(x, y []*Diagnostic) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !x[i].Equal(y[i]) {
			return false
		}
	}
	return true
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diagnostics []*Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == DiagnosticSeverityError {
			return true
		}
	}
	return false
}

// DiagnosticsError folds the error-severity diagnostics into a single error,
// or returns nil when there are none.
func DiagnosticsError(diagnostics []*Diagnostic) error {
	var result *multierror.Error
	for _, d := range diagnostics {
		if d.Severity == DiagnosticSeverityError {
			result = multierror.Append(result, d)
		}
	}
	return result.ErrorOrNil()
}
