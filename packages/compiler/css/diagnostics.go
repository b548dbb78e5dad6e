package css

import (
	"strings"

	"rzc-go/packages/compiler/core"
	"rzc-go/packages/compiler/util"
)

// TargetKind names what a validated name is used for; it only affects messages
// and whether the catch-all target is allowed.
type TargetKind string

const (
	TargetTag       TargetKind = "Tag"
	TargetAttribute TargetKind = "Attribute"
	TargetParentTag TargetKind = "Parent Tag"
	TargetChildTag  TargetKind = "Child Tag"
)

// ElementCatchAllTarget is the tag name that matches every element.
const ElementCatchAllTarget = "*"

var (
	DiagnosticInvalidTargetedName = util.NewDiagnosticDescriptor(
		"RZ3001",
		"Tag helpers cannot target %s name '%s' because it contains a '%c' character.",
		util.DiagnosticSeverityError)
	DiagnosticTargetedNameNullOrWhitespace = util.NewDiagnosticDescriptor(
		"RZ3002",
		"%s name cannot be null or whitespace.",
		util.DiagnosticSeverityError)
	DiagnosticCouldNotFindMatchingEndBrace = util.NewDiagnosticDescriptor(
		"RZ3003",
		"Could not find matching ']' for required attribute '%s'.",
		util.DiagnosticSeverityError)
	DiagnosticInvalidRequiredAttributeCharacter = util.NewDiagnosticDescriptor(
		"RZ3004",
		"Invalid required attribute character '%c' in required attribute '%s'. Separate required attributes with commas.",
		util.DiagnosticSeverityError)
	DiagnosticMismatchedQuotes = util.NewDiagnosticDescriptor(
		"RZ3005",
		"Required attribute '%s' has mismatched quotes '%c' around value.",
		util.DiagnosticSeverityError)
	DiagnosticPartialRequiredAttributeOperator = util.NewDiagnosticDescriptor(
		"RZ3006",
		"Required attribute '%s' has a partial CSS operator. '%c' must be followed by an equals.",
		util.DiagnosticSeverityError)
	DiagnosticInvalidRequiredAttributeOperator = util.NewDiagnosticDescriptor(
		"RZ3007",
		"Invalid character '%c' in required attribute '%s'. Expected supported CSS operator or ']'.",
		util.DiagnosticSeverityError)
	DiagnosticTrailingRequiredAttributeSeparator = util.NewDiagnosticDescriptor(
		"RZ3008",
		"Required attribute list '%s' cannot end with ','.",
		util.DiagnosticSeverityError)
)

// ValidateName checks a targeted tag, parent tag or attribute name. It
// returns one diagnostic for an empty or whitespace name, otherwise one per
// invalid character. The catch-all target is valid as a tag name only.
func ValidateName(name string, kind TargetKind) []*util.Diagnostic {
	if kind == TargetTag && name == ElementCatchAllTarget {
		return nil
	}

	if strings.TrimFunc(name, core.IsWhitespace) == "" {
		return []*util.Diagnostic{
			util.NewDiagnostic(DiagnosticTargetedNameNullOrWhitespace, util.SourceSpanUndefined, kind),
		}
	}

	var diagnostics []*util.Diagnostic
	for _, ch := range name {
		if core.IsInvalidNameCharacter(ch) {
			diagnostics = append(diagnostics, util.NewDiagnostic(
				DiagnosticInvalidTargetedName,
				util.SourceSpanUndefined,
				strings.ToLower(string(kind)),
				name,
				ch))
		}
	}
	return diagnostics
}
