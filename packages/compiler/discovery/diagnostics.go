package discovery

import "rzc-go/packages/compiler/util"

var (
	DiagnosticInvalidAnnotation = util.NewDiagnosticDescriptor(
		"RZ3201",
		"Invalid annotation on '%s': %s",
		util.DiagnosticSeverityError)
	DiagnosticAttributeNameWithoutSetter = util.NewDiagnosticDescriptor(
		"RZ3202",
		"Invalid tag helper bound property '%s.%s'. '%s.%s' must be null or empty if property has no public setter.",
		util.DiagnosticSeverityError)
	DiagnosticPrefixWithoutDictionary = util.NewDiagnosticDescriptor(
		"RZ3203",
		"Invalid tag helper bound property '%s.%s'. '%s.%s' must be null unless property type implements '%s'.",
		util.DiagnosticSeverityError)
	DiagnosticPrefixRequiredWithoutSetter = util.NewDiagnosticDescriptor(
		"RZ3204",
		"Invalid tag helper bound property '%s.%s'. '%s.%s' must not be null if property has no public setter and its type implements '%s'.",
		util.DiagnosticSeverityError)
	DiagnosticAttributeNameNullOrEmpty = util.NewDiagnosticDescriptor(
		"RZ3205",
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with a null or empty name.",
		util.DiagnosticSeverityError)
	DiagnosticAttributeNameOrPrefixWhitespace = util.NewDiagnosticDescriptor(
		"RZ3206",
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with a whitespace %s.",
		util.DiagnosticSeverityError)
	DiagnosticAttributeNameOrPrefixStart = util.NewDiagnosticDescriptor(
		"RZ3207",
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attribute %s '%s' because it starts with '%s'.",
		util.DiagnosticSeverityError)
	DiagnosticAttributeNameOrPrefixCharacter = util.NewDiagnosticDescriptor(
		"RZ3208",
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attribute %s '%s' because it contains a '%c' character.",
		util.DiagnosticSeverityError)
)

const dictionaryInterfaceName = "IDictionary<string, TValue>"

func newDiagnostic(descriptor *util.DiagnosticDescriptor, args ...interface{}) *util.Diagnostic {
	return util.NewDiagnostic(descriptor, util.SourceSpanUndefined, args...)
}
