package taghelpers

import (
	"strings"

	"rzc-go/packages/compiler/css"
	"rzc-go/packages/compiler/util"
)

type (
	NameComparisonMode  = css.NameComparison
	ValueComparisonMode = css.ValueComparison
)

const (
	NameComparisonFullMatch   = css.NameComparisonFullMatch
	NameComparisonPrefixMatch = css.NameComparisonPrefixMatch

	ValueComparisonNone        = css.ValueComparisonNone
	ValueComparisonFullMatch   = css.ValueComparisonFullMatch
	ValueComparisonPrefixMatch = css.ValueComparisonPrefixMatch
	ValueComparisonSuffixMatch = css.ValueComparisonSuffixMatch
)

// RequiredAttributeDescriptor is one attribute a TagMatchingRule requires on
// an element.
type RequiredAttributeDescriptor struct {
	Name            string
	NameComparison  NameComparisonMode
	Value           string
	ValueComparison ValueComparisonMode
	Diagnostics     []*util.Diagnostic
}

// HasErrors reports whether the descriptor carries an error diagnostic.
func (d *RequiredAttributeDescriptor) HasErrors() bool {
	return util.HasErrors(d.Diagnostics)
}

// IsMatch reports whether an HTML attribute satisfies the descriptor. Names
// compare case-insensitively and values case-sensitively.
func (d *RequiredAttributeDescriptor) IsMatch(name, value string) bool {
	var nameMatches bool
	switch d.NameComparison {
	case NameComparisonPrefixMatch:
		rest, ok := util.TrimPrefixFold(name, d.Name)
		nameMatches = ok && rest != ""
	default:
		nameMatches = strings.EqualFold(name, d.Name)
	}
	if !nameMatches {
		return false
	}

	switch d.ValueComparison {
	case ValueComparisonFullMatch:
		return value == d.Value
	case ValueComparisonPrefixMatch:
		return strings.HasPrefix(value, d.Value)
	case ValueComparisonSuffixMatch:
		return strings.HasSuffix(value, d.Value)
	default:
		return true
	}
}

// Selector returns the selector syntax equivalent of the descriptor.
func (d *RequiredAttributeDescriptor) Selector() *css.AttributeSelector {
	return &css.AttributeSelector{
		Name:            d.Name,
		NameComparison:  d.NameComparison,
		Value:           d.Value,
		ValueComparison: d.ValueComparison,
	}
}

func (d *RequiredAttributeDescriptor) String() string {
	return d.Selector().String()
}
