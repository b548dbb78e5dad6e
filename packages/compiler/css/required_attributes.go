package css

import (
	"strings"
	"unicode/utf8"

	"rzc-go/packages/compiler/core"
	"rzc-go/packages/compiler/util"
)

// NameComparison is how an HTML attribute name is compared to a required attribute name.
type NameComparison int

const (
	// NameComparisonFullMatch: the attribute name case insensitively equals the name.
	NameComparisonFullMatch NameComparison = iota
	// NameComparisonPrefixMatch: the attribute name case insensitively starts with,
	// and is longer than, the name.
	NameComparisonPrefixMatch
)

func (c NameComparison) String() string {
	if c == NameComparisonPrefixMatch {
		return "PrefixMatch"
	}
	return "FullMatch"
}

func (c NameComparison) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ValueComparison is how an HTML attribute value is compared to a required value.
type ValueComparison int

const (
	// ValueComparisonNone: any value matches.
	ValueComparisonNone ValueComparison = iota
	// ValueComparisonFullMatch: the value case sensitively equals the required value.
	ValueComparisonFullMatch
	// ValueComparisonPrefixMatch: the value case sensitively starts with the required value.
	ValueComparisonPrefixMatch
	// ValueComparisonSuffixMatch: the value case sensitively ends with the required value.
	ValueComparisonSuffixMatch
)

func (c ValueComparison) String() string {
	switch c {
	case ValueComparisonFullMatch:
		return "FullMatch"
	case ValueComparisonPrefixMatch:
		return "PrefixMatch"
	case ValueComparisonSuffixMatch:
		return "SuffixMatch"
	default:
		return "None"
	}
}

func (c ValueComparison) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RequiredAttributeWildcardSuffix turns a plain selector into a prefix match.
const RequiredAttributeWildcardSuffix = '*'

var cssValueComparisons = map[byte]ValueComparison{
	'=': ValueComparisonFullMatch,
	'^': ValueComparisonPrefixMatch,
	'$': ValueComparisonSuffixMatch,
}

var cssValueOperators = map[ValueComparison]string{
	ValueComparisonFullMatch:   "=",
	ValueComparisonPrefixMatch: "^=",
	ValueComparisonSuffixMatch: "$=",
}

const (
	invalidPlainAttributeNameCharacters = " \t,*"
	invalidCssAttributeNameCharacters   = " \t,]=^$"
	invalidCssQuotelessValueCharacters  = " \t]"
)

// AttributeSelector is one parsed entry of a required attributes string.
type AttributeSelector struct {
	Name            string
	NameComparison  NameComparison
	Value           string
	ValueComparison ValueComparison
}

// String serializes the selector back to required attribute syntax. The
// result parses to an equal selector.
func (s *AttributeSelector) String() string {
	if s.ValueComparison == ValueComparisonNone {
		if s.NameComparison == NameComparisonPrefixMatch {
			return s.Name + string(RequiredAttributeWildcardSuffix)
		}
		return s.Name
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(s.Name)
	sb.WriteString(cssValueOperators[s.ValueComparison])
	switch {
	case !strings.ContainsRune(s.Value, core.CharSQ):
		sb.WriteByte('\'')
		sb.WriteString(s.Value)
		sb.WriteByte('\'')
	case !strings.ContainsRune(s.Value, core.CharDQ):
		sb.WriteByte('"')
		sb.WriteString(s.Value)
		sb.WriteByte('"')
	default:
		// Only a quoteless value can hold both quote characters.
		sb.WriteString(s.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatRequiredAttributes joins selectors into a required attributes string.
//
// Selectors produced by ParseRequiredAttributes always reparse to themselves.
// The grammar has no escapes, so a value holding both quote characters is
// written quoteless and only reparses when it neither starts with a quote nor
// contains whitespace or ']'. ParseRequiredAttributes rejects any other such
// value.
func FormatRequiredAttributes(selectors []*AttributeSelector) string {
	parts := make([]string, len(selectors))
	for i, s := range selectors {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// ParseRequiredAttributes parses a comma separated list of required attribute
// selectors:
//
//	selectors     := selector (',' selector)*
//	selector      := name ['*'] | '[' name ']' | '[' name op value ']'
//	op            := '=' | '^=' | '$='
//	value         := quoted | quoteless
//
// On failure no selectors are returned, ok is false and diagnostics explain
// why. An empty string parses to no selectors.
func ParseRequiredAttributes(requiredAttributes string) (selectors []*AttributeSelector, diagnostics []*util.Diagnostic, ok bool) {
	p := &requiredAttributeParser{input: requiredAttributes}
	selectors, ok = p.parse()
	return selectors, p.diagnostics, ok
}

type requiredAttributeParser struct {
	input       string
	index       int
	diagnostics []*util.Diagnostic
}

func (p *requiredAttributeParser) parse() ([]*AttributeSelector, bool) {
	if p.input == "" {
		return []*AttributeSelector{}, true
	}

	var selectors []*AttributeSelector
	p.passOptionalWhitespace()

	for {
		var selector *AttributeSelector
		if p.at(core.CharLBRACKET) {
			selector = p.parseCssSelector()
		} else {
			selector = p.parsePlainSelector()
		}
		if selector == nil {
			return nil, false
		}
		selectors = append(selectors, selector)

		p.passOptionalWhitespace()

		if p.atEnd() {
			return selectors, true
		}

		if !p.at(core.CharCOMMA) {
			p.report(DiagnosticInvalidRequiredAttributeCharacter, p.current(), p.input)
			return nil, false
		}

		p.index++
		p.passOptionalWhitespace()

		if p.atEnd() {
			p.report(DiagnosticTrailingRequiredAttributeSeparator, p.input)
			return nil, false
		}
	}
}

func (p *requiredAttributeParser) parsePlainSelector() *AttributeSelector {
	nameComparison := NameComparisonFullMatch
	var name string

	end := strings.IndexAny(p.input[p.index:], invalidPlainAttributeNameCharacters)
	if end == -1 {
		name = p.input[p.index:]
		p.index = len(p.input)
	} else {
		name = p.input[p.index : p.index+end]
		p.index += end
		if p.input[p.index] == RequiredAttributeWildcardSuffix {
			nameComparison = NameComparisonPrefixMatch
			// Move past the wildcard.
			p.index++
		}
	}

	if !p.validateName(name) {
		return nil
	}

	return &AttributeSelector{
		Name:           name,
		NameComparison: nameComparison,
	}
}

func (p *requiredAttributeParser) parseCssSelector() *AttributeSelector {
	// Move past '['.
	p.index++
	p.passOptionalWhitespace()

	name := p.parseCssAttributeName()

	p.passOptionalWhitespace()

	if !p.ensureNotAtEnd() {
		return nil
	}

	if !p.validateName(name) {
		return nil
	}

	valueComparison, ok := p.parseCssValueComparison()
	if !ok {
		return nil
	}

	p.passOptionalWhitespace()

	if !p.ensureNotAtEnd() {
		return nil
	}

	value, ok := p.parseCssValue()
	if !ok {
		return nil
	}

	p.passOptionalWhitespace()

	switch {
	case p.at(core.CharRBRACKET):
		// Move past the closing bracket.
		p.index++
	case p.atEnd():
		p.report(DiagnosticCouldNotFindMatchingEndBrace, p.input)
		return nil
	default:
		p.report(DiagnosticInvalidRequiredAttributeCharacter, p.current(), p.input)
		return nil
	}

	return &AttributeSelector{
		Name:            name,
		NameComparison:  NameComparisonFullMatch,
		Value:           value,
		ValueComparison: valueComparison,
	}
}

func (p *requiredAttributeParser) parseCssAttributeName() string {
	start := p.index
	end := strings.IndexAny(p.input[p.index:], invalidCssAttributeNameCharacters)
	if end == -1 {
		p.index = len(p.input)
	} else {
		p.index += end
	}
	return p.input[start:p.index]
}

func (p *requiredAttributeParser) parseCssValueComparison() (ValueComparison, bool) {
	op := p.input[p.index]
	if comparison, ok := cssValueComparisons[op]; ok {
		p.index++
		if op != '=' {
			if !p.at(core.CharEQ) {
				// Incomplete operator, e.g. [foo^]
				p.report(DiagnosticPartialRequiredAttributeOperator, p.input, rune(op))
				return ValueComparisonNone, false
			}
			p.index++
		}
		return comparison, true
	}

	if !p.at(core.CharRBRACKET) {
		p.report(DiagnosticInvalidRequiredAttributeOperator, p.current(), p.input)
		return ValueComparisonNone, false
	}

	return ValueComparisonNone, true
}

func (p *requiredAttributeParser) parseCssValue() (string, bool) {
	if quote := p.current(); core.IsQuote(quote) {
		// Move past the opening quote.
		p.index++
		start := p.index
		end := strings.IndexRune(p.input[start:], quote)
		if end == -1 {
			p.report(DiagnosticMismatchedQuotes, p.input, quote)
			return "", false
		}
		p.index = start + end + 1
		return p.input[start : start+end], true
	}

	start := p.index
	end := strings.IndexAny(p.input[start:], invalidCssQuotelessValueCharacters)
	if end == -1 {
		p.index = len(p.input)
	} else {
		p.index = start + end
	}
	return p.input[start:p.index], true
}

func (p *requiredAttributeParser) validateName(name string) bool {
	diagnostics := ValidateName(name, TargetAttribute)
	if len(diagnostics) > 0 {
		p.diagnostics = append(p.diagnostics, diagnostics...)
		return false
	}
	return true
}

func (p *requiredAttributeParser) ensureNotAtEnd() bool {
	if p.atEnd() {
		p.report(DiagnosticCouldNotFindMatchingEndBrace, p.input)
		return false
	}
	return true
}

func (p *requiredAttributeParser) report(descriptor *util.DiagnosticDescriptor, args ...interface{}) {
	location := util.NewSourceLocation("", p.index, 0, p.index)
	p.diagnostics = append(p.diagnostics, util.NewDiagnostic(descriptor, util.NewSourceSpan(location, 1), args...))
}

func (p *requiredAttributeParser) current() rune {
	r, _ := utf8.DecodeRuneInString(p.input[p.index:])
	return r
}

func (p *requiredAttributeParser) at(c rune) bool {
	return !p.atEnd() && p.current() == c
}

func (p *requiredAttributeParser) atEnd() bool {
	return p.index >= len(p.input)
}

func (p *requiredAttributeParser) passOptionalWhitespace() {
	for !p.atEnd() && core.IsSelectorWhitespace(p.current()) {
		p.index++
	}
}
