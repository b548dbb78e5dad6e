package core

import "unicode"

// Character code constants
const (
	CharTAB      = 9
	CharLF       = 10
	CharVTAB     = 11
	CharFF       = 12
	CharCR       = 13
	CharSPACE    = 32
	CharBANG     = 33
	CharDQ       = 34
	CharSQ       = 39
	CharSTAR     = 42
	CharCOMMA    = 44
	CharMINUS    = 45
	CharSLASH    = 47
	CharLT       = 60
	CharEQ       = 61
	CharGT       = 62
	CharQUESTION = 63
	CharAT       = 64

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharLBRACKET = 91
	CharRBRACKET = 93
	CharCARET    = 94
	CharDOLLAR   = 36

	CharLowerA = 97
	CharLowerZ = 122

	CharNBSP = 160
)

// InvalidNonWhitespaceNameCharacters lists the characters, besides whitespace,
// that may not appear in a tag or attribute name targeted by a tag helper.
var InvalidNonWhitespaceNameCharacters = []rune{
	CharAT, CharBANG, CharLT, CharSLASH, CharQUESTION, CharLBRACKET,
	CharGT, CharRBRACKET, CharEQ, CharDQ, CharSQ, CharSTAR,
}

// IsWhitespace checks if a character code represents whitespace
func IsWhitespace(code rune) bool {
	return unicode.IsSpace(code)
}

// IsSelectorWhitespace reports whether code is skipped between selector tokens.
// Only space and tab qualify; other whitespace is an invalid name character.
func IsSelectorWhitespace(code rune) bool {
	return code == CharSPACE || code == CharTAB
}

// IsDigit checks if a character code represents a digit
func IsDigit(code rune) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiUpper checks if a character code is an uppercase ASCII letter
func IsAsciiUpper(code rune) bool {
	return code >= CharA && code <= CharZ
}

// IsAsciiLower checks if a character code is a lowercase ASCII letter
func IsAsciiLower(code rune) bool {
	return code >= CharLowerA && code <= CharLowerZ
}

// IsAsciiLetter checks if a character code represents an ASCII letter
func IsAsciiLetter(code rune) bool {
	return IsAsciiLower(code) || IsAsciiUpper(code)
}

// IsQuote checks if a character code represents a quote character usable
// around a selector value
func IsQuote(code rune) bool {
	return code == CharSQ || code == CharDQ
}

// IsInvalidNameCharacter reports whether code may not appear in a tag or
// attribute name.
func IsInvalidNameCharacter(code rune) bool {
	if IsWhitespace(code) {
		return true
	}
	for _, c := range InvalidNonWhitespaceNameCharacters {
		if c == code {
			return true
		}
	}
	return false
}
