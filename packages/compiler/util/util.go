package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rzc-go/packages/compiler/core"
)

// ToHtmlCase converts a pascal or camel case identifier to lower kebab-case.
//
//	SomeThing            => some-thing
//	capsONInside         => caps-on-inside
//	CAPSOnOUTSIDE        => caps-on-outside
//	ALLCAPS              => allcaps
//	One1Two2Three3       => one1-two2-three3
//	ONE1TWO2THREE3       => one1two2three3
//	First_Second_ThirdHi => first_second_third-hi
//
// A hyphen goes before an uppercase letter that is followed by a lowercase
// letter and preceded by a letter or digit, and before an uppercase letter
// preceded by a lowercase letter. Nothing is inserted at the start.
func ToHtmlCase(name string) string {
	chars := []rune(name)
	out := make([]rune, 0, len(chars)+4)
	for i, ch := range chars {
		if i > 0 && core.IsAsciiUpper(ch) {
			prev := chars[i-1]
			nextIsLower := i+1 < len(chars) && core.IsAsciiLower(chars[i+1])
			prevIsAlnum := core.IsAsciiLetter(prev) || core.IsDigit(prev)
			if (nextIsLower && prevIsAlnum) || core.IsAsciiLower(prev) {
				out = append(out, core.CharMINUS)
			}
		}
		out = append(out, ch)
	}
	// Casers keep state and are not shared between goroutines.
	return cases.Lower(language.Und).String(string(out))
}

// StringPtr returns a pointer to a copy of s
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// TrimPrefixFold reports whether s starts with prefix under Unicode simple case
// folding and returns the remainder of s after it.
func TrimPrefixFold(s, prefix string) (string, bool) {
	for prefix != "" {
		if s == "" {
			return s, false
		}
		pr, pn := utf8.DecodeRuneInString(prefix)
		sr, sn := utf8.DecodeRuneInString(s)
		if pr != sr && foldRune(pr) != foldRune(sr) {
			return s, false
		}
		prefix = prefix[pn:]
		s = s[sn:]
	}
	return s, true
}

// TrimSuffixFold reports whether s ends with suffix under Unicode simple case
// folding and returns s without it.
func TrimSuffixFold(s, suffix string) (string, bool) {
	for suffix != "" {
		if s == "" {
			return s, false
		}
		xr, xn := utf8.DecodeLastRuneInString(suffix)
		sr, sn := utf8.DecodeLastRuneInString(s)
		if xr != sr && foldRune(xr) != foldRune(sr) {
			return s, false
		}
		suffix = suffix[:len(suffix)-xn]
		s = s[:len(s)-sn]
	}
	return s, true
}

// FoldCase maps s to a canonical form such that FoldCase(a) == FoldCase(b)
// exactly when strings.EqualFold(a, b).
func FoldCase(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return strings.ToLower(s)
	}
	return strings.Map(foldRune, s)
}

// foldRune returns the smallest rune in r's simple folding orbit, or its ASCII
// lowercase form.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}
	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}
	if 'A' <= lowest && lowest <= 'Z' {
		lowest += 'a' - 'A'
	}
	return lowest
}
