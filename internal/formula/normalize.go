package formula

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	whitespace    = regexp.MustCompile(`\s+`)
	capsToken     = regexp.MustCompile(`\b[A-Z][A-Z_]+[A-Z]\b`)
	dicePattern   = regexp.MustCompile(`(?i)\d+d\d+`)

	// cases.Caser is not safe for concurrent use, so each call builds one
	titleCaser = func() cases.Caser { return cases.Title(language.English) }
)

// Normalize applies the cosmetic pass: underscores become spaces, camelCase
// is split, binary arithmetic operators get single spaces around them and
// whitespace is collapsed. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = spaceOperators(s)
	return collapse(s)
}

// spaceOperators pads + - * / with spaces. A + or - with no operand before
// it is a sign and stays attached to what follows.
func spaceOperators(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var prev rune
	sign := false
	for _, r := range s {
		if sign && unicode.IsSpace(r) {
			continue
		}
		sign = false

		switch {
		case r == '*' || r == '/',
			(r == '+' || r == '-') && endsOperand(prev):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		case r == '+' || r == '-':
			b.WriteRune(r)
			sign = true
		default:
			b.WriteRune(r)
		}

		if !unicode.IsSpace(r) {
			prev = r
		}
	}
	return b.String()
}

func endsOperand(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == ')' || r == ']' || r == '.' || r == '%'
}

// Humanize rewrites CAPS_WITH_UNDERSCORES tokens into Title Case words.
// Abbreviations from the dictionary are kept as written.
func Humanize(text string, dict *Dictionary) string {
	return capsToken.ReplaceAllStringFunc(text, func(tok string) string {
		return humanizeToken(tok, dict)
	})
}

func humanizeToken(tok string, dict *Dictionary) string {
	if dict.IsAbbreviation(tok) {
		return tok
	}
	words := strings.FieldsFunc(tok, func(r rune) bool { return r == '_' })
	caser := titleCaser()
	for i, w := range words {
		if dict.IsAbbreviation(w) {
			continue
		}
		words[i] = caser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func isCapsToken(s string) bool {
	return capsToken.MatchString(s) && capsToken.FindString(s) == s
}

// titleWords title cases a snake_case or spaced phrase
func titleWords(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser().String(strings.ToLower(collapse(s)))
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// IsDice reports whether the formula contains a dice term
func IsDice(formula string) bool {
	return dicePattern.MatchString(formula)
}
