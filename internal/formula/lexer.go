package formula

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokDice
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokQuestion
	tokColon
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var multiCharOps = []string{"<=", ">=", "==", "!=", "&&", "||"}

// lex splits a formula into tokens. Dice terms are recognized here so the
// parser never has to split "2d6" out of an identifier.
func lex(src string) ([]token, error) {
	var tokens []token
	runes := []rune(src)
	i := 0

	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			if i+1 < len(runes) && (runes[i] == 'd' || runes[i] == 'D') && unicode.IsDigit(runes[i+1]) {
				i++
				for i < len(runes) && unicode.IsDigit(runes[i]) {
					i++
				}
				tokens = append(tokens, token{kind: tokDice, text: string(runes[start:i]), pos: start})
				continue
			}
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i]), pos: start})

		case r == 'd' || r == 'D':
			// "d20" without a count
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) && (i == 0 || !isIdentRune(runes[i-1])) {
				start := i
				i++
				for i < len(runes) && unicode.IsDigit(runes[i]) {
					i++
				}
				if i >= len(runes) || !isIdentRune(runes[i]) {
					tokens = append(tokens, token{kind: tokDice, text: string(runes[start:i]), pos: start})
					continue
				}
				i = start
			}
			tokens = append(tokens, lexIdent(runes, &i))

		case unicode.IsLetter(r) || r == '_':
			tokens = append(tokens, lexIdent(runes, &i))

		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == '?':
			tokens = append(tokens, token{kind: tokQuestion, text: "?", pos: i})
			i++
		case r == ':':
			tokens = append(tokens, token{kind: tokColon, text: ":", pos: i})
			i++
		case r == ',':
			tokens = append(tokens, token{kind: tokComma, text: ",", pos: i})
			i++

		default:
			rest := string(runes[i:])
			matched := false
			for _, op := range multiCharOps {
				if strings.HasPrefix(rest, op) {
					tokens = append(tokens, token{kind: tokOp, text: op, pos: i})
					i += len([]rune(op))
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			switch r {
			case '+', '-', '*', '/', '%', '<', '>', '!':
				tokens = append(tokens, token{kind: tokOp, text: string(r), pos: i})
			case '×':
				tokens = append(tokens, token{kind: tokOp, text: "*", pos: i})
			case '÷':
				tokens = append(tokens, token{kind: tokOp, text: "/", pos: i})
			default:
				return nil, fmt.Errorf("unexpected character %q at %d", r, i)
			}
			i++
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

func lexIdent(runes []rune, i *int) token {
	start := *i
	for *i < len(runes) && isIdentRune(runes[*i]) {
		*i++
	}
	return token{kind: tokIdent, text: string(runes[start:*i]), pos: start}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
