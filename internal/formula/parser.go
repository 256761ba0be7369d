package formula

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

// Parse turns a formula into an AST. Failures carry
// errors.CodeUnrecognizedFormula.
func Parse(src string) (Node, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, errors.UnrecognizedFormula(src, err.Error())
	}

	p := &parser{src: src, tokens: tokens}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.fail("unexpected %q", p.peek().text)
	}
	return n, nil
}

type parser struct {
	src    string
	tokens []token
	pos    int
	// ternaryDepth is non-zero while parsing the branches of a '?', where a
	// ':' belongs to the ternary rather than to the N:M shorthand
	ternaryDepth int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) fail(format string, args ...interface{}) error {
	return errors.UnrecognizedFormulaf(p.src, format, args...).
		WithMeta("position", p.peek().pos)
}

func (p *parser) parseExpr() (Node, error) {
	return p.parseTernary()
}

func (p *parser) parseTernary() (Node, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokQuestion {
		return cond, nil
	}
	p.next()

	p.ternaryDepth++
	defer func() { p.ternaryDepth-- }()

	then, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokColon {
		return nil, p.fail("expected ':' in conditional")
	}
	p.next()
	otherwise, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &Ternary{Cond: cond, Then: then, Else: otherwise}, nil
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("||")
		if !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("&&")
		if !ok {
			return left, nil
		}
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseCompare() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := p.acceptOp("<=", ">=", "==", "!=", "<", ">")
	if !ok {
		return left, nil
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: op, L: left, R: right}, nil
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("*", "/", "%")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if op, ok := p.acceptOp("-", "!"); ok {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.peek()

	switch t.kind {
	case tokNumber:
		p.next()
		num, err := p.number(t)
		if err != nil {
			return nil, err
		}
		if p.ternaryDepth == 0 && p.peek().kind == tokColon {
			p.next()
			if p.peek().kind != tokNumber {
				return nil, p.fail("expected number after ':'")
			}
			otherwise, err := p.number(p.next())
			if err != nil {
				return nil, err
			}
			return &Shorthand{Value: num, Otherwise: otherwise}, nil
		}
		return num, nil

	case tokDice:
		p.next()
		return p.dice(t)

	case tokIdent:
		p.next()
		if p.peek().kind != tokLParen {
			return &Ident{Name: t.text}, nil
		}
		p.next()
		call := &Call{Name: t.text}
		if p.peek().kind == tokRParen {
			p.next()
			return call, nil
		}
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if p.peek().kind == tokComma {
				p.next()
				continue
			}
			if p.peek().kind != tokRParen {
				return nil, p.fail("expected ')' after arguments to %s", t.text)
			}
			p.next()
			return call, nil
		}

	case tokLParen:
		p.next()
		// a parenthesized ternary starts a fresh ':' scope
		depth := p.ternaryDepth
		p.ternaryDepth = 0
		x, err := p.parseExpr()
		p.ternaryDepth = depth
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.fail("expected ')'")
		}
		p.next()
		return &Group{X: x}, nil

	case tokEOF:
		return nil, p.fail("unexpected end of formula")
	}

	return nil, p.fail("unexpected %q", t.text)
}

func (p *parser) number(t token) (*Number, error) {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return nil, errors.UnrecognizedFormulaf(p.src, "invalid number %q", t.text)
	}
	return &Number{Text: t.text, Value: v}, nil
}

// dice validates the term with the toolkit roller without rolling it
func (p *parser) dice(t token) (*Dice, error) {
	parts := strings.SplitN(strings.ToLower(t.text), "d", 2)
	count := 1
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.UnrecognizedFormulaf(p.src, "invalid dice count in %q", t.text)
		}
		count = n
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, errors.UnrecognizedFormulaf(p.src, "invalid die size in %q", t.text)
	}

	if count <= 0 || size <= 0 {
		return nil, errors.UnrecognizedFormulaf(p.src, "dice count and size must be positive: %s", t.text)
	}
	if _, err := dice.NewRoll(count, size); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnrecognizedFormula, "invalid dice term %q", t.text)
	}

	return &Dice{Text: t.text, Count: count, Size: size}, nil
}
