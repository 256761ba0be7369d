package formula

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var compactOps = map[string]string{
	"*": "×",
	"/": "÷",
}

// compactRenderer produces short card-face text with thematic names
type compactRenderer struct {
	dict *Dictionary
	noun string
}

func (r *compactRenderer) render(root Node) string {
	root = unwrap(root)
	terms := splitTerms(root)

	if text, ok := r.dice(terms); ok {
		return text
	}
	if hasIdent(root, "CARD_VALUE") {
		return r.cards(terms)
	}
	if hasIdent(root, "HEADS_COUNT") {
		return r.coins(root, terms)
	}

	return capitalizeFirst(Normalize(r.expr(root)))
}

func (r *compactRenderer) dice(terms []term) (string, bool) {
	d, ok := unwrap(terms[0].node).(*Dice)
	if !ok {
		return "", false
	}
	head := "Roll " + d.Text
	if len(terms) == 1 {
		return head, true
	}

	if len(terms) == 2 && terms[1].op == "+" {
		if num, ok := unwrap(terms[1].node).(*Number); ok {
			return "Cast " + d.Text + ", focus +" + num.Text, true
		}
	}

	stats := make([]string, 0, len(terms)-1)
	for _, t := range terms[1:] {
		id, ok := unwrap(t.node).(*Ident)
		if t.op != "+" || !ok {
			return "", false
		}
		stats = append(stats, r.dict.Display(id.Name))
	}
	return head + " + " + strings.Join(stats, " + "), true
}

func (r *compactRenderer) cards(terms []term) string {
	if len(terms) == 2 && terms[1].op == "+" {
		first, ok1 := unwrap(terms[0].node).(*Ident)
		stat, ok2 := unwrap(terms[1].node).(*Ident)
		if ok1 && ok2 && strings.EqualFold(first.Name, "CARD_VALUE") {
			return "Draw cards + " + r.dict.Display(stat.Name)
		}
	}
	return "Draw cards for " + r.nounOr("damage")
}

func (r *compactRenderer) coins(root Node, terms []term) string {
	var perHeads *Number
	walk(root, func(n Node) bool {
		b, ok := n.(*Binary)
		if !ok || b.Op != "*" {
			return true
		}
		l, rr := unwrap(b.L), unwrap(b.R)
		if num, ok := l.(*Number); ok {
			l, rr = rr, num
		}
		id, ok := l.(*Ident)
		num, numOK := rr.(*Number)
		if ok && numOK && strings.EqualFold(id.Name, "HEADS_COUNT") {
			perHeads = num
			return false
		}
		return true
	})

	if perHeads == nil {
		return "Flip coins for " + r.nounOr("damage")
	}

	text := "Flip fate coins, " + perHeads.Text + " per heads"
	if len(terms) == 2 && terms[1].op == "+" {
		if stat, ok := unwrap(terms[1].node).(*Ident); ok {
			text += " + " + r.dict.Display(stat.Name)
		}
	}
	return text
}

func (r *compactRenderer) expr(n Node) string {
	switch t := n.(type) {
	case *Number:
		return t.Text
	case *Dice:
		return t.Text
	case *Ident:
		return r.dict.CompactName(t.Name)
	case *Call:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = r.expr(a)
		}
		return t.Name + "(" + strings.Join(args, ", ") + ")"
	case *Unary:
		if t.Op == "!" {
			return "not " + r.expr(t.X)
		}
		return t.Op + r.expr(t.X)
	case *Binary:
		op := t.Op
		if sym, ok := compactOps[op]; ok {
			op = sym
		}
		return r.expr(t.L) + " " + op + " " + r.expr(t.R)
	case *Group:
		if _, ok := t.X.(*Ternary); ok {
			return r.expr(t.X)
		}
		return "(" + r.expr(t.X) + ")"
	case *Ternary:
		return r.ternary(t)
	case *Shorthand:
		return shorthandText(t)
	}
	return ""
}

func (r *compactRenderer) ternary(t *Ternary) string {
	then := r.expr(unwrap(t.Then))
	if id, ok := unwrap(t.Cond).(*Ident); ok {
		if v, found := r.dict.Lookup(id.Name); found && v.Condition != "" {
			if isZero(t.Else) {
				return then + " bonus if " + v.Condition
			}
			return then + " if " + v.Condition + ", otherwise " + r.expr(unwrap(t.Else))
		}
	}
	return then + " if " + r.expr(unwrap(t.Cond)) + ", otherwise " + r.expr(unwrap(t.Else))
}

func (r *compactRenderer) nounOr(def string) string {
	if r.noun == "" {
		return def
	}
	return r.noun
}

func hasIdent(n Node, name string) bool {
	return contains(n, func(x Node) bool {
		id, ok := x.(*Ident)
		return ok && strings.EqualFold(id.Name, name)
	})
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
