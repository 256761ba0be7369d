package formula

import (
	"math"
	"strconv"
	"strings"
)

type termKind int

const (
	termExpr termKind = iota
	termPhrase
	// termEqual phrases read "<noun> equal to ..." and take " plus " after them
	termEqual
)

type term struct {
	op   string
	node Node
}

type rendered struct {
	text string
	kind termKind
}

var comparisonWords = map[string]string{
	"<":  "is less than",
	">":  "is above",
	"<=": "is at most",
	">=": "is at least",
	"==": "is",
	"!=": "is not",
}

var ordinals = map[int]string{
	2:  "half",
	3:  "third",
	4:  "quarter",
	5:  "fifth",
	6:  "sixth",
	8:  "eighth",
	10: "tenth",
}

var sacrificeResources = map[string]string{
	"currentmana":   "mana",
	"currenthealth": "health",
}

// sentenceRenderer produces full English sentences for a formula tree
type sentenceRenderer struct {
	dict *Dictionary
	noun string
}

func (r *sentenceRenderer) render(root Node) string {
	terms := splitTerms(unwrap(root))

	parts := make([]rendered, len(terms))
	anyPhrase := false
	for i, t := range terms {
		if p, ok := r.phrase(t.node); ok {
			parts[i] = p
			anyPhrase = true
			continue
		}
		parts[i] = rendered{text: r.exprText(t.node)}
	}

	if !anyPhrase {
		return r.exprText(root)
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			switch {
			case terms[i].op == "-":
				b.WriteString(", minus ")
			case parts[i-1].kind == termEqual:
				b.WriteString(" plus ")
			default:
				b.WriteString(", plus ")
			}
		}
		b.WriteString(p.text)
	}
	return collapse(b.String())
}

// splitTerms flattens the left spine of top-level additions and
// subtractions
func splitTerms(n Node) []term {
	b, ok := n.(*Binary)
	if !ok || (b.Op != "+" && b.Op != "-") {
		return []term{{node: n}}
	}
	left := splitTerms(b.L)
	return append(left, term{op: b.Op, node: b.R})
}

// phrase renders a term as natural language when a rule covers it
func (r *sentenceRenderer) phrase(n Node) (rendered, bool) {
	switch t := unwrap(n).(type) {
	case *Ternary:
		return rendered{text: r.ternary(t), kind: termPhrase}, true

	case *Shorthand:
		return rendered{text: shorthandText(t), kind: termPhrase}, true

	case *Ident:
		if v, ok := r.dict.Lookup(t.Name); ok && v.EqualTo != "" {
			return rendered{text: r.withNoun("", "equal to "+v.EqualTo), kind: termEqual}, true
		}

	case *Binary:
		if t.Op != "*" {
			break
		}
		v, k, ok := r.scaledVariable(t)
		if !ok {
			break
		}
		switch {
		case v.PerUnit != "" && v.Penalty:
			return rendered{text: r.withNoun(k.Text, "penalty per "+v.PerUnit), kind: termPhrase}, true
		case v.PerUnit != "":
			return rendered{text: r.withNoun(k.Text, "per "+v.PerUnit), kind: termPhrase}, true
		case v.Share != "":
			return rendered{text: percent(k.Value) + " of " + v.Share + r.asNoun(), kind: termPhrase}, true
		}
	}
	return rendered{}, false
}

func (r *sentenceRenderer) ternary(t *Ternary) string {
	cond := unwrap(t.Cond)
	elseZero := isZero(t.Else)

	if text, ok := r.sacrifice(cond, t); ok {
		return text
	}
	if text, ok := r.threshold(cond, t); ok {
		return text
	}

	var condText string
	bonus := false
	if id, ok := cond.(*Ident); ok {
		if v, found := r.dict.Lookup(id.Name); found && v.Condition != "" {
			condText = v.Condition
			bonus = true
		}
	}
	if condText == "" {
		condText = r.condition(cond)
		bonus = isResourceThreshold(cond)
	}

	if elseZero {
		return r.branch(t.Then, bonus) + " if " + condText
	}
	return r.branch(t.Then, false) + " if " + condText + ", otherwise " + r.branch(t.Else, false)
}

// hasNestedThen reports whether any conditional's true branch is itself a
// conditional. Those read ambiguously as "x if a if b" in sentence form.
func hasNestedThen(n Node) bool {
	return contains(n, func(x Node) bool {
		t, ok := x.(*Ternary)
		if !ok {
			return false
		}
		_, nested := unwrap(t.Then).(*Ternary)
		return nested
	})
}

// sacrifice covers currentMana >= T ? currentMana / D : F
func (r *sentenceRenderer) sacrifice(cond Node, t *Ternary) (string, bool) {
	cmp, ok := cond.(*Binary)
	if !ok || cmp.Op != ">=" {
		return "", false
	}
	res, ok := unwrap(cmp.L).(*Ident)
	if !ok {
		return "", false
	}
	resource, ok := sacrificeResources[strings.ToLower(res.Name)]
	if !ok {
		return "", false
	}
	threshold, ok := unwrap(cmp.R).(*Number)
	if !ok {
		return "", false
	}
	div, ok := unwrap(t.Then).(*Binary)
	if !ok || div.Op != "/" {
		return "", false
	}
	if id, ok := unwrap(div.L).(*Ident); !ok || !strings.EqualFold(id.Name, res.Name) {
		return "", false
	}
	d, ok := unwrap(div.R).(*Number)
	if !ok {
		return "", false
	}

	text := "one-" + ordinal(int(d.Value)) + " of " + r.dict.Display(res.Name) +
		" if you have at least " + threshold.Text + " " + resource
	if !isZero(t.Else) {
		text += ", otherwise " + r.branch(t.Else, false)
	}
	return text, true
}

// threshold covers X > N ? X * k : 0 for per-unit variables
func (r *sentenceRenderer) threshold(cond Node, t *Ternary) (string, bool) {
	if !isZero(t.Else) {
		return "", false
	}
	cmp, ok := cond.(*Binary)
	if !ok || (cmp.Op != ">" && cmp.Op != ">=") {
		return "", false
	}
	subject, ok := unwrap(cmp.L).(*Ident)
	if !ok {
		return "", false
	}
	limit, ok := unwrap(cmp.R).(*Number)
	if !ok {
		return "", false
	}
	product, ok := unwrap(t.Then).(*Binary)
	if !ok || product.Op != "*" {
		return "", false
	}
	v, k, ok := r.scaledVariable(product)
	if !ok || v.PerUnit == "" {
		return "", false
	}
	if sv, found := r.dict.Lookup(subject.Name); !found || sv != v {
		return "", false
	}

	atLeast := limit.Value
	if cmp.Op == ">" {
		atLeast++
	}
	name := v.Subject
	if name == "" {
		name = strings.ToLower(v.Display)
	}
	return r.withNoun(k.Text, "per "+v.PerUnit) + " if " + name + " is " + formatNumber(atLeast) + " or more", true
}

// scaledVariable matches ident * number in either order
func (r *sentenceRenderer) scaledVariable(b *Binary) (*Variable, *Number, bool) {
	l, rr := unwrap(b.L), unwrap(b.R)
	if num, ok := l.(*Number); ok {
		l, rr = rr, num
	}
	id, ok := l.(*Ident)
	if !ok {
		return nil, nil, false
	}
	num, ok := rr.(*Number)
	if !ok {
		return nil, nil, false
	}
	v, ok := r.dict.Lookup(id.Name)
	if !ok {
		return nil, nil, false
	}
	return v, num, true
}

func (r *sentenceRenderer) condition(n Node) string {
	switch t := unwrap(n).(type) {
	case *Binary:
		if word, ok := comparisonWords[t.Op]; ok {
			return r.condition(t.L) + " " + word + " " + r.condition(t.R)
		}
		switch t.Op {
		case "&&":
			return r.condition(t.L) + " and " + r.condition(t.R)
		case "||":
			return r.condition(t.L) + " or " + r.condition(t.R)
		case "/":
			if num, ok := unwrap(t.R).(*Number); ok && num.Value == 2 {
				return "half of " + r.condition(t.L)
			}
		case "*":
			if num, ok := unwrap(t.R).(*Number); ok && num.Value > 0 && num.Value < 1 {
				return percent(num.Value) + " of " + r.condition(t.L)
			}
		}
	case *Unary:
		if t.Op == "!" {
			return "not " + r.condition(t.X)
		}
	case *Ident:
		if v, ok := r.dict.Lookup(t.Name); ok && v.Condition != "" {
			return v.Condition
		}
	}
	return r.exprText(n)
}

// branch renders one side of a conditional with the effect noun attached
func (r *sentenceRenderer) branch(n Node, bonus bool) string {
	if p, ok := r.phrase(n); ok {
		return p.text
	}
	value := r.exprText(n)
	if bonus {
		value += " bonus"
	}
	return r.withNoun(value, "")
}

func (r *sentenceRenderer) exprText(n Node) string {
	return Normalize(r.expr(n))
}

// expr renders arithmetic with variables replaced by display names
func (r *sentenceRenderer) expr(n Node) string {
	switch t := n.(type) {
	case *Number:
		return t.Text
	case *Dice:
		return t.Text
	case *Ident:
		return r.dict.Display(t.Name)
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
		return r.expr(t.L) + " " + t.Op + " " + r.expr(t.R)
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

// withNoun joins a value, the effect noun and a trailing phrase
func (r *sentenceRenderer) withNoun(value, rest string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{value, r.noun, rest} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (r *sentenceRenderer) asNoun() string {
	if r.noun == "" {
		return ""
	}
	return " as " + r.noun
}

func shorthandText(s *Shorthand) string {
	if s.Otherwise == nil || s.Otherwise.Value == 0 {
		return s.Value.Text + " bonus if condition is met"
	}
	return s.Value.Text + " if condition is met, otherwise " + s.Otherwise.Text
}

// isResourceThreshold reports whether a condition compares a current
// resource against its maximum
func isResourceThreshold(n Node) bool {
	cmp, ok := n.(*Binary)
	if !ok {
		return false
	}
	if _, ok := comparisonWords[cmp.Op]; !ok {
		return false
	}
	cur, ok := unwrap(cmp.L).(*Ident)
	if !ok || !strings.HasPrefix(strings.ToLower(cur.Name), "current") {
		return false
	}
	return contains(cmp.R, func(x Node) bool {
		id, ok := x.(*Ident)
		return ok && strings.HasPrefix(strings.ToLower(id.Name), "max")
	})
}

func isZero(n Node) bool {
	num, ok := unwrap(n).(*Number)
	return ok && num.Value == 0
}

func ordinal(d int) string {
	if o, ok := ordinals[d]; ok {
		return o
	}
	return strconv.Itoa(d) + "th"
}

func percent(fraction float64) string {
	return formatNumber(math.Round(fraction*10000)/100) + "%"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
