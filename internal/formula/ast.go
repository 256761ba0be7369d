package formula

// Node is a parsed formula expression
type Node interface {
	node()
}

// Number is a numeric literal, kept as written
type Number struct {
	Text  string
	Value float64
}

// Dice is an NdM term
type Dice struct {
	Text  string
	Count int
	Size  int
}

// Ident is a variable reference
type Ident struct {
	Name string
}

// Call is a function application such as max(a, b)
type Call struct {
	Name string
	Args []Node
}

// Unary is a prefix operation
type Unary struct {
	Op string
	X  Node
}

// Binary is an infix operation. Op is one of + - * / % < > <= >= == != && ||.
type Binary struct {
	Op   string
	L, R Node
}

// Ternary is cond ? then : else
type Ternary struct {
	Cond, Then, Else Node
}

// Shorthand is the N:M bonus form used without a condition
type Shorthand struct {
	Value, Otherwise *Number
}

// Group is an explicitly parenthesized expression
type Group struct {
	X Node
}

func (*Number) node()    {}
func (*Dice) node()      {}
func (*Ident) node()     {}
func (*Call) node()      {}
func (*Unary) node()     {}
func (*Binary) node()    {}
func (*Ternary) node()   {}
func (*Shorthand) node() {}
func (*Group) node()     {}

// unwrap strips explicit parentheses
func unwrap(n Node) Node {
	for {
		g, ok := n.(*Group)
		if !ok {
			return n
		}
		n = g.X
	}
}

// walk visits every node depth first and stops early when fn returns false
func walk(n Node, fn func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	switch t := n.(type) {
	case *Call:
		for _, a := range t.Args {
			if !walk(a, fn) {
				return false
			}
		}
	case *Unary:
		return walk(t.X, fn)
	case *Binary:
		return walk(t.L, fn) && walk(t.R, fn)
	case *Ternary:
		return walk(t.Cond, fn) && walk(t.Then, fn) && walk(t.Else, fn)
	case *Group:
		return walk(t.X, fn)
	}
	return true
}

// contains reports whether any node satisfies fn
func contains(n Node, fn func(Node) bool) bool {
	found := false
	walk(n, func(x Node) bool {
		if fn(x) {
			found = true
			return false
		}
		return true
	})
	return found
}
