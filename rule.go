package reed

// RuleInfo identifies a rule within the results it produced.  Nodes
// point to it without owning the rule.
type RuleInfo struct {
	Name string
}

// Rule is a named matcher slot that can be referenced before it's
// defined.  This is what recursive and mutually recursive grammars
// are built with:
//
//	expr := reed.NewRule[reed.Node]("expr")
//	group := reed.Sequence(open, expr, close)
//	expr.Define(reed.Choice(name, group))
//
// An undefined rule mismatches everything.  Define may be called
// again to rebind the rule, and every matcher that already captured
// it sees the new definition.  All definitions must happen before
// matching starts: once built, a grammar can be matched from many
// goroutines at once, but redefining a rule during a match is not
// allowed.
type Rule[R Result[R]] struct {
	info *RuleInfo
	expr Matcher[R]
}

// NewRule returns an undefined rule called `name`
func NewRule[R Result[R]](name string) *Rule[R] {
	return &Rule[R]{info: &RuleInfo{Name: name}}
}

// Define binds the rule to `expr`, replacing any previous definition.
// It returns the rule itself so it can be defined inline.  Rules must
// not be redefined while a match that may reach them is running.
func (r *Rule[R]) Define(expr Matcher[R]) *Rule[R] {
	r.expr = expr
	return r
}

// Defined reports whether the rule has been bound to an expression
func (r *Rule[R]) Defined() bool { return r.expr != nil }

// Info returns the identifier results produced by this rule are
// tagged with
func (r *Rule[R]) Info() *RuleInfo { return r.info }

func (r *Rule[R]) Name() string { return r.info.Name }

// Match forwards to the rule's expression and tags the result with
// the rule.  Length results ignore the tag.
func (r *Rule[R]) Match(in Input) R {
	if r.expr == nil {
		return mismatchOf[R]()
	}
	res := r.expr.Match(in)
	if res.Mismatched() {
		return res
	}
	return res.Tag(r.info)
}

// String returns the rule's name, which is how rules show up within
// other expressions
func (r *Rule[R]) String() string { return r.info.Name }

// Definition renders the rule as `name <- expression`
func (r *Rule[R]) Definition() string {
	if r.expr == nil {
		return r.info.Name + " <- <undefined>"
	}
	return r.info.Name + " <- " + describe(r.expr)
}
