package predlogic

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Expression is the interface implemented by every node of the abstract
// syntax: variables, applications, the three binders, negation, and the
// five binary connectives. All implementations are immutable; every
// rewriting operation returns a new value.
type Expression interface {
	fmt.Stringer
	// Free returns the set of variables occurring free in the expression.
	Free() *set.Set[Var]
	// Substitute replaces free occurrences of v with e. When
	// replaceBound is true and the receiver is a binder whose bound
	// variable is v, the binder itself is renamed instead of shadowed;
	// this is the only mechanism AlphaConvert uses, and e must be a Var
	// in that case.
	Substitute(v Var, e Expression, replaceBound bool) Expression
	// Simplify performs beta-reduction on applications of lambdas and
	// recurses into all children. It may not terminate on divergent
	// terms; see SimplifyBounded for a cancellable variant.
	Simplify() Expression
	// Equal compares two expressions modulo alpha-renaming of bound
	// variables.
	Equal(other Expression) bool
}

// Var is a variable occurrence, also used as a nullary predicate when it
// stands alone, and as the bound-variable slot of a binder.
type Var struct {
	Name string
}

func NewVar(name string) Var { return Var{Name: name} }

func (v Var) String() string { return v.Name }

func (v Var) Free() *set.Set[Var] {
	return set.From([]Var{v})
}

func (v Var) Substitute(target Var, e Expression, replaceBound bool) Expression {
	if v == target {
		return e
	}
	return v
}

func (v Var) Simplify() Expression { return v }

func (v Var) Equal(other Expression) bool {
	ov, ok := other.(Var)
	return ok && v == ov
}

// App is fun applied to one or more arguments. The multi-argument form
// is purely syntactic sugar for curried application: the algebra treats
// App uniformly regardless of len(Args).
type App struct {
	Fun  Expression
	Args []Expression
}

// NewApp builds an App applying fun to args. Args is non-empty in the
// ordinary case, but the grammar also accepts the zero-argument
// parenthesized form f() — allowed here via an empty args slice, which
// String renders as "f()".
func NewApp(fun Expression, args ...Expression) App {
	return App{Fun: fun, Args: args}
}

func (a App) String() string {
	fun := a.Fun.String()
	switch f := a.Fun.(type) {
	case App:
		fun = "(" + fun + ")"
	case Lambda:
		if body, ok := f.Body.(App); ok {
			if _, isVar := body.Fun.(Var); !isVar {
				fun = "(" + fun + ")"
			}
		} else if !isBooleanExpression(f.Body) {
			fun = "(" + fun + ")"
		}
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return fun + "(" + strings.Join(parts, ",") + ")"
}

func (a App) Free() *set.Set[Var] {
	fv := a.Fun.Free()
	for _, arg := range a.Args {
		fv = fv.Union(arg.Free())
	}
	return fv
}

func (a App) Substitute(v Var, e Expression, replaceBound bool) Expression {
	args := make([]Expression, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Substitute(v, e, replaceBound)
	}
	return App{Fun: a.Fun.Substitute(v, e, replaceBound), Args: args}
}

func (a App) Simplify() Expression {
	accum := a.Fun.Simplify()

	lam, ok := accum.(Lambda)
	if !ok {
		args := make([]Expression, len(a.Args))
		for i, arg := range a.Args {
			args[i] = arg.Simplify()
		}
		return App{Fun: accum, Args: args}
	}

	cur := lam
	var rest Expression = cur
	for _, arg := range a.Args {
		argS := arg.Simplify()
		if body, stillLambda := rest.(Lambda); stillLambda {
			rest = body.Body.Substitute(body.Var, argS, false).Simplify()
		} else {
			rest = App{Fun: rest, Args: []Expression{argS}}
		}
	}
	return rest
}

func (a App) Equal(other Expression) bool {
	oa, ok := other.(App)
	if !ok || len(a.Args) != len(oa.Args) {
		return false
	}
	if !a.Fun.Equal(oa.Fun) {
		return false
	}
	for i, arg := range a.Args {
		if !arg.Equal(oa.Args[i]) {
			return false
		}
	}
	return true
}

// ApplyTo builds an App applying e to args, treating a single-argument
// call the same way the multi-argument parser production does. It is
// the programmatic counterpart to the parser's Var '(' ArgList ')' and
// post-lambda application productions.
func ApplyTo(e Expression, args ...Expression) Expression {
	return App{Fun: e, Args: args}
}

// Negate wraps e in a Not; the programmatic counterpart to writing -e by
// hand.
func Negate(e Expression) Expression {
	return Not{Body: e}
}

// Lambda is a lambda abstraction, \v.body.
type Lambda struct {
	Var  Var
	Body Expression
}

func NewLambda(v Var, body Expression) Lambda { return Lambda{Var: v, Body: body} }

func (l Lambda) String() string {
	return lexeme(lambdaTok) + l.Var.String() + lexeme(dotTok) + l.Body.String()
}

func (l Lambda) Free() *set.Set[Var] { return binderFree(l.Var, l.Body) }

func (l Lambda) Substitute(v Var, e Expression, replaceBound bool) Expression {
	newVar, newBody := binderSubstitute(l.Var, l.Body, v, e, replaceBound)
	return Lambda{Var: newVar, Body: newBody}
}

func (l Lambda) Simplify() Expression {
	return Lambda{Var: l.Var, Body: l.Body.Simplify()}
}

func (l Lambda) Equal(other Expression) bool {
	ol, ok := other.(Lambda)
	if !ok {
		return false
	}
	return binderEqual(l.Var, l.Body, ol.Var, ol.Body)
}

// AlphaConvert renames the variable bound by l to newVar throughout its
// scope, returning a new Lambda. This is the only legitimate caller of
// Substitute with replaceBound=true.
func (l Lambda) AlphaConvert(newVar Var) Lambda {
	return Lambda{Var: newVar, Body: l.Body.Substitute(l.Var, newVar, true)}
}

// Exists is existential quantification, "exists v.body".
type Exists struct {
	Var  Var
	Body Expression
}

func NewExists(v Var, body Expression) Exists { return Exists{Var: v, Body: body} }

func (q Exists) String() string {
	return lexeme(existsTok) + " " + q.Var.String() + lexeme(dotTok) + q.Body.String()
}

func (q Exists) Free() *set.Set[Var] { return binderFree(q.Var, q.Body) }

func (q Exists) Substitute(v Var, e Expression, replaceBound bool) Expression {
	newVar, newBody := binderSubstitute(q.Var, q.Body, v, e, replaceBound)
	return Exists{Var: newVar, Body: newBody}
}

func (q Exists) Simplify() Expression {
	return Exists{Var: q.Var, Body: q.Body.Simplify()}
}

func (q Exists) Equal(other Expression) bool {
	oq, ok := other.(Exists)
	if !ok {
		return false
	}
	return binderEqual(q.Var, q.Body, oq.Var, oq.Body)
}

func (q Exists) AlphaConvert(newVar Var) Exists {
	return Exists{Var: newVar, Body: q.Body.Substitute(q.Var, newVar, true)}
}

// ForAll is universal quantification, "all v.body".
type ForAll struct {
	Var  Var
	Body Expression
}

func NewForAll(v Var, body Expression) ForAll { return ForAll{Var: v, Body: body} }

func (q ForAll) String() string {
	return lexeme(allTok) + " " + q.Var.String() + lexeme(dotTok) + q.Body.String()
}

func (q ForAll) Free() *set.Set[Var] { return binderFree(q.Var, q.Body) }

func (q ForAll) Substitute(v Var, e Expression, replaceBound bool) Expression {
	newVar, newBody := binderSubstitute(q.Var, q.Body, v, e, replaceBound)
	return ForAll{Var: newVar, Body: newBody}
}

func (q ForAll) Simplify() Expression {
	return ForAll{Var: q.Var, Body: q.Body.Simplify()}
}

func (q ForAll) Equal(other Expression) bool {
	oq, ok := other.(ForAll)
	if !ok {
		return false
	}
	return binderEqual(q.Var, q.Body, oq.Var, oq.Body)
}

func (q ForAll) AlphaConvert(newVar Var) ForAll {
	return ForAll{Var: newVar, Body: q.Body.Substitute(q.Var, newVar, true)}
}

// binderFree implements "binders subtract their bound variable" for all
// three binder shapes.
func binderFree(v Var, body Expression) *set.Set[Var] {
	fv := body.Free().Copy()
	fv.Remove(v)
	return fv
}

// binderSubstitute implements the shared four-case substitution contract
// for Lambda/Exists/ForAll alike, returning the binder's new (variable,
// body) pair.
func binderSubstitute(v Var, body Expression, target Var, e Expression, replaceBound bool) (Var, Expression) {
	if v == target {
		if !replaceBound {
			// shadowed: substitution does not reach into this scope.
			return v, body
		}
		// renaming a binder requires a fresh Var, never an arbitrary term.
		newVar, ok := e.(Var)
		if !ok {
			panic("predlogic: replaceBound substitution requires a Var replacement")
		}
		return newVar, body.Substitute(v, e, true)
	}

	if v2, fresh := avoidCapture(v, body, e); fresh {
		return v2, body.Substitute(v, v2, true).Substitute(target, e, replaceBound)
	}
	return v, body.Substitute(target, e, replaceBound)
}

// avoidCapture reports whether v must be alpha-renamed before
// substituting e for some other variable in body, returning the fresh
// variable to rename to when it does.
func avoidCapture(v Var, body Expression, e Expression) (Var, bool) {
	if !e.Free().Contains(v) {
		return Var{}, false
	}
	return FreshAvoiding(body.Free().Union(e.Free())), true
}

// binderEqual implements the alpha-equality rule for binders: equal
// variables compare bodies directly, otherwise the right body is
// renamed to the left's variable before comparing.
func binderEqual(v1 Var, body1 Expression, v2 Var, body2 Expression) bool {
	if v1 == v2 {
		return body1.Equal(body2)
	}
	return body1.Equal(body2.Substitute(v2, v1, false))
}

// Not is logical negation.
type Not struct {
	Body Expression
}

func NewNot(body Expression) Not { return Not{Body: body} }

func (n Not) String() string { return lexeme(notTok) + n.Body.String() }

func (n Not) Free() *set.Set[Var] { return n.Body.Free() }

func (n Not) Substitute(v Var, e Expression, replaceBound bool) Expression {
	return Not{Body: n.Body.Substitute(v, e, replaceBound)}
}

// Simplify is a fixed point for Not: the algebra does not push negation
// inward.
func (n Not) Simplify() Expression { return n }

func (n Not) Equal(other Expression) bool {
	on, ok := other.(Not)
	return ok && n.Body.Equal(on.Body)
}

// binOp is the shared shape of the five binary connectives. Each
// exported type (And, Or, Imp, Iff, Eq) is a thin wrapper that supplies
// its operator lexeme and its own type identity for Equal/Substitute, so
// that free/replace/simplify logic is written exactly once.
type binOp struct {
	Left, Right Expression
}

func (b binOp) free() *set.Set[Var] {
	return b.Left.Free().Union(b.Right.Free())
}

func (b binOp) simplify() (Expression, Expression) {
	return b.Left.Simplify(), b.Right.Simplify()
}

func (b binOp) substitute(v Var, e Expression, replaceBound bool) (Expression, Expression) {
	return b.Left.Substitute(v, e, replaceBound), b.Right.Substitute(v, e, replaceBound)
}

// And is logical conjunction.
type And struct{ binOp }

func NewAnd(left, right Expression) And { return And{binOp{left, right}} }
func (b And) String() string           { return printBinOp(lexeme(andTok), b.Left, b.Right) }
func (b And) Simplify() Expression     { l, r := b.simplify(); return And{binOp{l, r}} }
func (b And) Substitute(v Var, e Expression, rb bool) Expression {
	l, r := b.substitute(v, e, rb)
	return And{binOp{l, r}}
}
func (b And) Equal(other Expression) bool {
	o, ok := other.(And)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Or is logical disjunction.
type Or struct{ binOp }

func NewOr(left, right Expression) Or { return Or{binOp{left, right}} }
func (b Or) String() string          { return printBinOp(lexeme(orTok), b.Left, b.Right) }
func (b Or) Simplify() Expression    { l, r := b.simplify(); return Or{binOp{l, r}} }
func (b Or) Substitute(v Var, e Expression, rb bool) Expression {
	l, r := b.substitute(v, e, rb)
	return Or{binOp{l, r}}
}
func (b Or) Equal(other Expression) bool {
	o, ok := other.(Or)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Imp is material implication.
type Imp struct{ binOp }

func NewImp(left, right Expression) Imp { return Imp{binOp{left, right}} }
func (b Imp) String() string           { return printBinOp(lexeme(impTok), b.Left, b.Right) }
func (b Imp) Simplify() Expression     { l, r := b.simplify(); return Imp{binOp{l, r}} }
func (b Imp) Substitute(v Var, e Expression, rb bool) Expression {
	l, r := b.substitute(v, e, rb)
	return Imp{binOp{l, r}}
}
func (b Imp) Equal(other Expression) bool {
	o, ok := other.(Imp)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Iff is the biconditional.
type Iff struct{ binOp }

func NewIff(left, right Expression) Iff { return Iff{binOp{left, right}} }
func (b Iff) String() string           { return printBinOp(lexeme(iffTok), b.Left, b.Right) }
func (b Iff) Simplify() Expression     { l, r := b.simplify(); return Iff{binOp{l, r}} }
func (b Iff) Substitute(v Var, e Expression, rb bool) Expression {
	l, r := b.substitute(v, e, rb)
	return Iff{binOp{l, r}}
}
func (b Iff) Equal(other Expression) bool {
	o, ok := other.(Iff)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Eq is first-order equality between terms.
type Eq struct{ binOp }

func NewEq(left, right Expression) Eq { return Eq{binOp{left, right}} }
func (b Eq) String() string          { return printBinOp(lexeme(eqTok), b.Left, b.Right) }
func (b Eq) Simplify() Expression    { l, r := b.simplify(); return Eq{binOp{l, r}} }
func (b Eq) Substitute(v Var, e Expression, rb bool) Expression {
	l, r := b.substitute(v, e, rb)
	return Eq{binOp{l, r}}
}
func (b Eq) Equal(other Expression) bool {
	o, ok := other.(Eq)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Free is promoted from the embedded binOp; these declarations check at
// compile time that every binary connective satisfies Expression.
var (
	_ Expression = And{}
	_ Expression = Or{}
	_ Expression = Imp{}
	_ Expression = Iff{}
	_ Expression = Eq{}
)

func printBinOp(op string, left, right Expression) string {
	return Tokens.Open + left.String() + " " + op + " " + right.String() + Tokens.Close
}

func isBooleanExpression(e Expression) bool {
	switch e.(type) {
	case And, Or, Imp, Iff, Eq:
		return true
	default:
		return false
	}
}

// Free is promoted from binOp for every binary connective type.
func (b binOp) Free() *set.Set[Var] { return b.free() }
