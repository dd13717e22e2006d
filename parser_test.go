package predlogic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shoenig/test/must"
)

// cmpOpts lets go-cmp compare Expression values structurally; Expression
// itself isn't comparable via cmp.Diff out of the box since it holds
// unexported binOp fields, so tests compare via cmp.Diff on the
// concrete, exported-field types produced by Parse instead of on the
// interface value directly.
var cmpOpts = cmp.AllowUnexported(binOp{})

// parse(print(e)) must be alpha-equivalent to e.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"john",
		"man(x)",
		"-man(x)",
		"(man(x) & tall(x))",
		"exists x.(man(x) & tall(x))",
		`\x.man(x)`,
		`\x y.sees(x,y)`,
		`exists x.(x = john)`,
		`\P Q.exists x.(P(x) & Q(x))`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			e, err := Parse(in)
			must.NoError(t, err)

			reparsed, err := Parse(e.String())
			must.NoError(t, err)

			must.True(t, e.Equal(reparsed))
		})
	}
}

func TestParseExamplesFromSpec(t *testing.T) {
	e, err := Parse("john")
	must.NoError(t, err)
	must.Eq[Expression](t, Var{Name: "john"}, e)

	e, err = Parse("man(x)")
	must.NoError(t, err)
	must.Eq[Expression](t, App{Fun: Var{Name: "man"}, Args: []Expression{Var{Name: "x"}}}, e)

	e, err = Parse("-man(x)")
	must.NoError(t, err)
	must.Eq[Expression](t, Not{Body: App{Fun: Var{Name: "man"}, Args: []Expression{Var{Name: "x"}}}}, e)

	e, err = Parse("exists x.(x = john)")
	must.NoError(t, err)
	want := Exists{Var: Var{Name: "x"}, Body: NewEq(Var{Name: "x"}, Var{Name: "john"})}
	if diff := cmp.Diff(want, e, cmpOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAndAssociatesRight(t *testing.T) {
	e, err := Parse("(man(x) & tall(x) & walks(x))")
	must.NoError(t, err)

	top, ok := e.(And)
	must.True(t, ok)
	must.Eq(t, "man(x)", top.Left.String())
	_, ok = top.Right.(And)
	must.True(t, ok)
}

func TestParseBinderJuxtaposition(t *testing.T) {
	a, err := Parse(`\x y.sees(x,y)`)
	must.NoError(t, err)
	b, err := Parse(`\x.\y.sees(x,y)`)
	must.NoError(t, err)
	must.True(t, a.Equal(b))

	qa, err := Parse("some x y.M")
	must.NoError(t, err)
	qb, err := Parse("some x.some y.M")
	must.NoError(t, err)
	must.True(t, qa.Equal(qb))
}

func TestParseApplicationAfterLambda(t *testing.T) {
	e, err := Parse(`\x.man(x)(john)`)
	must.NoError(t, err)
	_, ok := e.(App)
	must.True(t, ok)
}

func TestParseCurriedApplicationOfMultiArgLambda(t *testing.T) {
	e, err := Parse(`\x y.sees(x,y)(a,b)`)
	must.NoError(t, err)
	must.Eq(t, "sees(a,b)", e.Simplify().String())
}

func TestParseRejectsApplicationOfNonApplicableHead(t *testing.T) {
	_, err := Parse(`\x.(P(x))(y)`)
	must.Error(t, err)
	var pe *ParseError
	must.True(t, asError(err, &pe))
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse(`\x.man(x) john`)
	must.Error(t, err)
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	_, err := Parse("man(x")
	must.Error(t, err)
}

func TestParseZeroArgApplication(t *testing.T) {
	e, err := Parse("f()")
	must.NoError(t, err)
	app, ok := e.(App)
	must.True(t, ok)
	must.Eq(t, 0, len(app.Args))
}

// asError is a tiny errors.As shim kept local to avoid importing errors
// just for this one assertion style across a handful of tests.
func asError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*target = pe
	}
	return ok
}
