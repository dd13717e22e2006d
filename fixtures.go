package predlogic

// This file defines a handful of canonical combinators as ready-made
// Expression values, for use as fixtures in tests and the demo CLI that
// need a representative non-trivial lambda term without parsing one by
// hand — in particular a term with no normal form, to exercise
// SimplifyBounded.

// Identity is \x.x, the I combinator.
var Identity = Lambda{Var: Var{Name: "x"}, Body: Var{Name: "x"}}

// SelfApply is \x.x(x), sometimes called U or omega; applying it to
// itself diverges.
var SelfApply = Lambda{
	Var:  Var{Name: "x"},
	Body: App{Fun: Var{Name: "x"}, Args: []Expression{Var{Name: "x"}}},
}

// Omega is SelfApply(SelfApply), the smallest term with no normal form:
// it beta-reduces to itself forever, (\x.x(x))(\x.x(x)).
var Omega = App{Fun: SelfApply, Args: []Expression{SelfApply}}

// Y is the Y combinator, \f.(\x.f(x(x)))(\x.f(x(x))), included as a
// second, more realistic example of a divergence-capable term (Y g
// reduces to g(Y g) forever unless g itself short-circuits).
var Y = Lambda{
	Var: Var{Name: "f"},
	Body: App{
		Fun: Lambda{
			Var: Var{Name: "x"},
			Body: App{
				Fun:  Var{Name: "f"},
				Args: []Expression{App{Fun: Var{Name: "x"}, Args: []Expression{Var{Name: "x"}}}},
			},
		},
		Args: []Expression{
			Lambda{
				Var: Var{Name: "x"},
				Body: App{
					Fun:  Var{Name: "f"},
					Args: []Expression{App{Fun: Var{Name: "x"}, Args: []Expression{Var{Name: "x"}}}},
				},
			},
		},
	},
}
