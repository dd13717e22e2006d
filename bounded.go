package predlogic

import "context"

// SimplifyBounded performs the same simplification as Simplify, but
// checks ctx for cancellation and stops early if it fires. Simplify
// itself is total and unbounded — non-termination of a divergent term
// (the classic self-application combinator, for instance) is a caller
// concern — so a caller that cannot guarantee termination should run the
// engine through this context-aware wrapper instead, the standard Go
// idiom for cancelling a possibly-divergent computation.
//
// A term like Omega beta-reduces to itself forever: each reduction step
// produces an expression structurally identical to the last. Detecting
// cancellation for such a term requires the repeated reduction to run as
// a loop rather than as nested calls, so a stuck goroutine runs out of
// wall-clock budget instead of stack space; simplifyAppBounded is
// written as that loop.
//
// It returns the partially-simplified expression and false when
// cancelled, or the fully-simplified expression and true otherwise.
func SimplifyBounded(ctx context.Context, e Expression) (Expression, bool) {
	select {
	case <-ctx.Done():
		return e, false
	default:
	}

	switch t := e.(type) {
	case Var:
		return t, true
	case Not:
		return t, true
	case App:
		return simplifyAppBounded(ctx, t)
	case Lambda:
		body, ok := SimplifyBounded(ctx, t.Body)
		return Lambda{Var: t.Var, Body: body}, ok
	case Exists:
		body, ok := SimplifyBounded(ctx, t.Body)
		return Exists{Var: t.Var, Body: body}, ok
	case ForAll:
		body, ok := SimplifyBounded(ctx, t.Body)
		return ForAll{Var: t.Var, Body: body}, ok
	case And:
		l, r, ok := simplifyPairBounded(ctx, t.Left, t.Right)
		return And{binOp{l, r}}, ok
	case Or:
		l, r, ok := simplifyPairBounded(ctx, t.Left, t.Right)
		return Or{binOp{l, r}}, ok
	case Imp:
		l, r, ok := simplifyPairBounded(ctx, t.Left, t.Right)
		return Imp{binOp{l, r}}, ok
	case Iff:
		l, r, ok := simplifyPairBounded(ctx, t.Left, t.Right)
		return Iff{binOp{l, r}}, ok
	case Eq:
		l, r, ok := simplifyPairBounded(ctx, t.Left, t.Right)
		return Eq{binOp{l, r}}, ok
	default:
		return e, true
	}
}

// simplifyAppBounded drives an App's beta-reduction to completion. Each
// pass substitutes one application's worth of arguments and loops back
// around on the result rather than recursing into SimplifyBounded, so a
// term that keeps re-forming the same App shape (non-termination) spins
// the loop instead of growing the call stack.
func simplifyAppBounded(ctx context.Context, a App) (Expression, bool) {
	var cur Expression = a
	for {
		select {
		case <-ctx.Done():
			return cur, false
		default:
		}

		app, isApp := cur.(App)
		if !isApp {
			return SimplifyBounded(ctx, cur)
		}

		fn, ok := SimplifyBounded(ctx, app.Fun)
		if !ok {
			return App{Fun: fn, Args: app.Args}, false
		}

		lam, isLambda := fn.(Lambda)
		if !isLambda {
			args := make([]Expression, len(app.Args))
			for i, arg := range app.Args {
				as, ok := SimplifyBounded(ctx, arg)
				args[i] = as
				if !ok {
					return App{Fun: fn, Args: args}, false
				}
			}
			return App{Fun: fn, Args: args}, true
		}

		var rest Expression = lam
		for _, arg := range app.Args {
			argS, ok := SimplifyBounded(ctx, arg)
			if !ok {
				return rest, false
			}
			select {
			case <-ctx.Done():
				return rest, false
			default:
			}
			if body, stillLambda := rest.(Lambda); stillLambda {
				rest = body.Body.Substitute(body.Var, argS, false)
			} else {
				rest = App{Fun: rest, Args: []Expression{argS}}
			}
		}
		cur = rest
	}
}

func simplifyPairBounded(ctx context.Context, left, right Expression) (Expression, Expression, bool) {
	l, ok := SimplifyBounded(ctx, left)
	if !ok {
		return l, right, false
	}
	r, ok := SimplifyBounded(ctx, right)
	return l, r, ok
}
