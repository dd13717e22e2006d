package predlogic

import (
	"context"
	"testing"
	"time"

	"github.com/shoenig/test/must"
)

func TestSimplifyBoundedCancelsOnDivergentTerm(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, complete := SimplifyBounded(ctx, Omega)
	must.False(t, complete)
}

func TestSimplifyBoundedMatchesSimplifyOnNormalTerm(t *testing.T) {
	expr, err := Parse(`exists x.(man(x) & (\x.exists y.walks(x,y))(x))`)
	must.NoError(t, err)

	want := expr.Simplify()

	got, complete := SimplifyBounded(context.Background(), expr)
	must.True(t, complete)
	must.True(t, want.Equal(got))
}

func TestSimplifyBoundedAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, err := Parse("man(x)")
	must.NoError(t, err)

	got, complete := SimplifyBounded(ctx, e)
	must.False(t, complete)
	must.True(t, got.Equal(e))
}
