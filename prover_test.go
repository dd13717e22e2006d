package predlogic

import (
	"testing"

	"github.com/shoenig/test/must"
)

type stubProver struct {
	result bool
	err    error
	seen   Expression
}

func (s *stubProver) Prove(e Expression) (bool, error) {
	s.seen = e
	return s.result, s.err
}

func TestTPEquivalentUsesRegisteredProver(t *testing.T) {
	stub := &stubProver{result: true}
	RegisterProver("stub-for-test", stub)

	a, err := Parse("man(x)")
	must.NoError(t, err)
	b, err := Parse("man(x)")
	must.NoError(t, err)

	ok, err := TPEquivalent(a, b, "stub-for-test")
	must.NoError(t, err)
	must.True(t, ok)

	iff, isIff := stub.seen.(Iff)
	must.True(t, isIff)
	must.True(t, iff.Left.Equal(a))
	must.True(t, iff.Right.Equal(b))
}

func TestTPEquivalentUnregisteredNameErrors(t *testing.T) {
	a, err := Parse("man(x)")
	must.NoError(t, err)

	_, err = TPEquivalent(a, a, "no-such-prover-registered")
	must.Error(t, err)

	var notRegistered *ErrProverNotRegistered
	ok := false
	if pe, isPe := err.(*ErrProverNotRegistered); isPe {
		notRegistered = pe
		ok = true
	}
	must.True(t, ok)
	must.Eq(t, "no-such-prover-registered", notRegistered.Name)
}

func TestTPEquivDefaultsToTableau(t *testing.T) {
	stub := &stubProver{result: false}
	RegisterProver(DefaultProverName, stub)

	a, err := Parse("man(x)")
	must.NoError(t, err)
	b, err := Parse("tall(x)")
	must.NoError(t, err)

	ok, err := TPEquiv(a, b)
	must.NoError(t, err)
	must.False(t, ok)
}
