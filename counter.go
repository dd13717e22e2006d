package predlogic

import (
	"strconv"
	"sync/atomic"

	"github.com/hashicorp/go-set/v2"
)

// freshCounter is the process-wide monotonic counter backing fresh
// variable names. It never resets during a program run, and is
// incremented atomically so two simultaneous alpha-conversions from
// distinct goroutines can never be issued the same value.
var freshCounter atomic.Int64

// NextCounter returns the next value of the process-wide fresh-name
// counter. Most callers want FreshVar instead; NextCounter is exposed
// for callers that need the raw sequence, e.g. provenance-tagged
// parsers built on top of Builder.
func NextCounter() int64 {
	return freshCounter.Add(1)
}

// FreshVar returns a variable guaranteed to be distinct from every other
// value ever returned by FreshVar or FreshAvoiding in this process. The
// name is formed by prefixing the literal character 'z' to the counter's
// decimal value.
func FreshVar() Var {
	return Var{Name: "z" + strconv.FormatInt(NextCounter(), 10)}
}

// FreshAvoiding returns a fresh variable that is additionally guaranteed
// not to be a member of avoid. Because user-supplied names can in theory
// also begin with 'z', the plain monotonic counter alone cannot rule out
// a collision with user input; this loops the counter forward until it
// produces a name absent from avoid, while still never going backwards
// or repeating a value already handed out.
func FreshAvoiding(avoid *set.Set[Var]) Var {
	for {
		v := FreshVar()
		if avoid == nil || !avoid.Contains(v) {
			return v
		}
	}
}
