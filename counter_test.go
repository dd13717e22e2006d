package predlogic

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-set/v2"
	"github.com/shoenig/test/must"
)

func TestFreshVarIsMonotonicAndPrefixed(t *testing.T) {
	a := FreshVar()
	b := FreshVar()
	must.True(t, strings.HasPrefix(a.Name, "z"))
	must.NotEq(t, a, b)
}

func TestFreshVarNeverCollidesAcrossGoroutines(t *testing.T) {
	const n = 200
	seen := make(chan Var, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- FreshVar()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[Var]bool)
	for v := range seen {
		must.False(t, unique[v])
		unique[v] = true
	}
	must.Eq(t, n, len(unique))
}

func TestFreshAvoidingSkipsCollisions(t *testing.T) {
	avoid := set.New[Var](0)
	// the name FreshVar would hand out next; pretend it is already taken
	next := Var{Name: "z" + strconv.FormatInt(freshCounter.Load()+1, 10)}
	avoid.Insert(next)

	got := FreshAvoiding(avoid)
	must.False(t, avoid.Contains(got))
}
