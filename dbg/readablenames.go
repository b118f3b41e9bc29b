package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Halfedge graphs are a soup of pointers, and chasing uids through a dump of
// a few hundred halfedges is miserable. This maps arbitrary pointers to
// random readable names, generated lazily. It flagrantly leaks memory, which
// only matters if you are actually debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic as a reminder that the same name doesn't refer to the
	// same entity between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
