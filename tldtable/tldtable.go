// Package tldtable provides the compiled-in public suffix rule table
// and the process-wide rule tree built from it.
package tldtable

import (
	"sync"

	"github.com/regdom/regdom-go/tldtree"
)

// Tree returns the rule tree built from the compiled-in table. The
// tree is built on first use and shared by all callers; it is
// immutable and safe for unlimited concurrent lookups.
//
// An error means the compiled-in table is malformed. There is no
// degraded mode: callers should fail initialization.
var Tree = sync.OnceValues(func() (*tldtree.Tree, error) {
	return tldtree.Parse(text)
})

// RegisteredDomain looks up hostname in the compiled-in table.
// See [tldtree.Tree.RegisteredDomain].
func RegisteredDomain(hostname string) (string, bool, error) {
	t, err := Tree()
	if err != nil {
		return "", false, err
	}
	domain, ok := t.RegisteredDomain(hostname)
	return domain, ok, nil
}

// RegisteredDomainStrict looks up hostname in the compiled-in table.
// See [tldtree.Tree.RegisteredDomainStrict].
func RegisteredDomainStrict(hostname string) (string, bool, error) {
	t, err := Tree()
	if err != nil {
		return "", false, err
	}
	domain, ok := t.RegisteredDomainStrict(hostname)
	return domain, ok, nil
}
