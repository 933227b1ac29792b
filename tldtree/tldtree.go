// Package tldtree implements the public suffix rule tree and the
// registered-domain matching algorithm.
//
// A rule tree is decoded from a compact serialization of the public
// suffix rule set (see [Parse]) or built from publicsuffix.org-style
// rule lines (see [Builder]). Once built, a [Tree] is immutable and
// safe for unlimited concurrent lookups.
package tldtree

import "strings"

// wildcardLabel matches any label not matched exactly by a sibling.
const wildcardLabel = "*"

// node is one node of the rule tree. The label of the synthetic root
// node is empty and never matched against.
type node struct {
	label     string
	exception bool
	children  []*node
}

// findChild returns the child with the given label, or the wildcard
// child if no exact match exists, or nil. An exact match always wins
// over the wildcard.
func (n *node) findChild(label string) *node {
	var wildcard *node
	for _, c := range n.children {
		if c.label == label {
			return c
		}
		if wildcard == nil && c.label == wildcardLabel {
			wildcard = c
		}
	}
	return wildcard
}

// exceptionOnly reports whether the node's sole child is an exception
// leaf. Matching must stop at the parent level when it encounters this
// shape; the shape is recognized, never the label text.
func (n *node) exceptionOnly() bool {
	return len(n.children) == 1 && n.children[0].exception
}

func (n *node) numNodes() int {
	count := len(n.children)
	for _, c := range n.children {
		count += c.numNodes()
	}
	return count
}

// Tree is an immutable public suffix rule tree.
type Tree struct {
	root *node
}

// NumNodes returns the number of rule nodes in the tree, not counting
// the synthetic root.
func (t *Tree) NumNodes() int {
	return t.root.numNodes()
}

// RegisteredDomain returns the registered domain of hostname: the
// public suffix plus exactly one additional label. The second return
// value is false if the hostname has no registrable domain, i.e. it is
// a bare top-level label or is fully consumed by suffix rules.
//
// If the top-level label matches no rule at all, the last two labels
// are returned as a conservative fallback. This heuristic is not part
// of the standard public suffix algorithm; use
// [Tree.RegisteredDomainStrict] to opt out of it.
//
// The hostname is matched verbatim: no case folding, IDNA conversion,
// or separator collapsing is performed, and empty labels are preserved.
func (t *Tree) RegisteredDomain(hostname string) (string, bool) {
	return t.lookup(hostname, false)
}

// RegisteredDomainStrict is like [Tree.RegisteredDomain], but returns
// false instead of the two-label fallback when the top-level label is
// unrecognized.
func (t *Tree) RegisteredDomainStrict(hostname string) (string, bool) {
	return t.lookup(hostname, true)
}

// lookup walks the hostname's labels right to left against the tree.
// The walk is iterative, so lookup depth on attacker-controlled
// hostnames is never stack-bound. Because rest is always a prefix of
// hostname, the registrable boundary is a tail substring of hostname
// and the walk allocates nothing.
func (t *Tree) lookup(hostname string, dropUnknown bool) (string, bool) {
	n := t.root
	rest := hostname
	for {
		i := strings.LastIndexByte(rest, '.')
		label := rest[i+1:]
		child := n.findChild(label)
		if child == nil || child.exceptionOnly() {
			return disposition(hostname, i, dropUnknown)
		}
		if i == -1 {
			// Every label was consumed by suffix rules with nothing
			// registrable beneath.
			return "", false
		}
		n = child
		rest = rest[:i]
	}
}

// disposition resolves the registrable boundary found at the label
// starting at hostname[i+1:].
func disposition(hostname string, i int, dropUnknown bool) (string, bool) {
	domain := hostname[i+1:]
	if strings.IndexByte(domain, '.') != -1 {
		return domain, true
	}

	// Only the top-level label resolved: no rule matched it at all.
	if i == -1 {
		// The hostname was just a bare unknown top-level label.
		return "", false
	}
	if dropUnknown {
		return "", false
	}
	j := strings.LastIndexByte(hostname[:i], '.')
	return hostname[j+1:], true
}
