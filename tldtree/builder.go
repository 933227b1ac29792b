package tldtree

import "strings"

// Builder builds a [Tree] from publicsuffix.org-style rules.
// The zero value is ready to use. Builders are not safe for
// concurrent use.
type Builder struct {
	root node
}

// Insert adds one rule to the builder. A rule is a dotted suffix
// ("com", "co.uk"), optionally with a leading wildcard label ("*.ck")
// or a leading '!' marking an exception rule ("!www.ck").
//
// An exception rule attaches beneath the sibling wildcard node it
// carves out when one exists, so that matching recognizes the
// exception-boundary shape one level up. Rule strings are copied;
// the builder retains no slices into them.
func (b *Builder) Insert(rule string) {
	exception := strings.HasPrefix(rule, "!")
	if exception {
		rule = rule[1:]
	}
	if rule == "" {
		return
	}

	n := &b.root
	for {
		i := strings.LastIndexByte(rule, '.')
		label := rule[i+1:]
		if i == -1 {
			if exception {
				n.insertException(label)
			} else {
				n.child(label)
			}
			return
		}
		n = n.child(label)
		rule = rule[:i]
	}
}

// Tree returns the built tree and resets the builder. The returned
// tree exclusively owns its nodes; the builder must not be reused to
// mutate it.
func (b *Builder) Tree() *Tree {
	root := b.root
	b.root = node{}
	return &Tree{root: &root}
}

// child returns the existing child with the given label, creating it
// if necessary.
func (n *node) child(label string) *node {
	for _, c := range n.children {
		if c.label == label && !c.exception {
			return c
		}
	}
	c := &node{label: strings.Clone(label)}
	if label == wildcardLabel {
		// Exception leaves inserted before the wildcard rule move
		// beneath it, keeping placement insertion-order independent.
		kept := n.children[:0]
		for _, e := range n.children {
			if e.exception {
				c.children = append(c.children, e)
			} else {
				kept = append(kept, e)
			}
		}
		n.children = kept
	}
	n.children = append(n.children, c)
	return c
}

// insertException places an exception leaf beneath the wildcard child
// if present, otherwise directly beneath n.
func (n *node) insertException(label string) {
	for _, c := range n.children {
		if c.label == wildcardLabel {
			n = c
			break
		}
	}
	for _, c := range n.children {
		if c.label == label && c.exception {
			return
		}
	}
	n.children = append(n.children, &node{
		label:     strings.Clone(label),
		exception: true,
	})
}
