package tldtree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MarshalText implements [encoding.TextMarshaler]. It re-encodes the
// tree to the compact grammar accepted by [Parse]. Parsing the result
// yields a structurally identical tree.
func (t *Tree) MarshalText() ([]byte, error) {
	return t.root.appendText(nil), nil
}

func (n *node) appendText(b []byte) []byte {
	b = append(b, n.label...)
	if n.exception {
		b = append(b, '!')
	}
	if len(n.children) > 0 {
		b = append(b, '(')
		b = strconv.AppendInt(b, int64(len(n.children)), 10)
		b = append(b, ':')
		for i, c := range n.children {
			if i > 0 {
				b = append(b, ',')
			}
			b = c.appendText(b)
		}
		b = append(b, ')')
	}
	return b
}

// Rules enumerates the tree as publicsuffix.org-style rule lines, e.g.
// "com", "co.uk", "*.ck", "!www.ck". Interior labels that only exist
// as path components of deeper rules are implied and not listed.
// Exception rules are named without the wildcard label they carve out.
func (t *Tree) Rules() []string {
	var rules []string
	for _, c := range t.root.children {
		rules = c.appendRules(c.label, rules)
	}
	return rules
}

// appendRules appends the rules of the subtree rooted at n. name is
// the dotted path of n itself.
func (n *node) appendRules(name string, rules []string) []string {
	if n.exception {
		return append(rules, "!"+name)
	}
	if len(n.children) == 0 {
		return append(rules, name)
	}
	if n.label == wildcardLabel {
		rules = append(rules, name)
	}
	for _, c := range n.children {
		base := name
		if n.label == wildcardLabel && c.exception {
			// The exception leaf hangs beneath the wildcard node it
			// carves out, but its rule name skips the wildcard label.
			if i := strings.IndexByte(name, '.'); i != -1 {
				base = name[i+1:]
			} else {
				base = ""
			}
		}
		childName := c.label
		if base != "" {
			childName += "." + base
		}
		rules = c.appendRules(childName, rules)
	}
	return rules
}

// WriteDump writes an indented diagnostic listing of the tree to w.
// Exception labels are marked with a trailing "!".
func (t *Tree) WriteDump(w io.Writer) error {
	for _, c := range t.root.children {
		if err := c.writeDump(w, 0); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) writeDump(w io.Writer, depth int) error {
	marker := ""
	if n.exception {
		marker = "!"
	}
	if _, err := fmt.Fprintf(w, "%*s%s%s\n", 2*depth, "", n.label, marker); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.writeDump(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
