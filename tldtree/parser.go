package tldtree

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError describes a malformed rule table.
type SyntaxError struct {
	// Offset is the byte offset into the table text at which the
	// error was detected.
	Offset int

	// Msg describes the error.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed rule table at offset %d: %s", e.Offset, e.Msg)
}

// Parse decodes the compact encoding of a public suffix rule set into
// a rule tree.
//
// The grammar is:
//
//	node        := label ['!'] [ '(' child-count ':' node (',' node)* ')' ]
//	label       := one or more characters other than ',', '(', ')'
//	child-count := unsigned decimal integer
//
// The whole input is one node: the synthetic root. Only the root may
// have an empty label. A trailing '!' marks an exception rule and is
// not part of the stored label.
//
// Parsed labels are copies; the returned tree never retains slices
// into text, so callers may release the source storage (e.g. unmap a
// file) as soon as Parse returns.
//
// Malformed input returns a [*SyntaxError].
func Parse(text string) (*Tree, error) {
	p := parser{text: text}
	root, err := p.parseNode(true)
	if err != nil {
		return nil, err
	}
	if p.pos != len(text) {
		return nil, p.errorf("trailing data after root node")
	}
	return &Tree{root: root}, nil
}

// parser carries the cursor threaded through recursive descent.
// Recursion depth is bounded by the table's nesting depth, which is
// small for real suffix data (labels nest a handful of levels).
type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseNode consumes exactly one node. On return the cursor is on the
// delimiter following the node, or at the end of input.
func (p *parser) parseNode(root bool) (*node, error) {
	start := p.pos
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ',', ')':
			return p.newNode(p.text[start:p.pos], root, nil)
		case '(':
			label := p.text[start:p.pos]
			p.pos++
			count, err := p.parseChildCount()
			if err != nil {
				return nil, err
			}
			children := make([]*node, count)
			for i := range children {
				if i > 0 {
					if p.pos >= len(p.text) || p.text[p.pos] != ',' {
						return nil, p.errorf("expected ',' between sibling nodes")
					}
					p.pos++
				}
				if children[i], err = p.parseNode(false); err != nil {
					return nil, err
				}
			}
			if p.pos >= len(p.text) || p.text[p.pos] != ')' {
				return nil, p.errorf("expected ')' after %d child nodes", count)
			}
			p.pos++
			return p.newNode(label, root, children)
		default:
			p.pos++
		}
	}
	return p.newNode(p.text[start:], root, nil)
}

// parseChildCount consumes the decimal child count and the ':' after it.
func (p *parser) parseChildCount() (int, error) {
	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] != ':' {
		if c := p.text[p.pos]; c < '0' || c > '9' {
			return 0, p.errorf("invalid character %q in child count", c)
		}
		p.pos++
	}
	if p.pos == len(p.text) {
		return 0, p.errorf("unterminated child count")
	}
	digits := p.text[start:p.pos]
	p.pos++
	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0, p.errorf("invalid child count %q", digits)
	}
	if count == 0 {
		return 0, p.errorf("child count must be positive")
	}
	// Each child takes at least one label byte, plus a separator or
	// the closing parenthesis.
	if remaining := len(p.text) - p.pos; count > remaining/2+1 {
		return 0, p.errorf("child count %d exceeds remaining input", count)
	}
	return count, nil
}

func (p *parser) newNode(label string, root bool, children []*node) (*node, error) {
	var exception bool
	if strings.HasSuffix(label, "!") {
		exception = true
		label = label[:len(label)-1]
	}
	if label == "" {
		if !root {
			return nil, p.errorf("empty label")
		}
		if children == nil {
			return nil, p.errorf("empty rule table")
		}
	}
	return &node{
		label:     strings.Clone(label),
		exception: exception,
		children:  children,
	}, nil
}
