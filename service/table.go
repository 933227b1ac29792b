package service

import (
	"fmt"

	"github.com/regdom/regdom-go/mmap"
	"github.com/regdom/regdom-go/tldtable"
	"github.com/regdom/regdom-go/tldtree"
)

// TableConfig is the configuration for the public suffix rule table.
type TableConfig struct {
	// Path is the path to an encoded rule table file.
	// If empty, the compiled-in table is used.
	Path string `json:"path"`
}

// Tree loads the rule table and returns the parsed tree.
func (tc *TableConfig) Tree() (*tldtree.Tree, error) {
	if tc.Path == "" {
		return tldtable.Tree()
	}

	text, close, err := mmap.ReadFile[string](tc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table file %q: %w", tc.Path, err)
	}
	defer close()

	// The tree does not retain the mapped text, so it is safe to
	// unmap as soon as parsing is done.
	tree, err := tldtree.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule table file %q: %w", tc.Path, err)
	}
	return tree, nil
}

func (tc *TableConfig) source() string {
	if tc.Path == "" {
		return "builtin"
	}
	return tc.Path
}
