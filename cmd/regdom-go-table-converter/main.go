// Table converter takes a public suffix rule set in publicsuffix.org list
// format or in the compact tree encoding, and converts it to the compact
// tree encoding, the list format, or a Go source file with the compiled-in
// table.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/regdom/regdom-go/bytestrings"
	"github.com/regdom/regdom-go/mmap"
	"github.com/regdom/regdom-go/tldtree"
	"golang.org/x/net/idna"
)

var (
	inList   = flag.String("inList", "", "Path to input rule set file in publicsuffix.org list format.")
	inTable  = flag.String("inTable", "", "Path to input rule set file in compact tree encoding.")
	outTable = flag.String("outTable", "", "Path to output rule set file in compact tree encoding.")
	outList  = flag.String("outList", "", "Path to output rule set file in list format.")
	outGo    = flag.String("outGo", "", "Path to output Go source file with the compiled-in table.")
)

func main() {
	flag.Parse()

	var (
		inCount int
		inPath  string
		inFunc  func(string) (*tldtree.Tree, error)
	)

	if *inList != "" {
		inCount++
		inPath = *inList
		inFunc = treeFromList
	}

	if *inTable != "" {
		inCount++
		inPath = *inTable
		inFunc = tldtree.Parse
	}

	if inCount != 1 {
		fmt.Fprintln(os.Stderr, "Exactly one of -inList, -inTable must be specified.")
		flag.Usage()
		os.Exit(1)
	}

	if *outTable == "" && *outList == "" && *outGo == "" {
		fmt.Fprintln(os.Stderr, "Specify output file paths with -outTable, -outList and/or -outGo.")
		flag.Usage()
		os.Exit(1)
	}

	data, close, err := mmap.ReadFile[string](inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read input file:", err)
		os.Exit(1)
	}
	defer close()

	tree, err := inFunc(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to parse input file:", err)
		return
	}

	text, err := tree.MarshalText()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to encode rule table:", err)
		return
	}

	if *outTable != "" {
		if err := os.WriteFile(*outTable, text, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write output file:", err)
			return
		}
	}

	if *outList != "" {
		var sb strings.Builder
		for _, rule := range tree.Rules() {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}
		if err := os.WriteFile(*outList, []byte(sb.String()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write output file:", err)
			return
		}
	}

	if *outGo != "" {
		if err := os.WriteFile(*outGo, appendGoSource(nil, string(text)), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write output file:", err)
			return
		}
	}
}

// treeFromList builds a rule tree from a publicsuffix.org list.
// Comment lines start with "//". Rule lines may carry trailing
// whitespace-separated annotations, which are ignored.
func treeFromList(text string) (*tldtree.Tree, error) {
	var b tldtree.Builder

	for line := range bytestrings.NonEmptyLines(text) {
		if strings.HasPrefix(line, "//") {
			continue
		}
		if i := strings.IndexAny(line, " \t"); i != -1 {
			line = line[:i]
			if line == "" {
				continue
			}
		}

		rule, err := asciiRule(line)
		if err != nil {
			return nil, fmt.Errorf("invalid rule %q: %w", line, err)
		}
		b.Insert(rule)
	}

	return b.Tree(), nil
}

// asciiRule lowercases the rule and converts internationalized labels
// to their ASCII (punycode) form.
func asciiRule(rule string) (string, error) {
	if isASCII(rule) {
		return strings.ToLower(rule), nil
	}

	labels := strings.Split(rule, ".")
	for i, label := range labels {
		var prefix string
		if strings.HasPrefix(label, "!") {
			prefix, label = "!", label[1:]
		}
		if label == "*" || isASCII(label) {
			labels[i] = prefix + strings.ToLower(label)
			continue
		}
		ascii, err := idna.Lookup.ToASCII(label)
		if err != nil {
			return "", err
		}
		labels[i] = prefix + strings.ToLower(ascii)
	}
	return strings.Join(labels, "."), nil
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// appendGoSource appends the Go source of the compiled-in table package.
func appendGoSource(b []byte, text string) []byte {
	const lineWidth = 100

	b = append(b, "// Code generated by regdom-go-table-converter. DO NOT EDIT.\n\npackage tldtable\n\n"...)
	b = append(b, "// text is the compact encoding of the public suffix rule set,\n// generated from a publicsuffix.org snapshot.\nconst text = "...)

	for len(text) > 0 {
		chunk := text
		if len(chunk) > lineWidth {
			chunk = chunk[:lineWidth]
		}
		text = text[len(chunk):]

		b = append(b, '"')
		b = append(b, chunk...)
		b = append(b, '"')
		if len(text) > 0 {
			b = append(b, " +\n\t"...)
		}
	}

	b = append(b, '\n')
	return b
}
