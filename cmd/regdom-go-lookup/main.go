// Regdom lookup prints the registered domain of each given hostname.
//
// Hostnames are taken from the command line arguments, and optionally
// from a file or standard input, one hostname per line.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/regdom/regdom-go/bytestrings"
	"github.com/regdom/regdom-go/hostname"
	"github.com/regdom/regdom-go/mmap"
	"github.com/regdom/regdom-go/service"
	"github.com/regdom/regdom-go/tldtree"
)

var (
	table     = flag.String("table", "", "Path to an encoded rule table file. If empty, the compiled-in table is used.")
	inPath    = flag.String("inPath", "", "Path to input file with one hostname per line. Use '-' for standard input.")
	strict    = flag.Bool("strict", false, "Do not fall back to the last two labels for hostnames under unknown TLDs.")
	normalize = flag.Bool("normalize", false, "Normalize hostnames before lookup.")
)

func main() {
	flag.Parse()

	if *inPath == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Specify hostnames as arguments and/or an input file with -inPath.")
		flag.Usage()
		os.Exit(1)
	}

	tc := service.TableConfig{Path: *table}
	tree, err := tc.Tree()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load rule table:", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, name := range flag.Args() {
		printDomain(w, tree, name)
	}

	switch *inPath {
	case "":
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to read standard input:", err)
			os.Exit(1)
		}
		for name := range bytestrings.NonEmptyLines(string(data)) {
			printDomain(w, tree, name)
		}
	default:
		data, close, err := mmap.ReadFile[string](*inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to read input file:", err)
			os.Exit(1)
		}
		defer close()

		for name := range bytestrings.NonEmptyLines(data) {
			printDomain(w, tree, name)
		}
	}
}

func printDomain(w *bufio.Writer, tree *tldtree.Tree, name string) {
	if *normalize {
		normalized, err := hostname.Normalize(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to normalize %q: %v\n", name, err)
			return
		}
		name = normalized
	}

	var (
		domain string
		ok     bool
	)
	if *strict {
		domain, ok = tree.RegisteredDomainStrict(name)
	} else {
		domain, ok = tree.RegisteredDomain(name)
	}
	if !ok {
		domain = "-"
	}

	fmt.Fprintf(w, "%s\t%s\n", name, domain)
}
