// Package bytestrings provides zero-copy line scanning over byte slices and strings.
package bytestrings

import (
	"iter"
	"strings"
	"unsafe"
)

// NextNonEmptyLine returns the next non-empty line and the remaining text.
// A trailing CR is stripped from the returned line.
func NextNonEmptyLine[T ~[]byte | ~string](text T) (line, rest T) {
	rest = text
	for len(rest) > 0 {
		if i := strings.IndexByte(asString(rest), '\n'); i == -1 {
			line = rest
			rest = rest[len(rest):]
		} else {
			line = rest[:i]
			rest = rest[i+1:]
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if len(line) > 0 {
			return line, rest
		}
	}
	return rest, rest
}

// NonEmptyLines returns an iterator over the non-empty lines in text.
func NonEmptyLines[T ~[]byte | ~string](text T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			line, rest := NextNonEmptyLine(text)
			if len(line) == 0 {
				return
			}
			if !yield(line) {
				return
			}
			text = rest
		}
	}
}

func asString[T ~[]byte | ~string](text T) string {
	return *(*string)(unsafe.Pointer(&text))
}
