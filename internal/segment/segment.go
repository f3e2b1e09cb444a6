// Package segment splits documents into sentence-sized units whose
// concatenation reproduces the original text byte for byte.
package segment

import (
	"iter"
	"regexp"
)

// A separator is optional leading whitespace, one sentence-terminal
// character (ASCII or CJK full-width), and trailing whitespace. The
// separator stays attached to the span it terminates.
var sepRe = regexp.MustCompile(`\s*[.!?．！？。]\s+`)

// Sentences yields the units of doc in order, lazily. Each unit is a
// non-separator span plus the separator that follows it (empty for the
// trailing remainder). A separator at the very start of the document is
// yielded on its own so nothing is ever dropped: joining all units
// reconstructs doc exactly.
//
// A document with no separators yields exactly one unit equal to doc; a
// document ending on a separator yields no trailing empty unit.
func Sentences(doc string) iter.Seq[string] {
	return func(yield func(string) bool) {
		prev := 0
		for _, m := range sepRe.FindAllStringIndex(doc, -1) {
			unit := doc[prev:m[1]]
			prev = m[1]
			if !yield(unit) {
				return
			}
		}
		if prev < len(doc) {
			yield(doc[prev:])
		}
	}
}
