// Package tasks holds the built-in PII detection tasks. Each task lives in
// its own file and registers a compiled pattern, an optional validator, a
// language scope, and a short doc string.
package tasks

import (
	"regexp"
	"unicode/utf8"

	"github.com/piistream/piistream/internal/types"
)

// LangAny marks a task that applies regardless of document language.
const LangAny = "any"

// Task is one installed detection capability.
type Task struct {
	Name      string
	Doc       string
	Lang      string   // ISO 639-1 code, or LangAny
	Countries []string // empty = no country restriction

	re    *regexp.Regexp
	valid func(string) bool // nil = every regexp match counts
}

var all = []Task{
	EmailAddress, CreditCard, IPAddress, BitcoinAddress, PhoneNumber, USSocialSecurity,
}

// All returns every installed task in registration order.
func All() []Task {
	out := make([]Task, len(all))
	copy(out, all)
	return out
}

// ForLanguage selects the tasks applicable to lang and the given countries.
// Language-neutral tasks always apply; country-restricted tasks require one
// of their countries to be requested.
func ForLanguage(lang string, countries []string) []Task {
	var out []Task
	for _, t := range all {
		if t.Lang != LangAny && t.Lang != lang {
			continue
		}
		if len(t.Countries) > 0 && !intersects(t.Countries, countries) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByName filters sel down to the named subset, preserving order.
func ByName(sel []Task, names []string) []Task {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Task
	for _, t := range sel {
		if want[t.Name] {
			out = append(out, t)
		}
	}
	return out
}

// Find returns one finding per validated match, with Pos as the rune
// offset of the match within text.
func (t Task) Find(text string) []types.Finding {
	var out []types.Finding
	for _, m := range t.re.FindAllStringIndex(text, -1) {
		v := text[m[0]:m[1]]
		if t.valid != nil && !t.valid(v) {
			continue
		}
		out = append(out, types.Finding{
			Name:  t.Name,
			Value: v,
			Pos:   utf8.RuneCountInString(text[:m[0]]),
		})
	}
	return out
}

// Replace substitutes every validated match with repl and reports how many
// substitutions were made.
func (t Task) Replace(text, repl string) (string, int) {
	n := 0
	out := t.re.ReplaceAllStringFunc(text, func(m string) string {
		if t.valid != nil && !t.valid(m) {
			return m
		}
		n++
		return repl
	})
	return out, n
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
