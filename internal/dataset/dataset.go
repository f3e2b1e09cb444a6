// Package dataset implements the companion filtering flow: a document
// stream is normalized, passed through a filter chain, and survivors are
// persisted, with per-filter rejection counts.
package dataset

import (
	"bufio"
	"io"
	"strings"
)

// Filter judges one document. Name identifies the filter in rejection
// stats.
type Filter interface {
	Name() string
	Keep(doc string) bool
}

// Options configures a filtering run. Zero values disable the
// corresponding filter.
type Options struct {
	MinLength        int
	MaxLength        int
	MaxNonAlphaRatio float64
	Dedup            bool
}

// Stats summarizes one filtering run.
type Stats struct {
	Read     int
	Kept     int
	Rejected map[string]int // filter name -> rejected count
}

// Chain builds the filter chain for opts, in rejection-priority order.
func Chain(opts Options) []Filter {
	var fs []Filter
	if opts.MinLength > 0 || opts.MaxLength > 0 {
		fs = append(fs, lengthFilter{min: opts.MinLength, max: opts.MaxLength})
	}
	if opts.MaxNonAlphaRatio > 0 {
		fs = append(fs, nonAlphaFilter{max: opts.MaxNonAlphaRatio})
	}
	if opts.Dedup {
		fs = append(fs, newDedupFilter())
	}
	return fs
}

// Run streams one document per line from in, normalizes whitespace,
// applies the chain, and writes survivors to out, one per line.
func Run(in io.Reader, out io.Writer, opts Options) (Stats, error) {
	filters := Chain(opts)
	st := Stats{Rejected: map[string]int{}}
	bw := bufio.NewWriter(out)
	br := bufio.NewReader(in)

	for {
		line, rerr := br.ReadString('\n')
		if line != "" && line != "\n" {
			doc := Normalize(strings.TrimSuffix(line, "\n"))
			st.Read++
			if name, ok := keep(filters, doc); !ok {
				st.Rejected[name]++
			} else {
				st.Kept++
				if _, err := bw.WriteString(doc); err != nil {
					return st, err
				}
				if err := bw.WriteByte('\n'); err != nil {
					return st, err
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return st, rerr
		}
	}
	return st, bw.Flush()
}

func keep(filters []Filter, doc string) (string, bool) {
	for _, f := range filters {
		if !f.Keep(doc) {
			return f.Name(), false
		}
	}
	return "", true
}

// Normalize collapses whitespace runs to single spaces and trims the ends.
func Normalize(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}
