// Package report renders diagnostic output: the installed-task listing and
// the per-task statistics table. It writes to whatever stream the caller
// provides, conventionally stderr, never the data output.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/piistream/piistream/internal/types"
)

type PrintOptions struct {
	NoColor bool
}

// PrintTasks writes one entry per installed task: the task name followed
// by its description on an indented line.
func PrintTasks(w io.Writer, infos []types.TaskInfo, opts PrintOptions) {
	fmt.Fprintf(w, "\n%s\n", heading(". Installed tasks:", opts))
	for _, ti := range infos {
		fmt.Fprintf(w, "  %s\n    %s\n", ti.Name, ti.Doc)
	}
}

// PrintStats writes the statistics table, task name left-padded to a fixed
// width and count right-aligned, sorted by task name for stable output.
func PrintStats(w io.Writer, stats types.Stats, opts PrintOptions) {
	fmt.Fprintf(w, "\n%s\n", heading(". Statistics:", opts))
	names := make([]string, 0, len(stats))
	for k := range stats {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "  %-20s :  %5d\n", k, stats[k])
	}
}

func heading(s string, opts PrintOptions) string {
	if opts.NoColor {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m" // bold
}
