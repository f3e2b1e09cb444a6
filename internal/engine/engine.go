// Package engine selects detection tasks for a language and drives them
// over text units, owning the running per-task statistics.
package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/piistream/piistream/internal/tasks"
	"github.com/piistream/piistream/internal/types"
)

// DefaultTemplate is the replace-mode substitution pattern; %s expands to
// the task name.
const DefaultTemplate = "<%s>"

// Config controls engine construction. The engine is built once per run.
type Config struct {
	Lang      string
	Countries []string
	Tasks     []string // explicit task names; ignored when AllTasks is set
	AllTasks  bool
	Mode      types.Mode
	Template  string    // replace template, %s = task name; empty = DefaultTemplate
	Debug     bool
	Diag      io.Writer // debug output; nil = discarded
}

// Engine applies the selected tasks to one unit at a time. It is not safe
// for concurrent use; the pipeline is synchronous by contract.
type Engine struct {
	tasks    []tasks.Task
	mode     types.Mode
	template string
	stats    types.Stats
}

// New builds an engine from cfg. An unrecognized mode is a configuration
// error reported before any unit is processed.
func New(cfg Config) (*Engine, error) {
	if cfg.Mode != types.ModeReplace && cfg.Mode != types.ModeExtract {
		return nil, fmt.Errorf("invalid output mode: %q", cfg.Mode)
	}
	sel := tasks.ForLanguage(cfg.Lang, cfg.Countries)
	if !cfg.AllTasks {
		sel = tasks.ByName(sel, cfg.Tasks)
	}
	tpl := cfg.Template
	if tpl == "" {
		tpl = DefaultTemplate
	}
	if cfg.Debug && cfg.Diag != nil {
		for _, t := range sel {
			fmt.Fprintf(cfg.Diag, ". Loaded task: %s (%s)\n", t.Name, t.Doc)
		}
	}
	e := &Engine{tasks: sel, mode: cfg.Mode, template: tpl, stats: types.Stats{}}
	return e, nil
}

// Process runs every installed task over one unit. The result shape is
// fixed by the configured mode. Statistics are updated as a side effect.
func (e *Engine) Process(text string) (types.Result, error) {
	if e.mode == types.ModeExtract {
		return types.Result{Findings: e.extract(text)}, nil
	}
	return types.Result{Text: e.replace(text)}, nil
}

func (e *Engine) extract(text string) []types.Finding {
	var out []types.Finding
	for _, t := range e.tasks {
		fs := t.Find(text)
		e.stats[t.Name] += len(fs)
		out = append(out, fs...)
	}
	// Findings from different tasks interleave by position within the unit.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out
}

func (e *Engine) replace(text string) string {
	out := text
	for _, t := range e.tasks {
		repl := strings.ReplaceAll(e.template, "%s", t.Name)
		var n int
		out, n = t.Replace(out, repl)
		e.stats[t.Name] += n
	}
	return out
}

// TaskInfo lists the installed tasks and their descriptions. Read-only.
func (e *Engine) TaskInfo() []types.TaskInfo {
	out := make([]types.TaskInfo, 0, len(e.tasks))
	for _, t := range e.tasks {
		out = append(out, types.TaskInfo{Name: t.Name, Doc: t.Doc})
	}
	return out
}

// Stats returns a snapshot of the per-task counters.
func (e *Engine) Stats() types.Stats {
	out := make(types.Stats, len(e.stats))
	for k, v := range e.stats {
		out[k] = v
	}
	return out
}
