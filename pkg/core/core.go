package core

import (
	"io"

	"github.com/piistream/piistream/internal/engine"
	"github.com/piistream/piistream/internal/pipeline"
	"github.com/piistream/piistream/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type EngineConfig = engine.Config
type Options = pipeline.Options
type Finding = types.Finding
type Stats = types.Stats

const (
	SplitBlock    = types.SplitBlock
	SplitLine     = types.SplitLine
	SplitSentence = types.SplitSentence

	ModeReplace = types.ModeReplace
	ModeExtract = types.ModeExtract
)

// ProcessFile is the stable entrypoint for other programs: it builds an
// engine from cfg and runs the full pipeline over one input/output pair,
// returning the final statistics snapshot. Diagnostics go to diag; pass
// io.Discard (or nil) to silence them.
func ProcessFile(cfg EngineConfig, infile, outfile string, opts Options, diag io.Writer) (Stats, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	r := &pipeline.Runner{Diag: diag, NoColor: true}
	return r.ProcessFile(eng, infile, outfile, opts)
}

// TaskNames returns the names of the tasks that would be installed for a
// language/country selection. Exposed so embedders need not import
// internals.
func TaskNames(lang string, countries []string) ([]string, error) {
	eng, err := engine.New(EngineConfig{Lang: lang, Countries: countries, AllTasks: true, Mode: ModeReplace})
	if err != nil {
		return nil, err
	}
	infos := eng.TaskInfo()
	names := make([]string, 0, len(infos))
	for _, ti := range infos {
		names = append(names, ti.Name)
	}
	return names, nil
}
