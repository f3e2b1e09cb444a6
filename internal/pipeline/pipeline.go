// Package pipeline is the processing dispatcher: it feeds units of an
// input stream to a detection engine at the configured granularity and
// routes results to the output stream in input order.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/piistream/piistream/internal/report"
	"github.com/piistream/piistream/internal/segment"
	"github.com/piistream/piistream/internal/streams"
	"github.com/piistream/piistream/internal/types"
)

// ErrConfig marks an invalid granularity or output mode. It is detected
// before any data stream is opened.
var ErrConfig = errors.New("invalid configuration")

// Engine is the narrow surface the dispatcher needs from a detection
// engine. Implementations own their statistics and update them once per
// Process call.
type Engine interface {
	Process(text string) (types.Result, error)
	TaskInfo() []types.TaskInfo
	Stats() types.Stats
}

// Options configures one file's processing run.
type Options struct {
	Split     types.Split
	Mode      types.Mode
	ShowTasks bool // list installed tasks on the diagnostic stream first
	ShowStats bool // print the statistics table after processing
}

func (o Options) validate() error {
	switch o.Split {
	case types.SplitBlock, types.SplitLine, types.SplitSentence:
	default:
		return fmt.Errorf("%w: split mode %q", ErrConfig, o.Split)
	}
	switch o.Mode {
	case types.ModeReplace, types.ModeExtract:
	default:
		return fmt.Errorf("%w: output mode %q", ErrConfig, o.Mode)
	}
	return nil
}

// Runner drives an engine over input/output endpoint pairs. The zero value
// uses the default stream resolver and discards diagnostics.
type Runner struct {
	Streams *streams.Resolver
	Diag    io.Writer // diagnostic stream; never mixed into data output
	NoColor bool
}

// ProcessFile processes one endpoint pair and returns the engine's final
// statistics snapshot. On any error the snapshot is nil and output already
// flushed stays where it is.
func (r *Runner) ProcessFile(eng Engine, infile, outfile string, opts Options) (types.Stats, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	diag := r.Diag
	if diag == nil {
		diag = io.Discard
	}
	popts := report.PrintOptions{NoColor: r.NoColor}
	if opts.ShowTasks {
		report.PrintTasks(diag, eng.TaskInfo(), popts)
	}

	fmt.Fprintln(diag, ". Reading from:", infile)
	fmt.Fprintln(diag, ". Writing to:", outfile)

	res := r.Streams
	if res == nil {
		res = streams.Default
	}
	in, err := res.OpenRead(infile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", infile, err)
	}
	out, err := res.OpenWrite(outfile)
	if err != nil {
		_ = in.Close()
		return nil, fmt.Errorf("create %s: %w", outfile, err)
	}

	perr := r.run(eng, in, out, opts)
	cerr := out.Close()
	_ = in.Close()
	if perr != nil {
		return nil, fmt.Errorf("process %s: %w", infile, perr)
	}
	if cerr != nil {
		return nil, fmt.Errorf("close %s: %w", outfile, cerr)
	}

	stats := eng.Stats()
	if opts.ShowStats {
		report.PrintStats(diag, stats, popts)
	}
	return stats, nil
}

// run dispatches units by granularity. Each unit is fully processed and
// written before the next is read, so output order equals input order.
func (r *Runner) run(eng Engine, in io.Reader, out io.Writer, opts Options) error {
	w := newResultWriter(out, opts.Mode)

	switch opts.Split {
	case types.SplitLine:
		br := bufio.NewReader(in)
		for n := 1; ; n++ {
			// Terminator kept with the unit so replace output round-trips.
			line, err := br.ReadString('\n')
			if line != "" {
				if werr := r.process(eng, w, line, types.Index{Key: "line", N: n}); werr != nil {
					return werr
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
		}

	case types.SplitSentence:
		doc, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		n := 0
		for unit := range segment.Sentences(string(doc)) {
			n++
			if err := r.process(eng, w, unit, types.Index{Key: "sentence", N: n}); err != nil {
				return err
			}
		}

	default: // block: the whole input is one unit, no index descriptor
		doc, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		if err := r.process(eng, w, string(doc), types.Index{}); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (r *Runner) process(eng Engine, w *resultWriter, unit string, idx types.Index) error {
	res, err := eng.Process(unit)
	if err != nil {
		return err
	}
	return w.Write(res, idx)
}
