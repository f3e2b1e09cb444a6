package pipeline

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/piistream/piistream/internal/types"
)

// resultWriter serializes engine results. The output shape is resolved
// once from the mode; Write never inspects the result dynamically.
type resultWriter struct {
	mode types.Mode
	bw   *bufio.Writer
	enc  *json.Encoder // extract mode only
}

func newResultWriter(out io.Writer, mode types.Mode) *resultWriter {
	bw := bufio.NewWriter(out)
	w := &resultWriter{mode: mode, bw: bw}
	if mode == types.ModeExtract {
		w.enc = json.NewEncoder(bw)
		// Keep findings readable: no HTML escaping, and the encoder never
		// escapes non-ASCII.
		w.enc.SetEscapeHTML(false)
	}
	return w
}

// Write appends one engine result. Replace-style modes write the
// transformed text verbatim (the unit carries its own terminator);
// extract mode emits one JSON record per finding, in encounter order,
// with the unit's index descriptor merged at the top level.
func (w *resultWriter) Write(res types.Result, idx types.Index) error {
	if w.mode != types.ModeExtract {
		_, err := w.bw.WriteString(res.Text)
		return err
	}
	for _, f := range res.Findings {
		rec := types.Record{Name: f.Name, Value: f.Value, Pos: f.Pos}
		switch idx.Key {
		case "line":
			rec.Line = idx.N
		case "sentence":
			rec.Sentence = idx.N
		}
		if err := w.enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *resultWriter) Flush() error { return w.bw.Flush() }
