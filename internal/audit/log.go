// Package audit keeps a best-effort JSONL log of processing runs.
package audit

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/piistream/piistream/internal/types"
)

// RunRecord is one appended log line describing a single processed file.
type RunRecord struct {
	Timestamp time.Time   `json:"timestamp"`
	RunID     string      `json:"run_id"`
	Input     string      `json:"input"`
	Output    string      `json:"output"`
	Split     string      `json:"split"`
	Mode      string      `json:"mode"`
	Stats     types.Stats `json:"stats,omitempty"`
	Duration  string      `json:"duration"`
}

type Log struct {
	path    string
	entropy *ulid.MonotonicEntropy
}

// New creates a log writing to dir/runs.jsonl. With an empty dir the log
// lives under the user cache directory.
func New(dir string) *Log {
	if dir == "" {
		if cache, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(cache, "piistream")
		} else {
			dir = "."
		}
	}
	return &Log{
		path:    filepath.Join(dir, "runs.jsonl"),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewRunID returns a fresh, lexically sortable run identifier.
func (l *Log) NewRunID() string {
	return ulid.MustNew(ulid.Now(), l.entropy).String()
}

// Append writes one record to the log, creating the directory on demand.
func (l *Log) Append(rec RunRecord) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(rec)
}

// History returns logged records, newest first. Malformed lines are
// skipped.
func (l *Log) History() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
