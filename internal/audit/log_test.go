package audit

import (
	"testing"
	"time"

	"github.com/piistream/piistream/internal/types"
)

func TestAppendAndHistory(t *testing.T) {
	log := New(t.TempDir())

	for i, in := range []string{"a.txt", "b.txt.gz"} {
		err := log.Append(RunRecord{
			Timestamp: time.Now(),
			RunID:     log.NewRunID(),
			Input:     in,
			Output:    "-",
			Split:     "line",
			Mode:      "replace",
			Stats:     types.Stats{"EMAIL_ADDRESS": i},
			Duration:  "1ms",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recs, err := log.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// Newest first.
	if recs[0].Input != "b.txt.gz" {
		t.Fatalf("history order wrong: %+v", recs)
	}
}

func TestNewRunID_UniqueAndSortable(t *testing.T) {
	log := New(t.TempDir())
	a, b := log.NewRunID(), log.NewRunID()
	if a == b {
		t.Fatal("run IDs must be unique")
	}
	if len(a) != 26 {
		t.Fatalf("ULID length = %d", len(a))
	}
	if b < a {
		t.Fatalf("monotonic entropy should keep IDs sortable: %s then %s", a, b)
	}
}
