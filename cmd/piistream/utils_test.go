package piistream

import (
	"os"
	"path/filepath"
	"testing"
)

func strp(s string) *string { return &s }

func TestPickString(t *testing.T) {
	if got := pickString("cli", "def", strp("local"), strp("global")); got != "cli" {
		t.Fatalf("cli should win, got %q", got)
	}
	if got := pickString("def", "def", strp("local"), strp("global")); got != "local" {
		t.Fatalf("local should win, got %q", got)
	}
	if got := pickString("def", "def", nil, strp("global")); got != "global" {
		t.Fatalf("global should win, got %q", got)
	}
	if got := pickString("def", "def", nil, nil); got != "def" {
		t.Fatalf("default should survive, got %q", got)
	}
}

func TestPickBool(t *testing.T) {
	f := false
	tr := true
	if !pickBool(true, &f, &f) {
		t.Fatal("cli true wins")
	}
	if !pickBool(false, &tr, &f) {
		t.Fatal("local should win when cli unset")
	}
	if pickBool(false, nil, nil) {
		t.Fatal("all unset is false")
	}
}

func TestExpandGlob(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.json"),
		filepath.Join(sub, "c.txt"),
	} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := expandGlob(dir, "**/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %v", got)
	}

	got, err = expandGlob(dir, "*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "a.txt" {
		t.Fatalf("matches = %v", got)
	}
}
