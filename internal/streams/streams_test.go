package streams

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, name string) {
	t.Helper()
	const content = "héllo wörld\nsecond line with 日本語\n"

	w, err := Default.OpenWrite(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Default.OpenRead(name)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Fatalf("%s: read back %q, want %q", name, got, content)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "file.gz", "file.bz2", "file.xz"} {
		roundTrip(t, filepath.Join(dir, name))
	}
}

func TestStdinStdoutSentinel(t *testing.T) {
	var out bytes.Buffer
	r := &Resolver{Stdin: strings.NewReader("from stdin"), Stdout: &out}

	in, err := r.OpenRead("-")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(in)
	if string(b) != "from stdin" {
		t.Fatalf("stdin read %q", b)
	}
	if err := in.Close(); err != nil {
		t.Fatal(err)
	}

	w, err := r.OpenWrite("-")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, "to stdout"); err != nil {
		t.Fatal(err)
	}
	// Closing the sentinel stream must not close the underlying handle.
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "to stdout" {
		t.Fatalf("stdout got %q", out.String())
	}
}

func TestOpenReadMissingFile(t *testing.T) {
	_, err := Default.OpenRead(filepath.Join(t.TempDir(), "nope.txt"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOpenReadCorruptGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.gz")
	if err := os.WriteFile(p, []byte("not gzip data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Default.OpenRead(p); err == nil {
		t.Fatal("expected codec error for corrupt gzip input")
	}
}
