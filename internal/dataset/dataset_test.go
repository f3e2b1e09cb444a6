package dataset

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_LengthAndDedup(t *testing.T) {
	in := strings.NewReader("this document is long enough\nshort\nthis document is long enough\n")
	var out bytes.Buffer
	st, err := Run(in, &out, Options{MinLength: 10, Dedup: true})
	if err != nil {
		t.Fatal(err)
	}
	if st.Read != 3 || st.Kept != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if st.Rejected["length"] != 1 || st.Rejected["duplicate"] != 1 {
		t.Fatalf("rejections = %v", st.Rejected)
	}
	if out.String() != "this document is long enough\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRun_NonAlphaRatio(t *testing.T) {
	in := strings.NewReader("clean text here\n$$$ ### !!! ???\n")
	var out bytes.Buffer
	st, err := Run(in, &out, Options{MaxNonAlphaRatio: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if st.Kept != 1 || st.Rejected["nonalpha_ratio"] != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRun_NormalizesWhitespace(t *testing.T) {
	in := strings.NewReader("  spaced\t\tout   document text  \n")
	var out bytes.Buffer
	if _, err := Run(in, &out, Options{}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "spaced out document text\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	in := strings.NewReader("doc one is fine\ndoc two no newline")
	var out bytes.Buffer
	st, err := Run(in, &out, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if st.Read != 2 || st.Kept != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  x \t\n y   z "); got != "x y z" {
		t.Fatalf("normalize = %q", got)
	}
}
