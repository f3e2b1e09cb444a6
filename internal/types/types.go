package types

// Split selects how a document is divided into units before detection.
type Split string

const (
	SplitBlock    Split = "block"
	SplitLine     Split = "line"
	SplitSentence Split = "sentence"
)

// Mode selects the shape of engine output. It is resolved once at
// configuration time; results are never type-inspected per unit.
type Mode string

const (
	ModeReplace Mode = "replace"
	ModeExtract Mode = "extract"
)

// Finding is one structured detection result: the task that fired, the
// matched value, and its rune offset within the source unit.
type Finding struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Pos   int    `json:"pos"`
}

// Result is the engine output for one unit. Exactly one arm is populated,
// determined by the engine's configured mode: Text for replace-style modes,
// Findings for extract mode.
type Result struct {
	Text     string
	Findings []Finding
}

// Index identifies a unit's position within its document. Key is "line" or
// "sentence" with a 1-based ordinal; the zero Index (block granularity)
// carries no key.
type Index struct {
	Key string
	N   int
}

// Record is one extraction-mode output row: a Finding with the source
// unit's index descriptor merged at the top level.
type Record struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Pos      int    `json:"pos"`
	Line     int    `json:"line,omitempty"`
	Sentence int    `json:"sentence,omitempty"`
}

// TaskInfo describes one installed detection task.
type TaskInfo struct {
	Name string
	Doc  string
}

// Stats maps a task name to its running detection count. It is owned and
// mutated by the engine; everything else reads snapshots only.
type Stats map[string]int
