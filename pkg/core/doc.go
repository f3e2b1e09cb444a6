// Package core provides a small, stable facade over the internal pipeline
// for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	cfg := core.EngineConfig{Lang: "en", AllTasks: true, Mode: core.ModeReplace}
//	opts := core.Options{Split: core.SplitLine, Mode: core.ModeReplace}
//	stats, err := core.ProcessFile(cfg, "in.txt", "out.txt", opts, os.Stderr)
//	if err != nil { /* handle */ }
//	_ = stats
package core
