package piistream

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/piistream/piistream/internal/audit"
	"github.com/piistream/piistream/internal/config"
	"github.com/piistream/piistream/internal/engine"
	"github.com/piistream/piistream/internal/pipeline"
	"github.com/piistream/piistream/internal/report"
	"github.com/piistream/piistream/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagLang      string
	flagCountry   []string
	flagTasks     []string
	flagAllTasks  bool
	flagSplit     string
	flagMode      string
	flagTemplate  string
	flagShowTasks bool
	flagShowStats bool
	flagGlob      string
	flagOutDir    string
)

func init() {
	cmd := &cobra.Command{
		Use:   "process [INPUT [OUTPUT]]",
		Short: "Run PII tasks over a document stream",
		Long:  "Process reads INPUT (default -), feeds it to the detection engine at the chosen granularity, and writes the result to OUTPUT (default -). With --glob, every matching file is processed into --out-dir and statistics are aggregated.",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runProcess,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagLang, "lang", "en", "document language (ISO 639-1)")
	cmd.Flags().StringSliceVar(&flagCountry, "country", nil, "country qualifiers for country-specific tasks")
	cmd.Flags().StringSliceVar(&flagTasks, "tasks", nil, "task names to run (default: none unless --all-tasks)")
	cmd.Flags().BoolVar(&flagAllTasks, "all-tasks", false, "run every task applicable to the language")
	cmd.Flags().StringVar(&flagSplit, "split", "line", "unit granularity: block|line|sentence")
	cmd.Flags().StringVar(&flagMode, "mode", "replace", "output mode: replace|extract")
	cmd.Flags().StringVar(&flagTemplate, "template", "", "replace template, %s expands to the task name")
	cmd.Flags().BoolVar(&flagShowTasks, "show-tasks", false, "list installed tasks before processing")
	cmd.Flags().BoolVar(&flagShowStats, "show-stats", false, "print detection statistics after processing")
	cmd.Flags().StringVar(&flagGlob, "glob", "", "process every file matching this glob instead of INPUT")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "output directory for --glob processing")
}

func runProcess(cmd *cobra.Command, args []string) error {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	ecfg := engine.Config{
		Lang:      pickString(flagLang, "en", lcfg.Lang, gcfg.Lang),
		Countries: pickSlice(flagCountry, lcfg.Country, gcfg.Country),
		Tasks:     pickSlice(flagTasks, lcfg.Tasks, gcfg.Tasks),
		AllTasks:  pickBool(flagAllTasks, lcfg.AllTasks, gcfg.AllTasks),
		Mode:      types.Mode(pickString(flagMode, "replace", lcfg.Mode, gcfg.Mode)),
		Template:  pickString(flagTemplate, "", lcfg.Template, gcfg.Template),
		Debug:     flagDebug,
		Diag:      os.Stderr,
	}
	opts := pipeline.Options{
		Split:     types.Split(pickString(flagSplit, "line", lcfg.Split, gcfg.Split)),
		Mode:      ecfg.Mode,
		ShowTasks: flagShowTasks,
		ShowStats: pickBool(flagShowStats, lcfg.ShowStats, gcfg.ShowStats),
	}
	runner := &pipeline.Runner{
		Diag:    os.Stderr,
		NoColor: pickBool(colorOff(), lcfg.NoColor, gcfg.NoColor),
	}

	var log *audit.Log
	if !pickBool(flagNoAudit, lcfg.NoAudit, gcfg.NoAudit) {
		log = audit.New("")
	}

	if flagGlob != "" {
		return runBatch(runner, ecfg, opts, log)
	}

	infile, outfile := "-", "-"
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}
	_, err := processOne(runner, ecfg, opts, log, infile, outfile)
	return err
}

// runBatch expands the glob, processes each match into --out-dir, and
// prints aggregated statistics once at the end.
func runBatch(runner *pipeline.Runner, ecfg engine.Config, opts pipeline.Options, log *audit.Log) error {
	if flagOutDir == "" {
		return fmt.Errorf("--glob requires --out-dir")
	}
	files, err := expandGlob(".", flagGlob)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %q", flagGlob)
	}
	if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
		return err
	}

	showStats := opts.ShowStats
	opts.ShowStats = false // aggregate below instead of per file
	agg := types.Stats{}
	for _, f := range files {
		out := filepath.Join(flagOutDir, filepath.Base(f))
		stats, err := processOne(runner, ecfg, opts, log, f, out)
		if err != nil {
			return err
		}
		for k, v := range stats {
			agg[k] += v
		}
	}
	if showStats {
		report.PrintStats(os.Stderr, agg, report.PrintOptions{NoColor: runner.NoColor})
	}
	return nil
}

// processOne builds a fresh engine for one endpoint pair, runs the
// pipeline, and records the run in the audit log.
func processOne(runner *pipeline.Runner, ecfg engine.Config, opts pipeline.Options, log *audit.Log, infile, outfile string) (types.Stats, error) {
	eng, err := engine.New(ecfg)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	stats, err := runner.ProcessFile(eng, infile, outfile, opts)
	if err != nil {
		return nil, err
	}
	if log != nil {
		// Best effort: a failed audit write never fails the run.
		_ = log.Append(audit.RunRecord{
			Timestamp: started,
			RunID:     log.NewRunID(),
			Input:     infile,
			Output:    outfile,
			Split:     string(opts.Split),
			Mode:      string(opts.Mode),
			Stats:     stats,
			Duration:  time.Since(started).String(),
		})
	}
	return stats, nil
}

// expandGlob walks root and returns files whose slash-relative path
// matches the doublestar pattern, in walk (lexical) order.
func expandGlob(root, pattern string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, rerr := filepath.Rel(root, p)
		if rerr != nil {
			return rerr
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
			out = append(out, p)
		}
		return nil
	})
	return out, err
}
