package piistream

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/piistream/piistream/internal/config"
	"github.com/piistream/piistream/internal/dataset"
	"github.com/piistream/piistream/internal/streams"
	"github.com/spf13/cobra"
)

var (
	flagFilterGlob   string
	flagFilterOutDir string
	flagMinLength    int
	flagMaxLength    int
	flagMaxNonAlpha  float64
	flagDedup        bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "filter [INPUT [OUTPUT]]",
		Short: "Filter a line-per-document dataset",
		Long:  "Filter normalizes whitespace and drops documents failing the length, non-alphanumeric ratio, or duplicate checks. With --glob, every matching shard is filtered into --out-dir.",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runFilter,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagFilterGlob, "glob", "", "filter every dataset shard matching this glob")
	cmd.Flags().StringVar(&flagFilterOutDir, "out-dir", "", "output directory for --glob filtering")
	cmd.Flags().IntVar(&flagMinLength, "min-length", 0, "drop documents shorter than this many runes")
	cmd.Flags().IntVar(&flagMaxLength, "max-length", 0, "drop documents longer than this many runes (0=off)")
	cmd.Flags().Float64Var(&flagMaxNonAlpha, "max-nonalpha", 0, "drop documents whose non-alphanumeric ratio exceeds this (0=off)")
	cmd.Flags().BoolVar(&flagDedup, "dedup", false, "drop exact duplicate documents")
}

func runFilter(cmd *cobra.Command, args []string) error {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}
	opts := dataset.Options{
		MinLength:        pickInt(flagMinLength, 0, lcfg.MinLength, gcfg.MinLength),
		MaxLength:        pickInt(flagMaxLength, 0, lcfg.MaxLength, gcfg.MaxLength),
		MaxNonAlphaRatio: pickFloat(flagMaxNonAlpha, 0, lcfg.MaxNonAlphaRatio, gcfg.MaxNonAlphaRatio),
		Dedup:            pickBool(flagDedup, lcfg.Dedup, gcfg.Dedup),
	}

	if flagFilterGlob != "" {
		if flagFilterOutDir == "" {
			return fmt.Errorf("--glob requires --out-dir")
		}
		shards, err := expandGlob(".", flagFilterGlob)
		if err != nil {
			return err
		}
		if len(shards) == 0 {
			return fmt.Errorf("no shards match %q", flagFilterGlob)
		}
		if err := os.MkdirAll(flagFilterOutDir, 0o755); err != nil {
			return err
		}
		for _, shard := range shards {
			out := filepath.Join(flagFilterOutDir, filepath.Base(shard))
			if err := filterOne(shard, out, opts); err != nil {
				return err
			}
		}
		return nil
	}

	infile, outfile := "-", "-"
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}
	return filterOne(infile, outfile, opts)
}

func filterOne(infile, outfile string, opts dataset.Options) error {
	in, err := streams.Default.OpenRead(infile)
	if err != nil {
		return fmt.Errorf("open %s: %w", infile, err)
	}
	out, err := streams.Default.OpenWrite(outfile)
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("create %s: %w", outfile, err)
	}
	st, ferr := dataset.Run(in, out, opts)
	cerr := out.Close()
	_ = in.Close()
	if ferr != nil {
		return fmt.Errorf("filter %s: %w", infile, ferr)
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", outfile, cerr)
	}

	fmt.Fprintf(os.Stderr, ". %s: %d read, %d kept\n", infile, st.Read, st.Kept)
	names := make([]string, 0, len(st.Rejected))
	for k := range st.Rejected {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(os.Stderr, "  %-20s :  %5d\n", k, st.Rejected[k])
	}
	return nil
}
