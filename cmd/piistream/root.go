package piistream

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagNoColor bool
	flagNoAudit bool
	flagDebug   bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the piistream CLI.
var rootCmd = &cobra.Command{
	Use:           "piistream",
	Short:         "Stream documents through PII detection",
	Long:          "Piistream feeds whole documents, lines or sentences to PII detection tasks and writes anonymized text or NDJSON findings.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the piistream CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized diagnostics")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudit, "no-audit", false, "disable the run audit log")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "print engine debug output")
}

// colorOff disables color when requested or when stderr is not a terminal.
func colorOff() bool {
	return flagNoColor || !term.IsTerminal(int(os.Stderr.Fd()))
}
