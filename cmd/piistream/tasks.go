package piistream

import (
	"os"

	"github.com/piistream/piistream/internal/engine"
	"github.com/piistream/piistream/internal/report"
	"github.com/piistream/piistream/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagTasksLang    string
	flagTasksCountry []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List installed detection tasks",
		RunE:  runTasks,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagTasksLang, "lang", "en", "document language (ISO 639-1)")
	cmd.Flags().StringSliceVar(&flagTasksCountry, "country", nil, "country qualifiers")
}

func runTasks(cmd *cobra.Command, _ []string) error {
	eng, err := engine.New(engine.Config{
		Lang:      flagTasksLang,
		Countries: flagTasksCountry,
		AllTasks:  true,
		Mode:      types.ModeReplace,
	})
	if err != nil {
		return err
	}
	report.PrintTasks(os.Stdout, eng.TaskInfo(), report.PrintOptions{NoColor: colorOff()})
	return nil
}
