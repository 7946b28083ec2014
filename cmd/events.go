package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/josephlewis42/minish/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report [FILE]",
	Short: "Show a report of events.",
	Long:  `Summarizes FILE, or the event_log from the configuration if FILE is omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var fd io.ReadCloser
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			fd = f
		} else {
			configuration, err := loadConfig()
			if err != nil {
				return err
			}
			if configuration.EventLog == "" {
				return fmt.Errorf("no event_log configured")
			}
			f, err := configuration.ReadEventLog()
			if err != nil {
				return err
			}
			fd = f
		}
		defer fd.Close()

		var report logger.Report
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	eventsCmd.AddCommand(reportCommand)
	rootCmd.AddCommand(eventsCmd)
}
