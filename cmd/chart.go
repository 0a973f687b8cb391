package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/ui"
)

var chartCmd = &cobra.Command{
	Use:   "chart <YYYY-MM-DD>",
	Short: "Compute the full destiny chart for a birth date",
	Args:  cobra.ExactArgs(1),
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().String("time", "", "birth time as HH:MM (default 12:00)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	clock, _ := cmd.Flags().GetString("time")
	c, err := s.chart(args[0], clock, "")
	if err != nil {
		return err
	}
	if s.text() {
		ui.Report(cmd.OutOrStdout(), c)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), c)
}
