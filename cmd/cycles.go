package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/meishiki/internal/cycle"
	"github.com/papapumpkin/meishiki/internal/ui"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles <YYYY-MM-DD>",
	Short: "List the major cycles and a span of annual cycles",
	Args:  cobra.ExactArgs(1),
	RunE:  runCycles,
}

func init() {
	cyclesCmd.Flags().String("time", "", "birth time as HH:MM (default 12:00)")
	cyclesCmd.Flags().Int("from", 0, "first annual year (default the current year)")
	cyclesCmd.Flags().Int("span", 10, "number of annual years")
	_ = viper.BindPFlag("annual_span", cyclesCmd.Flags().Lookup("span"))
	rootCmd.AddCommand(cyclesCmd)
}

// cyclesOutput is the JSON shape printed by the cycles command.
type cyclesOutput struct {
	Major  cycle.Major  `json:"majorCycles"`
	Annual []cycle.Year `json:"annualCycles"`
}

func runCycles(cmd *cobra.Command, args []string) error {
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
	from, _ := cmd.Flags().GetInt("from")
	if from == 0 {
		from = time.Now().Year()
	}
	out := cyclesOutput{
		Major:  c.MajorCycles,
		Annual: cycle.Annual(c.Natal(), from, s.cfg.AnnualSpan),
	}
	if s.text() {
		w := cmd.OutOrStdout()
		ui.Cycles(w, out.Major)
		ui.Annual(w, out.Annual)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
