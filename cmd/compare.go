package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/compat"
	"github.com/papapumpkin/meishiki/internal/telemetry"
	"github.com/papapumpkin/meishiki/internal/ui"
)

var compareCmd = &cobra.Command{
	Use:   "compare <dateA> <dateB>",
	Short: "Score the compatibility of two people",
	Long: `Compares two charts and prints a 0-100 score, its rating, the sub-scores
and an explanation for each. Person A is the first argument; the day-stem
relation is read from A to B.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("time-a", "", "birth time of person A")
	compareCmd.Flags().String("time-b", "", "birth time of person B")
	compareCmd.Flags().String("gender-a", "", "gender of person A (default --gender)")
	compareCmd.Flags().String("gender-b", "", "gender of person B (default --gender)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	timeA, _ := cmd.Flags().GetString("time-a")
	timeB, _ := cmd.Flags().GetString("time-b")
	genderA, _ := cmd.Flags().GetString("gender-a")
	genderB, _ := cmd.Flags().GetString("gender-b")

	a, err := s.chart(args[0], timeA, genderA)
	if err != nil {
		return err
	}
	b, err := s.chart(args[1], timeB, genderB)
	if err != nil {
		return err
	}

	r := compat.Compare(a.FourPillars(), b.FourPillars())
	s.emit(telemetry.KindCompareComputed, args[0]+" "+args[1], map[string]any{"score": r.Score, "rating": r.Rating})
	if s.text() {
		ui.Compare(cmd.OutOrStdout(), args[0], args[1], r)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), r)
}
