package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var energyCmd = &cobra.Command{
	Use:   "energy <YYYY-MM-DD>",
	Short: "Compute the energy score and directionality type",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnergy,
}

func init() {
	energyCmd.Flags().String("time", "", "birth time as HH:MM (default 12:00)")
	rootCmd.AddCommand(energyCmd)
}

func runEnergy(cmd *cobra.Command, args []string) error {
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
	e := c.Energy
	if s.text() {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "total %d  %s\n", e.Total, e.Directionality)
		for _, st := range e.Stems {
			fmt.Fprintf(w, "  %s %s  %d × %d = %d\n", st.Stem, st.Stem.Element().Kanji(), st.Base, st.Count, st.Score)
		}
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), e)
}
