package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/voidperiod"
)

var voidCmd = &cobra.Command{
	Use:   "void <YYYY-MM-DD>",
	Short: "Show the void period and the void conditions present at birth",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoid,
}

func init() {
	rootCmd.AddCommand(voidCmd)
}

// voidOutput is the JSON shape printed by the void command.
type voidOutput struct {
	Day    string           `json:"day"`
	Period voidperiod.Pair  `json:"voidPeriod"`
	Name   string           `json:"name"`
	Flags  voidperiod.Flags `json:"birthVoid"`
	Names  []string         `json:"birthVoidNames"`
}

func runVoid(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := s.chart(args[0], "", "")
	if err != nil {
		return err
	}
	out := voidOutput{
		Day:    c.Pillars.Day.String(),
		Period: c.VoidPeriod,
		Name:   c.VoidPeriod.Name(),
		Flags:  c.BirthVoid,
		Names:  c.VoidNames,
	}
	if s.text() {
		line := fmt.Sprintf("%s  %s", out.Day, out.Name)
		if len(out.Names) > 0 {
			line += "  " + strings.Join(out.Names, " ")
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
