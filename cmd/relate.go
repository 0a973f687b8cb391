package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
	"github.com/papapumpkin/meishiki/internal/ui"
)

var relateCmd = &cobra.Command{
	Use:     "relate <pillarA> <pillarB>",
	Short:   "Describe the relationships between two pillars",
	Example: "  meishiki relate 甲子 庚午",
	Args:    cobra.ExactArgs(2),
	RunE:    runRelate,
}

func init() {
	rootCmd.AddCommand(relateCmd)
}

func runRelate(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	a, err := ganzhi.ParsePillar(args[0])
	if err != nil {
		return fmt.Errorf("pillar a: %w", err)
	}
	b, err := ganzhi.ParsePillar(args[1])
	if err != nil {
		return fmt.Errorf("pillar b: %w", err)
	}
	if s.text() {
		ui.Relations(cmd.OutOrStdout(), a, b)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), relation.Describe(a, b))
}
