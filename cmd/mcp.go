package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/meishiki/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the chart tools over the Model Context Protocol",
	Long: `Starts an MCP server exposing compute_chart, compare_charts, energy_score,
annual_cycles and relate_pillars. The stdio transport is meant to be launched
by an MCP client; the http transport serves streamable HTTP on --addr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "transport: stdio or http")
	mcpCmd.Flags().String("addr", "127.0.0.1:8392", "listen address for the http transport")
	_ = viper.BindPFlag("mcp.transport", mcpCmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("mcp.addr", mcpCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	srv := mcpserver.NewServer(mcpserver.Defaults{
		Longitude:     s.cfg.Longitude,
		Gender:        s.cfg.Gender,
		TrueSolarTime: s.cfg.TrueSolarTime,
		Cycles:        s.cfg.CycleCount,
		AnnualSpan:    s.cfg.AnnualSpan,
	}, s.events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.cfg.MCP.Transport == "stdio" {
		return srv.Run(ctx)
	}

	if err := srv.Start(s.cfg.MCP.Addr); err != nil {
		return err
	}
	s.printer.Success("mcp server listening on http://" + srv.Addr().String())
	<-ctx.Done()
	s.printer.Info("shutting down...")

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutCtx)
}
