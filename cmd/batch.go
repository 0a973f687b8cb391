package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/compat"
	"github.com/papapumpkin/meishiki/internal/roster"
	"github.com/papapumpkin/meishiki/internal/telemetry"
	"github.com/papapumpkin/meishiki/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <roster.toml>",
	Short: "Compute charts for every person in a roster file",
	Long: `Reads a TOML roster of [[person]] entries and computes each chart.

With --pairs, also scores every pair of people (earlier entry as person A).
With --watch, recomputes whenever the roster file changes until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("pairs", false, "also compare every pair of people")
	batchCmd.Flags().Bool("watch", false, "recompute on every change to the roster file")
	rootCmd.AddCommand(batchCmd)
}

// batchPerson is one computed roster entry.
type batchPerson struct {
	Name  string      `json:"name"`
	Chart chart.Chart `json:"chart"`
}

// batchPair is one pairwise comparison.
type batchPair struct {
	A      string        `json:"a"`
	B      string        `json:"b"`
	Result compat.Result `json:"result"`
}

// batchOutput is the JSON shape printed by the batch command.
type batchOutput struct {
	People []batchPerson `json:"people"`
	Pairs  []batchPair   `json:"pairs,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	path := args[0]
	pairs, _ := cmd.Flags().GetBool("pairs")
	watch, _ := cmd.Flags().GetBool("watch")

	r, err := roster.Load(path)
	if err != nil {
		return err
	}
	s.emit(telemetry.KindRosterLoaded, path, map[string]int{"people": len(r.People)})
	if err := s.runRoster(cmd.OutOrStdout(), r, pairs); err != nil {
		if !watch {
			return err
		}
		s.printer.Error(err.Error())
	}
	if !watch {
		return nil
	}

	w, err := roster.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watching roster: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching roster: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			s.printer.Info("\nshutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	s.printer.Watching(path)
	return s.watchRoster(ctx, cmd.OutOrStdout(), w.Reloads, pairs)
}

// watchRoster recomputes on every reload until ctx is done or reloads
// closes. Errors are reported and watching continues.
func (s *session) watchRoster(ctx context.Context, out io.Writer, reloads <-chan roster.Reload, pairs bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case rl, ok := <-reloads:
			if !ok {
				return nil
			}
			if rl.Err != nil {
				s.printer.Error(rl.Err.Error())
				continue
			}
			s.emit(telemetry.KindRosterReloaded, rl.Roster.Path, map[string]int{"people": len(rl.Roster.People)})
			if err := s.runRoster(out, rl.Roster, pairs); err != nil {
				s.printer.Error(err.Error())
			}
		}
	}
}

// runRoster validates, computes and prints one roster.
func (s *session) runRoster(out io.Writer, r *roster.Roster, pairs bool) error {
	verrs := roster.Validate(r)
	s.printer.RosterResult(r.Path, len(r.People), verrs)
	if len(verrs) > 0 {
		return fmt.Errorf("roster %s: %w", r.Path, &verrs[0])
	}

	entries, err := r.Entries(s.cfg.Longitude, s.cfg.Gender)
	if err != nil {
		return err
	}
	res, err := s.computeBatch(entries, pairs)
	if err != nil {
		return err
	}

	if !s.text() {
		return writeJSON(out, res)
	}
	for _, p := range res.People {
		fmt.Fprintf(out, "── %s ──\n", p.Name)
		ui.Report(out, p.Chart)
		fmt.Fprintln(out)
	}
	for _, p := range res.Pairs {
		ui.Compare(out, p.A, p.B, p.Result)
	}
	return nil
}

func (s *session) computeBatch(entries []roster.Entry, pairs bool) (batchOutput, error) {
	var res batchOutput
	for _, e := range entries {
		in := e.Input
		in.TrueSolarTime = s.cfg.TrueSolarTime
		in.Cycles = s.cfg.CycleCount
		c, err := s.compute(in, e.Name)
		if err != nil {
			return batchOutput{}, fmt.Errorf("person %s: %w", e.Name, err)
		}
		res.People = append(res.People, batchPerson{Name: e.Name, Chart: c})
	}
	if !pairs {
		return res, nil
	}
	for i := range res.People {
		for j := i + 1; j < len(res.People); j++ {
			a, b := res.People[i], res.People[j]
			r := compat.Compare(a.Chart.FourPillars(), b.Chart.FourPillars())
			s.emit(telemetry.KindCompareComputed, a.Name+" "+b.Name, map[string]int{"score": r.Score})
			res.Pairs = append(res.Pairs, batchPair{A: a.Name, B: b.Name, Result: r})
		}
	}
	return res, nil
}
