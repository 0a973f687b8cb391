package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/meishiki/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [file]",
	Short: "View JSONL telemetry events",
	Long: `Reads and formats a JSONL telemetry file.

Without an argument, reads the file configured by --telemetry or telemetry.path.
With --follow (-f), watches the file for new events (like tail -f).
With --run, shows only events written by that run ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	telemetryCmd.Flags().String("run", "", "only show events from this run ID")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")
	run, _ := cmd.Flags().GetString("run")

	path, err := resolveTelemetryPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	w := cmd.OutOrStdout()
	show := func(evt telemetry.Event) error {
		if run == "" || evt.RunID == run {
			printEvent(w, evt)
		}
		return nil
	}

	// Print all existing events.
	reader := bufio.NewReader(f)
	if err := telemetry.Decode(reader, show); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tailFollow(ctx, f, path, show)
}

// resolveTelemetryPath returns the explicit argument or the configured path.
func resolveTelemetryPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	s, err := newSession()
	if err != nil {
		return "", err
	}
	defer s.Close()
	if s.cfg.Telemetry.Path == "" {
		return "", fmt.Errorf("telemetry: no file given and telemetry.path is not set")
	}
	return s.cfg.Telemetry.Path, nil
}

// tailFollow watches the file for new data using fsnotify and passes each
// new event to fn until ctx is done.
func tailFollow(ctx context.Context, f *os.File, path string, fn func(telemetry.Event) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	reader := bufio.NewReader(f)
	var partial string
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			// Read all complete lines now available.
			for {
				line, err := reader.ReadString('\n')
				if err != nil {
					// Keep a partial line for the next write.
					partial += line
					break
				}
				line, partial = strings.TrimSpace(partial+line), ""
				if line == "" {
					continue
				}
				var evt telemetry.Event
				if err := json.Unmarshal([]byte(line), &evt); err != nil {
					continue
				}
				if err := fn(evt); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("telemetry: watch %s: %w", path, err)
		}
	}
}

// printEvent prints a human-readable representation of an event.
func printEvent(w io.Writer, evt telemetry.Event) {
	parts := []string{
		fmt.Sprintf("[%s]", evt.Timestamp.Local().Format(time.DateTime)),
		evt.Kind,
	}
	if len(evt.RunID) >= 8 {
		parts = append(parts, "run="+evt.RunID[:8])
	}
	if evt.Subject != "" {
		parts = append(parts, evt.Subject)
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
