package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/config"
	"github.com/papapumpkin/meishiki/internal/roster"
	"github.com/papapumpkin/meishiki/internal/telemetry"
	"github.com/papapumpkin/meishiki/internal/ui"
)

// withOutput sets the output format for one test. Commands share viper
// state, so tests using it must not run in parallel.
func withOutput(t *testing.T, format string) {
	t.Helper()
	viper.Set("output", format)
	t.Cleanup(func() { viper.Set("output", "json") })
}

func TestCommands_Registered(t *testing.T) {
	t.Parallel()
	want := []string{"chart", "compare", "energy", "cycles", "void", "relate", "batch", "mcp", "telemetry", "version"}
	got := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestChartCmd_JSON(t *testing.T) {
	withOutput(t, "json")
	var buf bytes.Buffer
	chartCmd.SetOut(&buf)
	defer chartCmd.SetOut(nil)

	if err := chartCmd.Flags().Set("time", "12:00"); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = chartCmd.Flags().Set("time", "") }()

	if err := runChart(chartCmd, []string{"1983-08-11"}); err != nil {
		t.Fatalf("runChart: %v", err)
	}
	var out struct {
		Pillars struct {
			Day struct {
				Stem   string `json:"stem"`
				Branch string `json:"branch"`
			} `json:"day"`
		} `json:"pillars"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if out.Pillars.Day.Stem+out.Pillars.Day.Branch != "辛未" {
		t.Errorf("day pillar = %+v", out.Pillars.Day)
	}
}

func TestChartCmd_InvalidDate(t *testing.T) {
	withOutput(t, "json")
	chartCmd.SetOut(io.Discard)
	defer chartCmd.SetOut(nil)

	err := runChart(chartCmd, []string{"1983-02-30"})
	if !errors.Is(err, chart.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestChartCmd_InvalidFormat(t *testing.T) {
	withOutput(t, "yaml")
	err := runChart(chartCmd, []string{"1983-08-11"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want config.ErrInvalid", err)
	}
}

func TestCompareCmd_Text(t *testing.T) {
	withOutput(t, "text")
	var buf bytes.Buffer
	compareCmd.SetOut(&buf)
	defer compareCmd.SetOut(nil)

	if err := runCompare(compareCmd, []string{"1983-08-11", "1995-09-14"}); err != nil {
		t.Fatalf("runCompare: %v", err)
	}
	for _, want := range []string{"1983-08-11", "1995-09-14", "43 poor"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRelateCmd_JSON(t *testing.T) {
	withOutput(t, "json")
	var buf bytes.Buffer
	relateCmd.SetOut(&buf)
	defer relateCmd.SetOut(nil)

	if err := runRelate(relateCmd, []string{"甲子", "己丑"}); err != nil {
		t.Fatalf("runRelate: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "干合支合"`) {
		t.Errorf("output missing 干合支合:\n%s", buf.String())
	}

	if err := runRelate(relateCmd, []string{"甲丑", "己丑"}); err == nil {
		t.Error("expected error for an invalid pillar")
	}
}

func TestVoidCmd_JSON(t *testing.T) {
	withOutput(t, "json")
	var buf bytes.Buffer
	voidCmd.SetOut(&buf)
	defer voidCmd.SetOut(nil)

	if err := runVoid(voidCmd, []string{"1983-08-11"}); err != nil {
		t.Fatalf("runVoid: %v", err)
	}
	var out struct {
		Day   string   `json:"day"`
		Name  string   `json:"name"`
		Names []string `json:"birthVoidNames"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Day != "辛未" || out.Name != "戌亥天中殺" || len(out.Names) == 0 {
		t.Errorf("void = %+v", out)
	}
}

const testRoster = `
[[person]]
name = "Aki"
date = "1983-08-11"

[[person]]
name = "Mio"
date = "1995-09-14"

[[person]]
name = "Ren"
date = "1990-03-02"
gender = "female"
`

func TestBatchCmd_Pairs(t *testing.T) {
	withOutput(t, "json")
	path := filepath.Join(t.TempDir(), "roster.toml")
	if err := os.WriteFile(path, []byte(testRoster), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	batchCmd.SetOut(&buf)
	defer batchCmd.SetOut(nil)
	if err := batchCmd.Flags().Set("pairs", "true"); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = batchCmd.Flags().Set("pairs", "false") }()

	if err := runBatch(batchCmd, []string{path}); err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	var out struct {
		People []struct {
			Name string `json:"name"`
		} `json:"people"`
		Pairs []struct {
			A, B   string
			Result struct {
				Score int `json:"score"`
			} `json:"result"`
		} `json:"pairs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(out.People) != 3 || len(out.Pairs) != 3 {
		t.Fatalf("got %d people and %d pairs, want 3 and 3", len(out.People), len(out.Pairs))
	}
	if out.Pairs[0].A != "Aki" || out.Pairs[0].B != "Mio" || out.Pairs[0].Result.Score != 43 {
		t.Errorf("first pair = %+v", out.Pairs[0])
	}
}

func TestBatchCmd_InvalidRoster(t *testing.T) {
	withOutput(t, "json")
	path := filepath.Join(t.TempDir(), "roster.toml")
	if err := os.WriteFile(path, []byte("[defaults]\ngender = \"male\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := runBatch(batchCmd, []string{path})
	if !errors.Is(err, roster.ErrNoPeople) {
		t.Errorf("err = %v, want ErrNoPeople", err)
	}
}

func TestWatchRoster_RecomputesOnReload(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Output = "json"
	s := &session{cfg: cfg, printer: ui.NewWriter(io.Discard)}

	r, err := roster.Parse([]byte(testRoster))
	if err != nil {
		t.Fatal(err)
	}
	r.Path = "roster.toml"

	reloads := make(chan roster.Reload, 2)
	reloads <- roster.Reload{Err: errors.New("parse failure")}
	reloads <- roster.Reload{Roster: r}
	close(reloads)

	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.watchRoster(ctx, &buf, reloads, false); err != nil {
		t.Fatalf("watchRoster: %v", err)
	}
	var out struct {
		People []struct {
			Name string `json:"name"`
		} `json:"people"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not one JSON document: %v", err)
	}
	if len(out.People) != 3 || out.People[2].Name != "Ren" {
		t.Errorf("people = %d, want 3 ending with Ren", len(out.People))
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	printEvent(&buf, telemetry.Event{
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Kind:      telemetry.KindChartComputed,
		RunID:     "0123456789abcdef",
		Subject:   "1983-08-11",
		Data:      map[string]any{"day": "辛未", "b": 1},
	})
	out := buf.String()
	for _, want := range []string{"chart_computed", "run=01234567", "1983-08-11", "b=1 day=辛未"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestTelemetryCmd_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = em.Record(telemetry.KindRosterLoaded, "roster.toml", map[string]int{"people": 2})
	_ = em.Close()

	var buf bytes.Buffer
	telemetryCmd.SetOut(&buf)
	defer telemetryCmd.SetOut(nil)
	if err := runTelemetry(telemetryCmd, []string{path}); err != nil {
		t.Fatalf("runTelemetry: %v", err)
	}
	if !strings.Contains(buf.String(), "roster_loaded") || !strings.Contains(buf.String(), "people=2") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
