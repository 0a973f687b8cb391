package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/config"
	"github.com/papapumpkin/meishiki/internal/telemetry"
	"github.com/papapumpkin/meishiki/internal/ui"
)

// session bundles what every command needs: validated configuration, the
// status printer and the telemetry emitter.
type session struct {
	cfg     config.Config
	printer *ui.Printer
	events  *telemetry.Emitter
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	events, err := telemetry.NewEmitter(cfg.Telemetry.Path)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, printer: ui.New(), events: events}, nil
}

func (s *session) Close() {
	if err := s.events.Close(); err != nil {
		s.printer.Warn(err.Error())
	}
}

func (s *session) text() bool {
	return s.cfg.Output == "text"
}

// input parses a birth, falling back to the configured gender and
// longitude.
func (s *session) input(date, clock, gender string) (chart.Input, error) {
	if gender == "" {
		gender = s.cfg.Gender
	}
	in, err := chart.ParseInput(date, clock, gender, s.cfg.Longitude)
	if err != nil {
		return chart.Input{}, err
	}
	in.TrueSolarTime = s.cfg.TrueSolarTime
	in.Cycles = s.cfg.CycleCount
	return in, nil
}

func (s *session) compute(in chart.Input, subject string) (chart.Chart, error) {
	c, err := chart.Compute(in)
	if err != nil {
		return chart.Chart{}, err
	}
	s.emit(telemetry.KindChartComputed, subject, map[string]string{"day": c.Pillars.Day.String()})
	return c, nil
}

func (s *session) chart(date, clock, gender string) (chart.Chart, error) {
	in, err := s.input(date, clock, gender)
	if err != nil {
		return chart.Chart{}, err
	}
	return s.compute(in, date)
}

// emit records a telemetry event, reporting failures only in verbose mode.
func (s *session) emit(kind, subject string, data any) {
	if err := s.events.Record(kind, subject, data); err != nil && s.cfg.Verbose {
		s.printer.Warn(err.Error())
	}
}

// writeJSON writes v as indented JSON without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
