package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/compat"
	"github.com/papapumpkin/meishiki/internal/cycle"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
	"github.com/papapumpkin/meishiki/internal/telemetry"
)

// personInput identifies one birth.
type personInput struct {
	Date          string   `json:"date" jsonschema:"birth date as YYYY-MM-DD"`
	Time          string   `json:"time,omitempty" jsonschema:"birth time as HH:MM, default 12:00"`
	Gender        string   `json:"gender,omitempty" jsonschema:"male or female"`
	Longitude     *float64 `json:"longitude,omitempty" jsonschema:"birth longitude in degrees east"`
	TrueSolarTime *bool    `json:"true_solar_time,omitempty" jsonschema:"correct the birth hour to apparent solar time"`
}

// compareInput is the input schema for the compare_charts tool.
type compareInput struct {
	A personInput `json:"a" jsonschema:"person A; day-stem relations read from A to B"`
	B personInput `json:"b" jsonschema:"person B"`
}

// annualInput is the input schema for the annual_cycles tool.
type annualInput struct {
	Date          string   `json:"date" jsonschema:"birth date as YYYY-MM-DD"`
	Time          string   `json:"time,omitempty" jsonschema:"birth time as HH:MM, default 12:00"`
	Gender        string   `json:"gender,omitempty" jsonschema:"male or female"`
	Longitude     *float64 `json:"longitude,omitempty" jsonschema:"birth longitude in degrees east"`
	TrueSolarTime *bool    `json:"true_solar_time,omitempty" jsonschema:"correct the birth hour to apparent solar time"`
	From          int      `json:"from,omitempty" jsonschema:"first calendar year, default the current year"`
	Span          int      `json:"span,omitempty" jsonschema:"number of years"`
}

func (in annualInput) person() personInput {
	return personInput{
		Date:          in.Date,
		Time:          in.Time,
		Gender:        in.Gender,
		Longitude:     in.Longitude,
		TrueSolarTime: in.TrueSolarTime,
	}
}

// relateInput is the input schema for the relate_pillars tool.
type relateInput struct {
	A string `json:"a" jsonschema:"first pillar, e.g. 甲子"`
	B string `json:"b" jsonschema:"second pillar"`
}

// annualOutput is the output of the annual_cycles tool.
type annualOutput struct {
	Major  cycle.Major  `json:"majorCycles"`
	Annual []cycle.Year `json:"annualCycles"`
}

// registerTools registers every chart tool with the MCP server. Outputs are
// typed any, so no output schema is inferred from the chart types.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "compute_chart",
		Description: "Compute the full destiny chart for a birth date and time",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in personInput) (*mcp.CallToolResult, any, error) {
		c, err := s.chart(in)
		if err != nil {
			return nil, nil, err
		}
		s.record("compute_chart", in.Date)
		return nil, c, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "compare_charts",
		Description: "Score the compatibility of two people (0-100) with a rating and explanations",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in compareInput) (*mcp.CallToolResult, any, error) {
		a, err := s.chart(in.A)
		if err != nil {
			return nil, nil, fmt.Errorf("person a: %w", err)
		}
		b, err := s.chart(in.B)
		if err != nil {
			return nil, nil, fmt.Errorf("person b: %w", err)
		}
		r := compat.Compare(a.FourPillars(), b.FourPillars())
		s.emit(telemetry.KindCompareComputed, in.A.Date+" "+in.B.Date, map[string]int{"score": r.Score})
		s.record("compare_charts", in.A.Date+" "+in.B.Date)
		return nil, r, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "energy_score",
		Description: "Compute the energy score, per-element totals and directionality type",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in personInput) (*mcp.CallToolResult, any, error) {
		c, err := s.chart(in)
		if err != nil {
			return nil, nil, err
		}
		s.record("energy_score", in.Date)
		return nil, c.Energy, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "annual_cycles",
		Description: "List the major cycles and a span of annual cycles with their stars and phases",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in annualInput) (*mcp.CallToolResult, any, error) {
		c, err := s.chart(in.person())
		if err != nil {
			return nil, nil, err
		}
		from := in.From
		if from == 0 {
			from = time.Now().Year()
		}
		span := in.Span
		if span <= 0 {
			span = s.defaults.AnnualSpan
		}
		s.record("annual_cycles", in.Date)
		return nil, annualOutput{
			Major:  c.MajorCycles,
			Annual: cycle.Annual(c.Natal(), from, span),
		}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "relate_pillars",
		Description: "Describe the element relations, combinations, clashes and phase labels between two pillars",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in relateInput) (*mcp.CallToolResult, any, error) {
		a, err := ganzhi.ParsePillar(in.A)
		if err != nil {
			return nil, nil, fmt.Errorf("pillar a: %w", err)
		}
		b, err := ganzhi.ParsePillar(in.B)
		if err != nil {
			return nil, nil, fmt.Errorf("pillar b: %w", err)
		}
		s.record("relate_pillars", in.A+in.B)
		return nil, relation.Describe(a, b), nil
	})
}

// chart resolves a person against the server defaults and computes it.
func (s *Server) chart(in personInput) (chart.Chart, error) {
	lon := s.defaults.Longitude
	if in.Longitude != nil {
		lon = *in.Longitude
	}
	gender := in.Gender
	if gender == "" {
		gender = s.defaults.Gender
	}
	ci, err := chart.ParseInput(in.Date, in.Time, gender, lon)
	if err != nil {
		return chart.Chart{}, err
	}
	ci.TrueSolarTime = s.defaults.TrueSolarTime
	if in.TrueSolarTime != nil {
		ci.TrueSolarTime = *in.TrueSolarTime
	}
	ci.Cycles = s.defaults.Cycles
	c, err := chart.Compute(ci)
	if err != nil {
		return chart.Chart{}, err
	}
	s.emit(telemetry.KindChartComputed, in.Date, map[string]string{"day": c.Pillars.Day.String()})
	return c, nil
}
