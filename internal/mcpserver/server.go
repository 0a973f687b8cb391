// Package mcpserver exposes the chart engine as MCP tools, served over
// stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papapumpkin/meishiki/internal/telemetry"
)

// Version is reported to MCP clients in the server implementation info.
const Version = "0.1.0"

// Defaults fill tool inputs that leave a field unset.
type Defaults struct {
	Longitude     float64
	Gender        string
	TrueSolarTime bool
	Cycles        int
	AnnualSpan    int
}

// Server is the meishiki MCP server.
type Server struct {
	mcp      *mcp.Server
	defaults Defaults
	events   *telemetry.Emitter
	srv      *http.Server
	ln       net.Listener
}

// NewServer creates a server with every tool registered. A nil emitter
// disables telemetry.
func NewServer(defaults Defaults, events *telemetry.Emitter) *Server {
	s := &Server{
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    "meishiki",
				Version: Version,
			},
			nil,
		),
		defaults: defaults,
		events:   events,
	}
	s.registerTools()
	return s
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Start begins serving streamable HTTP on addr. It returns once the
// listener is bound; use Addr to learn the port when addr ends in ":0".
func (s *Server) Start(addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcpserver: listen on %s: %w", addr, err)
	}
	s.ln = ln
	s.srv = &http.Server{Handler: handler}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "mcpserver: serve error: %v\n", err)
		}
	}()
	return nil
}

// Addr returns the listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.ln != nil {
		return s.ln.Addr()
	}
	return nil
}

// Stop gracefully shuts down the HTTP server. It is a no-op before Start.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// record emits a tool_called event.
func (s *Server) record(tool, subject string) {
	s.emit(telemetry.KindToolCalled, subject, map[string]string{"tool": tool})
}

// emit writes a telemetry event. Telemetry failures never fail a tool.
func (s *Server) emit(kind, subject string, data any) {
	if err := s.events.Record(kind, subject, data); err != nil {
		fmt.Fprintf(os.Stderr, "mcpserver: %v\n", err)
	}
}
