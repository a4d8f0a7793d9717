// Package mcp exposes the tracker to AI assistants over the Model Context
// Protocol: a small tool surface covering the daily loop (status, checklist,
// journal, thoughts, focus sessions).
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"founderos/internal/tracker"
)

const serverInstructions = `Founder OS tracks a 365-day founder challenge: a daily
checklist, projects, goals, journal, and focus sessions. Use get_status for
today's picture, toggle_task to mark checklist items, and the logging tools to
record journal entries, thoughts, and focus sessions. All writes persist
locally at once and sync to the remote store shortly after.`

// NewServer creates an MCP server over the state container.
func NewServer(svc *tracker.Service, logger *slog.Logger) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "founderos",
		Version: "1.0.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	h := &handler{svc: svc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_status",
		Description: "Get today's dashboard: challenge day, score, streaks, revenue, achievements, and the quote of the day",
	}, h.getStatus)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_checklist",
		Description: "List the effective daily checklist with today's completion state",
	}, h.listChecklist)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_task",
		Description: "Toggle a checklist task for today by its task id",
	}, h.toggleTask)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_day",
		Description: "Record today's mood, energy (0-5), or notes",
	}, h.logDay)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_journal",
		Description: "Save the journal entry for a date (defaults to today)",
	}, h.saveJournal)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_thought",
		Description: "Save the free-text daily thought for a date (defaults to today)",
	}, h.recordThought)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_focus_session",
		Description: "Record a completed focus-timer session",
	}, h.addFocusSession)

	return server
}
