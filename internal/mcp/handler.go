package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"founderos/internal/derive"
	"founderos/internal/founder"
	"founderos/internal/tracker"
)

type handler struct {
	svc *tracker.Service
}

// StatusResult is the dashboard snapshot returned by get_status.
type StatusResult struct {
	DayNumber    int      `json:"day_number"`
	DaysLeft     int      `json:"days_left"`
	TodayScore   int      `json:"today_score"`
	MaxScore     int      `json:"max_score"`
	Streak       int      `json:"streak"`
	BestStreak   int      `json:"best_streak"`
	WeekScore    int      `json:"week_score"`
	TotalRevenue int      `json:"total_revenue"`
	Achievements []string `json:"achievements"`
	Quote        string   `json:"quote"`
}

func (h *handler) getStatus(_ context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, StatusResult, error) {
	doc := h.svc.Snapshot()
	now := h.svc.Now()
	maxScore := derive.MaxDailyScore(doc.CustomChecklist)
	today := derive.DayData(doc.Days, derive.DateKey(now))
	quote := derive.QuoteOfDay(founder.Quotes, now)

	earned := make([]string, 0, len(doc.Achievements))
	for _, def := range founder.Achievements {
		if doc.Achievements[def.ID] {
			earned = append(earned, def.Label)
		}
	}

	return nil, StatusResult{
		DayNumber:    derive.DayNumber(doc.StartDate, now),
		DaysLeft:     derive.DaysLeft(doc.StartDate, now),
		TodayScore:   today.Score,
		MaxScore:     maxScore,
		Streak:       doc.Streak,
		BestStreak:   doc.BestStreak,
		WeekScore:    derive.WeekScore(doc.Days, now),
		TotalRevenue: derive.TotalRevenue(doc.Projects),
		Achievements: earned,
		Quote:        fmt.Sprintf("%s (%s)", quote.Text, quote.Author),
	}, nil
}

// ChecklistEntry is one task with its completion state for today.
type ChecklistEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Done        bool   `json:"done"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// ChecklistResult lists the effective checklist.
type ChecklistResult struct {
	Items []ChecklistEntry `json:"items"`
	Score int              `json:"score"`
	Max   int              `json:"max"`
}

func (h *handler) listChecklist(_ context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, ChecklistResult, error) {
	doc := h.svc.Snapshot()
	today := derive.DayData(doc.Days, h.svc.TodayKey())

	items := derive.ChecklistItems(doc.CustomChecklist)
	entries := make([]ChecklistEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, ChecklistEntry{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Done:        today.Checklist[item.ID],
			CompletedAt: today.CompletedAt[item.ID],
		})
	}
	return nil, ChecklistResult{Items: entries, Score: today.Score, Max: derive.MaxDailyScore(doc.CustomChecklist)}, nil
}

// ToggleTaskParams names the task to flip.
type ToggleTaskParams struct {
	TaskID string `json:"task_id" jsonschema:"id of the checklist task to toggle"`
}

// ToggleTaskResult reports the day after the toggle.
type ToggleTaskResult struct {
	Done   bool `json:"done"`
	Score  int  `json:"score"`
	Streak int  `json:"streak"`
}

func (h *handler) toggleTask(_ context.Context, _ *sdkmcp.CallToolRequest, params ToggleTaskParams) (*sdkmcp.CallToolResult, ToggleTaskResult, error) {
	if params.TaskID == "" {
		return nil, ToggleTaskResult{}, fmt.Errorf("task_id is required")
	}
	h.svc.ToggleChecklistTask(params.TaskID)

	doc := h.svc.Snapshot()
	today := derive.DayData(doc.Days, h.svc.TodayKey())
	return nil, ToggleTaskResult{
		Done:   today.Checklist[params.TaskID],
		Score:  today.Score,
		Streak: doc.Streak,
	}, nil
}

// LogDayParams carries today's optional wellbeing fields.
type LogDayParams struct {
	Mood   *string `json:"mood,omitempty" jsonschema:"one of great, happy, neutral, tired, sad, stressed"`
	Energy *int    `json:"energy,omitempty" jsonschema:"energy level 0-5"`
	Notes  *string `json:"notes,omitempty"`
}

// AckResult acknowledges a write.
type AckResult struct {
	Saved bool   `json:"saved"`
	Date  string `json:"date"`
}

func (h *handler) logDay(_ context.Context, _ *sdkmcp.CallToolRequest, params LogDayParams) (*sdkmcp.CallToolResult, AckResult, error) {
	if params.Mood != nil {
		h.svc.SetDayMood(*params.Mood)
	}
	if params.Energy != nil {
		h.svc.SetDayEnergy(*params.Energy)
	}
	if params.Notes != nil {
		h.svc.SetDayNotes(*params.Notes)
	}
	return nil, AckResult{Saved: true, Date: h.svc.TodayKey()}, nil
}

// SaveJournalParams is a full journal entry for one date.
type SaveJournalParams struct {
	Date         string   `json:"date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
	Gratitude    []string `json:"gratitude,omitempty" jsonschema:"up to three gratitude entries"`
	Wins         string   `json:"wins,omitempty"`
	Challenges   string   `json:"challenges,omitempty"`
	Learnings    string   `json:"learnings,omitempty"`
	TomorrowPlan string   `json:"tomorrow_plan,omitempty"`
	FreeWrite    string   `json:"free_write,omitempty"`
}

func (h *handler) saveJournal(_ context.Context, _ *sdkmcp.CallToolRequest, params SaveJournalParams) (*sdkmcp.CallToolResult, AckResult, error) {
	date := params.Date
	if date == "" {
		date = h.svc.TodayKey()
	}
	h.svc.SaveJournalEntry(date, founder.JournalEntry{
		Gratitude:    params.Gratitude,
		Wins:         params.Wins,
		Challenges:   params.Challenges,
		Learnings:    params.Learnings,
		TomorrowPlan: params.TomorrowPlan,
		FreeWrite:    params.FreeWrite,
	})
	return nil, AckResult{Saved: true, Date: date}, nil
}

// RecordThoughtParams is the free-text daily thought.
type RecordThoughtParams struct {
	Date    string `json:"date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
	Thought string `json:"thought"`
}

func (h *handler) recordThought(_ context.Context, _ *sdkmcp.CallToolRequest, params RecordThoughtParams) (*sdkmcp.CallToolResult, AckResult, error) {
	date := params.Date
	if date == "" {
		date = h.svc.TodayKey()
	}
	h.svc.SaveDailyThought(date, params.Thought)
	return nil, AckResult{Saved: true, Date: date}, nil
}

// AddFocusSessionParams records one timer run.
type AddFocusSessionParams struct {
	Duration int    `json:"duration" jsonschema:"session length in minutes"`
	Task     string `json:"task,omitempty" jsonschema:"what the session was spent on"`
}

func (h *handler) addFocusSession(_ context.Context, _ *sdkmcp.CallToolRequest, params AddFocusSessionParams) (*sdkmcp.CallToolResult, AckResult, error) {
	if params.Duration <= 0 {
		return nil, AckResult{}, fmt.Errorf("duration must be positive")
	}
	h.svc.AddFocusSession(founder.FocusSession{
		Duration: params.Duration,
		Task:     params.Task,
	})
	return nil, AckResult{Saved: true, Date: h.svc.TodayKey()}, nil
}
