package engine

import (
	"fmt"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

const (
	noDecisions = "No decisions recorded"
	noNotes     = "No additional notes"
)

// Fallback 在 LLM 不可用时直接由输入字段拼出固定的 5 个章节
func Fallback(ev dm.Event) *dm.ReportContent {
	decisions := orDefault(ev.Decisions, noDecisions)
	notes := orDefault(ev.Notes, noNotes)

	overview := fmt.Sprintf("Title: %s\nType: %s\nDate: %s\nLocation: %s\nOrganizer: %s\nAttendees: %s",
		ev.Title, ev.Type, ev.Date, ev.Location, ev.Organizer, ev.Attendees)

	fullText := fmt.Sprintf(`
EVENT OVERVIEW

%s

AGENDA

%s

SUMMARY

%s

DECISIONS

%s

ADDITIONAL NOTES

%s
`, overview, ev.Agenda, ev.Summary, decisions, notes)

	return &dm.ReportContent{
		FullText: fullText,
		Sections: []dm.Section{
			{Title: "Event Overview", Content: overview},
			{Title: "Agenda", Content: ev.Agenda},
			{Title: "Summary", Content: ev.Summary},
			{Title: "Decisions", Content: decisions},
			{Title: "Notes", Content: notes},
		},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
