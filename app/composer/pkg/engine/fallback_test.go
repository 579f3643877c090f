package engine

import (
	"strings"
	"testing"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

func sampleEvent() dm.Event {
	return dm.Event{
		Title:     "Q3 Planning",
		Type:      "Meeting",
		Date:      "2024-09-01",
		Location:  "HQ",
		Organizer: "A. Lee",
		Attendees: "team",
		Agenda:    "review roadmap",
		Summary:   "on track",
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(sampleEvent())

	wantTitles := []string{"Event Overview", "Agenda", "Summary", "Decisions", "Notes"}
	if len(got.Sections) != len(wantTitles) {
		t.Fatalf("Fallback() sections = %d, want %d", len(got.Sections), len(wantTitles))
	}
	for i, title := range wantTitles {
		if got.Sections[i].Title != title {
			t.Errorf("section %d title = %q, want %q", i, got.Sections[i].Title, title)
		}
	}

	if got.Sections[1].Content != "review roadmap" {
		t.Errorf("agenda = %q", got.Sections[1].Content)
	}
	if got.Sections[3].Content != "No decisions recorded" {
		t.Errorf("decisions = %q", got.Sections[3].Content)
	}
	if got.Sections[4].Content != "No additional notes" {
		t.Errorf("notes = %q", got.Sections[4].Content)
	}
	if !strings.Contains(got.Sections[0].Content, "Title: Q3 Planning") ||
		!strings.Contains(got.Sections[0].Content, "Attendees: team") {
		t.Errorf("overview = %q", got.Sections[0].Content)
	}
	for _, h := range []string{"EVENT OVERVIEW", "AGENDA", "SUMMARY", "DECISIONS", "ADDITIONAL NOTES"} {
		if !strings.Contains(got.FullText, h) {
			t.Errorf("FullText missing %q", h)
		}
	}
}

func TestFallback_KeepsOptionalFields(t *testing.T) {
	ev := sampleEvent()
	ev.Decisions = "Ship it"
	ev.Notes = "Bring snacks"

	got := Fallback(ev)
	if got.Sections[3].Content != "Ship it" || got.Sections[4].Content != "Bring snacks" {
		t.Errorf("Fallback() = %#v", got.Sections)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(sampleEvent())
	for _, s := range []string{
		"well-structured Meeting report",
		"Event Title: Q3 Planning",
		"Decisions: None specified",
		"Additional Notes: None",
		"5. Conclusion and Recommendations",
	} {
		if !strings.Contains(p, s) {
			t.Errorf("prompt missing %q", s)
		}
	}
}
