package engine

import (
	"testing"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []dm.Section
	}{
		{
			name: "markdown headings",
			text: "# Event Overview\nLine A\n\n## Agenda\nItem 1\nItem 2\n",
			want: []dm.Section{
				{Title: "Event Overview", Content: "Line A\n"},
				{Title: "Agenda", Content: "Item 1\nItem 2\n"},
			},
		},
		{
			name: "numbered headings",
			text: "1. Event Overview\nText\n2. Decisions\nMore",
			want: []dm.Section{
				{Title: "Event Overview", Content: "Text\n"},
				{Title: "Decisions", Content: "More\n"},
			},
		},
		{
			name: "markdown heading with number prefix",
			text: "### 3. Key Highlights\nbody",
			want: []dm.Section{{Title: "Key Highlights", Content: "body\n"}},
		},
		{
			name: "preamble is dropped",
			text: "Here is your report.\n\n# Summary\nAll good",
			want: []dm.Section{{Title: "Summary", Content: "All good\n"}},
		},
		{
			name: "lowercase numbered line is body",
			text: "# Agenda\n1. review budget\n2. Plan",
			want: []dm.Section{
				{Title: "Agenda", Content: "1. review budget\n"},
				{Title: "Plan", Content: ""},
			},
		},
		{
			name: "no headings",
			text: "plain text without structure",
			want: []dm.Section{},
		},
		{
			name: "empty",
			text: "",
			want: []dm.Section{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.text)
			if got == nil {
				t.Fatalf("ParseSections() returned nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSections() = %#v, want %#v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("section %d = %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSections_HashWithoutSpace(t *testing.T) {
	got := ParseSections("#hashtag\n# Real\nbody")
	if len(got) != 1 || got[0].Title != "Real" {
		t.Errorf("ParseSections() = %#v", got)
	}
}
