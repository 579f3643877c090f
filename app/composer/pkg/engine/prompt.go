package engine

import (
	"fmt"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

const systemPrompt = "You are an expert at writing professional meeting minutes and event reports. " +
	"You create well-structured, comprehensive, and formal documents."

const userPromptTpl = `You are a professional report writer. Generate a comprehensive and well-structured %s report based on the following information:

Event Title: %s
Event Type: %s
Date: %s
Location: %s
Organizer: %s
Attendees: %s
Agenda: %s
Summary: %s
Decisions: %s
Additional Notes: %s

Please generate a professional, formal report that elaborates on the above information. Structure it with clear sections for:
1. Event Overview
2. Objectives and Agenda
3. Key Highlights and Summary
4. Decisions and Outcomes
5. Conclusion and Recommendations

Make it comprehensive, formal, and well-organized. Expand on the provided information naturally.`

// buildPrompt 构造用户提示词，可选字段缺失时使用占位文本
func buildPrompt(ev dm.Event) string {
	return fmt.Sprintf(userPromptTpl,
		ev.Type,
		ev.Title,
		ev.Type,
		ev.Date,
		ev.Location,
		ev.Organizer,
		ev.Attendees,
		ev.Agenda,
		ev.Summary,
		orDefault(ev.Decisions, "None specified"),
		orDefault(ev.Notes, "None"),
	)
}
