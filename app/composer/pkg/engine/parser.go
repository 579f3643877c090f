package engine

import (
	"regexp"
	"strings"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

var (
	markdownHeading = regexp.MustCompile(`^#+\s+`)
	numberedHeading = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
	numberPrefix    = regexp.MustCompile(`^\d+\.\s+`)
)

// ParseSections 按标题行把模型输出切分为章节
//
// 只识别两种标题："# Title" 形式的 markdown 标题，以及 "1. Title" 形式
// 且首字母大写的编号标题。第一个标题之前的文字会被丢弃。
func ParseSections(text string) []dm.Section {
	sections := make([]dm.Section, 0)
	var current dm.Section
	var body strings.Builder

	flush := func() {
		if current.Title != "" {
			current.Content = body.String()
			sections = append(sections, current)
		}
		body.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if isHeading(line) {
			flush()
			title := markdownHeading.ReplaceAllString(line, "")
			title = numberPrefix.ReplaceAllString(title, "")
			current = dm.Section{Title: strings.TrimSpace(title)}
			continue
		}
		if strings.TrimSpace(line) != "" {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	flush()

	return sections
}

func isHeading(line string) bool {
	return markdownHeading.MatchString(line) || numberedHeading.MatchString(line)
}
