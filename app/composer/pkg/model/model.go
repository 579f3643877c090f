package model

// Event 活动/会议的原始输入信息
type Event struct {
	Title     string `yaml:"event_title"`
	Type      string `yaml:"event_type"`
	Date      string `yaml:"event_date"`
	Location  string `yaml:"location"`
	Organizer string `yaml:"organizer"`
	Attendees string `yaml:"attendees"`
	Agenda    string `yaml:"agenda"`
	Summary   string `yaml:"summary"`
	Decisions string `yaml:"decisions"` // 可选
	Notes     string `yaml:"notes"`     // 可选
}

// Complete 判断所有必填字段是否非空，只含空白的值也算已填写
func (e *Event) Complete() bool {
	for _, v := range []string{
		e.Title, e.Type, e.Date, e.Location,
		e.Organizer, e.Attendees, e.Agenda, e.Summary,
	} {
		if v == "" {
			return false
		}
	}
	return true
}

// Section 报告中的一个章节
type Section struct {
	Title   string
	Content string
}

// ReportContent 生成的报告正文
type ReportContent struct {
	FullText string    // 模型原始输出
	Sections []Section // 按生成顺序解析出的章节
}

// Structured 是否存在可用的章节结构，否则渲染器直接使用 FullText
func (c *ReportContent) Structured() bool {
	return len(c.Sections) > 0
}

// Document 渲染器的输入
type Document struct {
	Event   Event
	Content *ReportContent
	Photos  []string // 临时图片文件路径
}
