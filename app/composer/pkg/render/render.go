package render

import (
	"context"
	"fmt"
	"strconv"
	"time"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

// Format 输出文档格式
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Attribution 文档署名
const Attribution = "Generated by BMAD™ Core"

// Renderer 定义通用的文档渲染接口
type Renderer interface {
	Render(ctx context.Context, doc *dm.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// ParseFormat 解析格式字符串，除 docx 外一律按 pdf 处理
func ParseFormat(s string) Format {
	if Format(s) == FormatDOCX {
		return FormatDOCX
	}
	return FormatPDF
}

// DocumentID 由毫秒时间戳末 8 位生成文档编号
func DocumentID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "RPT-" + ms
}

// LongDate 格式化为 "January 2, 2006"
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ShortDate 页脚署名使用的日期 "1/2/2006"
func ShortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// FigureCaption 附录图片标题
func FigureCaption(i int) (label, text string) {
	return fmt.Sprintf("Figure %d:", i+1), fmt.Sprintf("Event photograph %d", i+1)
}
