package factory

import (
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/docx"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/pdf"
)

// NewRenderer 根据格式创建渲染器实例
func NewRenderer(format render.Format) render.Renderer {
	switch format {
	case render.FormatDOCX:
		return docx.NewRenderer()
	default:
		return pdf.NewRenderer()
	}
}
