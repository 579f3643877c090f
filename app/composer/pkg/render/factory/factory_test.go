package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/docx"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/pdf"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer(render.FormatDOCX)
	assert.IsType(t, &docx.Renderer{}, r)
	assert.Equal(t, "docx", r.Extension())

	r = NewRenderer(render.FormatPDF)
	assert.IsType(t, &pdf.Renderer{}, r)
	assert.Equal(t, "application/pdf", r.ContentType())

	assert.IsType(t, &pdf.Renderer{}, NewRenderer(render.Format("txt")))
}
