package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatDOCX, ParseFormat("docx"))
	assert.Equal(t, FormatPDF, ParseFormat("pdf"))
	assert.Equal(t, FormatPDF, ParseFormat(""))
	assert.Equal(t, FormatPDF, ParseFormat("DOCX"))
	assert.Equal(t, FormatPDF, ParseFormat("html"))
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "RPT-48800123", DocumentID(time.UnixMilli(1725148800123)))
	assert.Equal(t, "RPT-1234", DocumentID(time.UnixMilli(1234)))
}

func TestDates(t *testing.T) {
	ts := time.Date(2024, time.September, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "September 1, 2024", LongDate(ts))
	assert.Equal(t, "9/1/2024", ShortDate(ts))
}

func TestFigureCaption(t *testing.T) {
	label, text := FigureCaption(0)
	assert.Equal(t, "Figure 1:", label)
	assert.Equal(t, "Event photograph 1", text)

	label, text = FigureCaption(2)
	assert.Equal(t, "Figure 3:", label)
	assert.Equal(t, "Event photograph 3", text)
}
