package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/report_forge/app/composer/pkg/engine"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/report/internal/domain"
)

// mockGenerator 模拟正文生成
type mockGenerator struct {
	content *dm.ReportContent
	err     error
	calls   int
}

func (m *mockGenerator) Generate(ctx context.Context, ev dm.Event) (*dm.ReportContent, error) {
	m.calls++
	return m.content, m.err
}

// mockPhotoRepo 记录被删除的文件
type mockPhotoRepo struct {
	removed [][]string
}

func (m *mockPhotoRepo) Remove(ctx context.Context, paths []string) {
	m.removed = append(m.removed, paths)
}

type mockRenderer struct {
	format render.Format
	err    error
	doc    *dm.Document
}

func (m *mockRenderer) Render(ctx context.Context, doc *dm.Document) ([]byte, error) {
	m.doc = doc
	if m.err != nil {
		return nil, m.err
	}
	return []byte("rendered-" + string(m.format)), nil
}

func (m *mockRenderer) ContentType() string { return "application/x-" + string(m.format) }

func (m *mockRenderer) Extension() string { return string(m.format) }

func validEvent() dm.Event {
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

type fixture struct {
	gen       *mockGenerator
	photos    *mockPhotoRepo
	renderer  *mockRenderer
	requested []render.Format
	uc        *ReportUseCase
}

func newFixture() *fixture {
	f := &fixture{
		gen:      &mockGenerator{content: &dm.ReportContent{FullText: "# A\nbody\n", Sections: []dm.Section{{Title: "A", Content: "body\n"}}}},
		photos:   &mockPhotoRepo{},
		renderer: &mockRenderer{},
	}
	factory := func(format render.Format) render.Renderer {
		f.requested = append(f.requested, format)
		f.renderer.format = format
		return f.renderer
	}
	f.uc = NewReportUseCase(f.gen, f.photos, factory, log.DefaultLogger)
	f.uc.now = func() time.Time { return time.UnixMilli(1725148800123) }
	return f
}

func TestReportUseCase_Generate(t *testing.T) {
	f := newFixture()
	photos := []string{"/tmp/a.png", "/tmp/b.jpg"}

	res, err := f.uc.Generate(context.Background(), &domain.ReportRequest{
		Event:  validEvent(),
		Photos: photos,
		Format: render.FormatPDF,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("rendered-pdf"), res.Body)
	assert.Equal(t, "application/x-pdf", res.ContentType)
	assert.Equal(t, "report_1725148800123.pdf", res.Filename)
	assert.Equal(t, []render.Format{render.FormatPDF}, f.requested)
	assert.Equal(t, photos, f.renderer.doc.Photos)
	assert.Equal(t, "A", f.renderer.doc.Content.Sections[0].Title)
	assert.Equal(t, [][]string{photos}, f.photos.removed)
}

func TestReportUseCase_GenerateDOCX(t *testing.T) {
	f := newFixture()

	res, err := f.uc.Generate(context.Background(), &domain.ReportRequest{Event: validEvent(), Format: render.FormatDOCX})
	require.NoError(t, err)
	assert.Equal(t, "report_1725148800123.docx", res.Filename)
	assert.Equal(t, []render.Format{render.FormatDOCX}, f.requested)
}

func TestReportUseCase_MissingFields(t *testing.T) {
	for _, field := range []string{"Title", "Type", "Date", "Location", "Organizer", "Attendees", "Agenda", "Summary"} {
		t.Run(field, func(t *testing.T) {
			f := newFixture()
			ev := validEvent()
			switch field {
			case "Title":
				ev.Title = ""
			case "Type":
				ev.Type = ""
			case "Date":
				ev.Date = ""
			case "Location":
				ev.Location = ""
			case "Organizer":
				ev.Organizer = ""
			case "Attendees":
				ev.Attendees = ""
			case "Agenda":
				ev.Agenda = ""
			case "Summary":
				ev.Summary = ""
			}
			photos := []string{"/tmp/x.png"}

			_, err := f.uc.Generate(context.Background(), &domain.ReportRequest{Event: ev, Photos: photos})
			require.Error(t, err)

			e := kerrors.FromError(err)
			assert.Equal(t, int32(500), e.Code)
			assert.Equal(t, domain.ReasonValidation, e.Reason)
			assert.Equal(t, "Missing required fields", e.Message)
			assert.Zero(t, f.gen.calls)
			assert.Equal(t, [][]string{photos}, f.photos.removed)
		})
	}
}

func TestReportUseCase_OptionalFieldsMayBeEmpty(t *testing.T) {
	f := newFixture()
	ev := validEvent()
	ev.Decisions, ev.Notes = "", ""

	_, err := f.uc.Generate(context.Background(), &domain.ReportRequest{Event: ev})
	require.NoError(t, err)
}

func TestReportUseCase_InvalidAPIKey(t *testing.T) {
	f := newFixture()
	f.gen.err = fmt.Errorf("%w: status 401", engine.ErrInvalidAPIKey)
	photos := []string{"/tmp/a.png"}

	_, err := f.uc.Generate(context.Background(), &domain.ReportRequest{Event: validEvent(), Photos: photos})
	require.Error(t, err)

	e := kerrors.FromError(err)
	assert.Equal(t, domain.ReasonUpstreamConfiguration, e.Reason)
	assert.Equal(t, "Invalid Groq API key. Please check your .env configuration.", e.Message)
	assert.Nil(t, f.renderer.doc)
	assert.Equal(t, [][]string{photos}, f.photos.removed)
}

func TestReportUseCase_RenderFailure(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("zip: write failed")
	photos := []string{"/tmp/a.png", "/tmp/b.png"}

	_, err := f.uc.Generate(context.Background(), &domain.ReportRequest{Event: validEvent(), Photos: photos, Format: render.FormatDOCX})
	require.Error(t, err)

	e := kerrors.FromError(err)
	assert.Equal(t, domain.ReasonRender, e.Reason)
	assert.Equal(t, "Failed to generate Word document", e.Message)
	assert.Equal(t, [][]string{photos}, f.photos.removed)
}
