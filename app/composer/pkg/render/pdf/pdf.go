package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/iWorld-y/report_forge/app/composer/pkg/logger"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
)

const (
	margin          = 72.0  // 1 inch
	sectionReserve  = 100.0 // 章节开始前至少需要的剩余高度
	figureThreshold = 400.0 // 光标距页底小于该值时图片另起一页
	figureMaxHeight = 300.0
	bodyFontSize    = 11.0
	bodyLineHeight  = 15.0
)

type rgb struct{ r, g, b int }

var (
	colorTitle  = rgb{26, 26, 26}
	colorBody   = rgb{42, 42, 42}
	colorMuted  = rgb{74, 74, 74}
	colorAccent = rgb{37, 99, 235}
	colorRule   = rgb{204, 204, 204}
	colorPageNo = rgb{102, 102, 102}
	colorFooter = rgb{153, 153, 153}
)

// Renderer A4 分页 PDF 渲染器
type Renderer struct {
	now func() time.Time
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer 创建 PDF 渲染器
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func (r *Renderer) ContentType() string { return "application/pdf" }

func (r *Renderer) Extension() string { return "pdf" }

// layout 单次渲染的状态
type layout struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
	textW float64
}

// Render 排版标题页、正文章节、图片附录，最后为每一页补上页脚
func (r *Renderer) Render(ctx context.Context, doc *dm.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.now()
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Event.Title, true)
	pdf.SetCreator(render.Attribution, true)

	l := &layout{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	l.pageW, l.pageH = pdf.GetPageSize()
	l.textW = l.pageW - 2*margin

	l.titlePage(doc.Event, now)

	pdf.AddPage()
	pdf.Ln(bodyLineHeight)
	l.body(doc.Content)

	if len(doc.Photos) > 0 {
		l.appendix(doc.Photos)
	}

	l.footers(now)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (l *layout) setColor(c rgb) {
	l.pdf.SetTextColor(c.r, c.g, c.b)
}

func (l *layout) rule(x1, y, x2, width float64, c rgb) {
	l.pdf.SetDrawColor(c.r, c.g, c.b)
	l.pdf.SetLineWidth(width)
	l.pdf.Line(x1, y, x2, y)
}

func (l *layout) titlePage(ev dm.Event, now time.Time) {
	pdf := l.pdf
	pdf.AddPage()
	pdf.Ln(42)

	pdf.SetFont("Helvetica", "B", 24)
	l.setColor(colorTitle)
	pdf.MultiCell(0, 32, l.tr(strings.ToUpper(ev.Title)), "", "C", false)

	pdf.Ln(12)
	l.rule(margin+l.textW*0.3, pdf.GetY(), margin+l.textW*0.7, 2, colorAccent)
	pdf.Ln(24)

	pdf.SetFont("Helvetica", "", 16)
	l.setColor(colorMuted)
	pdf.MultiCell(0, 20, l.tr(ev.Type+" Report"), "", "C", false)
	pdf.Ln(57)

	metaLeft := margin + 100
	meta := [][2]string{
		{"Date:", ev.Date},
		{"Location:", ev.Location},
		{"Document ID:", render.DocumentID(now)},
		{"Generated:", render.LongDate(now)},
	}
	for _, m := range meta {
		pdf.SetX(metaLeft)
		pdf.SetFont("Helvetica", "B", bodyFontSize)
		l.setColor(colorBody)
		pdf.CellFormat(80, 14, l.tr(m[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", bodyFontSize)
		l.setColor(colorMuted)
		pdf.MultiCell(l.textW-180, 14, l.tr(m[1]), "", "L", false)
		pdf.Ln(10)
	}
}

func (l *layout) body(content *dm.ReportContent) {
	pdf := l.pdf
	if !content.Structured() {
		pdf.SetFont("Helvetica", "", bodyFontSize)
		l.setColor(colorBody)
		pdf.MultiCell(0, bodyLineHeight, l.tr(strings.TrimSpace(content.FullText)), "", "J", false)
		return
	}

	for i, s := range content.Sections {
		if pdf.GetY() > l.pageH-margin-sectionReserve {
			pdf.AddPage()
		}

		if s.Title != "" {
			pdf.SetFont("Helvetica", "B", 14)
			l.setColor(colorTitle)
			pdf.MultiCell(0, 20, l.tr(fmt.Sprintf("%d. %s", i+1, strings.ToUpper(s.Title))), "", "L", false)
			y := pdf.GetY() + 2
			l.rule(margin, y, margin+200, 1.5, colorAccent)
			pdf.Ln(12)
		}

		if body := strings.TrimRight(s.Content, "\n"); body != "" {
			pdf.SetFont("Helvetica", "", bodyFontSize)
			l.setColor(colorBody)
			pdf.MultiCell(0, bodyLineHeight, l.tr(body), "", "J", false)
			pdf.Ln(18)
		}
	}
}

func (l *layout) appendix(photos []string) {
	pdf := l.pdf
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	l.setColor(colorTitle)
	pdf.MultiCell(0, 20, "APPENDIX: PHOTO DOCUMENTATION", "", "L", false)
	l.rule(margin, pdf.GetY()+2, margin+250, 1.5, colorAccent)
	pdf.Ln(24)

	for i, path := range photos {
		img, err := loadImage(path)
		if err != nil {
			logger.Log.Warnf("跳过无法读取的图片 [%s]: %v", path, err)
			continue
		}

		if pdf.GetY() > l.pageH-figureThreshold {
			pdf.AddPage()
		}

		label, text := render.FigureCaption(i)
		pdf.SetFont("Helvetica", "B", 10)
		l.setColor(colorBody)
		pdf.Write(14, l.tr(label))
		pdf.SetFont("Helvetica", "", 10)
		pdf.Write(14, l.tr(" "+text))
		pdf.Ln(20)

		pdf.RegisterImageOptionsReader(path, fpdf.ImageOptions{ImageType: img.kind}, bytes.NewReader(img.data))
		w, h := fit(float64(img.width), float64(img.height), l.textW, figureMaxHeight)
		x := margin + (l.textW-w)/2
		y := pdf.GetY()
		pdf.ImageOptions(path, x, y, w, h, false, fpdf.ImageOptions{ImageType: img.kind}, 0, "")
		pdf.SetY(y + h)
		pdf.Ln(28)
	}
}

// footers 排版完成后回到每一页绘制页脚和页码
func (l *layout) footers(now time.Time) {
	pdf := l.pdf
	pdf.SetAutoPageBreak(false, 0)

	total := pdf.PageCount()
	base := l.pageH - margin
	attribution := fmt.Sprintf("%s • %s", render.Attribution, render.ShortDate(now))

	for i := 1; i <= total; i++ {
		pdf.SetPage(i)
		l.rule(margin, base+20, l.pageW-margin, 0.5, colorRule)

		pdf.SetFont("Helvetica", "", 9)
		l.setColor(colorPageNo)
		pdf.SetXY(margin, base+30)
		pdf.CellFormat(l.textW, 10, fmt.Sprintf("Page %d of %d", i, total), "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		l.setColor(colorFooter)
		pdf.SetXY(margin, base+45)
		pdf.CellFormat(l.textW, 10, l.tr(attribution), "", 0, "C", false, 0, "")
	}
}

type photo struct {
	data          []byte
	kind          string
	width, height int
}

func loadImage(path string) (*photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("empty image %dx%d", cfg.Width, cfg.Height)
	}

	kind := map[string]string{"jpeg": "JPG", "png": "PNG", "gif": "GIF"}[format]
	if kind == "" {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	return &photo{data: data, kind: kind, width: cfg.Width, height: cfg.Height}, nil
}

// fit 等比缩放到 maxW x maxH 以内
func fit(w, h, maxW, maxH float64) (float64, float64) {
	scale := math.Min(maxW/w, maxH/h)
	return w * scale, h * scale
}
