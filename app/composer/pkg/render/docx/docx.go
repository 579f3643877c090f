package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"
	"time"

	"github.com/iWorld-y/report_forge/app/composer/pkg/logger"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
)

// ErrGenerate 渲染失败时对外统一返回的错误
var ErrGenerate = errors.New("failed to generate Word document")

const (
	accent = "2563EB"

	// 图片最大尺寸（像素），1px = 9525 EMU
	figureWidth  = 500
	figureHeight = 375
	emuPerPixel  = 9525
)

// Renderer 可重排的 Word 文档渲染器
type Renderer struct {
	now func() time.Time
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer 创建 DOCX 渲染器
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *Renderer) Extension() string { return "docx" }

type media struct {
	name string
	data []byte
}

type part struct {
	name    string
	content []byte
}

// builder 单次渲染的状态
type builder struct {
	body   strings.Builder
	rels   []relationship
	media  []media
	nextID int
}

func (b *builder) add(p paragraph) {
	b.body.WriteString(p.xml())
}

// Render 生成 docx 字节流，底层错误统一转换为 ErrGenerate
func (r *Renderer) Render(ctx context.Context, doc *dm.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.now()
	b := &builder{}

	b.titleBlock(doc.Event, now)
	b.add(paragraph{pageBreakBefore: true})
	b.content(doc.Content)
	if len(doc.Photos) > 0 {
		b.appendix(doc.Photos)
	}

	b.add(paragraph{})
	b.add(paragraph{
		align:  "center",
		before: 480,
		runs: []run{{
			text:  fmt.Sprintf("%s • %s", render.Attribution, render.ShortDate(now)),
			size:  16,
			color: "999999",
		}},
	})

	out, err := b.pack(doc.Event.Title, now)
	if err != nil {
		logger.Log.Errorf("生成 Word 文档失败: %v", err)
		return nil, ErrGenerate
	}
	return out, nil
}

func label(name, value string, after int) paragraph {
	return paragraph{
		after: after,
		runs:  []run{{text: name, bold: true}, {text: value}},
	}
}

func (b *builder) titleBlock(ev dm.Event, now time.Time) {
	organizer := ev.Organizer
	if organizer == "" {
		organizer = "N/A"
	}

	b.add(paragraph{style: "Title", align: "center", before: 1440, after: 480, runs: []run{{text: strings.ToUpper(ev.Title)}}})
	b.add(paragraph{align: "center", after: 960, runs: []run{{text: ev.Type + " Report"}}})
	b.add(label("Date: ", ev.Date, 120))
	b.add(label("Location: ", ev.Location, 120))
	b.add(label("Organizer: ", organizer, 120))
	b.add(label("Document ID: ", render.DocumentID(now), 120))
	b.add(label("Generated: ", render.LongDate(now), 960))
}

func (b *builder) heading(text string, after int) {
	b.add(paragraph{
		style:        "Heading1",
		before:       240,
		after:        after,
		bottomBorder: accent,
		runs:         []run{{text: text}},
	})
}

// paragraphs 按空行拆分成两端对齐的段落，行距 1.15
func (b *builder) paragraphs(text string) {
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.add(paragraph{align: "both", after: 200, line: 276, runs: []run{{text: para}}})
	}
}

func (b *builder) content(content *dm.ReportContent) {
	if !content.Structured() {
		b.paragraphs(content.FullText)
		return
	}

	for i, s := range content.Sections {
		if s.Title != "" {
			b.heading(fmt.Sprintf("%d. %s", i+1, strings.ToUpper(s.Title)), 120)
		}
		if s.Content != "" {
			b.paragraphs(s.Content)
			b.add(paragraph{after: 240})
		}
	}
}

func (b *builder) appendix(photos []string) {
	b.add(paragraph{pageBreakBefore: true})
	b.heading("APPENDIX: PHOTO DOCUMENTATION", 240)

	for i, path := range photos {
		if _, err := os.Stat(path); err != nil {
			logger.Log.Warnf("图片不存在，跳过 [%s]: %v", path, err)
			continue
		}

		drawing, err := b.embed(path)
		if err != nil {
			logger.Log.Errorf("添加图片到 Word 文档失败 [%s]: %v", path, err)
			b.add(paragraph{after: 240, runs: []run{{text: fmt.Sprintf("[Image %d could not be loaded]", i+1), italic: true}}})
			continue
		}

		lbl, text := render.FigureCaption(i)
		b.add(paragraph{before: 240, after: 120, runs: []run{{text: lbl + " ", bold: true}, {text: text}}})
		b.add(paragraph{align: "center", after: 480, raw: drawing})
	}
}

// embed 读取图片并登记为 media 部件，返回 inline drawing 的 run
func (b *builder) embed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "", fmt.Errorf("empty image %dx%d", cfg.Width, cfg.Height)
	}

	b.nextID++
	id := b.nextID
	name := fmt.Sprintf("image%d.%s", id, format)
	relID := fmt.Sprintf("rIdImage%d", id)
	b.media = append(b.media, media{name: name, data: data})
	b.rels = append(b.rels, relationship{id: relID, target: "media/" + name})

	scale := math.Min(float64(figureWidth)/float64(cfg.Width), float64(figureHeight)/float64(cfg.Height))
	cx := int64(math.Round(float64(cfg.Width)*scale)) * emuPerPixel
	cy := int64(math.Round(float64(cfg.Height)*scale)) * emuPerPixel

	return fmt.Sprintf(drawingTpl, cx, cy, id, name, relID), nil
}

func (b *builder) pack(title string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []part{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/core.xml", []byte(fmt.Sprintf(coreXMLTpl, escape(title), escape(render.Attribution), now.UTC().Format(time.RFC3339)))},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML(b.rels))},
		{"word/document.xml", []byte(documentOpen + b.body.String() + documentClose)},
	}
	for _, m := range b.media {
		files = append(files, part{"word/media/" + m.name, m.data})
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.name, err)
		}
		if _, err := w.Write(f.content); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
