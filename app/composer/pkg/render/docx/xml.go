package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Default Extension="png" ContentType="image/png"/>
<Default Extension="jpeg" ContentType="image/jpeg"/>
<Default Extension="gif" ContentType="image/gif"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const coreXMLTpl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:creator>%s</dc:creator>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
</cp:coreProperties>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/><w:sz w:val="22"/><w:szCs w:val="22"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:rPr><w:b/><w:color w:val="1A1A1A"/><w:sz w:val="56"/><w:szCs w:val="56"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:color w:val="1A1A1A"/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr></w:style>
</w:styles>`

const documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
<w:body>`

// A4, 1 inch 页边距
const documentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>
</w:body>
</w:document>`

const drawingTpl = `<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0"><wp:extent cx="%[1]d" cy="%[2]d"/><wp:docPr id="%[3]d" name="Picture %[3]d"/><wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr><a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture"><pic:pic><pic:nvPicPr><pic:cNvPr id="%[3]d" name="%[4]s"/><pic:cNvPicPr/></pic:nvPicPr><pic:blipFill><a:blip r:embed="%[5]s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill><pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%[1]d" cy="%[2]d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr></pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`

// escape 转义 XML 特殊字符
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// run 文本片段
type run struct {
	text   string
	bold   bool
	italic bool
	size   int    // 半磅，0 表示使用样式默认值
	color  string // 十六进制 RGB
}

func (r run) xml() string {
	var sb strings.Builder
	sb.WriteString("<w:r>")
	if r.bold || r.italic || r.size > 0 || r.color != "" {
		sb.WriteString("<w:rPr>")
		if r.bold {
			sb.WriteString("<w:b/>")
		}
		if r.italic {
			sb.WriteString("<w:i/>")
		}
		if r.color != "" {
			fmt.Fprintf(&sb, `<w:color w:val="%s"/>`, r.color)
		}
		if r.size > 0 {
			fmt.Fprintf(&sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.size, r.size)
		}
		sb.WriteString("</w:rPr>")
	}
	for i, line := range strings.Split(r.text, "\n") {
		if i > 0 {
			sb.WriteString("<w:br/>")
		}
		fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, escape(line))
	}
	sb.WriteString("</w:r>")
	return sb.String()
}

// paragraph 段落属性
type paragraph struct {
	style           string
	align           string // left, center, both
	before, after   int    // twips
	line            int    // 240 = 单倍行距
	pageBreakBefore bool
	bottomBorder    string // 下边框颜色
	runs            []run
	raw             string // 预先拼好的 run，例如图片
}

func (p paragraph) xml() string {
	var sb strings.Builder
	sb.WriteString("<w:p><w:pPr>")
	if p.style != "" {
		fmt.Fprintf(&sb, `<w:pStyle w:val="%s"/>`, p.style)
	}
	if p.pageBreakBefore {
		sb.WriteString("<w:pageBreakBefore/>")
	}
	if p.bottomBorder != "" {
		fmt.Fprintf(&sb, `<w:pBdr><w:bottom w:val="single" w:sz="12" w:space="1" w:color="%s"/></w:pBdr>`, p.bottomBorder)
	}
	if p.before > 0 || p.after > 0 || p.line > 0 {
		sb.WriteString("<w:spacing")
		if p.before > 0 {
			fmt.Fprintf(&sb, ` w:before="%d"`, p.before)
		}
		if p.after > 0 {
			fmt.Fprintf(&sb, ` w:after="%d"`, p.after)
		}
		if p.line > 0 {
			fmt.Fprintf(&sb, ` w:line="%d" w:lineRule="auto"`, p.line)
		}
		sb.WriteString("/>")
	}
	if p.align != "" {
		fmt.Fprintf(&sb, `<w:jc w:val="%s"/>`, p.align)
	}
	sb.WriteString("</w:pPr>")
	for _, r := range p.runs {
		sb.WriteString(r.xml())
	}
	sb.WriteString(p.raw)
	sb.WriteString("</w:p>")
	return sb.String()
}

type relationship struct {
	id     string
	target string
}

func documentRelsXML(images []relationship) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
`)
	for _, rel := range images {
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>
`, rel.id, rel.target)
	}
	sb.WriteString("</Relationships>")
	return sb.String()
}
