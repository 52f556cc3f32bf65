// Package openxml 提取基于 zip+xml 的办公文档（docx/xlsx/pptx/odt/vsdx）中的文本
package openxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lextrie/pkg/logger"
	"lextrie/pkg/plaintext/plainxml"
)

// Parser 按 Members 选出包内 xml 部件，按 Keep 选出文本元素
type Parser struct {
	Format  string
	Members func(name string) bool
	Keep    func(xml.Name) bool
}

func (p *Parser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开%s文件: %w", p.Format, err)
	}
	defer r.Close()

	var parts []*zip.File
	for _, f := range r.File {
		if p.Members(f.Name) {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return []byte{}, fmt.Errorf("%s文件中没有可解析的内容部件", p.Format)
	}
	sort.Slice(parts, func(i, j int) bool {
		return partLess(parts[i].Name, parts[j].Name)
	})

	var sb strings.Builder
	for _, f := range parts {
		logger.DebugLogger.Printf("%s 部件: %s", p.Format, f.Name)
		rc, err := f.Open()
		if err != nil {
			return []byte{}, fmt.Errorf("打开部件 %s 失败: %w", f.Name, err)
		}
		text, err := plainxml.ExtractCharData(rc, p.Keep)
		rc.Close()
		if err != nil {
			logger.Logger.Printf("解析部件 %s 失败: %v", f.Name, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

var partNumberRegex = regexp.MustCompile(`(\d+)\.xml$`)

// partLess 按部件编号排序（slide2 在 slide10 之前），无编号时按名称
func partLess(a, b string) bool {
	ma, mb := partNumberRegex.FindStringSubmatch(a), partNumberRegex.FindStringSubmatch(b)
	if ma != nil && mb != nil {
		pa, pb := a[:len(a)-len(ma[0])], b[:len(b)-len(mb[0])]
		if pa == pb {
			na, _ := strconv.Atoi(ma[1])
			nb, _ := strconv.Atoi(mb[1])
			return na < nb
		}
	}
	return a < b
}

func localIs(names ...string) func(xml.Name) bool {
	return func(n xml.Name) bool {
		for _, name := range names {
			if n.Local == name {
				return true
			}
		}
		return false
	}
}

const odtTextNS = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"

// NewDocx word/document.xml 以及页眉页脚中的 <w:t>
func NewDocx() *Parser {
	return &Parser{
		Format: "DOCX",
		Members: func(name string) bool {
			return name == "word/document.xml" ||
				strings.HasPrefix(name, "word/header") ||
				strings.HasPrefix(name, "word/footer")
		},
		Keep: localIs("t"),
	}
}

// NewXlsx 共享字符串表和工作表内联字符串中的 <t>
func NewXlsx() *Parser {
	return &Parser{
		Format: "XLSX",
		Members: func(name string) bool {
			return name == "xl/sharedStrings.xml" ||
				(strings.HasPrefix(name, "xl/worksheets/sheet") && strings.HasSuffix(name, ".xml"))
		},
		Keep: localIs("t"),
	}
}

// NewPptx 幻灯片及备注中的 <a:t>
func NewPptx() *Parser {
	return &Parser{
		Format: "PPTX",
		Members: func(name string) bool {
			return (strings.HasPrefix(name, "ppt/slides/slide") || strings.HasPrefix(name, "ppt/notesSlides/notesSlide")) &&
				strings.HasSuffix(name, ".xml")
		},
		Keep: localIs("t"),
	}
}

// NewOdt content.xml 中 text 命名空间下的段落和标题
func NewOdt() *Parser {
	return &Parser{
		Format:  "ODT",
		Members: func(name string) bool { return name == "content.xml" },
		Keep: func(n xml.Name) bool {
			return n.Space == odtTextNS && (n.Local == "p" || n.Local == "h")
		},
	}
}

// NewVsdx Visio 各页形状中的 <Text>
func NewVsdx() *Parser {
	return &Parser{
		Format: "VSDX",
		Members: func(name string) bool {
			return strings.HasPrefix(name, "visio/pages/page") && strings.HasSuffix(name, ".xml")
		},
		Keep: localIs("Text"),
	}
}
