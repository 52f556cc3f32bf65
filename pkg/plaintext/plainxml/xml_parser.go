package plainxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"lextrie/pkg/logger"
)

// TextXMLParser 提取 XML 字符数据
type TextXMLParser struct{}

var (
	invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)
	whitespaceRegex     = regexp.MustCompile(`[\s\x{A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`)
)

// ParseXml 从 XML 内容中提取纯文本，注释和处理指令被忽略
func (p *TextXMLParser) ParseXml(xmlContent []byte) ([]byte, error) {
	text, err := ExtractCharData(bytes.NewReader(xmlContent), nil)
	if err != nil {
		return nil, err
	}
	text = invisibleCharsRegex.ReplaceAllString(text, "")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return []byte(strings.TrimSpace(text)), nil
}

// ExtractCharData 流式读取 XML，收集字符数据。
// keep 非空时，仅收集 keep 返回 true 的元素内部的文本；否则收集全部文本。
func ExtractCharData(r io.Reader, keep func(xml.Name) bool) (string, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	var segments []string
	depth := 0 // 当前位于多少层被保留元素内
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("xml decode error: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if keep != nil && keep(t.Name) {
				depth++
			}
		case xml.EndElement:
			if keep != nil && keep(t.Name) && depth > 0 {
				depth--
				segments = append(segments, " ")
			}
		case xml.CharData:
			if keep == nil || depth > 0 {
				segments = append(segments, string(t))
			}
		}
	}

	logger.DebugLogger.Printf("xml 提取 %d 段文本", len(segments))
	return strings.Join(segments, " "), nil
}

func (p *TextXMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read xml file error: %w", err)
	}
	return p.ParseXml(content)
}
