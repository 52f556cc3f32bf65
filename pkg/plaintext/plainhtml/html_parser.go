package plainhtml

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// TextHTMLParser 解析 HTML 并提取可见文本
type TextHTMLParser struct{}

var (
	invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)
	whitespaceRegex     = regexp.MustCompile(`[\s\x{A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`)
)

// 不包含可见文本的元素
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"meta":     true,
	"link":     true,
	"noscript": true,
	"template": true,
}

// ParseHtml 剥离标签和不可见字符，返回可见文本
func (p *TextHTMLParser) ParseHtml(htmlContent []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return []byte{}, fmt.Errorf("html parse error: %w", err)
	}

	var segments []string
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				segments = append(segments, s)
			}
			return
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	s := invisibleCharsRegex.ReplaceAllString(strings.Join(segments, " "), "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return []byte(strings.TrimSpace(s)), nil
}

func (p *TextHTMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("读取HTML文件 '%s' 失败: %w", filePath, err)
	}
	return p.ParseHtml(content)
}
