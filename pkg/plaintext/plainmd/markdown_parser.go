package plainmd

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"lextrie/pkg/logger"
)

// TextMarkdownParser 提取 Markdown 中的可读文本
type TextMarkdownParser struct{}

var (
	invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{FEFF}]`)
	whitespaceRegex     = regexp.MustCompile(`[\t\f\v\x{A0}\x{2000}-\x{200A}\x{2028}\x{2029}\x{3000}]+`)
	newlineRegex        = regexp.MustCompile(`\n+`)
)

// ParseMd 遍历 goldmark AST，收集文本、代码、图片说明和链接标题
func (p *TextMarkdownParser) ParseMd(content []byte) (string, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(content))

	var segments []string
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch node.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote, *ast.CodeBlock, *ast.FencedCodeBlock:
				segments = append(segments, "\n")
			}
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Text:
			segments = append(segments, string(n.Value(content)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				segments = append(segments, "\n")
			}
		case *ast.String:
			segments = append(segments, string(n.Value))
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				segments = append(segments, string(seg.Value(content)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			if len(n.Title) > 0 {
				segments = append(segments, string(n.Title), " ")
			}
		case *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			segments = append(segments, "\n")
		}
		logger.DebugLogger.Printf("markdown 节点: %s", node.Kind())
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return p.processExtractedText(strings.Join(segments, "")), nil
}

// processExtractedText 移除不可见字符并规范化空白
func (p *TextMarkdownParser) processExtractedText(s string) string {
	s = invisibleCharsRegex.ReplaceAllString(s, "")
	s = newlineRegex.ReplaceAllString(s, "\n")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func (p *TextMarkdownParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法读取Markdown文件: %w", err)
	}

	data, err := p.ParseMd(content)
	if err != nil {
		return []byte{}, fmt.Errorf("无法解析Markdown文件: %w", err)
	}
	return []byte(data), nil
}
