package rtf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"lextrie/pkg/logger"
)

// OfficeRtfParser RTF文件解析器
type OfficeRtfParser struct{}

func (p *OfficeRtfParser) Parse(filename string) ([]byte, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return []byte{}, fmt.Errorf("无法读取RTF文件: %w", err)
	}
	return []byte(ExtractText(string(content))), nil
}

// 不含正文的目标组
var skippedDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
	"object":     true,
}

// group 组状态，skip 表示整组不输出，uc 为 \u 之后需跳过的替代字符数
type group struct {
	skip bool
	uc   int
}

// ExtractText 去除控制字和非正文组，返回纯文本
func ExtractText(content string) string {
	var sb strings.Builder
	stack := []group{{uc: 1}}
	top := func() *group { return &stack[len(stack)-1] }

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch c {
		case '{':
			stack = append(stack, *top())
		case '}':
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case '\\':
			i = controlWord(content, i, top(), &sb)
		case '\r', '\n':
		default:
			if !top().skip {
				sb.WriteByte(c)
			}
		}
	}
	logger.DebugLogger.Printf("rtf 提取 %d 字节文本", sb.Len())
	return sb.String()
}

// controlWord 处理从 content[i] 开始的控制序列，返回最后消费的下标
func controlWord(content string, i int, g *group, sb *strings.Builder) int {
	if i+1 >= len(content) {
		return i
	}
	next := content[i+1]
	switch {
	case next == '\\' || next == '{' || next == '}':
		if !g.skip {
			sb.WriteByte(next)
		}
		return i + 1
	case next == '*':
		// \* 可忽略的目标
		g.skip = true
		return i + 1
	case next == '\'':
		if i+3 < len(content) {
			if v, err := strconv.ParseUint(content[i+2:i+4], 16, 8); err == nil && !g.skip {
				sb.WriteString(decodeByte(byte(v)))
			}
		}
		return i + 3
	case !isAlpha(next):
		return i + 1
	}

	j := i + 1
	for j < len(content) && isAlpha(content[j]) {
		j++
	}
	word := content[i+1 : j]
	k := j
	if k < len(content) && content[k] == '-' {
		k++
	}
	for k < len(content) && content[k] >= '0' && content[k] <= '9' {
		k++
	}
	param := content[j:k]
	if k < len(content) && content[k] == ' ' {
		k++ // 控制字后的分隔空格
	}

	switch {
	case skippedDestinations[word]:
		g.skip = true
	case g.skip:
	case word == "par" || word == "line" || word == "row":
		sb.WriteByte('\n')
	case word == "tab" || word == "cell":
		sb.WriteByte('\t')
	case word == "uc":
		if n, err := strconv.Atoi(param); err == nil && n >= 0 {
			g.uc = n
		}
	case word == "u":
		if n, err := strconv.Atoi(param); err == nil {
			if n < 0 {
				n += 65536
			}
			sb.WriteRune(rune(n))
			k = skipFallback(content, k, g.uc)
		}
	}
	return k - 1
}

// skipFallback 从 content[k] 起跳过 n 个替代字符，\'hh 和控制字各计一个，遇到组边界停止
func skipFallback(content string, k, n int) int {
	for ; n > 0 && k < len(content); n-- {
		switch c := content[k]; {
		case c == '{' || c == '}':
			return k
		case c != '\\':
			k++
		case k+1 < len(content) && content[k+1] == '\'':
			k += 4
		case k+1 < len(content) && isAlpha(content[k+1]):
			k++
			for k < len(content) && isAlpha(content[k]) {
				k++
			}
			if k < len(content) && content[k] == '-' {
				k++
			}
			for k < len(content) && content[k] >= '0' && content[k] <= '9' {
				k++
			}
			if k < len(content) && content[k] == ' ' {
				k++
			}
		default:
			k += 2
		}
	}
	if k > len(content) {
		k = len(content)
	}
	return k
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// decodeByte 按 Windows-1252 解码 \'hh 转义
func decodeByte(b byte) string {
	r := charmap.Windows1252.DecodeByte(b)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}
