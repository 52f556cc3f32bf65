// Package ole 从 OLE 复合文档（doc/ppt）的正文流中提取文本片段
package ole

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"

	"lextrie/pkg/logger"
)

// 正文所在的流名称
var documentStreams = map[string]bool{
	"WordDocument":        true,
	"PowerPoint Document": true,
}

// minRun 文本片段的最小长度，过短的片段多为结构数据
const minRun = 3

type OleFileParser struct{}

func (p *OleFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	doc, err := mscfb.New(file)
	if err != nil {
		return []byte{}, fmt.Errorf("文件打开失败: %w", err)
	}

	var sb strings.Builder
	found := false
	for {
		entry, err := doc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return []byte{}, fmt.Errorf("读取复合文档目录失败: %w", err)
		}
		logger.DebugLogger.Printf("ole 条目: %s (%d 字节)", entry.Name, entry.Size)
		if !documentStreams[entry.Name] {
			continue
		}

		buf, err := io.ReadAll(entry)
		if err != nil {
			return []byte{}, fmt.Errorf("读取流 %s 失败: %w", entry.Name, err)
		}
		found = true
		for _, run := range ExtractRuns(buf) {
			sb.WriteString(run)
			sb.WriteString("\n")
		}
	}
	if !found {
		return []byte{}, fmt.Errorf("未找到正文流")
	}
	return []byte(sb.String()), nil
}

// ExtractRuns 扫描二进制流，返回 8 位 ASCII 和 UTF-16LE 两种编码下的可打印文本片段
func ExtractRuns(data []byte) []string {
	var runs []string
	runs = append(runs, asciiRuns(data)...)
	runs = append(runs, utf16Runs(data)...)
	return runs
}

func printable(c rune) bool {
	return c == ' ' || c == '\t' || (c > ' ' && c < 0x7f)
}

func asciiRuns(data []byte) []string {
	var runs []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= minRun {
			runs = append(runs, string(data[start:end]))
		}
		start = -1
	}
	for i, b := range data {
		if printable(rune(b)) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(data))
	return runs
}

func utf16Runs(data []byte) []string {
	var runs []string
	var cur []uint16
	flush := func() {
		if len(cur) >= minRun {
			runs = append(runs, string(utf16.Decode(cur)))
		}
		cur = cur[:0]
	}
	for i := 0; i+1 < len(data); i += 2 {
		u := uint16(data[i]) | uint16(data[i+1])<<8
		if data[i+1] == 0 && printable(rune(u)) {
			cur = append(cur, u)
			continue
		}
		flush()
	}
	flush()
	return runs
}
