package internal

import (
	"fmt"
	"os"
	"sort"

	"lextrie/pkg/logger"
)

// FileParser 从文件中提取 UTF-8 文本
type FileParser interface {
	Parse(filePath string) ([]byte, error)
}

var parsers = make(map[int]FileParser)

// RawFileParser 原样读取文件内容，用作未知类型的兜底解析器
type RawFileParser struct{}

func (p *RawFileParser) Parse(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return []byte{}, err
	}
	return data, nil
}

// RegisterParser 注册文件类型解析器，重复注册将被忽略
func RegisterParser(fileType int, parser FileParser) {
	if _, exists := parsers[fileType]; exists {
		logger.Logger.Printf("文件类型 %d 已被注册，忽略重复注册", fileType)
		return
	}
	parsers[fileType] = parser
}

// GetParser 获取指定文件类型的解析器，未注册的类型回退到原样读取
func GetParser(fileType int) (FileParser, error) {
	if parser, exists := parsers[fileType]; exists {
		return parser, nil
	}
	if fileType != FileTypeOther {
		logger.DebugLogger.Printf("文件类型 %d 未注册解析器，按原始文本读取", fileType)
	}
	parser, exists := parsers[FileTypeOther]
	if !exists {
		return nil, fmt.Errorf("no parser registered for file type %d", fileType)
	}
	return parser, nil
}

// RegisteredTypes 返回已注册的文件类型，升序
func RegisteredTypes() []int {
	types := make([]int, 0, len(parsers))
	for t := range parsers {
		types = append(types, t)
	}
	sort.Ints(types)
	return types
}

func init() {
	RegisterParser(FileTypeOther, &RawFileParser{})
}
