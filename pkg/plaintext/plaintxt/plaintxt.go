package plaintxt

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"lextrie/pkg/logger"
)

type TextPlainParser struct{}

func (p *TextPlainParser) Parse(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("读取文本文件 '%s' 失败: %w", filePath, err)
	}
	return DecodeToUTF8(data)
}

// DecodeToUTF8 检测文本编码并解码为 UTF-8，合法 UTF-8 直接返回
func DecodeToUTF8(rawData []byte) ([]byte, error) {
	if utf8.Valid(rawData) {
		return rawData, nil
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(rawData)
	if err != nil {
		logger.Logger.Printf("编码检测失败: %v，按 UTF-8 处理", err)
		return rawData, nil
	}
	logger.DebugLogger.Printf("检测到编码 %s (置信度 %d)", result.Charset, result.Confidence)

	decoded, _, err := transform.Bytes(lookupEncoding(result.Charset).NewDecoder(), rawData)
	if err != nil {
		return []byte{}, fmt.Errorf("文本解码失败: %w", err)
	}
	return decoded, nil
}

// lookupEncoding 将 chardet 的字符集名映射为解码器，未知字符集不做转换
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(charset) {
	case "utf-8":
		return encoding.Nop
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "gb-18030", "gb18030", "gbk", "gb2312":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	}
	if enc, err := htmlindex.Get(charset); err == nil {
		return enc
	}
	logger.Logger.Printf("不支持的编码格式: %s，不做转换", charset)
	return encoding.Nop
}
