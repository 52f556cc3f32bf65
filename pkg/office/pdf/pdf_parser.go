package pdf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	ledongthucpdf "github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	rscpdf "github.com/rsc/pdf"

	"lextrie/internal"
	"lextrie/pkg/logger"
	"lextrie/pkg/plaintext/plaintxt"
)

// OfficePdfParser 依次尝试 ledongthuc/pdf、rsc/pdf、pdfcpu 和二进制扫描
type OfficePdfParser struct{}

// textOperandRegex 内容流中的字符串操作数 (...)
var textOperandRegex = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)

func (p *OfficePdfParser) Parse(filePath string) ([]byte, error) {
	text, err := p.parseWithLedongthuc(filePath)
	if err == nil && len(bytes.TrimSpace(text)) > 0 {
		return text, nil
	}
	logger.Logger.Printf("ledongthuc/pdf解析失败: %v，尝试rsc/pdf解析", err)

	text, err = p.parseWithRscPdf(filePath)
	if err == nil && len(bytes.TrimSpace(text)) > 0 {
		return text, nil
	}
	logger.Logger.Printf("rsc/pdf解析失败: %v，尝试pdfcpu解析", err)

	text, err = p.parseWithPdfcpu(filePath)
	if err == nil && len(bytes.TrimSpace(text)) > 0 {
		return text, nil
	}
	logger.Logger.Printf("pdfcpu解析失败: %v，尝试二进制解析", err)

	text, err = p.parseBinaryPDF(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("所有提取方案均失败: %w", err)
	}
	return text, nil
}

func (p *OfficePdfParser) parseWithLedongthuc(filePath string) ([]byte, error) {
	f, r, err := ledongthucpdf.Open(filePath)
	if err != nil {
		return []byte{}, err
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.Logger.Printf("提取第%d页文本失败: %v", i, err)
			continue
		}
		buf.WriteString(content)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func (p *OfficePdfParser) parseWithRscPdf(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return []byte{}, err
	}
	r, err := rscpdf.NewReader(file, info.Size())
	if err != nil {
		return []byte{}, fmt.Errorf("解析PDF失败: %w", err)
	}

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			buf.WriteString(t.S)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// parseWithPdfcpu 导出各页内容流，再从中取出字符串操作数
func (p *OfficePdfParser) parseWithPdfcpu(filePath string) ([]byte, error) {
	dir, err := internal.MkdirTemp("pdf_extract_")
	if err != nil {
		return []byte{}, err
	}
	defer os.RemoveAll(dir)

	if err := pdfcpu.ExtractContentFile(filePath, dir, nil, nil); err != nil {
		return []byte{}, fmt.Errorf("pdfcpu提取内容失败: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []byte{}, err
	}
	var buf bytes.Buffer
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return []byte{}, err
		}
		buf.Write(textOperands(data))
		buf.WriteString("\n")
	}
	logger.Logger.Printf("pdfcpu解析完成，共 %d 个内容流", len(entries))
	return plaintxt.DecodeToUTF8(buf.Bytes())
}

// parseBinaryPDF 逐行扫描原始文件中的字符串操作数，仅适用于未压缩的内容流
func (p *OfficePdfParser) parseBinaryPDF(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	header := make([]byte, 4)
	if _, err := file.Read(header); err != nil || !bytes.Equal(header, []byte("%PDF")) {
		return []byte{}, fmt.Errorf("不是有效的PDF文件")
	}

	var buf bytes.Buffer
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		buf.Write(textOperands(scanner.Bytes()))
	}
	if err := scanner.Err(); err != nil {
		return []byte{}, fmt.Errorf("文件扫描错误: %w", err)
	}
	return plaintxt.DecodeToUTF8(buf.Bytes())
}

// textOperands 取出 (...) 中的内容并以空格分隔
func textOperands(data []byte) []byte {
	var buf bytes.Buffer
	for _, m := range textOperandRegex.FindAllSubmatch(data, -1) {
		buf.Write(m[1])
		buf.WriteByte(' ')
	}
	return buf.Bytes()
}
