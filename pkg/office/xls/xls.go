package xls

import (
	"bytes"
	"fmt"

	exls "github.com/extrame/xls"

	"lextrie/pkg/logger"
)

type OfficeXlsParser struct{}

// Parse 逐表逐行提取单元格文本，单元格以制表符分隔
func (p *OfficeXlsParser) Parse(filePath string) ([]byte, error) {
	file, err := exls.Open(filePath, "utf-8")
	if err != nil {
		return []byte{}, fmt.Errorf("文件打开失败: %w", err)
	}

	var content bytes.Buffer
	for sheetIndex := 0; sheetIndex < file.NumSheets(); sheetIndex++ {
		sheet := file.GetSheet(sheetIndex)
		if sheet == nil {
			continue
		}
		logger.DebugLogger.Printf("工作表 %d: %s", sheetIndex+1, sheet.Name)

		for rowIndex := 0; rowIndex <= int(sheet.MaxRow); rowIndex++ {
			row := sheet.Row(rowIndex)
			if row == nil {
				continue
			}
			for colIndex := row.FirstCol(); colIndex < row.LastCol(); colIndex++ {
				if cell := row.Col(colIndex); cell != "" {
					content.WriteString(cell)
					content.WriteString("\t")
				}
			}
			content.WriteString("\n")
		}
	}
	return content.Bytes(), nil
}
