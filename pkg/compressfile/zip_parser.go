package compressfile

import (
	"archive/zip"
	"fmt"

	"lextrie/pkg/logger"
)

type ZipFileParser struct{}

// Parse 解压 zip/jar/war 后解析所有条目
func (p *ZipFileParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer r.Close()

	return withTmpDir("zip_extract_", func(dir string) ([]byte, error) {
		for _, f := range r.File {
			if f.FileInfo().IsDir() {
				continue
			}
			safePath := joinSafe(dir, f.Name)
			logger.DebugLogger.Printf("处理ZIP条目: %s -> %s", f.Name, safePath)

			rc, err := f.Open()
			if err != nil {
				return []byte{}, fmt.Errorf("打开ZIP内文件 %s 失败: %w", f.Name, err)
			}
			err = writeDstFile(rc, safePath, 0o644)
			rc.Close()
			if err != nil {
				return []byte{}, err
			}
		}
		return parseDir("zip", dir)
	})
}
