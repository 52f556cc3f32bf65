package compressfile

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lextrie/pkg/logger"
)

type GzFileParser struct{}

// Parse 解压 gz；tar.gz/tgz 解出的 tar 文件由 WalkDir 再次分派
func (p *GzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return []byte{}, fmt.Errorf("创建gzip reader失败: %w", err)
	}
	defer gz.Close()

	name := gz.Header.Name
	if name == "" {
		lower := strings.ToLower(filePath)
		switch {
		case strings.HasSuffix(lower, ".tgz"):
			name = streamName(filePath, ".tgz") + ".tar"
		default:
			name = streamName(filePath, ".gz")
		}
	}
	logger.Logger.Printf("gz 原始文件名: %s", name)

	return withTmpDir("gz_extract_", func(dir string) ([]byte, error) {
		if err := writeDstFile(gz, joinSafe(dir, filepath.Base(name)), 0o644); err != nil {
			return []byte{}, err
		}
		return parseDir("gz", dir)
	})
}
